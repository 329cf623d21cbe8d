// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Oakmount Studio

package server

import "errors"

var (
	errNoAddressConfigured = errors.New("no HTTP address is configured")
)
