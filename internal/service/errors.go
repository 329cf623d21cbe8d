// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Oakmount Studio

package service

import "errors"

// Sentinel errors returned by the config service. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrInvalidConfigKey is returned when a requested page key is not in
	// the fixed five-key domain. Storage is never touched in that case.
	ErrInvalidConfigKey = errors.New("invalid config key")

	// ErrInvalidDocument is returned when a write carries a payload that
	// is not well-formed JSON.
	ErrInvalidDocument = errors.New("config document must be valid JSON")

	// ErrCommitNotConfigured is returned when a commit is requested but
	// the deployment carries no remote repository identity.
	ErrCommitNotConfigured = errors.New("commit requested but remote repository is not configured")
)
