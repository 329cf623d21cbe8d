// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Oakmount Studio

package http

import "errors"

// Sentinel errors used by the basic-auth middleware when parsing the
// "Authorization" HTTP header. They are logged for diagnostics but never
// surfaced to the client: every rejection produces the same generic 401.
var (
	// ErrEmptyAuthorizationHeader is returned when the incoming request
	// does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrNotBasicScheme is returned when the header carries a scheme other
	// than Basic.
	ErrNotBasicScheme = errors.New("`Authorization` header does not use the Basic scheme")

	// ErrMalformedBasicCredentials is returned when the Basic payload is
	// not valid base64 or does not decode to a user:pass pair.
	ErrMalformedBasicCredentials = errors.New("malformed Basic credentials")
)
