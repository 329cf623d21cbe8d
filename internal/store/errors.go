// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Oakmount Studio

package store

import "errors"

// Sentinel errors returned by the local config store. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrConfigNotFound is returned when no file exists for the requested
	// page key in the local config directory.
	ErrConfigNotFound = errors.New("config file not found")

	// ErrConfigParse is returned when a stored document cannot be parsed
	// as JSON, whether it came from local disk or the remote repository.
	ErrConfigParse = errors.New("config file is not valid JSON")

	// ErrLocalWrite is returned when writing a document to the local config
	// directory fails (permissions, disk errors, unreachable path).
	ErrLocalWrite = errors.New("error writing local config file")
)

// Sentinel errors returned by the remote config store.
var (
	// ErrRemoteUnavailable is returned when the remote store is invoked
	// without a complete repository identity (token, owner, repo).
	ErrRemoteUnavailable = errors.New("remote store is not configured")

	// ErrRemoteRead is returned when the contents-API GET for a document
	// responds with a non-success status.
	ErrRemoteRead = errors.New("error reading config from remote repository")

	// ErrRemoteWrite is returned when the contents-API PUT for a document
	// responds with a non-success status. The remote's status and body are
	// attached for diagnostics.
	ErrRemoteWrite = errors.New("error committing config to remote repository")
)
