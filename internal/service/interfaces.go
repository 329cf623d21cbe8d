package service

import (
	"context"

	"github.com/oakmount/siteadmin/models"
)

// AuthService checks operator credentials against the static mapping loaded
// at startup. The mapping is immutable for the process lifetime.
type AuthService interface {
	// Authenticate reports whether username/password matches a stored
	// pair. Unknown users and wrong passwords are indistinguishable.
	Authenticate(username, password string) bool
}

// ConfigService orchestrates reads and writes across the local and remote
// config stores and enforces the fixed page-key domain.
type ConfigService interface {
	// Read returns the document for key: local store first, remote
	// fallback when the local read fails and a remote store is wired.
	Read(ctx context.Context, key models.PageKey) (models.ConfigDocument, error)

	// Write persists doc for key. With commit=true the remote commit is
	// the operation's success criterion and the local write is a
	// best-effort cache refresh; with commit=false only local disk is
	// written. Returns whether a remote commit happened.
	Write(ctx context.Context, key models.PageKey, doc models.ConfigDocument, commit bool, message string) (bool, error)
}
