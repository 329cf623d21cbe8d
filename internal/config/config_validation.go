// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Oakmount Studio

package config

// Defaults applied by validate when a source left the field empty.
const (
	defaultHTTPAddress = ":8080"
	defaultLocalDir    = "./data/config"
	defaultBranch      = "main"
	defaultAPIURL      = "https://api.github.com"

	fallbackUsername = "admin"
	fallbackPassword = "admin"
)

// validate checks the final merged [StructuredConfig] and installs defaults
// for every field a deployment may leave unset. The remote store is optional,
// so an absent GitHub identity is not an error; [GitHub.Configured] gates its
// use at runtime.
//
// Returns nil if the configuration is usable, or a descriptive error
// otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = defaultHTTPAddress
	}

	if cfg.Storage.Local.Dir == "" {
		cfg.Storage.Local.Dir = defaultLocalDir
	}

	if cfg.Storage.GitHub.Branch == "" {
		cfg.Storage.GitHub.Branch = defaultBranch
	}

	if cfg.Storage.GitHub.APIURL == "" {
		cfg.Storage.GitHub.APIURL = defaultAPIURL
	}

	// Credential shape problems (e.g. malformed ADMIN_USERS JSON) must stop
	// startup rather than silently fall back to default credentials.
	if _, err := cfg.Auth.CredentialMap(); err != nil {
		return err
	}

	return nil
}
