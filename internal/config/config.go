// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Oakmount Studio

package config

import (
	"encoding/json"
	"fmt"

	"github.com/oakmount/siteadmin/models"
)

// StructuredConfig is the top-level configuration container for the
// siteadmin service. It aggregates all sub-configurations and is populated
// by merging values from environment variables, command-line flags, and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Auth holds the static operator credentials checked by the basic-auth
	// guard on every admin request.
	Auth Auth `envPrefix:"ADMIN_"`

	// Storage holds configuration for both configuration-document backends:
	// the local directory and the remote GitHub repository.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Storage groups the configuration for both document stores.
type Storage struct {
	// Local holds the local-disk store settings.
	Local Local `envPrefix:"LOCAL_"`

	// GitHub holds the remote repository store settings.
	GitHub GitHub `envPrefix:"GITHUB_"`
}

// Auth holds the operator credential configuration.
//
// Either a single Username/Password pair or a JSON map of several pairs may
// be supplied. When both are present the map wins; when neither is present a
// fallback admin/admin pair is installed so the service always has exactly
// one gate (see [Auth.CredentialMap]).
type Auth struct {
	// Username is the single-operator login name.
	// Env: ADMIN_USERNAME
	Username string `env:"USERNAME"`

	// Password is the single-operator password.
	// Env: ADMIN_PASSWORD
	Password string `env:"PASSWORD"`

	// UsersJSON optionally carries a JSON object mapping username to
	// password for deployments with more than one operator
	// (e.g. {"alice":"s3cret","bob":"hunter2"}).
	// Env: ADMIN_USERS
	UsersJSON string `env:"USERS"`
}

// Local holds the local-disk store settings.
type Local struct {
	// Dir is the directory holding one <pageKey>.json file per page key.
	// Env: STORAGE_LOCAL_DIR
	Dir string `env:"DIR"`
}

// GitHub holds the remote repository store settings. The remote store is
// optional: it is considered configured only when Token, Owner, and Repo are
// all non-empty (see [GitHub.Configured]).
type GitHub struct {
	// Token is the API token used as a bearer credential on every
	// contents-API call.
	// Env: STORAGE_GITHUB_TOKEN
	Token string `env:"TOKEN"`

	// Owner is the repository owner (user or organization).
	// Env: STORAGE_GITHUB_OWNER
	Owner string `env:"OWNER"`

	// Repo is the repository name.
	// Env: STORAGE_GITHUB_REPO
	Repo string `env:"REPO"`

	// Branch is the branch written to and read from. Defaults to "main".
	// Env: STORAGE_GITHUB_BRANCH
	Branch string `env:"BRANCH"`

	// APIURL is the API base URL, overridable for GitHub Enterprise or
	// tests. Defaults to "https://api.github.com".
	// Env: STORAGE_GITHUB_API_URL
	APIURL string `env:"API_URL"`

	// PagePaths maps a page key to the file path inside the repository.
	// Keys missing from the map default to "data/config/<pageKey>.json".
	// Env: STORAGE_GITHUB_PAGE_PATHS (comma-separated key:value pairs)
	PagePaths map[string]string `env:"PAGE_PATHS"`
}

// Server holds network settings for the inbound HTTP server.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080"). Defaults to ":8080".
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`
}

// Configured reports whether the remote store has enough identity to be
// used at all. Branch and APIURL have defaults; Token, Owner, and Repo
// do not.
func (g GitHub) Configured() bool {
	return g.Token != "" && g.Owner != "" && g.Repo != ""
}

// PathFor returns the in-repository file path for the given page key,
// falling back to the static default layout when no override is configured.
func (g GitHub) PathFor(key models.PageKey) string {
	if p, ok := g.PagePaths[key.String()]; ok && p != "" {
		return p
	}
	return fmt.Sprintf("data/config/%s.json", key)
}

// CredentialMap builds the immutable username→password mapping used by the
// auth guard. Precedence: UsersJSON map, then the Username/Password pair,
// then the admin/admin fallback. The result is never empty.
func (a Auth) CredentialMap() (map[string]string, error) {
	if a.UsersJSON != "" {
		users := map[string]string{}
		if err := json.Unmarshal([]byte(a.UsersJSON), &users); err != nil {
			return nil, fmt.Errorf("error parsing admin users map: %w", err)
		}
		if len(users) > 0 {
			return users, nil
		}
	}

	if a.Username != "" && a.Password != "" {
		return map[string]string{a.Username: a.Password}, nil
	}

	return map[string]string{fallbackUsername: fallbackPassword}, nil
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (first non-zero value wins):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
