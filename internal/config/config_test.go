package config

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/oakmount/siteadmin/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── env parsing ───────────────────────────────────────────────────────────────

func TestParseEnv_PopulatesNestedGroups(t *testing.T) {
	t.Setenv("ADMIN_USERNAME", "operator")
	t.Setenv("ADMIN_PASSWORD", "pw")
	t.Setenv("STORAGE_LOCAL_DIR", "/var/lib/siteadmin")
	t.Setenv("STORAGE_GITHUB_TOKEN", "tok")
	t.Setenv("STORAGE_GITHUB_OWNER", "oakmount")
	t.Setenv("STORAGE_GITHUB_REPO", "site-content")
	t.Setenv("STORAGE_GITHUB_BRANCH", "staging")
	t.Setenv("SERVER_ADDRESS", "127.0.0.1:9000")

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "operator", cfg.Auth.Username)
	assert.Equal(t, "pw", cfg.Auth.Password)
	assert.Equal(t, "/var/lib/siteadmin", cfg.Storage.Local.Dir)
	assert.Equal(t, "tok", cfg.Storage.GitHub.Token)
	assert.Equal(t, "oakmount", cfg.Storage.GitHub.Owner)
	assert.Equal(t, "site-content", cfg.Storage.GitHub.Repo)
	assert.Equal(t, "staging", cfg.Storage.GitHub.Branch)
	assert.Equal(t, "127.0.0.1:9000", cfg.Server.HTTPAddress)
}

// ── validation defaults ───────────────────────────────────────────────────────

func TestValidate_InstallsDefaults(t *testing.T) {
	cfg := &StructuredConfig{}
	require.NoError(t, cfg.validate())

	assert.Equal(t, defaultHTTPAddress, cfg.Server.HTTPAddress)
	assert.Equal(t, defaultLocalDir, cfg.Storage.Local.Dir)
	assert.Equal(t, defaultBranch, cfg.Storage.GitHub.Branch)
	assert.Equal(t, defaultAPIURL, cfg.Storage.GitHub.APIURL)
}

func TestValidate_KeepsExplicitValues(t *testing.T) {
	cfg := &StructuredConfig{}
	cfg.Server.HTTPAddress = ":7070"
	cfg.Storage.GitHub.Branch = "release"
	require.NoError(t, cfg.validate())

	assert.Equal(t, ":7070", cfg.Server.HTTPAddress)
	assert.Equal(t, "release", cfg.Storage.GitHub.Branch)
}

func TestValidate_RejectsMalformedUsersJSON(t *testing.T) {
	cfg := &StructuredConfig{}
	cfg.Auth.UsersJSON = `{"alice": }`

	assert.Error(t, cfg.validate())
}

// ── credential map ────────────────────────────────────────────────────────────

func TestCredentialMap_TableTest(t *testing.T) {
	tests := []struct {
		name string
		auth Auth
		want map[string]string
	}{
		{
			name: "users JSON wins over single pair",
			auth: Auth{
				Username:  "solo",
				Password:  "pw",
				UsersJSON: `{"alice":"s3cret","bob":"hunter2"}`,
			},
			want: map[string]string{"alice": "s3cret", "bob": "hunter2"},
		},
		{
			name: "single pair when no map",
			auth: Auth{Username: "solo", Password: "pw"},
			want: map[string]string{"solo": "pw"},
		},
		{
			name: "fallback pair when nothing supplied",
			auth: Auth{},
			want: map[string]string{fallbackUsername: fallbackPassword},
		},
		{
			name: "empty users map falls through to pair",
			auth: Auth{Username: "solo", Password: "pw", UsersJSON: `{}`},
			want: map[string]string{"solo": "pw"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.auth.CredentialMap()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCredentialMap_MalformedJSON(t *testing.T) {
	auth := Auth{UsersJSON: `not-json`}
	_, err := auth.CredentialMap()
	assert.Error(t, err)
}

// ── remote path resolution ────────────────────────────────────────────────────

func TestPathFor_DefaultLayout(t *testing.T) {
	gh := GitHub{}
	assert.Equal(t, "data/config/home.json", gh.PathFor(models.PageHome))
	assert.Equal(t, "data/config/get-started.json", gh.PathFor(models.PageGetStarted))
}

func TestPathFor_Override(t *testing.T) {
	gh := GitHub{PagePaths: map[string]string{"contact": "site/contact-config.json"}}
	assert.Equal(t, "site/contact-config.json", gh.PathFor(models.PageContact))
	// keys without an override keep the default layout
	assert.Equal(t, "data/config/home.json", gh.PathFor(models.PageHome))
}

func TestGitHubConfigured(t *testing.T) {
	assert.False(t, GitHub{}.Configured())
	assert.False(t, GitHub{Token: "t", Owner: "o"}.Configured())
	assert.True(t, GitHub{Token: "t", Owner: "o", Repo: "r"}.Configured())
}

// ── JSON file source ──────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

func TestParseJSON_FullConfig(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"auth": map[string]any{
			"users": map[string]string{"alice": "s3cret"},
		},
		"storage": map[string]any{
			"local": map[string]any{"dir": "/tmp/cfg"},
			"github": map[string]any{
				"token":      "tok",
				"owner":      "oakmount",
				"repo":       "site-content",
				"branch":     "main",
				"page_paths": map[string]string{"home": "content/home.json"},
			},
		},
		"server": map[string]any{"http_address": ":9999"},
	})

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/cfg", cfg.Storage.Local.Dir)
	assert.Equal(t, "tok", cfg.Storage.GitHub.Token)
	assert.Equal(t, "content/home.json", cfg.Storage.GitHub.PagePaths["home"])
	assert.Equal(t, ":9999", cfg.Server.HTTPAddress)
	assert.JSONEq(t, `{"alice":"s3cret"}`, cfg.Auth.UsersJSON)
}

func TestParseJSON_MissingFile(t *testing.T) {
	_, err := parseJSON("/nonexistent/config.json")
	assert.Error(t, err)
}

// ── builder ───────────────────────────────────────────────────────────────────

func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	// validation defaults are applied even with no sources
	assert.Equal(t, defaultHTTPAddress, cfg.Server.HTTPAddress)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestBuild_FirstNonZeroValueWins(t *testing.T) {
	b := newConfigBuilder()
	envCfg := &StructuredConfig{}
	envCfg.Storage.Local.Dir = "/from/env"
	jsonCfg := &StructuredConfig{}
	jsonCfg.Storage.Local.Dir = "/from/json"
	jsonCfg.Server.HTTPAddress = ":5000"
	b.configs = append(b.configs, envCfg, jsonCfg)

	cfg, err := b.build()
	require.NoError(t, err)

	// mergo.Merge keeps the value already present in the destination
	assert.Equal(t, "/from/env", cfg.Storage.Local.Dir)
	assert.Equal(t, ":5000", cfg.Server.HTTPAddress)
}

func TestWithJSON_ReadsPathFromEarlierSource(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"server": map[string]any{"http_address": ":4242"},
	})

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	cfg, err := b.withJSON().build()
	require.NoError(t, err)

	assert.Equal(t, ":4242", cfg.Server.HTTPAddress)
}
