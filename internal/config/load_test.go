package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	cfgPath := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(content), 0644))
	return cfgPath
}

func TestLoad_Valid(t *testing.T) {
	cfgPath := writeConfig(t, `
[server]
port = 9090

[metadata]
provider = "omdb"
api_key = "abc"
cache_ttl = "2h"
requests_per_sec = 5
`)
	cfg, err := Load(cfgPath)
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, ProviderOMDB, cfg.Metadata.Provider)
	assert.Equal(t, "abc", cfg.Metadata.APIKey)
	assert.Equal(t, 2*time.Hour, cfg.Metadata.CacheTTL)
	assert.InDelta(t, 5.0, cfg.Metadata.RequestsPerSec, 0.001)
}

func TestLoad_AppliesDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, ""))
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Server.LogLevel)
	assert.Equal(t, "./data/watchlist.db", cfg.Database.Path)
	assert.Equal(t, ProviderTMDB, cfg.Metadata.Provider)
	assert.Equal(t, 24*time.Hour, cfg.Metadata.CacheTTL)
	assert.Equal(t, "temp", cfg.Posters.CacheDir)
}

func TestLoad_MissingEnvVar(t *testing.T) {
	cfgPath := writeConfig(t, `
[metadata]
api_key = "${WATCHLIST_TEST_MISSING_KEY}"
`)
	_, err := Load(cfgPath)
	require.Error(t, err)

	var cerr *ConfigError
	require.True(t, errors.As(err, &cerr))
	assert.Equal(t, []string{"WATCHLIST_TEST_MISSING_KEY"}, cerr.Missing)
}

func TestLoad_ValidationError(t *testing.T) {
	cfgPath := writeConfig(t, `
[server]
port = 99999
`)
	_, err := Load(cfgPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "server.port")
}

func TestLoad_EnvVarDefault(t *testing.T) {
	t.Setenv("WATCHLIST_TEST_KEY", "")
	cfg, err := Load(writeConfig(t, `
[metadata]
api_key = "${WATCHLIST_TEST_KEY:-fallback}"
`))
	require.NoError(t, err)
	assert.Equal(t, "fallback", cfg.Metadata.APIKey)
}

func TestLoadWithoutValidation(t *testing.T) {
	cfg, err := LoadWithoutValidation(writeConfig(t, `
[server]
port = 99999

[media]
local_path = "/nonexistent/media"
`))
	require.NoError(t, err)
	assert.Equal(t, 99999, cfg.Server.Port)
	assert.NotEmpty(t, cfg.Validate())
}

func TestLoad_FileMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config")
}

func TestLoad_ParseError(t *testing.T) {
	_, err := Load(writeConfig(t, "[server\nport ="))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config")
}
