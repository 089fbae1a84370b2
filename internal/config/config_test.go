package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	path := writeConfig(t, "auth:\n  secret: test-secret\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:3000", cfg.Listen)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "./data/myshowlist.db", cfg.Database.Path)
	assert.Equal(t, "test-secret", cfg.Auth.Secret)
	assert.Equal(t, 1440, cfg.Auth.TokenExpiry)
}

func TestLoadOverrides(t *testing.T) {
	path := writeConfig(t, `
listen: 127.0.0.1:8080
log_level: debug
database:
  path: /tmp/test.db
auth:
  secret: test-secret
  token_expiry: 30
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:8080", cfg.Listen)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "/tmp/test.db", cfg.Database.Path)
	assert.Equal(t, 30, cfg.Auth.TokenExpiry)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("MYSHOWLIST_LISTEN", "127.0.0.1:9999")

	path := writeConfig(t, "auth:\n  secret: test-secret\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9999", cfg.Listen)
}

func TestLoadRequiresSecret(t *testing.T) {
	path := writeConfig(t, "listen: 127.0.0.1:8080\n")

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadRejectsNonPositiveExpiry(t *testing.T) {
	path := writeConfig(t, "auth:\n  secret: test-secret\n  token_expiry: 0\n")

	_, err := Load(path)
	assert.Error(t, err)
}
