package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "8000", cfg.Server.Port)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.False(t, cfg.Logging.Development)
	assert.True(t, cfg.RateLimit.Enabled)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowOrigins)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("RATE_LIMIT_ENABLED", "false")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.False(t, cfg.RateLimit.Enabled)
}

func TestLoadYAMLOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte("server:\n  port: \"7777\"\nlogging:\n  level: warn\n")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	t.Setenv("CONFIG_FILE", path)
	t.Setenv("PORT", "9090")

	cfg, err := Load()
	require.NoError(t, err)

	// File overrides env
	assert.Equal(t, "7777", cfg.Server.Port)
	assert.Equal(t, "warn", cfg.Logging.Level)
	// Untouched values keep env/defaults
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
}

func TestLoadMissingConfigFile(t *testing.T) {
	t.Setenv("CONFIG_FILE", "/nonexistent/config.yaml")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadOrDefaultFallsBack(t *testing.T) {
	t.Setenv("CONFIG_FILE", "/nonexistent/config.yaml")

	cfg := LoadOrDefault()
	assert.Equal(t, "8000", cfg.Server.Port)
}
