package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allVars = []string{
	"PORT", "HOST", "ENVIRONMENT", "NEXUS_URL",
	"LOG_LEVEL", "LOG_DEV",
	"RATE_LIMIT_RPS", "RATE_LIMIT_BURST", "RATE_LIMIT_ENABLED", "RATE_LIMIT_SCOPE",
	"SEED_FILE",
}

// clearEnv unsets every variable the config reads and restores them after the test
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range allVars {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()

	// Server config
	assert.Equal(t, "3000", cfg.Server.Port)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, "0.0.0.0:3000", cfg.Server.Addr())

	// App config
	assert.Equal(t, "development", cfg.App.Environment)
	assert.Equal(t, "http://localhost:8081", cfg.App.NexusURL)
	assert.Equal(t, "1.0.0", cfg.App.Version)
	assert.False(t, cfg.App.IsProduction())

	// Logging config
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.False(t, cfg.Logging.Development)

	// Rate limit config
	assert.Equal(t, 100, cfg.RateLimit.RequestsPerSecond)
	assert.Equal(t, 200, cfg.RateLimit.Burst)
	assert.False(t, cfg.RateLimit.Enabled)
	assert.Equal(t, RateLimitScopeClient, cfg.RateLimit.Scope)

	assert.Empty(t, cfg.Seed.File)
}

func TestLoadMatchesDefault(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadFiles()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOrDefault(t *testing.T) {
	clearEnv(t)

	cfg := LoadOrDefault()
	assert.NotNil(t, cfg)
	assert.Equal(t, "3000", cfg.Server.Port)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadWithEnvironmentVariables(t *testing.T) {
	clearEnv(t)

	envVars := map[string]string{
		"PORT":               "9000",
		"HOST":               "127.0.0.1",
		"ENVIRONMENT":        "production",
		"NEXUS_URL":          "https://nexus.internal",
		"LOG_LEVEL":          "debug",
		"LOG_DEV":            "true",
		"RATE_LIMIT_RPS":     "500",
		"RATE_LIMIT_BURST":   "1000",
		"RATE_LIMIT_ENABLED": "true",
		"RATE_LIMIT_SCOPE":   "global",
		"SEED_FILE":          "/etc/nexus/seed.yaml",
	}
	for key, value := range envVars {
		t.Setenv(key, value)
	}

	cfg, err := LoadFiles()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Server.Port)
	assert.Equal(t, "127.0.0.1", cfg.Server.Host)

	assert.Equal(t, "production", cfg.App.Environment)
	assert.True(t, cfg.App.IsProduction())
	assert.Equal(t, "https://nexus.internal", cfg.App.NexusURL)
	assert.Equal(t, Version, cfg.App.Version)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.True(t, cfg.Logging.Development)

	assert.Equal(t, 500, cfg.RateLimit.RequestsPerSecond)
	assert.Equal(t, 1000, cfg.RateLimit.Burst)
	assert.True(t, cfg.RateLimit.Enabled)
	assert.Equal(t, RateLimitScopeGlobal, cfg.RateLimit.Scope)

	assert.Equal(t, "/etc/nexus/seed.yaml", cfg.Seed.File)
}

func TestLoadInvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "non-numeric rps", key: "RATE_LIMIT_RPS", value: "fast"},
		{name: "non-numeric burst", key: "RATE_LIMIT_BURST", value: "lots"},
		{name: "bad bool", key: "LOG_DEV", value: "maybe"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)

			_, err := LoadFiles()
			assert.Error(t, err)
		})
	}
}

func TestLoadDotEnvFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), ".env")
	content := "PORT=4000\nNEXUS_URL=http://nexus.local:8081\nENVIRONMENT=staging\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	// explicit environment wins over the file
	t.Setenv("ENVIRONMENT", "test")

	cfg, err := LoadFiles(path)
	require.NoError(t, err)
	t.Cleanup(func() {
		os.Unsetenv("PORT")
		os.Unsetenv("NEXUS_URL")
	})

	assert.Equal(t, "4000", cfg.Server.Port)
	assert.Equal(t, "http://nexus.local:8081", cfg.App.NexusURL)
	assert.Equal(t, "test", cfg.App.Environment)
}

func TestLoadMissingDotEnvFile(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadFiles(filepath.Join(t.TempDir(), "absent.env"))
	require.NoError(t, err)
	assert.Equal(t, "3000", cfg.Server.Port)
}
