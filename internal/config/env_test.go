package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseEnv_PopulatesNestedFields verifies that prefixed environment
// variables land in the right nested struct fields.
func TestParseEnv_PopulatesNestedFields(t *testing.T) {
	t.Setenv("STORAGE_DB_DATABASE_URI", "/tmp/env.db")
	t.Setenv("GATEWAY_BASE_URL", "https://get.dgc.example")
	t.Setenv("GATEWAY_REQUEST_TIMEOUT", "30s")
	t.Setenv("SYNC_INTERVAL", "60s")
	t.Setenv("APP_HOME_COUNTRY", "IT")
	t.Setenv("APP_REQUIRE_FIRST_SYNC", "true")

	cfg := &Config{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "/tmp/env.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "https://get.dgc.example", cfg.Gateway.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.Gateway.RequestTimeout)
	assert.Equal(t, 60*time.Second, cfg.Sync.Interval)
	assert.Equal(t, "IT", cfg.App.HomeCountry)
	assert.True(t, cfg.App.RequireFirstSync)
}

// TestParseEnv_InvalidDuration verifies that an unparsable duration value is
// reported as an error.
func TestParseEnv_InvalidDuration(t *testing.T) {
	t.Setenv("GATEWAY_REQUEST_TIMEOUT", "not-a-duration")

	cfg := &Config{}
	require.Error(t, parseEnv(cfg))
}

// TestParseEnv_EmptyEnvironment verifies that parsing with no relevant
// variables set leaves the config at its zero value.
func TestParseEnv_EmptyEnvironment(t *testing.T) {
	cfg := &Config{}
	require.NoError(t, parseEnv(cfg))
	assert.Equal(t, &Config{}, cfg)
}
