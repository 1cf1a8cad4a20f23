package config

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDuration_UnmarshalJSON_String verifies parsing of duration strings.
func TestDuration_UnmarshalJSON_String(t *testing.T) {
	var d Duration
	require.NoError(t, json.Unmarshal([]byte(`"1h30m"`), &d))
	assert.Equal(t, 90*time.Minute, time.Duration(d))
}

// TestDuration_UnmarshalJSON_Number verifies parsing of raw nanosecond
// numbers.
func TestDuration_UnmarshalJSON_Number(t *testing.T) {
	var d Duration
	require.NoError(t, json.Unmarshal([]byte(`1000000000`), &d))
	assert.Equal(t, time.Second, time.Duration(d))
}

// TestDuration_UnmarshalJSON_Invalid verifies that garbage input errors out.
func TestDuration_UnmarshalJSON_Invalid(t *testing.T) {
	var d Duration
	require.Error(t, json.Unmarshal([]byte(`"later"`), &d))
}

// TestDuration_MarshalRoundTrip verifies that a marshalled duration
// unmarshals back to the same value.
func TestDuration_MarshalRoundTrip(t *testing.T) {
	in := Duration(45 * time.Second)
	data, err := json.Marshal(in)
	require.NoError(t, err)

	var out Duration
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, in, out)
}

// TestParseJSON_FullFile verifies that every section of the JSON file is
// mapped onto the config struct.
func TestParseJSON_FullFile(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"app": map[string]any{
			"home_country":       "IT",
			"settings_path":      "/etc/verifier/settings.json",
			"require_first_sync": true,
		},
		"storage": map[string]any{
			"db": map[string]any{"dsn": "/var/lib/verifier/drl.db"},
		},
		"gateway": map[string]any{
			"base_url":        "https://get.dgc.example",
			"request_timeout": "30s",
		},
		"sync": map[string]any{
			"interval":                 "60s",
			"staleness_window":         "24h",
			"automatic_max_size_bytes": 5242880,
		},
	})

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "IT", cfg.App.HomeCountry)
	assert.Equal(t, "/etc/verifier/settings.json", cfg.App.SettingsPath)
	assert.True(t, cfg.App.RequireFirstSync)
	assert.Equal(t, "/var/lib/verifier/drl.db", cfg.Storage.DB.DSN)
	assert.Equal(t, 30*time.Second, cfg.Gateway.RequestTimeout)
	assert.Equal(t, 24*time.Hour, cfg.Sync.StalenessWindow)
	assert.Equal(t, int64(5242880), cfg.Sync.AutomaticMaxSizeBytes)
}

// TestParseJSON_MissingFile verifies the error path for unreadable files.
func TestParseJSON_MissingFile(t *testing.T) {
	_, err := parseJSON("/no/such/file.json")
	require.Error(t, err)
}
