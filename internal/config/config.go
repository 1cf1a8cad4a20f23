// SPDX-License-Identifier: Apache-2.0

package config

import (
	"time"
)

// Config is the top-level configuration container for the verifier. It
// aggregates all sub-configurations and is populated by merging values from
// environment variables, command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type Config struct {
	// App holds application-level settings such as the home country code and
	// scan gating policy.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the on-device persistence backend.
	Storage Storage `envPrefix:"STORAGE_"`

	// Gateway holds network address and timeout settings for the outbound
	// revocation-list transport.
	Gateway Gateway `envPrefix:"GATEWAY_"`

	// Sync holds timer and staleness settings for the background
	// synchronization job.
	Sync Sync `envPrefix:"SYNC_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// HomeCountry is the ISO 3166-1 alpha-2 code of the country whose
	// acceptance rules apply to domestically issued certificates ("IT").
	// Env: APP_HOME_COUNTRY
	HomeCountry string `env:"HOME_COUNTRY"`

	// SettingsPath is the path to the locally provisioned rule catalog
	// (the JSON settings bundle delivered by the settings bootstrap, which
	// is an external collaborator).
	// Env: APP_SETTINGS_PATH
	SettingsPath string `env:"SETTINGS_PATH"`

	// RequireFirstSync refuses scans until a first revocation-list
	// synchronization has completed.
	// Env: APP_REQUIRE_FIRST_SYNC
	RequireFirstSync bool `env:"REQUIRE_FIRST_SYNC"`

	// Version is the semantic version string of the running application.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups the configuration for the persistence backend.
type Storage struct {
	// DB holds the local database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the on-device SQLite database.
type DB struct {
	// DSN is the SQLite file path used to open the database connection
	// (e.g. "/var/lib/verifier/drl.db").
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Gateway holds network and timeout settings for the outbound transport
// layer.
type Gateway struct {
	// BaseURL is the base URL of the certificate gateway serving the
	// revocation-list status and chunk endpoints.
	// Env: GATEWAY_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// RequestTimeout is the maximum duration allowed for a single outbound
	// request before the client cancels it (e.g. "30s", "1m").
	// Env: GATEWAY_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Sync holds scheduling settings for the revocation-list synchronization job.
type Sync struct {
	// Interval is the period of the trigger timer (default 60s). Each tick
	// is a no-op unless the last successful fetch is stale.
	// Env: SYNC_INTERVAL
	Interval time.Duration `env:"INTERVAL"`

	// StalenessWindow is how old the last successful fetch may get before a
	// tick starts a new synchronization attempt (default 24h).
	// Env: SYNC_STALENESS_WINDOW
	StalenessWindow time.Duration `env:"STALENESS_WINDOW"`

	// AutomaticMaxSizeBytes is the biggest download started without explicit
	// user confirmation (default 5 MB).
	// Env: SYNC_AUTOMATIC_MAX_SIZE_BYTES
	AutomaticMaxSizeBytes int64 `env:"AUTOMATIC_MAX_SIZE_BYTES"`
}

// Defaults applied by validate for optional scheduling values.
const (
	DefaultSyncInterval          = 60 * time.Second
	DefaultStalenessWindow       = 24 * time.Hour
	DefaultAutomaticMaxSizeBytes = int64(5 * 1024 * 1024)
	DefaultHomeCountry           = "IT"
)

// GetConfig loads, merges, and validates the verifier configuration from all
// available sources in the following priority order (last source wins for
// non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *Config or an error if any source fails to load
// or the final config fails validation.
func GetConfig() (*Config, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
