package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-g gateway base URL
//	-d database DSN (SQLite file path)
//	-s rule catalog settings file path
//	-home-country home country code (ISO 3166-1 alpha-2)
//	-c/-config json file path with configs
//	-request-timeout outbound request timeout (e.g., "30s", "1m")
//	-sync-interval trigger timer period (e.g., "60s")
//	-staleness-window max age of the last fetch before re-sync (e.g., "24h")
//	-automatic-max-size max download size started without confirmation, bytes
//	-require-first-sync refuse scans until a first sync completed
func ParseFlags() *Config {
	var gatewayBaseURL string
	var databaseDSN string
	var settingsPath string
	var homeCountry string
	var jsonConfigPath string
	var requestTimeout time.Duration
	var syncInterval time.Duration
	var stalenessWindow time.Duration
	var automaticMaxSize int64
	var requireFirstSync bool

	flag.StringVar(&gatewayBaseURL, "g", "", "Gateway base URL")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&settingsPath, "s", "", "Rule catalog settings file path")
	flag.StringVar(&homeCountry, "home-country", "", "Home country code")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.DurationVar(&syncInterval, "sync-interval", 0, "Sync trigger period (e.g., 60s)")
	flag.DurationVar(&stalenessWindow, "staleness-window", 0, "Max age of last fetch (e.g., 24h)")
	flag.Int64Var(&automaticMaxSize, "automatic-max-size", 0, "Max automatic download size in bytes")
	flag.BoolVar(&requireFirstSync, "require-first-sync", false, "Refuse scans until first sync completed")

	flag.Parse()

	return &Config{
		App: App{
			HomeCountry:      homeCountry,
			SettingsPath:     settingsPath,
			RequireFirstSync: requireFirstSync,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Gateway: Gateway{
			BaseURL:        gatewayBaseURL,
			RequestTimeout: requestTimeout,
		},
		Sync: Sync{
			Interval:              syncInterval,
			StalenessWindow:       stalenessWindow,
			AutomaticMaxSizeBytes: automaticMaxSize,
		},
		JSONFilePath: jsonConfigPath,
	}
}
