// SPDX-License-Identifier: Apache-2.0

package config

import "strings"

// validate checks that the final merged [Config] satisfies all application
// invariants before it is used at startup, applying defaults for optional
// scheduling values.
//
// Returns nil if the configuration is valid, or a sentinel error otherwise.
func (cfg *Config) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Gateway.BaseURL == "" || cfg.Gateway.RequestTimeout == 0 {
		return ErrInvalidGatewayConfigs
	}

	if cfg.App.HomeCountry == "" {
		cfg.App.HomeCountry = DefaultHomeCountry
	}
	if cfg.Sync.Interval == 0 {
		cfg.Sync.Interval = DefaultSyncInterval
	}
	if cfg.Sync.StalenessWindow == 0 {
		cfg.Sync.StalenessWindow = DefaultStalenessWindow
	}
	if cfg.Sync.AutomaticMaxSizeBytes == 0 {
		cfg.Sync.AutomaticMaxSizeBytes = DefaultAutomaticMaxSizeBytes
	}

	return nil
}
