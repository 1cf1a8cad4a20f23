package config

import "errors"

// Validation errors returned by [Config.validate] when required configuration
// groups are incomplete or invalid.
var (
	// ErrInvalidGatewayConfigs indicates invalid gateway settings
	// (for example, missing base URL or request timeout).
	ErrInvalidGatewayConfigs = errors.New("invalid gateway configuration")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, empty DSN or unsupported in-memory DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
)
