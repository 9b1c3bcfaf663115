package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrMissingSecretKey indicates that no session signing key was provided.
	ErrMissingSecretKey = errors.New("session secret key is not configured")
	// ErrMissingWeatherAPIKey indicates that no weather API key was provided.
	ErrMissingWeatherAPIKey = errors.New("weather api key is not configured")
	// ErrInvalidPasswordStorage indicates an unknown password storage mode.
	ErrInvalidPasswordStorage = errors.New("invalid password storage mode")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, a non-positive session duration).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidAdapterConfigs indicates invalid weather adapter settings
	// (for example, missing base URL or timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, empty DSN or unsupported driver).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates invalid server settings.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
)
