// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Secrets are mandatory: there are no fallback values for the session
// signing key or the weather API key.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.SecretKey == "" {
		return ErrMissingSecretKey
	}

	switch cfg.App.PasswordStorage {
	case PasswordStoragePlain, PasswordStorageSHA256, PasswordStorageBcrypt:
	default:
		return ErrInvalidPasswordStorage
	}

	if cfg.App.SessionDuration <= 0 {
		return ErrInvalidAppConfigs
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	switch cfg.Storage.DB.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.Weather.APIKey == "" {
		return ErrMissingWeatherAPIKey
	}

	if cfg.Adapter.Weather.BaseURL == "" || cfg.Adapter.Weather.Timeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	return nil
}
