// SPDX-License-Identifier: Apache-2.0

package config

// applyDefaults fills in any field that every configuration source left
// empty, so that the application starts without mandatory configuration.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = DefaultHTTPAddress
	}

	if cfg.Storage.DB.DSN == "" {
		cfg.Storage.DB.DSN = DefaultDatabaseDSN
	}

	if cfg.App.SessionCookieName == "" {
		cfg.App.SessionCookieName = DefaultSessionCookie
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.App.BcryptCost < 0 {
		return ErrInvalidAppConfigs
	}

	return nil
}
