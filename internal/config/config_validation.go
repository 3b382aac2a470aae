// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Alexei Velichko

package config

import "time"

// Fallback values applied by applyDefaults when no source provides one.
const (
	DefaultHTTPAddress     = "localhost:8080"
	DefaultSessionIssuer   = "notekeeper"
	DefaultSessionDuration = 24 * time.Hour
	DefaultDBDriver        = "pgx"
)

// applyDefaults fills in fallback values for fields that no configuration
// source provided. Secrets are deliberately excluded: the session signing
// key has no default and must always come from the operator.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = DefaultHTTPAddress
	}
	if cfg.App.SessionIssuer == "" {
		cfg.App.SessionIssuer = DefaultSessionIssuer
	}
	if cfg.App.SessionDuration == 0 {
		cfg.App.SessionDuration = DefaultSessionDuration
	}
	if cfg.Storage.DB.Driver == "" {
		cfg.Storage.DB.Driver = DefaultDBDriver
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a sentinel error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.SessionSignKey == "" {
		return ErrInvalidAppConfigs
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Storage.DB.Driver != "pgx" && cfg.Storage.DB.Driver != "sqlite3" {
		return ErrInvalidStorageConfigs
	}

	return nil
}
