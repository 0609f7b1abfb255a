// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Organize My Mind Authors

package config

import "fmt"

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// A missing token signing key or database DSN makes the process unable to
// serve any traffic, so both are treated as fatal configuration errors.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" {
		return ErrMissingTokenSignKey
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrMissingDatabaseDSN
	}

	switch cfg.Storage.DB.Engine {
	case EnginePostgres, EngineSQLite:
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedDBEngine, cfg.Storage.DB.Engine)
	}

	return nil
}
