// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Timur Bessonov

package config

import "fmt"

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup. Empty enum fields are
// valid: they select the documented defaults.
//
// Returns nil if the configuration is valid, or a descriptive error
// otherwise.
func (cfg *StructuredConfig) validate() error {
	switch cfg.Storage.Engine {
	case "", EngineMemory, EngineSQLite:
	case EnginePostgres:
		if cfg.Storage.DB.DSN == "" {
			return fmt.Errorf("%w: postgres engine requires a DSN", ErrInvalidStorageConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown engine %q", ErrInvalidStorageConfigs, cfg.Storage.Engine)
	}

	switch cfg.App.KeySource {
	case "", KeySourceEnv:
	case KeySourcePassphrase:
		if cfg.App.Passphrase == "" {
			return fmt.Errorf("%w: passphrase key source requires a passphrase", ErrInvalidAppConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown key source %q", ErrInvalidAppConfigs, cfg.App.KeySource)
	}

	switch cfg.App.LegacyPlaintext {
	case "", "passthrough", "reject":
	default:
		return fmt.Errorf("%w: unknown legacy plaintext policy %q", ErrInvalidAppConfigs, cfg.App.LegacyPlaintext)
	}

	if cfg.Workers.ProjectionInterval < 0 {
		return fmt.Errorf("%w: projection interval must not be negative", ErrInvalidWorkerConfigs)
	}

	return nil
}
