// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Timur Bessonov

package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when a merged
// configuration violates an application invariant.
var (
	// ErrInvalidStorageConfigs indicates invalid storage settings (for
	// example, an unknown engine name or a missing DSN for PostgreSQL).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, an unknown key source or legacy plaintext policy).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings
	// (for example, a negative projection interval).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
