// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Timur Bessonov

package intercept

import (
	"errors"
	"fmt"
)

var (
	// ErrLegacyPlaintext is the cause recorded in a [FieldDecryptionError]
	// when a stored value is not in envelope form and the configured policy
	// is [LegacyReject].
	ErrLegacyPlaintext = errors.New("stored value is legacy plaintext")

	// ErrUnknownLegacyPolicy is returned when configuration names a
	// legacy-plaintext policy other than "passthrough" or "reject".
	ErrUnknownLegacyPolicy = errors.New("unknown legacy plaintext policy")

	// ErrEntityNotPointer is returned when a hook receives anything other
	// than a non-nil pointer to a struct. The hooks transform fields in
	// place, so an addressable entity is required.
	ErrEntityNotPointer = errors.New("entity must be a non-nil pointer to struct")
)

// FieldDecryptionError reports that a single encrypted field could not be
// restored on load. It carries the entity and field context for
// observability and wraps the underlying cause (for example
// [crypto.ErrAuthenticationFailed]), so callers can match it with
// [errors.As] and the cause with [errors.Is].
//
// A decryption failure is never silently coerced into an empty value, and
// retrying it cannot succeed.
type FieldDecryptionError struct {
	EntityType string
	EntityID   string
	Field      string
	Err        error
}

// Error implements the error interface.
func (e *FieldDecryptionError) Error() string {
	return fmt.Sprintf("decrypt field %s.%s (entity %q): %v", e.EntityType, e.Field, e.EntityID, e.Err)
}

// Unwrap returns the underlying cause.
func (e *FieldDecryptionError) Unwrap() error {
	return e.Err
}
