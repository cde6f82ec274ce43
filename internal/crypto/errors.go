// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Timur Bessonov

package crypto

import "errors"

var (
	// ErrAuthenticationFailed is returned by Decrypt when the authentication
	// tag does not verify: the key is wrong or nonce/ciphertext/tag were
	// modified. The record must be treated as unreadable; retrying cannot
	// succeed and no partial plaintext is ever returned.
	ErrAuthenticationFailed = errors.New("ciphertext authentication failed")

	// ErrMalformedEnvelope is returned when a value carries the envelope
	// prefix but cannot be parsed back into nonce and ciphertext.
	ErrMalformedEnvelope = errors.New("malformed cipher envelope")

	// ErrInvalidKeySize is returned when key material is not 32 bytes
	// (AES-256).
	ErrInvalidKeySize = errors.New("encryption key must be 32 bytes")

	// ErrKeyNotConfigured is returned by key providers that cannot produce
	// key material from their configured source.
	ErrKeyNotConfigured = errors.New("encryption key is not configured")
)
