// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Timur Bessonov

package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/key_provider_mock.go -package=mock

// CipherProvider is the stateless encrypt/decrypt primitive used by the
// encryption interceptor. Implementations must provide authenticated
// encryption: any mutation of nonce, ciphertext or tag makes Decrypt fail
// with [ErrAuthenticationFailed] instead of returning corrupted plaintext.
//
// The key is supplied by the caller on every call; a provider holds no
// long-lived secret state and is safe for unbounded parallel use.
type CipherProvider interface {
	// Encrypt seals plaintext under key with a freshly generated random
	// nonce. Nonces are never reused under the same key. The empty string is
	// a valid plaintext and round-trips exactly.
	Encrypt(plaintext string, key []byte) (Envelope, error)

	// Decrypt opens env under key. It fails with [ErrAuthenticationFailed]
	// when the key is wrong or the envelope was tampered with.
	Decrypt(env Envelope, key []byte) (string, error)
}

// KeyProvider supplies the symmetric key material used on the store/load
// boundary. Key generation, rotation and storage live behind this contract;
// the interception pipeline never persists or generates long-term keys.
type KeyProvider interface {
	// CurrentKey returns the key to use for encrypt and decrypt operations.
	CurrentKey() ([]byte, error)
}
