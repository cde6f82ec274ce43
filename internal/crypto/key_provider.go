// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Timur Bessonov

package crypto

import (
	"encoding/hex"
	"fmt"
	"os"
	"sync"

	"golang.org/x/crypto/argon2"
)

// StaticKeyProvider returns a fixed key supplied at construction time.
// Intended for tests and for deployments where key material is injected by
// an external secret manager.
type StaticKeyProvider struct {
	key []byte
}

// NewStaticKeyProvider constructs a [StaticKeyProvider]. The key must be
// 32 bytes.
func NewStaticKeyProvider(key []byte) (*StaticKeyProvider, error) {
	if len(key) != 32 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidKeySize, len(key))
	}
	return &StaticKeyProvider{key: key}, nil
}

// CurrentKey implements [KeyProvider].
func (p *StaticKeyProvider) CurrentKey() ([]byte, error) {
	return p.key, nil
}

// EnvKeyProvider reads a hex-encoded 32-byte key from an environment
// variable on every call, so the process picks up a replaced value without
// restart.
type EnvKeyProvider struct {
	envVar string
}

// NewEnvKeyProvider constructs an [EnvKeyProvider] reading from envVar.
func NewEnvKeyProvider(envVar string) *EnvKeyProvider {
	return &EnvKeyProvider{envVar: envVar}
}

// CurrentKey implements [KeyProvider]. It fails with [ErrKeyNotConfigured]
// when the variable is unset and with [ErrInvalidKeySize] when the decoded
// value is not 32 bytes.
func (p *EnvKeyProvider) CurrentKey() ([]byte, error) {
	encoded := os.Getenv(p.envVar)
	if encoded == "" {
		return nil, fmt.Errorf("%w: environment variable %s is not set", ErrKeyNotConfigured, p.envVar)
	}

	key, err := hex.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("%w: %s holds invalid hex: %v", ErrKeyNotConfigured, p.envVar, err)
	}
	if len(key) != 32 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidKeySize, len(key))
	}

	return key, nil
}

// PassphraseKeyProvider derives a 256-bit key from a passphrase and salt
// using Argon2id. Derivation is expensive and deterministic, so the result
// is computed once and cached for the provider's lifetime.
type PassphraseKeyProvider struct {
	passphrase string
	salt       []byte

	// Argon2id tuning parameters, per the OWASP recommendation:
	// 1 iteration, 64 MiB memory, 4 threads, 32-byte key.
	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8
	argonKeyLen  uint32

	once sync.Once
	key  []byte
}

// NewPassphraseKeyProvider constructs a [PassphraseKeyProvider]. The salt is
// not a secret but must be stable across restarts, otherwise previously
// written envelopes become unreadable.
func NewPassphraseKeyProvider(passphrase string, salt []byte) (*PassphraseKeyProvider, error) {
	if passphrase == "" {
		return nil, fmt.Errorf("%w: empty passphrase", ErrKeyNotConfigured)
	}
	if len(salt) == 0 {
		return nil, fmt.Errorf("%w: empty salt", ErrKeyNotConfigured)
	}

	return &PassphraseKeyProvider{
		passphrase:   passphrase,
		salt:         salt,
		argonTime:    1,
		argonMemory:  64 * 1024, // 64 MiB
		argonThreads: 4,
		argonKeyLen:  32, // 256 bits
	}, nil
}

// CurrentKey implements [KeyProvider].
func (p *PassphraseKeyProvider) CurrentKey() ([]byte, error) {
	p.once.Do(func() {
		p.key = argon2.IDKey(
			[]byte(p.passphrase),
			p.salt,
			p.argonTime,
			p.argonMemory,
			p.argonThreads,
			p.argonKeyLen,
		)
	})

	return p.key, nil
}
