// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Timur Bessonov

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"
	"io"
)

// aesGCMProvider is the default [CipherProvider]: AES-256-GCM with a random
// 12-byte nonce per call. It carries no state at all and is therefore
// trivially safe for concurrent use.
type aesGCMProvider struct{}

// NewAESGCMProvider constructs the AES-256-GCM [CipherProvider].
func NewAESGCMProvider() CipherProvider {
	return &aesGCMProvider{}
}

// Encrypt implements [CipherProvider]. The key must be 32 bytes. A fresh
// 96-bit nonce is read from the OS CSPRNG on every call and must never
// repeat under the same key.
func (p *aesGCMProvider) Encrypt(plaintext string, key []byte) (Envelope, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return Envelope{}, err
	}

	nonce := make([]byte, nonceSize)
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return Envelope{}, fmt.Errorf("generate nonce: %w", err)
	}

	return Envelope{
		Algorithm:  AlgorithmAES256GCM,
		Nonce:      nonce,
		Ciphertext: gcm.Seal(nil, nonce, []byte(plaintext), nil),
	}, nil
}

// Decrypt implements [CipherProvider]. Authentication-tag verification
// failures are reported as [ErrAuthenticationFailed]; no plaintext is
// returned alongside an error.
func (p *aesGCMProvider) Decrypt(env Envelope, key []byte) (string, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return "", err
	}

	if len(env.Nonce) != nonceSize {
		return "", fmt.Errorf("%w: nonce is %d bytes, want %d", ErrMalformedEnvelope, len(env.Nonce), nonceSize)
	}
	if len(env.Ciphertext) < tagSize {
		return "", fmt.Errorf("%w: ciphertext shorter than authentication tag", ErrMalformedEnvelope)
	}

	plaintext, err := gcm.Open(nil, env.Nonce, env.Ciphertext, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrAuthenticationFailed, err)
	}

	return string(plaintext), nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	if len(key) != 32 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidKeySize, len(key))
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}

	return gcm, nil
}
