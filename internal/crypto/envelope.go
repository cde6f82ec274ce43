// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Timur Bessonov

package crypto

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// EnvelopePrefix marks a stored field value as a cipher envelope. Version v1
// is AES-256-GCM with a 12-byte nonce. Keeping the marker in-band lets
// encrypted values coexist with legacy plaintext in the same column during
// migration.
const EnvelopePrefix = "enc:v1:"

// AlgorithmAES256GCM identifies the only algorithm in the v1 format.
const AlgorithmAES256GCM = "aes256gcm"

const (
	nonceSize = 12
	tagSize   = 16
)

// Envelope is the self-describing structure stored in place of plaintext for
// an encrypted field. Ciphertext carries the GCM authentication tag as its
// final 16 bytes, so an envelope is opaque and fails closed as a unit.
type Envelope struct {
	Algorithm  string
	Nonce      []byte
	Ciphertext []byte
}

// String serialises the envelope into its stored form:
// "enc:v1:" + base64(nonce ‖ ciphertext).
func (e Envelope) String() string {
	blob := make([]byte, 0, len(e.Nonce)+len(e.Ciphertext))
	blob = append(blob, e.Nonce...)
	blob = append(blob, e.Ciphertext...)
	return EnvelopePrefix + base64.StdEncoding.EncodeToString(blob)
}

// IsEnvelope reports whether a stored value is in envelope form. Values
// without the prefix are plaintext as far as the interception pipeline is
// concerned.
func IsEnvelope(value string) bool {
	return strings.HasPrefix(value, EnvelopePrefix)
}

// ParseEnvelope decodes the stored form produced by [Envelope.String].
// It fails with [ErrMalformedEnvelope] when the prefix is missing, the
// base64 payload does not decode, or the payload is too short to contain a
// nonce and an authentication tag.
func ParseEnvelope(value string) (Envelope, error) {
	if !IsEnvelope(value) {
		return Envelope{}, fmt.Errorf("%w: missing %q prefix", ErrMalformedEnvelope, EnvelopePrefix)
	}

	blob, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(value, EnvelopePrefix))
	if err != nil {
		return Envelope{}, fmt.Errorf("%w: %v", ErrMalformedEnvelope, err)
	}
	if len(blob) < nonceSize+tagSize {
		return Envelope{}, fmt.Errorf("%w: payload too short (%d bytes)", ErrMalformedEnvelope, len(blob))
	}

	return Envelope{
		Algorithm:  AlgorithmAES256GCM,
		Nonce:      blob[:nonceSize],
		Ciphertext: blob[nonceSize:],
	}, nil
}
