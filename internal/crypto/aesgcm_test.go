package crypto

import (
	"bytes"
	"errors"
	"testing"
)

func testKey(b byte) []byte {
	key := make([]byte, 32)
	for i := range key {
		key[i] = b
	}
	return key
}

func TestEncryptDecrypt_RoundTrip(t *testing.T) {
	p := NewAESGCMProvider()
	key := testKey(0x01)

	plaintexts := []string{
		"",
		"a",
		"hello world",
		"DE89 3704 0044 0532 0130 00",
		"пример юникода",
		"日本語テキスト",
		"emoji 🔐 and\nnewlines\tand tabs",
		string(make([]byte, 4096)),
	}

	for _, plain := range plaintexts {
		env, err := p.Encrypt(plain, key)
		if err != nil {
			t.Fatalf("Encrypt(%q) error: %v", plain, err)
		}

		got, err := p.Decrypt(env, key)
		if err != nil {
			t.Fatalf("Decrypt error: %v", err)
		}
		if got != plain {
			t.Fatalf("round trip: got %q, want %q", got, plain)
		}
	}
}

func TestEncrypt_CiphertextHidesPlaintext(t *testing.T) {
	p := NewAESGCMProvider()
	key := testKey(0x02)

	env, err := p.Encrypt("very secret value", key)
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}

	if bytes.Contains(env.Ciphertext, []byte("very secret value")) {
		t.Fatal("ciphertext contains the plaintext")
	}
}

func TestDecrypt_WrongKey(t *testing.T) {
	p := NewAESGCMProvider()

	env, err := p.Encrypt("secret", testKey(0x03))
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}

	_, err = p.Decrypt(env, testKey(0x04))
	if !errors.Is(err, ErrAuthenticationFailed) {
		t.Fatalf("Decrypt with wrong key: got %v, want ErrAuthenticationFailed", err)
	}
}

// TestDecrypt_TamperDetection flips every single byte of the nonce and the
// ciphertext (which carries the authentication tag as its suffix) and checks
// that decryption always fails closed.
func TestDecrypt_TamperDetection(t *testing.T) {
	p := NewAESGCMProvider()
	key := testKey(0x05)

	env, err := p.Encrypt("tamper me", key)
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}

	for i := range env.Nonce {
		mutated := Envelope{
			Algorithm:  env.Algorithm,
			Nonce:      append([]byte(nil), env.Nonce...),
			Ciphertext: env.Ciphertext,
		}
		mutated.Nonce[i] ^= 0xFF

		if _, err := p.Decrypt(mutated, key); !errors.Is(err, ErrAuthenticationFailed) {
			t.Fatalf("nonce byte %d flipped: got %v, want ErrAuthenticationFailed", i, err)
		}
	}

	for i := range env.Ciphertext {
		mutated := Envelope{
			Algorithm:  env.Algorithm,
			Nonce:      env.Nonce,
			Ciphertext: append([]byte(nil), env.Ciphertext...),
		}
		mutated.Ciphertext[i] ^= 0x01

		if _, err := p.Decrypt(mutated, key); !errors.Is(err, ErrAuthenticationFailed) {
			t.Fatalf("ciphertext byte %d flipped: got %v, want ErrAuthenticationFailed", i, err)
		}
	}
}

// TestEncrypt_NonceUniqueness encrypts the same plaintext 10000 times under
// one key and requires that no nonce repeats.
func TestEncrypt_NonceUniqueness(t *testing.T) {
	p := NewAESGCMProvider()
	key := testKey(0x06)

	const calls = 10000
	seen := make(map[string]struct{}, calls)

	for i := 0; i < calls; i++ {
		env, err := p.Encrypt("same plaintext", key)
		if err != nil {
			t.Fatalf("Encrypt error on call %d: %v", i, err)
		}

		nonce := string(env.Nonce)
		if _, dup := seen[nonce]; dup {
			t.Fatalf("nonce repeated after %d calls", i)
		}
		seen[nonce] = struct{}{}
	}
}

func TestEncryptDecrypt_InvalidKeySize(t *testing.T) {
	p := NewAESGCMProvider()

	if _, err := p.Encrypt("x", make([]byte, 16)); !errors.Is(err, ErrInvalidKeySize) {
		t.Fatalf("Encrypt with 16-byte key: got %v, want ErrInvalidKeySize", err)
	}
	if _, err := p.Decrypt(Envelope{}, nil); !errors.Is(err, ErrInvalidKeySize) {
		t.Fatalf("Decrypt with nil key: got %v, want ErrInvalidKeySize", err)
	}
}
