// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"bytes"
	"encoding/base64"
	"errors"
	"strings"
	"testing"
	"testing/iotest"
)

func TestDeriveKey_DeterministicForSameInputs(t *testing.T) {
	e := NewEnvelopeCipher().(*envelopeCipher)

	salt := bytes.Repeat([]byte{0xAB}, SaltSize)
	k1 := e.deriveKey("correct horse battery staple", salt)
	k2 := e.deriveKey("correct horse battery staple", salt)

	if len(k1) != KeySize {
		t.Fatalf("key length = %d, want %d", len(k1), KeySize)
	}
	if !bytes.Equal(k1, k2) {
		t.Fatalf("expected identical keys for identical inputs")
	}

	k3 := e.deriveKey("correct horse battery staple", bytes.Repeat([]byte{0xCD}, SaltSize))
	if bytes.Equal(k1, k3) {
		t.Fatalf("expected different keys for different salts")
	}
}

func TestEncryptDecrypt_RoundTrip(t *testing.T) {
	e := NewEnvelopeCipher()

	cases := []struct {
		password  string
		plaintext string
	}{
		{"secret", "hi"},
		{"secret", ""},
		{"пароль", "привет, мир"},
		{"", "empty password still works"},
		{"p", strings.Repeat("long message ", 200)},
	}

	for _, c := range cases {
		env, err := e.Encrypt(c.password, c.plaintext)
		if err != nil {
			t.Fatalf("Encrypt(%q) error: %v", c.password, err)
		}
		got, err := e.Decrypt(c.password, env)
		if err != nil {
			t.Fatalf("Decrypt(%q) error: %v", c.password, err)
		}
		if got != c.plaintext {
			t.Fatalf("round trip mismatch: got %q, want %q", got, c.plaintext)
		}
	}
}

func TestDecrypt_WrongPassword(t *testing.T) {
	e := NewEnvelopeCipher()

	env, err := e.Encrypt("secret", "hi")
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}

	_, err = e.Decrypt("wrong", env)
	if !errors.Is(err, ErrDecryption) {
		t.Fatalf("expected ErrDecryption, got %v", err)
	}
}

func TestDecrypt_AnyFlippedByteFails(t *testing.T) {
	e := NewEnvelopeCipher()

	env, err := e.Encrypt("secret", "tamper me")
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}
	raw, _ := base64.StdEncoding.DecodeString(env)

	for _, i := range []int{0, SaltSize - 1, SaltSize, HeaderSize - 1, HeaderSize, len(raw) - 1} {
		tampered := bytes.Clone(raw)
		tampered[i] ^= 0x01

		got, err := e.Decrypt("secret", base64.StdEncoding.EncodeToString(tampered))
		if !errors.Is(err, ErrDecryption) {
			t.Fatalf("byte %d: expected ErrDecryption, got %q, %v", i, got, err)
		}
	}
}

func TestDecrypt_MalformedInputIsGeneric(t *testing.T) {
	e := NewEnvelopeCipher()

	short := base64.StdEncoding.EncodeToString(make([]byte, HeaderSize-1))
	headerOnly := base64.StdEncoding.EncodeToString(make([]byte, HeaderSize))

	for name, in := range map[string]string{
		"not base64":  "%%%not-base64%%%",
		"short":       short,
		"header only": headerOnly,
		"empty":       "",
	} {
		_, err := e.Decrypt("secret", in)
		if err != ErrDecryption {
			t.Fatalf("%s: expected bare ErrDecryption, got %v", name, err)
		}
	}
}

func TestEncrypt_EnvelopeStructure(t *testing.T) {
	e := NewEnvelopeCipher()

	env1, err := e.Encrypt("secret", "same")
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}
	env2, err := e.Encrypt("secret", "same")
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}

	raw1, err := base64.StdEncoding.DecodeString(env1)
	if err != nil {
		t.Fatalf("envelope is not base64: %v", err)
	}
	raw2, _ := base64.StdEncoding.DecodeString(env2)

	// header + plaintext + 16-byte GCM tag
	if want := HeaderSize + len("same") + 16; len(raw1) != want {
		t.Fatalf("envelope length = %d, want %d", len(raw1), want)
	}
	if bytes.Equal(raw1[:HeaderSize], raw2[:HeaderSize]) {
		t.Fatalf("salt||iv prefix reused across calls")
	}
	if bytes.Equal(raw1[:SaltSize], raw2[:SaltSize]) {
		t.Fatalf("salt reused across calls")
	}
}

func TestEncrypt_RandomFailureWrapsCause(t *testing.T) {
	cause := errors.New("entropy exhausted")
	e := &envelopeCipher{iterations: Iterations, random: iotest.ErrReader(cause)}

	_, err := e.Encrypt("secret", "hi")
	if !errors.Is(err, ErrEncryption) {
		t.Fatalf("expected ErrEncryption, got %v", err)
	}
	if !errors.Is(err, cause) {
		t.Fatalf("expected cause to be wrapped, got %v", err)
	}
}
