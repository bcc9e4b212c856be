// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"io"

	"golang.org/x/crypto/pbkdf2"
)

// Envelope layout and key derivation parameters.
const (
	SaltSize   = 16
	IVSize     = 12
	KeySize    = 32 // AES-256
	Iterations = 100_000
	HeaderSize = SaltSize + IVSize
)

// envelopeCipher is the private implementation of [EnvelopeCipher].
type envelopeCipher struct {
	iterations int
	random     io.Reader
}

// NewEnvelopeCipher constructs an [EnvelopeCipher] reading salt and iv from
// the OS CSPRNG.
func NewEnvelopeCipher() EnvelopeCipher {
	return &envelopeCipher{
		iterations: Iterations,
		random:     rand.Reader,
	}
}

// deriveKey stretches password into a 256-bit AES key. The result is
// deterministic for the same password and salt.
func (e *envelopeCipher) deriveKey(password string, salt []byte) []byte {
	return pbkdf2.Key([]byte(password), salt, e.iterations, KeySize, sha256.New)
}

// Encrypt implements [EnvelopeCipher].
func (e *envelopeCipher) Encrypt(password, plaintext string) (string, error) {
	header := make([]byte, HeaderSize, HeaderSize+len(plaintext)+16)
	if _, err := io.ReadFull(e.random, header); err != nil {
		return "", fmt.Errorf("%w: read random: %w", ErrEncryption, err)
	}
	salt, iv := header[:SaltSize], header[SaltSize:]

	gcm, err := newGCM(e.deriveKey(password, salt))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrEncryption, err)
	}

	sealed := gcm.Seal(header, iv, []byte(plaintext), nil)
	return base64.StdEncoding.EncodeToString(sealed), nil
}

// Decrypt implements [EnvelopeCipher].
func (e *envelopeCipher) Decrypt(password, envelope string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(envelope)
	if err != nil || len(raw) < HeaderSize {
		return "", ErrDecryption
	}
	salt, iv, ciphertext := raw[:SaltSize], raw[SaltSize:HeaderSize], raw[HeaderSize:]

	gcm, err := newGCM(e.deriveKey(password, salt))
	if err != nil {
		return "", ErrDecryption
	}

	plaintext, err := gcm.Open(nil, iv, ciphertext, nil)
	if err != nil {
		return "", ErrDecryption
	}

	return string(plaintext), nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create GCM: %w", err)
	}

	return gcm, nil
}
