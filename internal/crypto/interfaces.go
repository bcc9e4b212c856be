// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/envelope_cipher_mock.go -package=mock

// EnvelopeCipher encrypts individual chat messages with a password.
//
// An envelope is the base64 encoding of
//
//	salt (16 bytes) || iv (12 bytes) || AES-256-GCM ciphertext with tag
//
// where the key is PBKDF2-HMAC-SHA-256(password, salt, 100000 iterations).
// Salt and iv are fresh for every call, so equal messages encrypted with the
// same password never share a prefix.
type EnvelopeCipher interface {
	// Encrypt seals plaintext with password and returns the envelope string.
	// Failures are reported as [ErrEncryption] wrapping the cause.
	Encrypt(password, plaintext string) (string, error)

	// Decrypt opens an envelope produced by Encrypt. Every failure (bad
	// base64, short input, wrong password, tampered bytes) is reported as the
	// same [ErrDecryption] so callers cannot tell the cases apart.
	Decrypt(password, envelope string) (string, error)
}
