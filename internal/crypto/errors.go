// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

var (
	// ErrEncryption is returned when a message cannot be sealed.
	ErrEncryption = errors.New("encryption failed")
	// ErrDecryption is returned for any envelope that cannot be opened.
	ErrDecryption = errors.New("decryption failed")
)
