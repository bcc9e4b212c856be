// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package session holds the per-process client state: the in-memory
// credential vault and the cached user settings. A Session is created by the
// caller and handed to the sync engine and the auth negotiator, so no package
// keeps global mutable state.
package session

import "sync"

// CredentialVault keeps the channel passwords the client believes correct.
// Entries live only in memory and vanish with the process.
type CredentialVault struct {
	mu        sync.RWMutex
	passwords map[string]string
}

// NewCredentialVault returns an empty vault.
func NewCredentialVault() *CredentialVault {
	return &CredentialVault{passwords: make(map[string]string)}
}

// SetPassword stores password for channel, replacing any previous value.
func (v *CredentialVault) SetPassword(channel, password string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.passwords[channel] = password
}

// GetPassword returns the stored password for channel.
func (v *CredentialVault) GetPassword(channel string) (string, bool) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	password, ok := v.passwords[channel]
	return password, ok
}

// Reset forgets every stored password.
func (v *CredentialVault) Reset() {
	v.mu.Lock()
	defer v.mu.Unlock()
	clear(v.passwords)
}
