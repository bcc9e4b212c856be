// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-cipher-chat/internal/logger"
	"github.com/MKhiriev/go-cipher-chat/internal/store"
	"github.com/MKhiriev/go-cipher-chat/models"
)

// ErrInvalidSettings is returned by [Session.UpdateSettings] for a
// non-positive interval or a blank channel.
var ErrInvalidSettings = errors.New("invalid settings")

// Session owns the credential vault and the settings cache of one client
// process. Settings changes are written through to the repository when one
// is configured; otherwise they are kept in memory only.
type Session struct {
	vault *CredentialVault
	repo  store.SettingsRepository

	mu       sync.RWMutex
	settings models.Settings
	defaults models.Settings

	logger *logger.Logger
}

// New creates a Session whose settings start from defaults overlaid with
// whatever repo has stored. A nil repo is allowed. A load failure is logged
// and leaves the defaults in place.
func New(ctx context.Context, repo store.SettingsRepository, defaults models.Settings, log *logger.Logger) *Session {
	s := &Session{
		vault:    NewCredentialVault(),
		repo:     repo,
		settings: defaults,
		defaults: defaults,
		logger:   log,
	}

	if repo != nil {
		loaded, err := repo.LoadSettings(ctx, defaults)
		if err != nil {
			log.Err(err).Str("func", "session.New").Msg("error loading settings, using defaults")
		} else {
			s.settings = loaded
		}
	}

	return s
}

// Vault returns the credential vault of the session.
func (s *Session) Vault() *CredentialVault {
	return s.vault
}

// Settings returns a snapshot of the current settings.
func (s *Session) Settings() models.Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

// Channel returns the active channel.
func (s *Session) Channel() string {
	return s.Settings().Channel
}

// PollInterval returns the configured polling interval.
func (s *Session) PollInterval() time.Duration {
	return s.Settings().MessageInterval
}

// RememberedName returns the name to prefill the name input with.
func (s *Session) RememberedName() string {
	return s.Settings().RememberedName
}

// RememberedPassword returns the password to prefill the password input
// with. This is a convenience cache, unrelated to the vault.
func (s *Session) RememberedPassword() string {
	return s.Settings().RememberedPassword
}

// UpdateSettings changes the polling interval and the active channel. The
// channel is trimmed.
func (s *Session) UpdateSettings(ctx context.Context, interval time.Duration, channel string) error {
	channel = strings.TrimSpace(channel)
	if interval <= 0 || channel == "" {
		return ErrInvalidSettings
	}

	return s.update(ctx, func(st *models.Settings) {
		st.MessageInterval = interval
		st.Channel = channel
	})
}

// Remember stores the name and password last used for a successful send.
func (s *Session) Remember(ctx context.Context, name, password string) error {
	return s.update(ctx, func(st *models.Settings) {
		st.RememberedName = name
		st.RememberedPassword = password
	})
}

// Reset forgets every vault entry and restores the default settings.
func (s *Session) Reset(ctx context.Context) error {
	s.vault.Reset()
	return s.update(ctx, func(st *models.Settings) {
		*st = s.defaults
	})
}

func (s *Session) update(ctx context.Context, mutate func(*models.Settings)) error {
	s.mu.Lock()
	mutate(&s.settings)
	snapshot := s.settings
	s.mu.Unlock()

	if s.repo == nil {
		return nil
	}

	if err := s.repo.SaveSettings(ctx, snapshot); err != nil {
		s.logger.Err(err).Str("func", "*Session.update").Msg("error saving settings")
		return err
	}
	return nil
}
