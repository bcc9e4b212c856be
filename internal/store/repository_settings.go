// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/MKhiriev/go-cipher-chat/internal/logger"
	"github.com/MKhiriev/go-cipher-chat/models"
)

// settingsRepository stores client settings as key/value rows in sqlite.
type settingsRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewSettingsRepository constructs a SQL-backed [SettingsRepository].
func NewSettingsRepository(db *DB, logger *logger.Logger) SettingsRepository {
	return &settingsRepository{
		db:     db,
		logger: logger,
	}
}

// LoadSettings implements [SettingsRepository].
func (r *settingsRepository) LoadSettings(ctx context.Context, base models.Settings) (models.Settings, error) {
	settings := base

	query, args, err := buildLoadSettingsQuery(r.db.builder())
	if err != nil {
		return settings, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Err(err).Str("func", "*settingsRepository.LoadSettings").Msg("error executing query")
		return settings, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var key, value string
		if err = rows.Scan(&key, &value); err != nil {
			return settings, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		applySetting(&settings, key, value)
	}
	if err = rows.Err(); err != nil {
		return settings, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return settings, nil
}

// SaveSettings implements [SettingsRepository].
func (r *settingsRepository) SaveSettings(ctx context.Context, s models.Settings) error {
	query, args, err := buildSaveSettingsQuery(r.db.builder(), map[string]string{
		settingMessageInterval:    strconv.FormatInt(s.MessageInterval.Milliseconds(), 10),
		settingChannel:            s.Channel,
		settingRememberedName:     s.RememberedName,
		settingRememberedPassword: s.RememberedPassword,
	})
	if err != nil {
		return err
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		r.logger.Err(err).Str("func", "*settingsRepository.SaveSettings").Msg("error saving settings")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// applySetting copies one stored value into s. Unknown keys and unparsable
// or empty values keep the base value.
func applySetting(s *models.Settings, key, value string) {
	switch key {
	case settingMessageInterval:
		if ms, err := strconv.ParseInt(value, 10, 64); err == nil && ms > 0 {
			s.MessageInterval = time.Duration(ms) * time.Millisecond
		}
	case settingChannel:
		if value != "" {
			s.Channel = value
		}
	case settingRememberedName:
		s.RememberedName = value
	case settingRememberedPassword:
		s.RememberedPassword = value
	}
}
