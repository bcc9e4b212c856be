// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-cipher-chat/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// MessageRepository is the relay's append-only channel log.
type MessageRepository interface {
	// GetMessages returns the messages of channel in insertion order,
	// skipping the first from records.
	GetMessages(ctx context.Context, channel string, from int64) ([]models.Message, error)
	// SaveMessage appends msg to the log of msg.Channel.
	SaveMessage(ctx context.Context, msg models.Message) error
}

// SettingsRepository keeps client preferences between runs.
type SettingsRepository interface {
	// LoadSettings returns base overlaid with the stored values; missing
	// or unparsable values keep the ones from base.
	LoadSettings(ctx context.Context, base models.Settings) (models.Settings, error)
	// SaveSettings replaces all stored values with s.
	SaveSettings(ctx context.Context, s models.Settings) error
}
