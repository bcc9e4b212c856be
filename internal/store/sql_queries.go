// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-cipher-chat/models"
)

const (
	messagesTable = "messages"
	settingsTable = "client_settings"
)

// Keys of the client_settings table.
const (
	settingMessageInterval    = "message_interval_ms"
	settingChannel            = "channel"
	settingRememberedName     = "remembered_name"
	settingRememberedPassword = "remembered_password"
)

// buildGetMessagesQuery selects the channel log starting at offset from.
// SQLite only accepts OFFSET after a LIMIT, hence the unbounded LIMIT -1.
func buildGetMessagesQuery(b sq.StatementBuilderType, dialect, channel string, from int64) (string, []any, error) {
	q := b.Select("sent_at", "name", "message").
		From(messagesTable).
		Where(sq.Eq{"channel": channel}).
		OrderBy("id ASC")

	if dialect == DialectSQLite {
		q = q.Suffix("LIMIT -1 OFFSET ?", from)
	} else {
		q = q.Offset(uint64(from))
	}

	query, args, err := q.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildSaveMessageQuery(b sq.StatementBuilderType, msg models.Message) (string, []any, error) {
	query, args, err := b.Insert(messagesTable).
		Columns("channel", "name", "message", "sent_at").
		Values(msg.Channel, msg.Name, msg.Message, msg.Timestamp).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildLoadSettingsQuery(b sq.StatementBuilderType) (string, []any, error) {
	query, args, err := b.Select("key", "value").From(settingsTable).ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildSaveSettingsQuery(b sq.StatementBuilderType, values map[string]string) (string, []any, error) {
	q := b.Insert(settingsTable).Columns("key", "value")
	// stable order keeps the statement cacheable and testable
	for _, key := range []string{settingMessageInterval, settingChannel, settingRememberedName, settingRememberedPassword} {
		q = q.Values(key, values[key])
	}

	query, args, err := q.Suffix("ON CONFLICT(key) DO UPDATE SET value = excluded.value").ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
