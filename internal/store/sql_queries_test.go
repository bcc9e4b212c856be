// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"

	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-cipher-chat/models"
)

func TestBuildGetMessagesQuery(t *testing.T) {
	tests := []struct {
		name       string
		dialect    string
		checkQuery func(t *testing.T, query string, args []any)
	}{
		{
			name:    "sqlite uses unbounded limit before offset",
			dialect: DialectSQLite,
			checkQuery: func(t *testing.T, query string, args []any) {
				require.Equal(t, "SELECT sent_at, name, message FROM messages WHERE channel = ? ORDER BY id ASC LIMIT -1 OFFSET ?", query)
				require.Equal(t, []any{"private", int64(3)}, args)
			},
		},
		{
			name:    "postgres uses dollar placeholders and plain offset",
			dialect: DialectPostgres,
			checkQuery: func(t *testing.T, query string, args []any) {
				q := strings.ToLower(query)
				require.Contains(t, q, "from messages")
				require.Contains(t, q, "channel = $1")
				require.Contains(t, q, "order by id asc")
				require.Contains(t, q, "offset")
				require.NotContains(t, q, "limit -1")
				require.Equal(t, "private", args[0])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := &DB{dialect: tt.dialect}
			query, args, err := buildGetMessagesQuery(db.builder(), tt.dialect, "private", 3)
			require.NoError(t, err)
			tt.checkQuery(t, query, args)
		})
	}
}

func TestBuildSaveMessageQuery(t *testing.T) {
	db := &DB{dialect: DialectPostgres}
	msg := models.Message{Timestamp: 1700000000, Name: "bob", Message: "ZW52", Channel: "default"}

	query, args, err := buildSaveMessageQuery(db.builder(), msg)
	require.NoError(t, err)

	q := strings.ToLower(query)
	require.Contains(t, q, "insert into messages")
	require.Contains(t, q, "$4")
	require.Equal(t, []any{"default", "bob", "ZW52", int64(1700000000)}, args)
}

func TestBuildSaveSettingsQuery(t *testing.T) {
	query, args, err := buildSaveSettingsQuery(sq.StatementBuilder, map[string]string{
		settingMessageInterval: "1000",
		settingChannel:         "default",
	})
	require.NoError(t, err)

	require.Contains(t, query, "INSERT INTO client_settings")
	require.Contains(t, query, "ON CONFLICT(key) DO UPDATE SET value = excluded.value")
	// every known key is written, missing ones as empty strings
	require.Len(t, args, 8)
	require.Equal(t, []any{
		settingMessageInterval, "1000",
		settingChannel, "default",
		settingRememberedName, "",
		settingRememberedPassword, "",
	}, args)
}
