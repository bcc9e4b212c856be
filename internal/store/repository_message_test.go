// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-cipher-chat/internal/logger"
	"github.com/MKhiriev/go-cipher-chat/models"
)

func newTestMessageRepo(t *testing.T, dialect string, classifier ErrorClassificator) (*sqlMessageRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	l := logger.Nop()
	repo := &sqlMessageRepository{
		db:     &DB{DB: db, dialect: dialect, errorClassificator: classifier, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

var selectMessages = regexp.QuoteMeta("SELECT sent_at, name, message FROM messages WHERE channel = ? ORDER BY id ASC LIMIT -1 OFFSET ?")

// ── GetMessages ───────────────────────────────────────────────────────────────

func TestGetMessages_Success(t *testing.T) {
	repo, mock, db := newTestMessageRepo(t, DialectSQLite, NewSQLiteErrorClassifier())
	defer db.Close()

	rows := sqlmock.NewRows([]string{"sent_at", "name", "message"}).
		AddRow(int64(100), "alice", "env-1").
		AddRow(int64(101), "bob", "env-2")
	mock.ExpectQuery(selectMessages).WithArgs("default", int64(0)).WillReturnRows(rows)

	got, err := repo.GetMessages(context.Background(), "default", 0)
	require.NoError(t, err)
	assert.Equal(t, []models.Message{
		{Timestamp: 100, Name: "alice", Message: "env-1", Channel: "default"},
		{Timestamp: 101, Name: "bob", Message: "env-2", Channel: "default"},
	}, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetMessages_EmptyIsNotNil(t *testing.T) {
	repo, mock, db := newTestMessageRepo(t, DialectSQLite, nil)
	defer db.Close()

	mock.ExpectQuery(selectMessages).WithArgs("default", int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"sent_at", "name", "message"}))

	got, err := repo.GetMessages(context.Background(), "default", 5)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestGetMessages_QueryError(t *testing.T) {
	repo, mock, db := newTestMessageRepo(t, DialectSQLite, nil)
	defer db.Close()

	mock.ExpectQuery(selectMessages).WillReturnError(errors.New("disk I/O error"))

	_, err := repo.GetMessages(context.Background(), "default", 0)
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestGetMessages_ScanError(t *testing.T) {
	repo, mock, db := newTestMessageRepo(t, DialectSQLite, nil)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"sent_at", "name", "message"}).AddRow("not-a-number", "alice", "env")
	mock.ExpectQuery(selectMessages).WillReturnRows(rows)

	_, err := repo.GetMessages(context.Background(), "default", 0)
	assert.ErrorIs(t, err, ErrScanningRows)
}

// ── SaveMessage ───────────────────────────────────────────────────────────────

func TestSaveMessage_Success(t *testing.T) {
	repo, mock, db := newTestMessageRepo(t, DialectSQLite, NewSQLiteErrorClassifier())
	defer db.Close()

	msg := models.Message{Timestamp: 100, Name: "alice", Message: "env", Channel: "default"}
	mock.ExpectExec("INSERT INTO messages").
		WithArgs("default", "alice", "env", int64(100)).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, repo.SaveMessage(context.Background(), msg))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveMessage_RetriesTransientPostgresError(t *testing.T) {
	repo, mock, db := newTestMessageRepo(t, DialectPostgres, NewPostgresErrorClassifier())
	defer db.Close()

	msg := models.Message{Timestamp: 100, Name: "alice", Message: "env", Channel: "default"}
	mock.ExpectExec("INSERT INTO messages").WillReturnError(pgError(pgerrcode.SerializationFailure))
	mock.ExpectExec("INSERT INTO messages").WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, repo.SaveMessage(context.Background(), msg))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveMessage_GivesUpAfterAttempts(t *testing.T) {
	repo, mock, db := newTestMessageRepo(t, DialectPostgres, NewPostgresErrorClassifier())
	defer db.Close()

	for range saveAttempts {
		mock.ExpectExec("INSERT INTO messages").WillReturnError(pgError(pgerrcode.ConnectionFailure))
	}

	err := repo.SaveMessage(context.Background(), models.Message{Channel: "default"})
	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveMessage_NonRetryableFailsFast(t *testing.T) {
	repo, mock, db := newTestMessageRepo(t, DialectPostgres, NewPostgresErrorClassifier())
	defer db.Close()

	mock.ExpectExec("INSERT INTO messages").WillReturnError(pgError(pgerrcode.NotNullViolation))

	err := repo.SaveMessage(context.Background(), models.Message{Channel: "default"})
	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveMessage_ContextCancelled(t *testing.T) {
	repo, _, db := newTestMessageRepo(t, DialectPostgres, NewPostgresErrorClassifier())
	defer db.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := repo.SaveMessage(ctx, models.Message{Channel: "default"})
	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.ErrorIs(t, err, context.Canceled)
}
