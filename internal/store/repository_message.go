// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-cipher-chat/internal/logger"
	"github.com/MKhiriev/go-cipher-chat/models"
)

const (
	saveAttempts     = 3
	saveRetryBackoff = 50 * time.Millisecond
)

// sqlMessageRepository is the sqlite/PostgreSQL implementation of
// [MessageRepository] over the "messages" table.
type sqlMessageRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewMessageRepository constructs a SQL-backed [MessageRepository].
func NewMessageRepository(db *DB, logger *logger.Logger) MessageRepository {
	logger.Debug().Str("dialect", db.dialect).Msg("creating message repository")
	return &sqlMessageRepository{
		db:     db,
		logger: logger,
	}
}

// GetMessages implements [MessageRepository].
func (r *sqlMessageRepository) GetMessages(ctx context.Context, channel string, from int64) ([]models.Message, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetMessagesQuery(r.db.builder(), r.db.dialect, channel, from)
	if err != nil {
		log.Err(err).Str("func", "*sqlMessageRepository.GetMessages").Msg("error building query")
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*sqlMessageRepository.GetMessages").Str("pg_code", postgresError(err)).Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	messages := make([]models.Message, 0)
	for rows.Next() {
		msg := models.Message{Channel: channel}
		if err = rows.Scan(&msg.Timestamp, &msg.Name, &msg.Message); err != nil {
			log.Err(err).Str("func", "*sqlMessageRepository.GetMessages").Msg("error scanning row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		messages = append(messages, msg)
	}
	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*sqlMessageRepository.GetMessages").Msg("error iterating rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return messages, nil
}

// SaveMessage implements [MessageRepository]. Transient failures, as judged
// by the dialect's [ErrorClassificator], are retried a few times.
func (r *sqlMessageRepository) SaveMessage(ctx context.Context, msg models.Message) error {
	log := logger.FromContext(ctx)

	query, args, err := buildSaveMessageQuery(r.db.builder(), msg)
	if err != nil {
		log.Err(err).Str("func", "*sqlMessageRepository.SaveMessage").Msg("error building query")
		return err
	}

	for attempt := 1; ; attempt++ {
		_, err = r.db.ExecContext(ctx, query, args...)
		if err == nil {
			return nil
		}

		retryable := r.db.errorClassificator != nil && r.db.errorClassificator.Classify(err) == Retryable
		log.Err(err).Str("func", "*sqlMessageRepository.SaveMessage").
			Int("attempt", attempt).
			Bool("retryable", retryable).
			Msg("error saving message")

		if !retryable || attempt == saveAttempts {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		select {
		case <-ctx.Done():
			return fmt.Errorf("%w: %w", ErrExecutingStatement, ctx.Err())
		case <-time.After(saveRetryBackoff * time.Duration(attempt)):
		}
	}
}
