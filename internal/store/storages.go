// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"io"

	"github.com/MKhiriev/go-cipher-chat/internal/config"
	"github.com/MKhiriev/go-cipher-chat/internal/logger"
)

// Storages groups the relay repositories and the resource backing them.
type Storages struct {
	MessageRepository MessageRepository

	closer io.Closer
}

// Close releases the underlying connection.
func (s *Storages) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}

// NewStorages opens the message store selected by cfg.Driver and applies
// SQL migrations where relevant.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	log.Info().Str("driver", cfg.Driver).Msg("creating new storages...")

	switch cfg.Driver {
	case "redis":
		rdb, err := NewRedisClient(ctx, cfg.Redis, log)
		if err != nil {
			return nil, err
		}
		return &Storages{
			MessageRepository: NewRedisMessageRepository(rdb, log),
			closer:            rdb,
		}, nil

	case "sqlite", "postgres":
		var (
			db  *DB
			err error
		)
		if cfg.Driver == "postgres" {
			db, err = NewConnectPostgres(ctx, cfg.DB.DSN, log)
		} else {
			db, err = NewConnectSQLite(ctx, cfg.DB.DSN, log)
		}
		if err != nil {
			return nil, fmt.Errorf("%s connection error: %w", cfg.Driver, err)
		}

		if err = db.Migrate(); err != nil {
			return nil, fmt.Errorf("migration failed: %w", err)
		}

		return &Storages{
			MessageRepository: NewMessageRepository(db, log),
			closer:            db,
		}, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.Driver)
}

// ClientStorages groups the client-side repositories.
type ClientStorages struct {
	SettingsRepository SettingsRepository

	closer io.Closer
}

// Close releases the underlying connection.
func (s *ClientStorages) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}

// NewClientStorages opens the sqlite settings file at path. An empty path
// yields a nil SettingsRepository, which keeps settings in memory only.
func NewClientStorages(ctx context.Context, path string, log *logger.Logger) (*ClientStorages, error) {
	if path == "" {
		return &ClientStorages{}, nil
	}

	db, err := NewConnectSQLite(ctx, path, log)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		SettingsRepository: NewSettingsRepository(db, log),
		closer:             db,
	}, nil
}
