// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/MKhiriev/go-cipher-chat/internal/config"
	"github.com/MKhiriev/go-cipher-chat/internal/logger"
	"github.com/MKhiriev/go-cipher-chat/models"
)

const redisMessagesKeyPrefix = "chat:messages:"

// redisMessageRepository keeps every channel log in a redis list; list
// indexes are the read offsets.
type redisMessageRepository struct {
	rdb    redis.UniversalClient
	logger *logger.Logger
}

// NewRedisClient connects to redis and checks the connection.
func NewRedisClient(ctx context.Context, cfg config.Redis, log *logger.Logger) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Err(err).Str("func", "NewRedisClient").Msg("error connecting redis (ping)")
		return nil, fmt.Errorf("%w: %w", ErrRedis, err)
	}
	log.Info().Str("func", "NewRedisClient").Msg("connected to redis successfully")

	return rdb, nil
}

// NewRedisMessageRepository constructs a redis-backed [MessageRepository].
func NewRedisMessageRepository(rdb redis.UniversalClient, logger *logger.Logger) MessageRepository {
	logger.Debug().Msg("creating redis message repository")
	return &redisMessageRepository{
		rdb:    rdb,
		logger: logger,
	}
}

func redisMessagesKey(channel string) string {
	return redisMessagesKeyPrefix + channel
}

// GetMessages implements [MessageRepository].
func (r *redisMessageRepository) GetMessages(ctx context.Context, channel string, from int64) ([]models.Message, error) {
	log := logger.FromContext(ctx)

	raw, err := r.rdb.LRange(ctx, redisMessagesKey(channel), from, -1).Result()
	if err != nil {
		log.Err(err).Str("func", "*redisMessageRepository.GetMessages").Msg("error reading list")
		return nil, fmt.Errorf("%w: %w", ErrRedis, err)
	}

	messages := make([]models.Message, 0, len(raw))
	for _, item := range raw {
		msg := models.Message{Channel: channel}
		if err = json.Unmarshal([]byte(item), &msg); err != nil {
			log.Err(err).Str("func", "*redisMessageRepository.GetMessages").Msg("error decoding message")
			return nil, fmt.Errorf("%w: %w", ErrEncodingMessage, err)
		}
		messages = append(messages, msg)
	}

	return messages, nil
}

// SaveMessage implements [MessageRepository].
func (r *redisMessageRepository) SaveMessage(ctx context.Context, msg models.Message) error {
	log := logger.FromContext(ctx)

	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncodingMessage, err)
	}

	if err = r.rdb.RPush(ctx, redisMessagesKey(msg.Channel), payload).Err(); err != nil {
		log.Err(err).Str("func", "*redisMessageRepository.SaveMessage").Msg("error appending to list")
		return fmt.Errorf("%w: %w", ErrRedis, err)
	}

	return nil
}
