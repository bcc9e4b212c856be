// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"html"
	"strings"
	"time"

	"github.com/MKhiriev/go-cipher-chat/internal/config"
	"github.com/MKhiriev/go-cipher-chat/internal/logger"
	"github.com/MKhiriev/go-cipher-chat/internal/store"
	"github.com/MKhiriev/go-cipher-chat/internal/utils"
	"github.com/MKhiriev/go-cipher-chat/models"
)

type chatService struct {
	messageRepository store.MessageRepository
	passwords         map[string]string
	now               func() time.Time

	logger *logger.Logger
}

// NewChatService returns the storage-backed [ChatService]. It expects
// requests already trimmed and validated; see [NewChatValidationService].
func NewChatService(messageRepository store.MessageRepository, cfg config.Chat, logger *logger.Logger) ChatService {
	passwords := make(map[string]string, len(cfg.ChannelPasswords))
	for channel, password := range cfg.ChannelPasswords {
		passwords[strings.TrimSpace(channel)] = password
	}

	return &chatService{
		messageRepository: messageRepository,
		passwords:         passwords,
		now:               time.Now,
		logger:            logger,
	}
}

func (s *chatService) Read(ctx context.Context, req models.ReadRequest) ([]models.Message, error) {
	return s.messageRepository.GetMessages(ctx, req.Channel, req.From)
}

// Send stamps the message with the current unix time and stores it with
// name and message HTML-escaped.
func (s *chatService) Send(ctx context.Context, req models.SendRequest) error {
	return s.messageRepository.SaveMessage(ctx, models.Message{
		Timestamp: s.now().Unix(),
		Name:      html.EscapeString(req.Name),
		Message:   html.EscapeString(req.Message),
		Channel:   req.Channel,
	})
}

func (s *chatService) Authorize(ctx context.Context, channel, authorization string) error {
	password, gated := s.passwords[strings.TrimSpace(channel)]
	if !gated {
		return nil
	}

	token, ok := utils.ParseBearerToken(authorization)
	if !ok || !utils.GateTokenMatches(token, password) {
		return ErrUnauthorized
	}

	return nil
}
