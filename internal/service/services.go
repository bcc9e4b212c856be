// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-cipher-chat/internal/config"
	"github.com/MKhiriev/go-cipher-chat/internal/logger"
	"github.com/MKhiriev/go-cipher-chat/internal/store"
	"github.com/MKhiriev/go-cipher-chat/models"
)

// Services groups the relay services.
type Services struct {
	ChatService    ChatService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg config.ServerConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) *Services {
	chat := NewChatService(storages.MessageRepository, cfg.Chat, logger)

	return &Services{
		ChatService:    NewChatValidationService(cfg.Chat).Wrap(chat),
		AppInfoService: NewAppInfoService(buildInfo, logger),
	}
}
