// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"strings"

	"github.com/MKhiriev/go-cipher-chat/internal/config"
	"github.com/MKhiriev/go-cipher-chat/internal/logger"
	"github.com/MKhiriev/go-cipher-chat/internal/service"
	"github.com/MKhiriev/go-cipher-chat/internal/utils"
)

type Handler struct {
	services *service.Services
	hasher   *utils.Hasher

	apiPrefix string

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.ServerConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")

	prefix := cfg.Server.APIPrefix
	if prefix == "" {
		prefix = config.DefaultAPIPrefix
	}
	prefix = strings.TrimRight(prefix, "/")

	return &Handler{
		services:  services,
		hasher:    utils.NewHasher(cfg.App.HashKey),
		apiPrefix: prefix,
		logger:    logger,
	}
}
