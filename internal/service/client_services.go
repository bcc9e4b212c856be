// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-cipher-chat/internal/adapter"
	"github.com/MKhiriev/go-cipher-chat/internal/config"
	"github.com/MKhiriev/go-cipher-chat/internal/crypto"
	"github.com/MKhiriev/go-cipher-chat/internal/logger"
	"github.com/MKhiriev/go-cipher-chat/internal/session"
)

// Frontend is what a client front-end provides to the services: somewhere
// to render messages and someone to ask for channel passwords.
type Frontend interface {
	MessageView
	PasswordPrompter
}

// ClientServices groups the client services.
type ClientServices struct {
	Negotiator ChannelAuthNegotiator
	SyncEngine SyncEngine
}

func NewClientServices(
	chatAdapter adapter.ChatAdapter,
	sess *session.Session,
	frontend Frontend,
	cfg *config.ClientConfig,
	logger *logger.Logger,
) *ClientServices {
	negotiator := NewChannelAuthNegotiator(chatAdapter, frontend, sess.Vault(), cfg.Auth, logger)

	return &ClientServices{
		Negotiator: negotiator,
		SyncEngine: NewSyncEngine(chatAdapter, crypto.NewEnvelopeCipher(), negotiator, sess, frontend, cfg.Workers, logger),
	}
}
