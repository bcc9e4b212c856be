// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport used by the chat client to talk to
// the relay.
//
// The primary abstraction is [ChatAdapter], which decouples the sync engine
// and the auth negotiator from HTTP. Non-2xx responses are returned as
// [*APIError] so that callers can special-case 401 through
// errors.Is(err, [ErrUnauthorized]) without inspecting status codes.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-cipher-chat/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/chat_adapter_mock.go -package=mock

// ChatAdapter defines communication with the relay. Message bodies crossing
// this boundary are always envelope strings, never plaintext.
//
// An empty password means no Authorization header is sent.
type ChatAdapter interface {
	// ReadMessages returns the messages of channel starting at offset from,
	// in insertion order.
	ReadMessages(ctx context.Context, channel string, from int64, password string) ([]models.Message, error)

	// SendMessage appends one message to req.Channel.
	SendMessage(ctx context.Context, req models.SendRequest, password string) error

	// ProbeRead issues a zero-offset read and returns the HTTP status the
	// relay answered with. A transport failure returns status 0 and an error.
	ProbeRead(ctx context.Context, channel string, password string) (int, error)
}
