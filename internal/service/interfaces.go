// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the business logic of both binaries.
//
// Relay side: [ChatService] reads and appends channel logs and guards
// channels behind their bearer gate.
//
// Client side: [ChannelAuthNegotiator] runs the per-channel password
// challenge and [SyncEngine] keeps the local view of the active channel in
// step with the relay: cursor, encrypted log, polling, sending and
// re-decryption. UIs plug in through [PasswordPrompter] and [MessageView].
package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-cipher-chat/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// ChatService is the relay's view of channel logs.
type ChatService interface {
	// Read returns the messages of req.Channel from offset req.From on.
	Read(ctx context.Context, req models.ReadRequest) ([]models.Message, error)

	// Send appends one message to req.Channel.
	Send(ctx context.Context, req models.SendRequest) error

	// Authorize checks the Authorization header value against the gate of
	// channel. Channels without a password accept anything.
	Authorize(ctx context.Context, channel, authorization string) error
}

// ChatServiceWrapper defines middleware composition for ChatService.
type ChatServiceWrapper interface {
	Wrap(ChatService) ChatService
}

// AppInfoService exposes build metadata of the running binary.
type AppInfoService interface {
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}

// PasswordPrompter asks the user for a channel password.
//
// GetChannelPasswordFromUser blocks until the user confirms (returns the
// password and true) or cancels (returns "" and false). Implementations
// must return ("", false) once ctx is done.
type PasswordPrompter interface {
	GetChannelPasswordFromUser(ctx context.Context, channel string) (string, bool)
}

// MessageView renders the active channel. The engine calls it from its own
// goroutines; implementations must not call back into the engine
// synchronously.
type MessageView interface {
	// ResetMessages clears every rendered message.
	ResetMessages()
	// AppendMessages renders a new batch after the existing ones.
	AppendMessages(messages []models.DecryptedMessage)
	// ReplaceMessages re-renders the whole channel from scratch.
	ReplaceMessages(messages []models.DecryptedMessage)
	// ClearInput empties the message input after a successful send.
	ClearInput()
	// ShowSendError reports a failed send once.
	ShowSendError(err error)
}

// ChannelAuthNegotiator finds out whether a channel is gated and, if so,
// obtains a password the gate accepts.
type ChannelAuthNegotiator interface {
	// IsNeedAuth probes channel without credentials.
	IsNeedAuth(ctx context.Context, channel string) (bool, error)

	// IsAuthCorrect probes channel with password as the gate token.
	IsAuthCorrect(ctx context.Context, channel, password string) (bool, error)

	// CheckForPassword runs the challenge for channel until it settles and
	// returns the resulting state. Only one challenge per channel runs at a
	// time; a concurrent call returns [ErrChallengeInProgress].
	CheckForPassword(ctx context.Context, channel string) (models.AuthState, error)

	// State returns the last known state of channel.
	State(channel string) models.AuthState
}

// SyncEngine keeps the rendered view of the active channel in step with the
// relay.
type SyncEngine interface {
	// RestartFetchInterval reschedules polling at the configured interval,
	// then resynchronises the active channel from scratch.
	RestartFetchInterval(ctx context.Context) error

	// ResetAndFetchMessages drops the cursor and the log, settles the
	// password challenge, then fetches once.
	ResetAndFetchMessages(ctx context.Context) error

	// FetchMessages fetches everything after the cursor once.
	FetchMessages(ctx context.Context) error

	// SendMessage encrypts and sends draft. A call made while another send
	// is in flight is dropped with [ErrSendInProgress].
	SendMessage(ctx context.Context, draft models.Draft) error

	// HandlePasswordChange records the edited password input and schedules
	// a debounced re-decryption of the whole log.
	HandlePasswordChange(password string)

	// RetryDecryptAllMessages re-decrypts the whole log and re-renders it.
	RetryDecryptAllMessages()

	// UpdateSettings stores new settings and restarts polling.
	UpdateSettings(ctx context.Context, interval time.Duration, channel string) error

	// LastIndex returns the cursor of the active channel.
	LastIndex() int64

	// Cleanup stops polling and any pending re-decryption.
	Cleanup()
}
