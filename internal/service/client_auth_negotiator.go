// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"net/http"
	"sync"

	"github.com/MKhiriev/go-cipher-chat/internal/adapter"
	"github.com/MKhiriev/go-cipher-chat/internal/config"
	"github.com/MKhiriev/go-cipher-chat/internal/logger"
	"github.com/MKhiriev/go-cipher-chat/internal/session"
	"github.com/MKhiriev/go-cipher-chat/models"
)

type channelAuthNegotiator struct {
	adapter     adapter.ChatAdapter
	prompter    PasswordPrompter
	vault       *session.CredentialVault
	maxAttempts int

	mu       sync.Mutex
	states   map[string]models.AuthState
	inFlight map[string]struct{}

	logger *logger.Logger
}

// NewChannelAuthNegotiator constructs a [ChannelAuthNegotiator] that stores
// accepted passwords in vault. At most cfg.MaxAttempts wrong passwords are
// tried per challenge.
func NewChannelAuthNegotiator(chatAdapter adapter.ChatAdapter, prompter PasswordPrompter, vault *session.CredentialVault, cfg config.ClientAuth, logger *logger.Logger) ChannelAuthNegotiator {
	maxAttempts := cfg.MaxAttempts
	if maxAttempts < 1 {
		maxAttempts = config.DefaultMaxAttempts
	}

	return &channelAuthNegotiator{
		adapter:     chatAdapter,
		prompter:    prompter,
		vault:       vault,
		maxAttempts: maxAttempts,
		states:      make(map[string]models.AuthState),
		inFlight:    make(map[string]struct{}),
		logger:      logger,
	}
}

// IsNeedAuth implements [ChannelAuthNegotiator]. Only a 401 answer means the
// channel is gated.
func (n *channelAuthNegotiator) IsNeedAuth(ctx context.Context, channel string) (bool, error) {
	status, err := n.adapter.ProbeRead(ctx, channel, "")
	if err != nil {
		return false, fmt.Errorf("probe channel %q: %w", channel, err)
	}
	return status == http.StatusUnauthorized, nil
}

// IsAuthCorrect implements [ChannelAuthNegotiator]. Any answer but 401
// means the gate accepted password.
func (n *channelAuthNegotiator) IsAuthCorrect(ctx context.Context, channel, password string) (bool, error) {
	status, err := n.adapter.ProbeRead(ctx, channel, password)
	if err != nil {
		return false, fmt.Errorf("probe channel %q: %w", channel, err)
	}
	return status != http.StatusUnauthorized, nil
}

func (n *channelAuthNegotiator) State(channel string) models.AuthState {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.states[channel]
}

// CheckForPassword implements [ChannelAuthNegotiator].
//
// The user is prompted in a loop. A rejected password moves the channel to
// REJECTED and prompts again; cancelling, running out of attempts or ctx
// ending moves it to ABORTED without touching the vault. A password already
// in the vault that the gate still accepts settles the challenge without a
// prompt.
func (n *channelAuthNegotiator) CheckForPassword(ctx context.Context, channel string) (models.AuthState, error) {
	if !n.begin(channel) {
		return n.State(channel), ErrChallengeInProgress
	}
	defer n.end(channel)

	need, err := n.IsNeedAuth(ctx, channel)
	if err != nil {
		n.logger.Err(err).Str("func", "*channelAuthNegotiator.CheckForPassword").Msg("error probing channel")
		return n.setState(channel, models.AuthUnchecked), err
	}
	if !need {
		return n.setState(channel, models.AuthNotRequired), nil
	}

	if password, ok := n.vault.GetPassword(channel); ok {
		n.setState(channel, models.AuthChecking)
		correct, err := n.IsAuthCorrect(ctx, channel, password)
		if err != nil {
			return n.setState(channel, models.AuthUnchecked), err
		}
		if correct {
			return n.setState(channel, models.AuthAuthenticated), nil
		}
	}

	for attempt := 1; attempt <= n.maxAttempts; attempt++ {
		if err = ctx.Err(); err != nil {
			return n.setState(channel, models.AuthAborted), err
		}

		n.setState(channel, models.AuthPendingInput)
		password, ok := n.prompter.GetChannelPasswordFromUser(ctx, channel)
		if !ok {
			n.logger.Info().Str("channel", channel).Msg("password challenge cancelled")
			return n.setState(channel, models.AuthAborted), ctx.Err()
		}

		n.setState(channel, models.AuthChecking)
		correct, err := n.IsAuthCorrect(ctx, channel, password)
		if err != nil {
			n.logger.Err(err).Str("func", "*channelAuthNegotiator.CheckForPassword").Msg("error verifying password")
			return n.setState(channel, models.AuthUnchecked), err
		}
		if correct {
			n.vault.SetPassword(channel, password)
			return n.setState(channel, models.AuthAuthenticated), nil
		}

		n.logger.Info().Str("channel", channel).Int("attempt", attempt).Msg("channel password rejected")
		n.setState(channel, models.AuthRejected)
	}

	return n.setState(channel, models.AuthAborted), ErrAttemptsExhausted
}

func (n *channelAuthNegotiator) begin(channel string) bool {
	n.mu.Lock()
	defer n.mu.Unlock()

	if _, busy := n.inFlight[channel]; busy {
		return false
	}
	n.inFlight[channel] = struct{}{}
	return true
}

func (n *channelAuthNegotiator) end(channel string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	delete(n.inFlight, channel)
}

func (n *channelAuthNegotiator) setState(channel string, state models.AuthState) models.AuthState {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.states[channel] = state
	return state
}
