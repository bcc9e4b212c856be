// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/go-cipher-chat/internal/adapter"
	"github.com/MKhiriev/go-cipher-chat/internal/config"
	"github.com/MKhiriev/go-cipher-chat/internal/crypto"
	"github.com/MKhiriev/go-cipher-chat/internal/logger"
	"github.com/MKhiriev/go-cipher-chat/internal/session"
	"github.com/MKhiriev/go-cipher-chat/internal/utils"
	"github.com/MKhiriev/go-cipher-chat/internal/validators"
	"github.com/MKhiriev/go-cipher-chat/internal/workers"
	"github.com/MKhiriev/go-cipher-chat/models"
)

type syncEngine struct {
	adapter    adapter.ChatAdapter
	cipher     crypto.EnvelopeCipher
	negotiator ChannelAuthNegotiator
	session    *session.Session
	view       MessageView
	validator  validators.Validator

	ticker    *workers.Ticker
	debouncer *workers.Debouncer
	workers   *workers.Workers

	// fetchMu serialises fetches; poll ticks only try it and skip the tick
	// while another fetch is running.
	fetchMu sync.Mutex

	// mu guards the channel state below. The view is updated under mu so a
	// reset can never interleave with a batch being rendered.
	mu            sync.Mutex
	channel       string
	lastIndex     int64
	log           []models.Message
	epoch         uint64
	inputPassword string

	sending atomic.Bool

	logger *logger.Logger
}

// NewSyncEngine wires a [SyncEngine] for the channel stored in sess. The
// password input starts out as the remembered password.
func NewSyncEngine(
	chatAdapter adapter.ChatAdapter,
	cipher crypto.EnvelopeCipher,
	negotiator ChannelAuthNegotiator,
	sess *session.Session,
	view MessageView,
	cfg config.ClientWorkers,
	logger *logger.Logger,
) SyncEngine {
	debounceDelay := cfg.DebounceDelay
	if debounceDelay <= 0 {
		debounceDelay = config.DefaultDebounceDelay
	}

	ticker := workers.NewTicker()
	debouncer := workers.NewDebouncer(debounceDelay)

	return &syncEngine{
		adapter:       chatAdapter,
		cipher:        cipher,
		negotiator:    negotiator,
		session:       sess,
		view:          view,
		validator:     validators.NewMessageValidator(),
		ticker:        ticker,
		debouncer:     debouncer,
		workers:       workers.NewWorkers(ticker, debouncer),
		channel:       sess.Channel(),
		inputPassword: sess.RememberedPassword(),
		logger:        logger,
	}
}

// RestartFetchInterval implements [SyncEngine]. It must run once at startup
// and again after every change of channel or interval. The new schedule is
// running before the reset, so a pending password challenge does not hold up
// polling.
func (e *syncEngine) RestartFetchInterval(ctx context.Context) error {
	interval := e.session.PollInterval()
	if interval <= 0 {
		interval = models.DefaultMessageInterval
	}
	e.ticker.Start(ctx, interval, e.pollTick)

	return e.ResetAndFetchMessages(ctx)
}

// ResetAndFetchMessages implements [SyncEngine]. The challenge blocks this
// call only; polling keeps running.
func (e *syncEngine) ResetAndFetchMessages(ctx context.Context) error {
	e.mu.Lock()
	e.channel = e.session.Channel()
	e.lastIndex = 0
	e.log = nil
	e.epoch++
	channel := e.channel
	e.view.ResetMessages()
	e.mu.Unlock()

	if _, err := e.negotiator.CheckForPassword(ctx, channel); err != nil {
		e.logger.Warn().Err(err).Str("channel", channel).Msg("password challenge did not settle")
	}

	return e.FetchMessages(ctx)
}

// FetchMessages implements [SyncEngine]. It waits for a fetch already in
// flight instead of skipping.
func (e *syncEngine) FetchMessages(ctx context.Context) error {
	e.fetchMu.Lock()
	defer e.fetchMu.Unlock()

	return e.fetch(ctx)
}

func (e *syncEngine) pollTick(ctx context.Context) {
	if !e.fetchMu.TryLock() {
		e.logger.Debug().Msg("previous fetch still running, tick skipped")
		return
	}
	defer e.fetchMu.Unlock()

	// poll failures are retried by the next tick
	_ = e.fetch(ctx)
}

// fetch reads everything after the cursor and renders it. The cursor moves
// by the batch length once the whole batch is processed, whether or not
// each record could be decrypted. A batch fetched before a reset is
// discarded.
func (e *syncEngine) fetch(ctx context.Context) error {
	e.mu.Lock()
	channel, from, epoch := e.channel, e.lastIndex, e.epoch
	e.mu.Unlock()

	password, _ := e.session.Vault().GetPassword(channel)

	ctx = utils.WithTraceID(ctx, utils.NewTraceID())
	messages, err := e.adapter.ReadMessages(ctx, channel, from, password)
	if err != nil {
		if errors.Is(err, adapter.ErrUnauthorized) {
			e.challengeInBackground(ctx, channel)
			return fmt.Errorf("%w: %w", ErrAuthRequired, err)
		}
		e.logger.Err(err).Str("func", "*syncEngine.fetch").Str("channel", channel).Int64("from", from).Msg("error fetching messages")
		return err
	}
	if len(messages) == 0 {
		return nil
	}

	candidates := e.passwordCandidates(channel)
	decrypted := make([]models.DecryptedMessage, 0, len(messages))
	for _, msg := range messages {
		decrypted = append(decrypted, e.decrypt(msg, candidates))
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.epoch != epoch {
		e.logger.Debug().Str("channel", channel).Msg("batch fetched before reset, dropped")
		return nil
	}

	e.log = append(e.log, messages...)
	e.lastIndex += int64(len(messages))
	e.view.AppendMessages(decrypted)

	return nil
}

// challengeInBackground starts a challenge after a read was refused, unless
// the user already gave up on this channel. The negotiator drops it when a
// challenge for the channel is already running.
func (e *syncEngine) challengeInBackground(ctx context.Context, channel string) {
	if e.negotiator.State(channel) == models.AuthAborted {
		return
	}

	go func() {
		if _, err := e.negotiator.CheckForPassword(ctx, channel); err != nil && !errors.Is(err, ErrChallengeInProgress) {
			e.logger.Warn().Err(err).Str("channel", channel).Msg("password challenge did not settle")
		}
	}()
}

// SendMessage implements [SyncEngine].
//
// An invalid draft is dropped without a network call and without telling
// the view. A 401 hands the channel to the negotiator instead of reporting a
// send error. Every other failure is reported through the view once.
func (e *syncEngine) SendMessage(ctx context.Context, draft models.Draft) error {
	if !e.sending.CompareAndSwap(false, true) {
		return ErrSendInProgress
	}
	defer e.sending.Store(false)

	if draft.Channel == "" {
		e.mu.Lock()
		draft.Channel = e.channel
		e.mu.Unlock()
	}

	if err := e.validator.Validate(ctx, draft); err != nil {
		return err
	}

	envelope, err := e.cipher.Encrypt(draft.Password, draft.Text)
	if err != nil {
		e.logger.Err(err).Str("func", "*syncEngine.SendMessage").Msg("error encrypting message")
		e.view.ShowSendError(err)
		return err
	}

	// the gate token is the channel password, not the one the text is sealed with
	gatePassword, _ := e.session.Vault().GetPassword(draft.Channel)

	ctx = utils.WithTraceID(ctx, utils.NewTraceID())
	err = e.adapter.SendMessage(ctx, models.SendRequest{
		Name:    draft.Name,
		Message: envelope,
		Channel: draft.Channel,
	}, gatePassword)
	if err != nil {
		if errors.Is(err, adapter.ErrUnauthorized) {
			go func() {
				if _, err := e.negotiator.CheckForPassword(ctx, draft.Channel); err != nil && !errors.Is(err, ErrChallengeInProgress) {
					e.logger.Warn().Err(err).Str("channel", draft.Channel).Msg("password challenge did not settle")
				}
			}()
			return fmt.Errorf("%w: %w", ErrAuthRequired, err)
		}

		e.logger.Err(err).Str("func", "*syncEngine.SendMessage").Str("channel", draft.Channel).Msg("error sending message")
		e.view.ShowSendError(err)
		return err
	}

	e.view.ClearInput()
	if err = e.session.Remember(ctx, draft.Name, draft.Password); err != nil {
		e.logger.Warn().Err(err).Msg("could not remember name and password")
	}

	if err = e.FetchMessages(ctx); err != nil {
		e.logger.Debug().Err(err).Msg("fetch after send failed")
	}

	return nil
}

// HandlePasswordChange implements [SyncEngine].
func (e *syncEngine) HandlePasswordChange(password string) {
	e.mu.Lock()
	e.inputPassword = password
	e.mu.Unlock()

	e.debouncer.Trigger(e.RetryDecryptAllMessages)
}

// RetryDecryptAllMessages implements [SyncEngine]. It makes no network call.
// If the channel is reset while decrypting, the result is dropped; records
// appended meanwhile are decrypted too.
func (e *syncEngine) RetryDecryptAllMessages() {
	e.mu.Lock()
	candidates := e.passwordCandidatesLocked(e.channel)
	logged := slices.Clone(e.log)
	epoch := e.epoch
	e.mu.Unlock()

	decrypted := make([]models.DecryptedMessage, 0, len(logged))
	for _, msg := range logged {
		decrypted = append(decrypted, e.decrypt(msg, candidates))
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.epoch != epoch {
		return
	}
	for _, msg := range e.log[len(logged):] {
		decrypted = append(decrypted, e.decrypt(msg, candidates))
	}
	e.view.ReplaceMessages(decrypted)
}

func (e *syncEngine) UpdateSettings(ctx context.Context, interval time.Duration, channel string) error {
	if err := e.session.UpdateSettings(ctx, interval, channel); err != nil {
		return err
	}
	return e.RestartFetchInterval(ctx)
}

func (e *syncEngine) LastIndex() int64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.lastIndex
}

// Cleanup implements [SyncEngine]. Requests already in flight are left to
// finish.
func (e *syncEngine) Cleanup() {
	e.workers.Stop()
}

// passwordCandidates returns the passwords to try, in order: the password
// input, then the vault entry of channel.
func (e *syncEngine) passwordCandidates(channel string) []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.passwordCandidatesLocked(channel)
}

func (e *syncEngine) passwordCandidatesLocked(channel string) []string {
	candidates := make([]string, 0, 2)
	if e.inputPassword != "" {
		candidates = append(candidates, e.inputPassword)
	}
	if vaultPassword, ok := e.session.Vault().GetPassword(channel); ok && vaultPassword != "" && vaultPassword != e.inputPassword {
		candidates = append(candidates, vaultPassword)
	}
	return candidates
}

func (e *syncEngine) decrypt(msg models.Message, candidates []string) models.DecryptedMessage {
	for _, password := range candidates {
		text, err := e.cipher.Decrypt(password, msg.Message)
		if err == nil {
			return models.DecryptedMessage{Message: msg, Text: text}
		}
	}
	return models.DecryptedMessage{Message: msg, Undecryptable: true}
}
