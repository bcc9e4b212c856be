// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"slices"
	"sync"

	"github.com/MKhiriev/go-cipher-chat/models"
	tea "github.com/charmbracelet/bubbletea"
)

// Bridge implements service.MessageView and service.PasswordPrompter for a
// bubbletea program.
//
// View calls never block: messages are queued and forwarded to the program
// in call order by a single pump goroutine. The engine calls the view while
// holding its own lock, and the program may call back into the engine from
// Update, so a blocking send could deadlock.
type Bridge struct {
	mu    sync.Mutex
	queue []tea.Msg
	wake  chan struct{}

	send func(tea.Msg)
}

func NewBridge() *Bridge {
	return &Bridge{wake: make(chan struct{}, 1)}
}

// attach sets the program messages are forwarded to. It must be called
// before run.
func (b *Bridge) attach(send func(tea.Msg)) {
	b.mu.Lock()
	b.send = send
	b.mu.Unlock()
}

// run forwards queued messages until ctx is done.
func (b *Bridge) run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-b.wake:
		}

		b.mu.Lock()
		pending, send := b.queue, b.send
		b.queue = nil
		b.mu.Unlock()

		for _, msg := range pending {
			send(msg)
		}
	}
}

func (b *Bridge) post(msg tea.Msg) {
	b.mu.Lock()
	b.queue = append(b.queue, msg)
	b.mu.Unlock()

	select {
	case b.wake <- struct{}{}:
	default:
	}
}

func (b *Bridge) ResetMessages() {
	b.post(resetMessagesMsg{})
}

func (b *Bridge) AppendMessages(messages []models.DecryptedMessage) {
	b.post(appendMessagesMsg{messages: slices.Clone(messages)})
}

func (b *Bridge) ReplaceMessages(messages []models.DecryptedMessage) {
	b.post(replaceMessagesMsg{messages: slices.Clone(messages)})
}

func (b *Bridge) ClearInput() {
	b.post(clearInputMsg{})
}

func (b *Bridge) ShowSendError(err error) {
	b.post(sendErrorMsg{err: err})
}

// GetChannelPasswordFromUser opens the password dialog and waits for the
// user. It reports false when the user cancels or ctx is done; in the
// latter case the dialog is closed.
func (b *Bridge) GetChannelPasswordFromUser(ctx context.Context, channel string) (string, bool) {
	reply := make(chan passwordReply, 1)
	b.post(passwordRequestMsg{channel: channel, reply: reply})

	select {
	case r := <-reply:
		return r.password, r.ok
	case <-ctx.Done():
		b.post(passwordWithdrawnMsg{reply: reply})
		return "", false
	}
}
