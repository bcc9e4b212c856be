// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/MKhiriev/go-cipher-chat/internal/app"
	"github.com/MKhiriev/go-cipher-chat/models"
	"github.com/charmbracelet/lipgloss"
)

const hiddenPasswordPrompt = "password: "

type passwordRequest struct {
	channel string
	reply   chan string
}

// Console implements service.MessageView and service.PasswordPrompter for
// a line-oriented terminal.
//
// A password request is answered by the next input line. An empty line
// asks again without echo, and an empty answer to that cancels.
type Console struct {
	in  LineReader
	out io.Writer

	outMu sync.Mutex

	mu      sync.Mutex
	pending *passwordRequest
}

func NewConsole(in LineReader, out io.Writer) *Console {
	return &Console{in: in, out: out}
}

func (c *Console) printf(format string, args ...any) {
	c.outMu.Lock()
	defer c.outMu.Unlock()
	_, _ = fmt.Fprintf(c.out, format, args...)
}

func (c *Console) ResetMessages() {
	c.printf("──────────\n")
}

func (c *Console) AppendMessages(messages []models.DecryptedMessage) {
	for _, msg := range messages {
		c.printf("%s\n", formatLine(msg))
	}
}

func (c *Console) ReplaceMessages(messages []models.DecryptedMessage) {
	c.ResetMessages()
	c.AppendMessages(messages)
}

// ClearInput is a no-op: the line was consumed when it was read.
func (c *Console) ClearInput() {}

func (c *Console) ShowSendError(err error) {
	c.printf("%s: %s\n", app.MsgSendFailed, app.HumanizeError(err))
}

func (c *Console) GetChannelPasswordFromUser(ctx context.Context, channel string) (string, bool) {
	req := &passwordRequest{channel: channel, reply: make(chan string, 1)}

	c.printf(app.MsgChannelPasswordPrompt+" (press Enter to type it hidden)\n", channel)

	c.mu.Lock()
	c.pending = req
	c.mu.Unlock()

	select {
	case password := <-req.reply:
		return password, password != ""
	case <-ctx.Done():
		c.mu.Lock()
		if c.pending == req {
			c.pending = nil
		}
		c.mu.Unlock()
		return "", false
	}
}

// answer hands line to a waiting password request and reports whether
// there was one.
func (c *Console) answer(line string) bool {
	c.mu.Lock()
	req := c.pending
	c.pending = nil
	c.mu.Unlock()

	if req == nil {
		return false
	}

	if line == "" {
		password, err := c.in.ReadPassword(hiddenPasswordPrompt)
		if err != nil {
			password = ""
		}
		line = password
	}
	if line == "" {
		c.printf("%s\n", app.MsgAuthAborted)
	}
	req.reply <- line
	return true
}

func formatLine(msg models.DecryptedMessage) string {
	name := lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.Color(app.NameColor(msg.Name))).
		Render(msg.Name)

	text := msg.Text
	if msg.Undecryptable {
		text = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff0000")).Render(app.MsgUndecryptable)
	}
	return fmt.Sprintf("[%s] %s: %s", app.FormatTime(msg.Timestamp), name, text)
}
