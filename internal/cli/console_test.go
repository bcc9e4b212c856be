// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-cipher-chat/internal/app"
	"github.com/MKhiriev/go-cipher-chat/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (c *Console) hasPending() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pending != nil
}

// ── view ──────────────────────────────────────────────────────────────────────

func TestConsole_AppendMessages(t *testing.T) {
	out := &syncBuffer{}
	c := NewConsole(newScriptedReader(), out)
	ts := time.Date(2026, 5, 6, 7, 8, 9, 0, time.Local).Unix()

	c.AppendMessages([]models.DecryptedMessage{
		{Message: models.Message{Timestamp: ts, Name: "bob"}, Text: "hi"},
		{Message: models.Message{Timestamp: ts, Name: "eve", Message: "Zm9v"}, Undecryptable: true},
	})

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "[07:08:09]")
	assert.Contains(t, lines[0], "bob")
	assert.Contains(t, lines[0], "hi")
	assert.Contains(t, lines[1], app.MsgUndecryptable)
	assert.NotContains(t, lines[1], "Zm9v")
}

func TestConsole_ReplaceMessagesPrintsSeparator(t *testing.T) {
	out := &syncBuffer{}
	c := NewConsole(newScriptedReader(), out)

	c.ReplaceMessages([]models.DecryptedMessage{{Text: "again"}})

	assert.True(t, strings.HasPrefix(out.String(), "──"))
	assert.Contains(t, out.String(), "again")
}

func TestConsole_ShowSendError(t *testing.T) {
	out := &syncBuffer{}
	c := NewConsole(newScriptedReader(), out)

	c.ShowSendError(errors.New("dial tcp: i/o timeout"))
	assert.Equal(t, app.MsgSendFailed+": "+app.MsgServerUnavailable+"\n", out.String())
}

// ── password prompt ───────────────────────────────────────────────────────────

type promptResult struct {
	password string
	ok       bool
}

func ask(ctx context.Context, c *Console) <-chan promptResult {
	res := make(chan promptResult, 1)
	go func() {
		p, ok := c.GetChannelPasswordFromUser(ctx, "private")
		res <- promptResult{p, ok}
	}()
	return res
}

func TestConsole_PasswordFromNextLine(t *testing.T) {
	out := &syncBuffer{}
	c := NewConsole(newScriptedReader(), out)

	res := ask(context.Background(), c)
	require.Eventually(t, c.hasPending, time.Second, 5*time.Millisecond)
	assert.Contains(t, out.String(), "Channel #private is protected")

	assert.True(t, c.answer("s3cret"))
	assert.Equal(t, promptResult{"s3cret", true}, <-res)
	assert.False(t, c.answer("next"), "request is answered once")
}

func TestConsole_PasswordHidden(t *testing.T) {
	in := newScriptedReader()
	in.passwords <- "hidden"
	c := NewConsole(in, &syncBuffer{})

	res := ask(context.Background(), c)
	require.Eventually(t, c.hasPending, time.Second, 5*time.Millisecond)

	assert.True(t, c.answer(""))
	assert.Equal(t, promptResult{"hidden", true}, <-res)
}

func TestConsole_PasswordEmptyCancels(t *testing.T) {
	in := newScriptedReader()
	in.passwords <- ""
	out := &syncBuffer{}
	c := NewConsole(in, out)

	res := ask(context.Background(), c)
	require.Eventually(t, c.hasPending, time.Second, 5*time.Millisecond)

	assert.True(t, c.answer(""))
	assert.Equal(t, promptResult{}, <-res)
	assert.Contains(t, out.String(), app.MsgAuthAborted)
}

func TestConsole_PasswordWithdrawnOnContextDone(t *testing.T) {
	c := NewConsole(newScriptedReader(), &syncBuffer{})

	ctx, cancel := context.WithCancel(context.Background())
	res := ask(ctx, c)
	require.Eventually(t, c.hasPending, time.Second, 5*time.Millisecond)

	cancel()
	assert.Equal(t, promptResult{}, <-res)
	assert.False(t, c.hasPending())
	assert.False(t, c.answer("late"))
}

// ── plainReader ───────────────────────────────────────────────────────────────

func TestPlainReader(t *testing.T) {
	out := &syncBuffer{}
	r := newPlainReader(strings.NewReader("one\r\ntwo\nlast"), out)

	for _, want := range []string{"one", "two"} {
		got, err := r.ReadLine()
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	got, err := r.ReadPassword("pw: ")
	require.NoError(t, err)
	assert.Equal(t, "last", got)
	assert.Equal(t, "pw: ", out.String())

	_, err = r.ReadLine()
	assert.Error(t, err)
}
