// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/go-cipher-chat/internal/config"
	"github.com/MKhiriev/go-cipher-chat/internal/logger"
	"github.com/MKhiriev/go-cipher-chat/internal/mock"
	"github.com/MKhiriev/go-cipher-chat/internal/session"
	"github.com/MKhiriev/go-cipher-chat/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestNegotiator(t *testing.T, maxAttempts int) (
	*channelAuthNegotiator,
	*mock.MockChatAdapter,
	*mock.MockPasswordPrompter,
	*session.CredentialVault,
) {
	t.Helper()
	ctrl := gomock.NewController(t)
	chatAdapter := mock.NewMockChatAdapter(ctrl)
	prompter := mock.NewMockPasswordPrompter(ctrl)
	vault := session.NewCredentialVault()

	n := NewChannelAuthNegotiator(chatAdapter, prompter, vault, config.ClientAuth{MaxAttempts: maxAttempts}, logger.Nop())
	return n.(*channelAuthNegotiator), chatAdapter, prompter, vault
}

// gate answers probes the way a relay with channel "private" locked by "p1"
// does.
func gate(_ context.Context, channel, password string) (int, error) {
	if channel == "private" && password != "p1" {
		return http.StatusUnauthorized, nil
	}
	return http.StatusOK, nil
}

func TestIsNeedAuth_And_IsAuthCorrect(t *testing.T) {
	n, chatAdapter, _, _ := newTestNegotiator(t, 3)
	ctx := context.Background()
	chatAdapter.EXPECT().ProbeRead(ctx, gomock.Any(), gomock.Any()).DoAndReturn(gate).AnyTimes()

	need, err := n.IsNeedAuth(ctx, "private")
	require.NoError(t, err)
	assert.True(t, need)

	ok, err := n.IsAuthCorrect(ctx, "private", "p1")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = n.IsAuthCorrect(ctx, "private", "p2")
	require.NoError(t, err)
	assert.False(t, ok)

	need, err = n.IsNeedAuth(ctx, "default")
	require.NoError(t, err)
	assert.False(t, need)
}

func TestIsNeedAuth_NonUnauthorizedStatusMeansOpen(t *testing.T) {
	n, chatAdapter, _, _ := newTestNegotiator(t, 3)
	chatAdapter.EXPECT().ProbeRead(gomock.Any(), "broken", "").Return(http.StatusInternalServerError, nil)

	need, err := n.IsNeedAuth(context.Background(), "broken")
	require.NoError(t, err)
	assert.False(t, need)
}

func TestIsNeedAuth_TransportError(t *testing.T) {
	n, chatAdapter, _, _ := newTestNegotiator(t, 3)
	chatAdapter.EXPECT().ProbeRead(gomock.Any(), "private", "").Return(0, errors.New("connection refused"))

	need, err := n.IsNeedAuth(context.Background(), "private")
	require.Error(t, err)
	assert.False(t, need)
}

func TestCheckForPassword_NotRequired(t *testing.T) {
	n, chatAdapter, _, vault := newTestNegotiator(t, 3)
	chatAdapter.EXPECT().ProbeRead(gomock.Any(), "default", "").Return(http.StatusOK, nil)

	state, err := n.CheckForPassword(context.Background(), "default")

	require.NoError(t, err)
	assert.Equal(t, models.AuthNotRequired, state)
	assert.Equal(t, models.AuthNotRequired, n.State("default"))
	_, ok := vault.GetPassword("default")
	assert.False(t, ok)
}

func TestCheckForPassword_CorrectFirstTry(t *testing.T) {
	n, chatAdapter, prompter, vault := newTestNegotiator(t, 3)
	chatAdapter.EXPECT().ProbeRead(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(gate).Times(2)
	prompter.EXPECT().GetChannelPasswordFromUser(gomock.Any(), "private").Return("p1", true)

	state, err := n.CheckForPassword(context.Background(), "private")

	require.NoError(t, err)
	assert.Equal(t, models.AuthAuthenticated, state)
	got, ok := vault.GetPassword("private")
	assert.True(t, ok)
	assert.Equal(t, "p1", got)
}

func TestCheckForPassword_RejectedThenCorrect(t *testing.T) {
	n, chatAdapter, prompter, vault := newTestNegotiator(t, 3)
	chatAdapter.EXPECT().ProbeRead(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(gate).Times(3)

	gomock.InOrder(
		prompter.EXPECT().GetChannelPasswordFromUser(gomock.Any(), "private").DoAndReturn(
			func(context.Context, string) (string, bool) {
				return "p2", true
			}),
		prompter.EXPECT().GetChannelPasswordFromUser(gomock.Any(), "private").DoAndReturn(
			func(context.Context, string) (string, bool) {
				assert.Equal(t, models.AuthRejected, n.State("private"), "re-prompt happens after a rejection")
				return "p1", true
			}),
	)

	state, err := n.CheckForPassword(context.Background(), "private")

	require.NoError(t, err)
	assert.Equal(t, models.AuthAuthenticated, state)
	got, _ := vault.GetPassword("private")
	assert.Equal(t, "p1", got)
}

func TestCheckForPassword_CancelAborts(t *testing.T) {
	n, chatAdapter, prompter, vault := newTestNegotiator(t, 3)
	chatAdapter.EXPECT().ProbeRead(gomock.Any(), "private", "").Return(http.StatusUnauthorized, nil)
	prompter.EXPECT().GetChannelPasswordFromUser(gomock.Any(), "private").Return("", false)

	state, err := n.CheckForPassword(context.Background(), "private")

	require.NoError(t, err)
	assert.Equal(t, models.AuthAborted, state)
	assert.True(t, state.IsTerminal())
	_, ok := vault.GetPassword("private")
	assert.False(t, ok, "cancel writes no vault entry")
}

func TestCheckForPassword_BoundedAttempts(t *testing.T) {
	n, chatAdapter, prompter, vault := newTestNegotiator(t, 3)
	chatAdapter.EXPECT().ProbeRead(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(gate).Times(4)
	prompter.EXPECT().GetChannelPasswordFromUser(gomock.Any(), "private").Return("wrong", true).Times(3)

	state, err := n.CheckForPassword(context.Background(), "private")

	assert.ErrorIs(t, err, ErrAttemptsExhausted)
	assert.Equal(t, models.AuthAborted, state)
	_, ok := vault.GetPassword("private")
	assert.False(t, ok)
}

func TestCheckForPassword_ContextCancelledAborts(t *testing.T) {
	n, chatAdapter, prompter, _ := newTestNegotiator(t, 5)
	ctx, cancel := context.WithCancel(context.Background())

	chatAdapter.EXPECT().ProbeRead(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(gate).Times(2)
	prompter.EXPECT().GetChannelPasswordFromUser(gomock.Any(), "private").DoAndReturn(
		func(context.Context, string) (string, bool) {
			cancel()
			return "wrong", true
		})

	state, err := n.CheckForPassword(ctx, "private")

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, models.AuthAborted, state)
}

func TestCheckForPassword_VaultShortCircuit(t *testing.T) {
	n, chatAdapter, _, vault := newTestNegotiator(t, 3)
	vault.SetPassword("private", "p1")
	chatAdapter.EXPECT().ProbeRead(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(gate).Times(2)

	state, err := n.CheckForPassword(context.Background(), "private")

	require.NoError(t, err)
	assert.Equal(t, models.AuthAuthenticated, state)
}

func TestCheckForPassword_StaleVaultPasswordPrompts(t *testing.T) {
	n, chatAdapter, prompter, vault := newTestNegotiator(t, 3)
	vault.SetPassword("private", "old")
	chatAdapter.EXPECT().ProbeRead(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(gate).Times(3)
	prompter.EXPECT().GetChannelPasswordFromUser(gomock.Any(), "private").Return("p1", true)

	state, err := n.CheckForPassword(context.Background(), "private")

	require.NoError(t, err)
	assert.Equal(t, models.AuthAuthenticated, state)
	got, _ := vault.GetPassword("private")
	assert.Equal(t, "p1", got)
}

func TestCheckForPassword_ProbeErrorLeavesUnchecked(t *testing.T) {
	n, chatAdapter, _, _ := newTestNegotiator(t, 3)
	chatAdapter.EXPECT().ProbeRead(gomock.Any(), "private", "").Return(0, errors.New("timeout"))

	state, err := n.CheckForPassword(context.Background(), "private")

	require.Error(t, err)
	assert.Equal(t, models.AuthUnchecked, state)
}

func TestCheckForPassword_SingleFlightPerChannel(t *testing.T) {
	n, chatAdapter, prompter, _ := newTestNegotiator(t, 3)
	chatAdapter.EXPECT().ProbeRead(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(gate).Times(2)

	prompted := make(chan struct{})
	release := make(chan struct{})
	prompter.EXPECT().GetChannelPasswordFromUser(gomock.Any(), "private").DoAndReturn(
		func(context.Context, string) (string, bool) {
			close(prompted)
			<-release
			return "p1", true
		}).Times(1)

	done := make(chan models.AuthState)
	go func() {
		state, _ := n.CheckForPassword(context.Background(), "private")
		done <- state
	}()

	<-prompted
	state, err := n.CheckForPassword(context.Background(), "private")
	assert.ErrorIs(t, err, ErrChallengeInProgress)
	assert.Equal(t, models.AuthPendingInput, state)

	close(release)
	select {
	case state = <-done:
		assert.Equal(t, models.AuthAuthenticated, state)
	case <-time.After(time.Second):
		t.Fatal("challenge did not finish")
	}
}

func TestNewChannelAuthNegotiator_DefaultAttempts(t *testing.T) {
	n, _, _, _ := newTestNegotiator(t, 0)
	assert.Equal(t, config.DefaultMaxAttempts, n.maxAttempts)
}
