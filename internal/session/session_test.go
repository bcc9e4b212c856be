// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-cipher-chat/internal/logger"
	"github.com/MKhiriev/go-cipher-chat/internal/mock"
	"github.com/MKhiriev/go-cipher-chat/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testDefaults = models.Settings{MessageInterval: time.Second, Channel: "default"}

func TestNew_WithoutRepository(t *testing.T) {
	s := New(context.Background(), nil, testDefaults, logger.Nop())

	assert.Equal(t, testDefaults, s.Settings())
	assert.Equal(t, "default", s.Channel())
	assert.Equal(t, time.Second, s.PollInterval())
	assert.NotNil(t, s.Vault())

	require.NoError(t, s.UpdateSettings(context.Background(), 2*time.Second, " lobby "))
	assert.Equal(t, "lobby", s.Channel())
}

func TestNew_LoadsStoredSettings(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockSettingsRepository(ctrl)

	stored := models.Settings{MessageInterval: 3 * time.Second, Channel: "private", RememberedName: "alice", RememberedPassword: "p1"}
	repo.EXPECT().LoadSettings(gomock.Any(), testDefaults).Return(stored, nil)

	s := New(context.Background(), repo, testDefaults, logger.Nop())

	assert.Equal(t, stored, s.Settings())
	assert.Equal(t, "alice", s.RememberedName())
	assert.Equal(t, "p1", s.RememberedPassword())
}

func TestNew_LoadErrorKeepsDefaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockSettingsRepository(ctrl)
	repo.EXPECT().LoadSettings(gomock.Any(), gomock.Any()).Return(models.Settings{}, errors.New("disk gone"))

	s := New(context.Background(), repo, testDefaults, logger.Nop())

	assert.Equal(t, testDefaults, s.Settings())
}

func TestUpdateSettings_PersistsSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockSettingsRepository(ctrl)
	repo.EXPECT().LoadSettings(gomock.Any(), gomock.Any()).Return(testDefaults, nil)
	repo.EXPECT().SaveSettings(gomock.Any(), models.Settings{MessageInterval: 500 * time.Millisecond, Channel: "ops"}).Return(nil)

	s := New(context.Background(), repo, testDefaults, logger.Nop())
	require.NoError(t, s.UpdateSettings(context.Background(), 500*time.Millisecond, "ops"))

	assert.Equal(t, 500*time.Millisecond, s.PollInterval())
	assert.Equal(t, "ops", s.Channel())
}

func TestUpdateSettings_Invalid(t *testing.T) {
	s := New(context.Background(), nil, testDefaults, logger.Nop())

	assert.ErrorIs(t, s.UpdateSettings(context.Background(), 0, "ops"), ErrInvalidSettings)
	assert.ErrorIs(t, s.UpdateSettings(context.Background(), time.Second, "   "), ErrInvalidSettings)
	assert.Equal(t, testDefaults, s.Settings())
}

func TestRemember_SaveErrorKeepsCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockSettingsRepository(ctrl)
	repo.EXPECT().LoadSettings(gomock.Any(), gomock.Any()).Return(testDefaults, nil)
	repo.EXPECT().SaveSettings(gomock.Any(), gomock.Any()).Return(errors.New("read-only"))

	s := New(context.Background(), repo, testDefaults, logger.Nop())
	err := s.Remember(context.Background(), "alice", "p1")

	require.Error(t, err)
	assert.Equal(t, "alice", s.RememberedName())
	assert.Equal(t, "p1", s.RememberedPassword())
}

func TestReset_ClearsVaultAndSettings(t *testing.T) {
	s := New(context.Background(), nil, testDefaults, logger.Nop())
	s.Vault().SetPassword("private", "p1")
	require.NoError(t, s.Remember(context.Background(), "alice", "p1"))

	require.NoError(t, s.Reset(context.Background()))

	_, ok := s.Vault().GetPassword("private")
	assert.False(t, ok)
	assert.Equal(t, testDefaults, s.Settings())
}
