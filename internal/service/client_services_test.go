// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
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

type frontendMock struct {
	*mock.MockMessageView
	*mock.MockPasswordPrompter
}

func TestNewClientServices(t *testing.T) {
	ctrl := gomock.NewController(t)
	sess := session.New(context.Background(), nil, models.DefaultSettings(), logger.Nop())

	svcs := NewClientServices(
		mock.NewMockChatAdapter(ctrl),
		sess,
		frontendMock{mock.NewMockMessageView(ctrl), mock.NewMockPasswordPrompter(ctrl)},
		&config.ClientConfig{
			Workers: config.ClientWorkers{PollInterval: time.Second, DebounceDelay: time.Millisecond},
			Auth:    config.ClientAuth{MaxAttempts: 3},
		},
		logger.Nop(),
	)
	require.NotNil(t, svcs)
	t.Cleanup(svcs.SyncEngine.Cleanup)

	assert.NotNil(t, svcs.Negotiator)
	assert.NotNil(t, svcs.SyncEngine)
	assert.Equal(t, models.AuthUnchecked, svcs.Negotiator.State(models.DefaultChannel))
	assert.Zero(t, svcs.SyncEngine.LastIndex())
}
