// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-cipher-chat/internal/adapter"
	"github.com/MKhiriev/go-cipher-chat/internal/cli"
	"github.com/MKhiriev/go-cipher-chat/internal/config"
	"github.com/MKhiriev/go-cipher-chat/internal/logger"
	"github.com/MKhiriev/go-cipher-chat/internal/service"
	"github.com/MKhiriev/go-cipher-chat/internal/session"
	"github.com/MKhiriev/go-cipher-chat/internal/store"
	"github.com/MKhiriev/go-cipher-chat/internal/tui"
	"github.com/MKhiriev/go-cipher-chat/models"
)

// App is the chat client process.
type App struct {
	storages *store.ClientStorages
	session  *session.Session
	services *service.ClientServices
	frontend frontend
	restore  func()

	logger *logger.Logger
}

var _ Client = (*App)(nil)

func NewApp(ctx context.Context, cfg *config.ClientConfig, buildInfo models.AppBuildInfo, log *logger.Logger) (*App, error) {
	storages, err := store.NewClientStorages(ctx, cfg.Storage.SettingsPath, log)
	if err != nil {
		return nil, fmt.Errorf("create settings storage: %w", err)
	}

	chatAdapter, err := adapter.NewHTTPChatAdapter(cfg.Adapter, cfg.App, log)
	if err != nil {
		_ = storages.Close()
		return nil, fmt.Errorf("create chat adapter: %w", err)
	}

	sess := session.New(ctx, storages.SettingsRepository, defaultSettings(cfg), log)
	a := &App{
		storages: storages,
		session:  sess,
		restore:  func() {},
		logger:   log,
	}

	switch cfg.App.UI {
	case config.UILine:
		in, out, restore, err := cli.OpenStdio()
		if err != nil {
			_ = storages.Close()
			return nil, fmt.Errorf("open console: %w", err)
		}
		console := cli.NewConsole(in, out)
		a.services = service.NewClientServices(chatAdapter, sess, console, cfg, log)
		a.frontend = cli.New(console, a.services.SyncEngine, sess, buildInfo, log)
		a.restore = restore
	default:
		bridge := tui.NewBridge()
		a.services = service.NewClientServices(chatAdapter, sess, bridge, cfg, log)
		a.frontend = tui.New(bridge, a.services.SyncEngine, sess, buildInfo, log)
	}

	return a, nil
}

// defaultSettings seeds the session before anything remembered is loaded.
func defaultSettings(cfg *config.ClientConfig) models.Settings {
	s := models.DefaultSettings()
	if cfg.Workers.PollInterval > 0 {
		s.MessageInterval = cfg.Workers.PollInterval
	}
	if cfg.Chat.DefaultChannel != "" {
		s.Channel = cfg.Chat.DefaultChannel
	}
	return s
}

// Run blocks until the front-end exits. The settings store is closed and
// the terminal restored afterwards.
func (a *App) Run(ctx context.Context) error {
	defer a.restore()

	runErr := a.frontend.Run(ctx)
	closeErr := a.storages.Close()
	if closeErr != nil {
		a.logger.Err(closeErr).Str("func", "*App.Run").Msg("error closing settings storage")
	}

	return errors.Join(runErr, closeErr)
}
