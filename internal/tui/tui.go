// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"

	"github.com/MKhiriev/go-cipher-chat/internal/logger"
	"github.com/MKhiriev/go-cipher-chat/internal/service"
	"github.com/MKhiriev/go-cipher-chat/internal/session"
	"github.com/MKhiriev/go-cipher-chat/models"
	tea "github.com/charmbracelet/bubbletea"
)

// TUI runs the chat screen. The engine must have been built with the
// bridge returned by [TUI.Bridge] as its view and prompter.
type TUI struct {
	bridge    *Bridge
	engine    service.SyncEngine
	session   *session.Session
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(bridge *Bridge, engine service.SyncEngine, sess *session.Session, info models.AppBuildInfo, log *logger.Logger) *TUI {
	return &TUI{
		bridge:    bridge,
		engine:    engine,
		session:   sess,
		buildInfo: info,
		logger:    log,
	}
}

// Run blocks until the user quits or ctx is done. Background work started
// by the engine is stopped before Run returns.
func (t *TUI) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	defer t.engine.Cleanup()

	model := newChatModel(ctx, t.engine, t.session, t.buildInfo)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	t.bridge.attach(p.Send)
	go t.bridge.run(ctx)

	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		t.logger.Err(err).Str("func", "*TUI.Run").Msg("terminal program failed")
		return err
	}
	return nil
}
