// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/MKhiriev/go-cipher-chat/internal/app"
	"github.com/MKhiriev/go-cipher-chat/internal/service"
	"github.com/MKhiriev/go-cipher-chat/internal/session"
	"github.com/MKhiriev/go-cipher-chat/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	focusName = iota
	focusPassword
	focusMessage
	focusCount
)

// chromeHeight is the number of lines around the message log.
const chromeHeight = 10

type chatModel struct {
	ctx       context.Context
	engine    service.SyncEngine
	session   *session.Session
	buildInfo models.AppBuildInfo

	inputs [focusCount]textinput.Model
	focus  int

	viewport viewport.Model
	help     help.Model
	width    int

	messages []models.DecryptedMessage

	prompt   *passwordPrompt
	settings *settingsForm
	overlay  *errorOverlayModel
	status   string

	copyText func(string) error
}

func newChatModel(ctx context.Context, engine service.SyncEngine, sess *session.Session, info models.AppBuildInfo) chatModel {
	name := textinput.New()
	name.Placeholder = "name"
	name.CharLimit = 64
	name.SetValue(sess.RememberedName())

	password := textinput.New()
	password.Placeholder = "channel password"
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'
	password.SetValue(sess.RememberedPassword())

	message := textinput.New()
	message.Placeholder = "message"
	message.Focus()

	return chatModel{
		ctx:       ctx,
		engine:    engine,
		session:   sess,
		buildInfo: info,
		inputs:    [focusCount]textinput.Model{name, password, message},
		focus:     focusMessage,
		viewport:  viewport.New(80, 20),
		help:      help.New(),
		copyText:  clipboard.WriteAll,
	}
}

func (m chatModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.cmdRestart())
}

func (m chatModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width - appStyle.GetHorizontalFrameSize()
		m.viewport.Width = m.width
		m.viewport.Height = max(msg.Height-chromeHeight, 1)
		for i := range m.inputs {
			m.inputs[i].Width = max(m.width-12, 10)
		}
		m.refreshLog(false)
		return m, nil

	case resetMessagesMsg:
		m.messages = nil
		m.refreshLog(true)
		return m, nil
	case appendMessagesMsg:
		m.messages = append(m.messages, msg.messages...)
		m.refreshLog(true)
		return m, nil
	case replaceMessagesMsg:
		m.messages = msg.messages
		m.refreshLog(false)
		return m, nil
	case clearInputMsg:
		m.inputs[focusMessage].SetValue("")
		m.status = ""
		return m, nil
	case sendErrorMsg:
		m.overlay = &errorOverlayModel{message: app.MsgSendFailed + ": " + app.HumanizeError(msg.err)}
		return m, nil

	case passwordRequestMsg:
		if m.prompt != nil {
			m.prompt.cancel()
		}
		m.prompt = newPasswordPrompt(msg)
		m.status = app.MsgAuthRequired
		return m, nil
	case passwordWithdrawnMsg:
		if m.prompt != nil && m.prompt.reply == msg.reply {
			m.prompt = nil
		}
		return m, nil

	case sendDoneMsg:
		if errors.Is(msg.err, service.ErrAuthRequired) {
			m.status = app.MsgAuthRequired
		}
		return m, nil
	case restartDoneMsg:
		m.status = statusFromFetch(msg.err)
		return m, nil
	case settingsDoneMsg:
		if msg.err != nil {
			m.overlay = &errorOverlayModel{message: app.HumanizeError(msg.err)}
			return m, nil
		}
		m.status = app.MsgSettingsSaved
		return m, nil
	case statusMsg:
		m.status = msg.text
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, keys.quit) {
			if m.prompt != nil {
				m.prompt.cancel()
				m.prompt = nil
			}
			return m, tea.Quit
		}
		switch {
		case m.prompt != nil:
			return m.updatePrompt(msg)
		case m.settings != nil:
			return m.updateSettings(msg)
		case m.overlay != nil:
			if key.Matches(msg, keys.send) || key.Matches(msg, keys.cancel) {
				m.overlay = nil
			}
			return m, nil
		}
		return m.updateChat(msg)
	}

	return m, nil
}

func (m chatModel) updatePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.send):
		if m.prompt.confirm() {
			m.prompt = nil
			m.status = ""
		}
		return m, nil
	case key.Matches(msg, keys.cancel):
		m.prompt.cancel()
		m.prompt = nil
		m.status = app.MsgAuthAborted
		return m, nil
	}

	var cmd tea.Cmd
	m.prompt.input, cmd = m.prompt.input.Update(msg)
	m.prompt.err = ""
	return m, cmd
}

func (m chatModel) updateSettings(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.send):
		interval, channel, err := m.settings.values()
		if err != nil {
			m.settings.err = err.Error()
			return m, nil
		}
		m.settings = nil
		return m, m.cmdUpdateSettings(interval, channel)
	case key.Matches(msg, keys.next), key.Matches(msg, keys.prev):
		m.settings.toggle()
		return m, nil
	case key.Matches(msg, keys.cancel):
		m.settings = nil
		return m, nil
	}

	var cmd tea.Cmd
	if m.settings.focus == 0 {
		m.settings.interval, cmd = m.settings.interval.Update(msg)
	} else {
		m.settings.channel, cmd = m.settings.channel.Update(msg)
	}
	return m, cmd
}

func (m chatModel) updateChat(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.send):
		return m, m.cmdSend(models.Draft{
			Name:     strings.TrimSpace(m.inputs[focusName].Value()),
			Password: m.inputs[focusPassword].Value(),
			Text:     m.inputs[focusMessage].Value(),
		})
	case key.Matches(msg, keys.next):
		m.setFocus((m.focus + 1) % focusCount)
		return m, nil
	case key.Matches(msg, keys.prev):
		m.setFocus((m.focus + focusCount - 1) % focusCount)
		return m, nil
	case key.Matches(msg, keys.settings):
		st := m.session.Settings()
		m.settings = newSettingsForm(st.MessageInterval, st.Channel)
		return m, nil
	case key.Matches(msg, keys.copy):
		m.status = m.copyLast()
		return m, nil
	case key.Matches(msg, keys.pageUp), key.Matches(msg, keys.pageDown):
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	before := m.inputs[focusPassword].Value()
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	if after := m.inputs[focusPassword].Value(); after != before {
		m.engine.HandlePasswordChange(after)
	}
	return m, cmd
}

func (m *chatModel) setFocus(i int) {
	m.inputs[m.focus].Blur()
	m.focus = i
	m.inputs[m.focus].Focus()
}

// copyLast puts the newest decrypted text on the clipboard.
func (m chatModel) copyLast() string {
	for i := len(m.messages) - 1; i >= 0; i-- {
		if m.messages[i].Undecryptable {
			continue
		}
		if err := m.copyText(m.messages[i].Text); err != nil {
			return err.Error()
		}
		return app.MsgCopied
	}
	return app.MsgNothingToCopy
}

func (m *chatModel) refreshLog(follow bool) {
	atBottom := m.viewport.AtBottom()
	m.viewport.SetContent(renderMessages(m.messages, strings.TrimSpace(m.inputs[focusName].Value()), m.width))
	if follow || atBottom {
		m.viewport.GotoBottom()
	}
}

func (m chatModel) cmdSend(draft models.Draft) tea.Cmd {
	return func() tea.Msg {
		return sendDoneMsg{err: m.engine.SendMessage(m.ctx, draft)}
	}
}

func (m chatModel) cmdRestart() tea.Cmd {
	return func() tea.Msg {
		return restartDoneMsg{err: m.engine.RestartFetchInterval(m.ctx)}
	}
}

func (m chatModel) cmdUpdateSettings(interval time.Duration, channel string) tea.Cmd {
	return func() tea.Msg {
		return settingsDoneMsg{err: m.engine.UpdateSettings(m.ctx, interval, channel)}
	}
}

func statusFromFetch(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, service.ErrAuthRequired):
		return app.MsgAuthRequired
	case errors.Is(err, service.ErrAttemptsExhausted), errors.Is(err, context.Canceled):
		return app.MsgAuthAborted
	default:
		return app.HumanizeError(err)
	}
}

func (m chatModel) View() string {
	var body string
	switch {
	case m.prompt != nil:
		body = m.prompt.View()
	case m.settings != nil:
		body = m.settings.View()
	case m.overlay != nil:
		body = m.overlay.View()
	default:
		body = m.chatView()
	}
	return appStyle.Render(body)
}

func (m chatModel) chatView() string {
	var b strings.Builder

	header := titleStyle.Render("#" + m.session.Channel())
	if m.status != "" {
		header += "  " + helpStyle.Render(m.status)
	}
	b.WriteString(header)
	b.WriteString("\n\n")
	b.WriteString(m.viewport.View())
	b.WriteString("\n\n")

	labels := [focusCount]string{"Name", "Password", "Message"}
	rows := make([]string, 0, focusCount)
	for i, in := range m.inputs {
		rows = append(rows, labelStyle.Render(labels[i])+in.View())
	}
	b.WriteString(lipgloss.JoinVertical(lipgloss.Left, rows...))
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render(m.help.View(keys) + "  " + m.buildInfo.BuildVersion()))

	return b.String()
}
