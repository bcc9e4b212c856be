// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-cipher-chat/internal/app"
	"github.com/MKhiriev/go-cipher-chat/models"
	"github.com/charmbracelet/bubbles/textinput"
)

var errInvalidInterval = errors.New(app.MsgInvalidInterval)

type errorOverlayModel struct {
	message string
}

func (m errorOverlayModel) View() string {
	return overlayBoxStyle.Render(errorStyle.Render("Error") + "\n\n" + m.message + "\n\nenter / esc close")
}

// passwordPrompt is the modal asking for a channel password.
type passwordPrompt struct {
	channel string
	reply   chan passwordReply
	input   textinput.Model
	err     string
}

func newPasswordPrompt(req passwordRequestMsg) *passwordPrompt {
	in := textinput.New()
	in.EchoMode = textinput.EchoPassword
	in.EchoCharacter = '•'
	in.Placeholder = "password"
	in.Focus()
	return &passwordPrompt{channel: req.channel, reply: req.reply, input: in}
}

// confirm answers the request unless the value is empty, in which case the
// prompt stays open with an error.
func (p *passwordPrompt) confirm() bool {
	v := p.input.Value()
	if v == "" {
		p.err = app.MsgPasswordRequired
		return false
	}
	p.reply <- passwordReply{password: v, ok: true}
	return true
}

func (p *passwordPrompt) cancel() {
	p.reply <- passwordReply{}
}

func (p *passwordPrompt) View() string {
	var b strings.Builder
	fmt.Fprintf(&b, app.MsgChannelPasswordPrompt, p.channel)
	b.WriteString("\n\n")
	b.WriteString(p.input.View())
	if p.err != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(p.err))
	}
	b.WriteString("\n\nenter confirm • esc cancel")
	return overlayBoxStyle.Render(b.String())
}

// settingsForm edits the polling interval in milliseconds and the channel.
type settingsForm struct {
	interval textinput.Model
	channel  textinput.Model
	focus    int
	err      string
}

func newSettingsForm(interval time.Duration, channel string) *settingsForm {
	iv := textinput.New()
	iv.Placeholder = "1000"
	iv.SetValue(strconv.FormatInt(interval.Milliseconds(), 10))
	iv.Focus()

	ch := textinput.New()
	ch.Placeholder = "default"
	ch.SetValue(channel)

	return &settingsForm{interval: iv, channel: ch}
}

func (f *settingsForm) toggle() {
	f.focus = 1 - f.focus
	if f.focus == 0 {
		f.interval.Focus()
		f.channel.Blur()
		return
	}
	f.channel.Focus()
	f.interval.Blur()
}

// values parses the form. A blank channel becomes the default one.
func (f *settingsForm) values() (time.Duration, string, error) {
	ms, err := strconv.ParseInt(strings.TrimSpace(f.interval.Value()), 10, 64)
	if err != nil || ms <= 0 {
		return 0, "", errInvalidInterval
	}

	channel := strings.TrimSpace(f.channel.Value())
	if channel == "" {
		channel = models.DefaultChannel
	}
	return time.Duration(ms) * time.Millisecond, channel, nil
}

func (f *settingsForm) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Settings"))
	b.WriteString("\n\n")
	b.WriteString(labelStyle.Render("Interval") + f.interval.View() + " ms\n")
	b.WriteString(labelStyle.Render("Channel") + f.channel.View())
	if f.err != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(f.err))
	}
	b.WriteString("\n\nenter save • tab switch • esc cancel")
	return overlayBoxStyle.Render(b.String())
}
