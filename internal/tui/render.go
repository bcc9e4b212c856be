// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-cipher-chat/internal/app"
	"github.com/MKhiriev/go-cipher-chat/models"
	"github.com/charmbracelet/lipgloss"
)

// renderMessage formats one line of the log. Lines written under own are
// right-aligned to width.
func renderMessage(msg models.DecryptedMessage, own string, width int) string {
	name := lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.Color(app.NameColor(msg.Name))).
		Render(msg.Name)

	text := msg.Text
	if msg.Undecryptable {
		text = undecryptedStyle.Render(app.MsgUndecryptable)
	}

	line := fmt.Sprintf("%s %s: %s", timeStyle.Render(app.FormatTime(msg.Timestamp)), name, text)
	if own != "" && msg.Name == own && width > 0 {
		return ownStyle.Width(width).Render(line)
	}
	return line
}

func renderMessages(messages []models.DecryptedMessage, own string, width int) string {
	lines := make([]string, 0, len(messages))
	for _, msg := range messages {
		lines = append(lines, renderMessage(msg, own, width))
	}
	return strings.Join(lines, "\n")
}
