// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/lipgloss"

var (
	appStyle         = lipgloss.NewStyle().Padding(1, 2)
	titleStyle       = lipgloss.NewStyle().Bold(true)
	helpStyle        = lipgloss.NewStyle().Faint(true)
	errorStyle       = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#cc0000"))
	undecryptedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff0000"))
	timeStyle        = lipgloss.NewStyle().Faint(true)
	ownStyle         = lipgloss.NewStyle().Align(lipgloss.Right)
	overlayBoxStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
	labelStyle       = lipgloss.NewStyle().Width(10)
)
