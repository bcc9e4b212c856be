// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	send     key.Binding
	next     key.Binding
	prev     key.Binding
	settings key.Binding
	copy     key.Binding
	pageUp   key.Binding
	pageDown key.Binding
	cancel   key.Binding
	quit     key.Binding
}

var keys = keyMap{
	send:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "send")),
	next:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
	prev:     key.NewBinding(key.WithKeys("shift+tab")),
	settings: key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "settings")),
	copy:     key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("ctrl+y", "copy last")),
	pageUp:   key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup/pgdn", "scroll")),
	pageDown: key.NewBinding(key.WithKeys("pgdown")),
	cancel:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	quit:     key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.send, k.next, k.settings, k.copy, k.pageUp, k.quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp(), {k.cancel}}
}
