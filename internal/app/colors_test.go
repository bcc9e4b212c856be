// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// ── hslToHex ──────────────────────────────────────────────────────────────────

func TestHSLToHex(t *testing.T) {
	tests := []struct {
		h, s, l float64
		want    string
	}{
		{0, 1, 0.5, "#ff0000"},
		{120, 1, 0.5, "#00ff00"},
		{240, 1, 0.5, "#0000ff"},
		{0, 0, 0, "#000000"},
		{0, 0, 1, "#ffffff"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, hslToHex(tt.h, tt.s, tt.l))
		})
	}
}

// ── NameColor ─────────────────────────────────────────────────────────────────

func TestNameColor(t *testing.T) {
	tests := []struct {
		name string
		hue  float64
	}{
		{name: "a", hue: 97},
		{name: "bob", hue: 157},
		{name: "alice", hue: 0},
		{name: "a long name that overflows", hue: 40},
		{name: "", hue: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, hslToHex(tt.hue, 0.6, 0.3), NameColor(tt.name))
		})
	}
}

func TestNameColor_Stable(t *testing.T) {
	assert.Equal(t, NameColor("mallory"), NameColor("mallory"))
}

// ── FormatTime ────────────────────────────────────────────────────────────────

func TestFormatTime(t *testing.T) {
	ts := time.Date(2026, 3, 4, 21, 7, 9, 0, time.Local).Unix()
	assert.Equal(t, "21:07:09", FormatTime(ts))
}
