// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// Client front-ends.
const (
	UITerminal = "tui"
	UILine     = "cli"
)

// ClientApp holds client-side application settings.
type ClientApp struct {
	// HashKey is the HMAC key used to sign outgoing send requests.
	HashKey string
	// UI is the selected front-end ("tui" or "cli").
	UI string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the relay base URL.
	HTTPAddress string
	// RequestTimeout limits outbound requests; zero disables the limit.
	RequestTimeout time.Duration
}

// ClientStorage holds the location of remembered client settings.
type ClientStorage struct {
	// SettingsPath is the sqlite file with remembered settings; empty keeps
	// them in memory.
	SettingsPath string
}

// ClientWorkers contains sync engine timings.
type ClientWorkers struct {
	// PollInterval is the default polling interval.
	PollInterval time.Duration
	// DebounceDelay delays bulk re-decryption after password edits.
	DebounceDelay time.Duration
}

// ClientAuth contains channel challenge settings.
type ClientAuth struct {
	// MaxAttempts bounds the number of rejected passwords per challenge.
	MaxAttempts int
}

// ClientChat contains client channel defaults.
type ClientChat struct {
	// DefaultChannel is used until the user picks another one.
	DefaultChannel string
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
	Workers ClientWorkers
	Auth    ClientAuth
	Chat    ClientChat
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := cfg.clientView()
	return clientCfg, clientCfg.validate()
}

func (cfg *StructuredConfig) clientView() *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			HashKey: cfg.App.HashKey,
			UI:      cfg.App.ClientUI,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{SettingsPath: cfg.Storage.SettingsPath},
		Workers: ClientWorkers{
			PollInterval:  cfg.Workers.PollInterval,
			DebounceDelay: cfg.Workers.DebounceDelay,
		},
		Auth: ClientAuth{MaxAttempts: cfg.Auth.MaxAttempts},
		Chat: ClientChat{DefaultChannel: cfg.Chat.DefaultChannel},
	}
}
