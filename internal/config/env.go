// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from the environment through the `env` and `envPrefix`
// tags. Channel lists are written by hand in shell profiles, so the channel
// names in CHAT_ALLOWED_CHANNELS and CHAT_CHANNEL_PASSWORDS are trimmed and
// blank entries dropped.
func parseEnv(cfg *StructuredConfig) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	cfg.Chat.AllowedChannels = trimChannels(cfg.Chat.AllowedChannels)
	cfg.Chat.ChannelPasswords = trimChannelKeys(cfg.Chat.ChannelPasswords)

	return nil
}

func trimChannels(channels []string) []string {
	if channels == nil {
		return nil
	}

	trimmed := make([]string, 0, len(channels))
	for _, ch := range channels {
		if ch = strings.TrimSpace(ch); ch != "" {
			trimmed = append(trimmed, ch)
		}
	}
	return trimmed
}

func trimChannelKeys(passwords map[string]string) map[string]string {
	if passwords == nil {
		return nil
	}

	trimmed := make(map[string]string, len(passwords))
	for ch, password := range passwords {
		if ch = strings.TrimSpace(ch); ch != "" {
			trimmed[ch] = password
		}
	}
	return trimmed
}
