// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"net/url"
	"strings"
)

// validate checks the merged [StructuredConfig] for values that are invalid
// for every role. Role specific checks live in the view validators.
func (cfg *StructuredConfig) validate() error {
	if cfg.Adapter.RequestTimeout < 0 || cfg.Server.RequestTimeout < 0 {
		return ErrInvalidAdapterConfigs
	}
	if cfg.Workers.PollInterval < 0 || cfg.Workers.DebounceDelay < 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	u, err := url.Parse(cfg.Adapter.HTTPAddress)
	if cfg.Adapter.HTTPAddress == "" || err != nil || (u.Scheme != "" && u.Scheme != "http" && u.Scheme != "https") {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.PollInterval <= 0 || cfg.Workers.DebounceDelay <= 0 {
		return ErrInvalidWorkerConfigs
	}

	if cfg.Auth.MaxAttempts < 1 {
		return ErrInvalidAuthConfigs
	}

	if cfg.App.UI != UITerminal && cfg.App.UI != UILine {
		return ErrInvalidAppConfigs
	}

	if strings.TrimSpace(cfg.Chat.DefaultChannel) == "" {
		return ErrInvalidChatConfigs
	}

	return nil
}

func (cfg *ServerConfig) validate() error {
	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	switch cfg.Storage.Driver {
	case "sqlite", "postgres":
		if cfg.Storage.DB.DSN == "" {
			return ErrInvalidStorageConfigs
		}
	case "redis":
		if cfg.Storage.Redis.Address == "" {
			return ErrInvalidStorageConfigs
		}
	default:
		return ErrInvalidStorageConfigs
	}

	if strings.TrimSpace(cfg.Chat.DefaultChannel) == "" {
		return ErrInvalidChatConfigs
	}

	return nil
}
