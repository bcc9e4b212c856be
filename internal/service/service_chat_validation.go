// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/MKhiriev/go-cipher-chat/internal/config"
	"github.com/MKhiriev/go-cipher-chat/internal/validators"
	"github.com/MKhiriev/go-cipher-chat/models"
)

// ChatValidationService normalises and validates requests before handing
// them to the wrapped [ChatService].
type ChatValidationService struct {
	inner     ChatService
	validator validators.Validator

	defaultChannel  string
	onlyAllowed     bool
	allowedChannels []string
}

func NewChatValidationService(cfg config.Chat) ChatServiceWrapper {
	defaultChannel := strings.TrimSpace(cfg.DefaultChannel)
	if defaultChannel == "" {
		defaultChannel = models.DefaultChannel
	}

	allowed := make([]string, 0, len(cfg.AllowedChannels))
	for _, channel := range cfg.AllowedChannels {
		allowed = append(allowed, strings.TrimSpace(channel))
	}

	return &ChatValidationService{
		validator:       validators.NewMessageValidator(),
		defaultChannel:  defaultChannel,
		onlyAllowed:     cfg.OnlyAllowedChannels,
		allowedChannels: allowed,
	}
}

func (v *ChatValidationService) Wrap(inner ChatService) ChatService {
	wrapped := *v
	wrapped.inner = inner
	return &wrapped
}

// Read falls back to the default channel for a blank one and clamps a
// negative offset to 0.
func (v *ChatValidationService) Read(ctx context.Context, req models.ReadRequest) ([]models.Message, error) {
	req.Channel = v.channelOrDefault(req.Channel)
	if req.From < 0 {
		req.From = 0
	}

	if err := v.validator.Validate(ctx, req); err != nil {
		return nil, fmt.Errorf("error during read request validation: %w", err)
	}

	return v.inner.Read(ctx, req)
}

// Send trims every field, requires all three of them and enforces the
// allowed channel list.
func (v *ChatValidationService) Send(ctx context.Context, req models.SendRequest) error {
	req.Name = strings.TrimSpace(req.Name)
	req.Message = strings.TrimSpace(req.Message)
	req.Channel = strings.TrimSpace(req.Channel)

	if err := v.validator.Validate(ctx, req); err != nil {
		return fmt.Errorf("error during send request validation: %w", err)
	}

	if v.onlyAllowed && !slices.Contains(v.allowedChannels, req.Channel) {
		return fmt.Errorf("%w: %s", ErrChannelNotAllowed, req.Channel)
	}

	return v.inner.Send(ctx, req)
}

func (v *ChatValidationService) Authorize(ctx context.Context, channel, authorization string) error {
	return v.inner.Authorize(ctx, v.channelOrDefault(channel), authorization)
}

func (v *ChatValidationService) channelOrDefault(channel string) string {
	channel = strings.TrimSpace(channel)
	if channel == "" {
		return v.defaultChannel
	}
	return channel
}
