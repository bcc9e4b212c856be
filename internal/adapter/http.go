// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-cipher-chat/internal/config"
	"github.com/MKhiriev/go-cipher-chat/internal/logger"
	"github.com/MKhiriev/go-cipher-chat/internal/utils"
	"github.com/MKhiriev/go-cipher-chat/models"
	"github.com/go-resty/resty/v2"
)

const (
	readPath  = "/chat/read"
	sendPath  = "/chat/send"
	traceHdr  = "X-Trace-ID"
	jsonCType = "application/json"
)

type httpChatAdapter struct {
	client *utils.HTTPClient
	hasher *utils.Hasher

	logger *logger.Logger
}

// NewHTTPChatAdapter constructs an HTTP implementation of [ChatAdapter].
// It normalises the base URL from adapterCfg.HTTPAddress and, when
// appCfg.HashKey is set, signs every send body with a HashSHA256 header.
func NewHTTPChatAdapter(adapterCfg config.ClientAdapter, appCfg config.ClientApp, logger *logger.Logger) (ChatAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpChatAdapter{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		hasher: utils.NewHasher(appCfg.HashKey),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// ReadMessages implements [ChatAdapter]. It issues
// GET /chat/read?from=<from>&channel=<channel>.
func (h *httpChatAdapter) ReadMessages(ctx context.Context, channel string, from int64, password string) ([]models.Message, error) {
	var messages []models.Message

	resp, err := h.request(ctx, password).
		SetQueryParams(map[string]string{
			"from":    strconv.FormatInt(from, 10),
			"channel": channel,
		}).
		SetResult(&messages).
		Get(readPath)
	if err != nil {
		return nil, fmt.Errorf("read request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		h.logger.Debug().Err(err).Str("channel", channel).Int64("from", from).Msg("read rejected")
		return nil, err
	}

	for i := range messages {
		messages[i].Channel = channel
	}
	if messages == nil {
		messages = []models.Message{}
	}

	return messages, nil
}

// SendMessage implements [ChatAdapter]. It POSTs req to /chat/send. A 200
// response whose body lacks success=true is reported as [ErrSendRejected].
func (h *httpChatAdapter) SendMessage(ctx context.Context, req models.SendRequest, password string) error {
	body, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("encode send request: %w", err)
	}

	var result models.SendResponse

	r := h.request(ctx, password).
		SetHeader("Content-Type", jsonCType).
		SetBody(body).
		SetResult(&result)
	if h.hasher.Enabled() {
		r.SetHeader(utils.HashHeader, h.hasher.HashHex(body))
	}

	resp, err := r.Post(sendPath)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		h.logger.Debug().Err(err).Str("channel", req.Channel).Msg("send rejected")
		return err
	}

	if !result.Success {
		if result.Error != "" {
			return fmt.Errorf("%w: %s", ErrSendRejected, result.Error)
		}
		return ErrSendRejected
	}

	return nil
}

// ProbeRead implements [ChatAdapter].
func (h *httpChatAdapter) ProbeRead(ctx context.Context, channel string, password string) (int, error) {
	resp, err := h.request(ctx, password).
		SetQueryParams(map[string]string{
			"from":    "0",
			"channel": channel,
		}).
		Get(readPath)
	if err != nil {
		return 0, fmt.Errorf("probe request: %w", err)
	}

	return resp.StatusCode(), nil
}

func (h *httpChatAdapter) request(ctx context.Context, password string) *resty.Request {
	traceID, ok := utils.GetTraceIDFromContext(ctx)
	if !ok {
		traceID = utils.NewTraceID()
	}

	req := h.client.R().
		SetContext(ctx).
		SetHeader(traceHdr, traceID)
	if password != "" {
		req.SetHeader(utils.AuthorizationHeader, utils.BearerHeader(password))
	}
	return req
}
