// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/MKhiriev/go-cipher-chat/internal/logger"
	"github.com/MKhiriev/go-cipher-chat/internal/service"
	"github.com/MKhiriev/go-cipher-chat/internal/utils"
)

// channelGate enforces the per-channel bearer gate.
//
// The channel is taken from the query string of a GET and from the JSON body
// of any other method; the body is restored for the next handler. Channels
// without a configured password pass through. The resolved channel is stored
// in the request context under [utils.ChannelCtxKey].
func (h *Handler) channelGate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		channel, err := channelFromRequest(r)
		if err != nil {
			log.Err(err).Str("func", "*Handler.channelGate").Msg("failed to read request body")
			utils.WriteError(w, MsgFieldsRequired, http.StatusBadRequest)
			return
		}

		ctx := r.Context()
		err = h.services.ChatService.Authorize(ctx, channel, r.Header.Get(utils.AuthorizationHeader))
		if err != nil {
			if errors.Is(err, service.ErrUnauthorized) {
				log.Warn().Str("channel", channel).Msg("channel gate rejected request")
				utils.WriteError(w, MsgUnauthorized, http.StatusUnauthorized)
				return
			}
			log.Err(err).Str("func", "*Handler.channelGate").Msg("error authorizing channel")
			utils.WriteError(w, MsgDatabaseError, http.StatusInternalServerError)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithChannel(ctx, channel)))
	})
}

func channelFromRequest(r *http.Request) (string, error) {
	if r.Method == http.MethodGet {
		return r.URL.Query().Get("channel"), nil
	}
	if r.Body == nil {
		return "", nil
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		return "", err
	}
	// restore request body
	r.Body = io.NopCloser(bytes.NewReader(body))

	var req struct {
		Channel string `json:"channel"`
	}
	// a malformed body is reported by the handler itself
	_ = json.Unmarshal(body, &req)

	return req.Channel, nil
}
