// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-cipher-chat/internal/logger"
	"github.com/MKhiriev/go-cipher-chat/internal/utils"
	"github.com/MKhiriev/go-cipher-chat/models"
)

// read serves the channel log from the requested offset. The relay never
// fails a read: storage errors produce an empty list.
func (h *Handler) read(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	query := r.URL.Query()
	from, err := strconv.ParseInt(query.Get("from"), 10, 64)
	if err != nil || from < 0 {
		from = 0
	}

	messages, err := h.services.ChatService.Read(r.Context(), models.ReadRequest{
		Channel: query.Get("channel"),
		From:    from,
	})
	if err != nil {
		log.Err(err).Str("func", "*Handler.read").Msg("error reading messages")
		messages = nil
	}
	if messages == nil {
		messages = []models.Message{}
	}

	utils.WriteJSON(w, messages, http.StatusOK)
}

func (h *Handler) send(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.SendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.send").Msg("invalid JSON passed")
		utils.WriteError(w, MsgFieldsRequired, http.StatusBadRequest)
		return
	}

	if err := h.services.ChatService.Send(r.Context(), req); err != nil {
		log.Err(err).Str("func", "*Handler.send").Msg("error sending message")
		status, message := responseFromError(err, req)
		utils.WriteError(w, message, status)
		return
	}

	utils.WriteJSON(w, models.SendResponse{Success: true}, http.StatusOK)
}
