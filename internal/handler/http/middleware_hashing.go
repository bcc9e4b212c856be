// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"io"
	"net/http"

	"github.com/MKhiriev/go-cipher-chat/internal/logger"
	"github.com/MKhiriev/go-cipher-chat/internal/utils"
)

// bodyHashing checks the HashSHA256 header against an HMAC of the raw body
// when the relay has a hash key. Requests without the header are let
// through.
func (h *Handler) bodyHashing(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sum := r.Header.Get(utils.HashHeader)
		if !h.hasher.Enabled() || sum == "" {
			next.ServeHTTP(w, r)
			return
		}

		log := logger.FromRequest(r)
		log.Debug().Str("func", "*Handler.bodyHashing").Msg("checking hash begins")

		// read bytes from body
		body, err := io.ReadAll(r.Body)
		if err != nil {
			log.Err(err).Str("func", "*Handler.bodyHashing").Msg("failed to read request body")
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		// restore request body
		r.Body = io.NopCloser(bytes.NewReader(body))

		if !h.hasher.Verify(body, sum) {
			log.Error().Str("func", "*Handler.bodyHashing").
				Str("hash from request", sum).
				Str("hashed body", h.hasher.HashHex(body)).
				Msg("hashes are not equal")
			utils.WriteError(w, MsgIntegrityCheck, http.StatusBadRequest)
			return
		}

		next.ServeHTTP(w, r)
	})
}
