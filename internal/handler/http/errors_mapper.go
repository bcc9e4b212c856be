// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-cipher-chat/internal/service"
	"github.com/MKhiriev/go-cipher-chat/internal/store"
	"github.com/MKhiriev/go-cipher-chat/internal/validators"
	"github.com/MKhiriev/go-cipher-chat/models"
)

const (
	MsgFieldsRequired = "Name, message and channel fields are required."
	MsgDatabaseError  = "Database error."
	MsgUnauthorized   = "Unauthorized: Invalid or missing token."
	MsgIntegrityCheck = "Integrity check failed."
	msgNoChannelFmt   = "There is no %s channel."
)

var errorStatusMap = map[error]int{
	validators.ErrValidation:     http.StatusBadRequest,
	service.ErrChannelNotAllowed: http.StatusNotFound,
	service.ErrUnauthorized:      http.StatusUnauthorized,

	store.ErrExecutingQuery: http.StatusInternalServerError,
	store.ErrScanningRows:   http.StatusInternalServerError,
	store.ErrRedis:          http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// responseFromError picks the status and the client-facing message of a
// failed send.
func responseFromError(err error, req models.SendRequest) (int, string) {
	status := statusFromError(err)
	switch status {
	case http.StatusBadRequest:
		return status, MsgFieldsRequired
	case http.StatusNotFound:
		return status, fmt.Sprintf(msgNoChannelFmt, strings.TrimSpace(req.Channel))
	case http.StatusUnauthorized:
		return status, MsgUnauthorized
	default:
		return status, MsgDatabaseError
	}
}
