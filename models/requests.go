// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SendRequest is the body of POST /chat/send.
type SendRequest struct {
	Name    string `json:"name"`
	Message string `json:"message"`
	Channel string `json:"channel"`
}

// SendResponse is the body returned by POST /chat/send.
type SendResponse struct {
	Success bool   `json:"success,omitempty"`
	Error   string `json:"error,omitempty"`
}

// ErrorResponse is the body of every non-2xx relay response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ReadRequest holds the query of GET /chat/read.
type ReadRequest struct {
	Channel string
	From    int64
}
