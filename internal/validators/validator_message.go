// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-cipher-chat/models"
)

const (
	FieldName     = "name"
	FieldPassword = "password"
	FieldMessage  = "message"
	FieldChannel  = "channel"
	FieldFrom     = "from"
)

// MessageValidator validates chat drafts on the client and send/read
// requests on the relay. Blank means empty after trimming whitespace.
type MessageValidator struct {
}

func NewMessageValidator() Validator {
	return &MessageValidator{}
}

func (v *MessageValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Draft:
		return v.validateDraft(value, fields...)
	case *models.Draft:
		return v.validateDraft(*value, fields...)

	case models.SendRequest:
		return v.validateSendRequest(value, fields...)
	case *models.SendRequest:
		return v.validateSendRequest(*value, fields...)

	case models.ReadRequest:
		return v.validateReadRequest(value, fields...)
	case *models.ReadRequest:
		return v.validateReadRequest(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateDraft checks name, password and message; the channel comes from
// settings and is checked only when asked for.
func (v *MessageValidator) validateDraft(draft models.Draft, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldPassword, FieldMessage}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if isBlank(draft.Name) {
				return ErrEmptyName
			}
		case FieldPassword:
			if draft.Password == "" {
				return ErrEmptyPassword
			}
		case FieldMessage:
			if isBlank(draft.Text) {
				return ErrEmptyMessage
			}
		case FieldChannel:
			if isBlank(draft.Channel) {
				return ErrEmptyChannel
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *MessageValidator) validateSendRequest(request models.SendRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldMessage, FieldChannel}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if isBlank(request.Name) {
				return ErrEmptyName
			}
		case FieldMessage:
			if isBlank(request.Message) {
				return ErrEmptyMessage
			}
		case FieldChannel:
			if isBlank(request.Channel) {
				return ErrEmptyChannel
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *MessageValidator) validateReadRequest(request models.ReadRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldChannel, FieldFrom}
	}

	for _, f := range fields {
		switch f {
		case FieldChannel:
			if isBlank(request.Channel) {
				return ErrEmptyChannel
			}
		case FieldFrom:
			if request.From < 0 {
				return ErrNegativeFrom
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
