// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/MKhiriev/go-cipher-chat/models"

type resetMessagesMsg struct{}

type appendMessagesMsg struct {
	messages []models.DecryptedMessage
}

type replaceMessagesMsg struct {
	messages []models.DecryptedMessage
}

type clearInputMsg struct{}

type sendErrorMsg struct {
	err error
}

type passwordReply struct {
	password string
	ok       bool
}

// passwordRequestMsg opens the password dialog; the answer goes to reply.
type passwordRequestMsg struct {
	channel string
	reply   chan passwordReply
}

// passwordWithdrawnMsg closes the dialog opened for reply after the asking
// side gave up waiting.
type passwordWithdrawnMsg struct {
	reply chan passwordReply
}

type restartDoneMsg struct {
	err error
}

type sendDoneMsg struct {
	err error
}

type settingsDoneMsg struct {
	err error
}

type statusMsg struct {
	text string
}
