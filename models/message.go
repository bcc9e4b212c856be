// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// DefaultChannel is the channel used whenever none is specified.
const DefaultChannel = "default"

// Message is a single record of a channel log as stored by the relay.
//
// Message carries the encryption envelope in its base64 form; the relay
// never interprets it.
type Message struct {
	// Timestamp is the unix time (seconds) the relay accepted the message.
	Timestamp int64 `json:"timestamp"`

	// Name is the author as typed by the sender (HTML-escaped by the relay).
	Name string `json:"name"`

	// Message is the ciphertext envelope.
	Message string `json:"message"`

	// Channel is the channel the message belongs to. It is not part of the
	// read response.
	Channel string `json:"-"`
}

// DecryptedMessage is a [Message] prepared for rendering.
type DecryptedMessage struct {
	Message

	// Text is the plaintext; empty when Undecryptable is set.
	Text string

	// Undecryptable marks a record whose envelope could not be opened with
	// the password at hand. Views render a placeholder for it.
	Undecryptable bool
}

// Draft is what the user composes before it is encrypted and sent.
//
// Password is the channel password typed into the form. It keys the
// encryption and doubles as the bearer gate token.
type Draft struct {
	Name     string
	Password string
	Text     string
	Channel  string
}
