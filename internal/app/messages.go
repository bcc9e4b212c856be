// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the user-facing strings and formatting shared by the
// chat front-ends.
//
// Keeping them in one place keeps the terminal UI and the line-mode client
// worded the same way.
package app

const (
	// MsgUndecryptable replaces the text of a message the current password
	// cannot open.
	MsgUndecryptable = "[Unable to decrypt message]"

	// MsgPasswordRequired is shown when the password dialog is confirmed
	// empty.
	MsgPasswordRequired = "Password is required"

	// MsgChannelPasswordPrompt asks for the password of a gated channel.
	MsgChannelPasswordPrompt = "Channel #%s is protected. Enter its password"

	// MsgServerUnavailable replaces low-level network errors.
	MsgServerUnavailable = "No network or the server is unavailable"

	// MsgSendFailed prefixes a send failure.
	MsgSendFailed = "Message was not sent"

	// MsgInvalidInterval is shown for a non-numeric or non-positive interval.
	MsgInvalidInterval = "Interval must be a positive number of milliseconds"

	// MsgSettingsSaved confirms a settings change.
	MsgSettingsSaved = "Settings saved"

	// MsgCopied confirms a clipboard copy.
	MsgCopied = "Copied to clipboard"

	// MsgNothingToCopy is shown when no decrypted message is available.
	MsgNothingToCopy = "Nothing to copy"

	// MsgAuthRequired is shown while a gated channel waits for a password.
	MsgAuthRequired = "Channel password required"

	// MsgAuthAborted is shown after the challenge was cancelled or ran out
	// of attempts.
	MsgAuthAborted = "Channel locked: password not provided"
)
