// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// AuthState is the position of a channel in the password challenge.
type AuthState int

const (
	// AuthUnchecked means no probe has been made yet.
	AuthUnchecked AuthState = iota
	// AuthNotRequired means the channel gate let an anonymous probe through.
	AuthNotRequired
	// AuthPendingInput means the gate requires a password and the user is
	// being asked for one.
	AuthPendingInput
	// AuthChecking means a candidate password is being verified.
	AuthChecking
	// AuthAuthenticated means the vault holds a password the gate accepts.
	AuthAuthenticated
	// AuthRejected means the last candidate was refused by the gate.
	AuthRejected
	// AuthAborted means the user cancelled or ran out of attempts.
	AuthAborted
)

var authStateNames = map[AuthState]string{
	AuthUnchecked:     "UNCHECKED",
	AuthNotRequired:   "NOT_REQUIRED",
	AuthPendingInput:  "REQUIRED_PENDING_INPUT",
	AuthChecking:      "CHECKING",
	AuthAuthenticated: "AUTHENTICATED",
	AuthRejected:      "REJECTED",
	AuthAborted:       "ABORTED",
}

func (s AuthState) String() string {
	if name, ok := authStateNames[s]; ok {
		return name
	}
	return "UNKNOWN"
}

// IsTerminal reports whether the challenge has finished.
func (s AuthState) IsTerminal() bool {
	return s == AuthNotRequired || s == AuthAuthenticated || s == AuthAborted
}
