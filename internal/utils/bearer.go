// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/subtle"
	"encoding/base64"
	"regexp"
)

// AuthorizationHeader is the header carrying the channel gate token.
const AuthorizationHeader = "Authorization"

var bearerPattern = regexp.MustCompile(`(?is)^Bearer\s+(.*)$`)

// EncodeGateToken returns the token the relay expects for a channel
// password: the standard base64 encoding of its bytes. It has nothing to do
// with the message encryption key.
func EncodeGateToken(password string) string {
	return base64.StdEncoding.EncodeToString([]byte(password))
}

// BearerHeader formats the Authorization header value for password.
func BearerHeader(password string) string {
	return "Bearer " + EncodeGateToken(password)
}

// ParseBearerToken extracts the token from an Authorization header value.
// The scheme keyword is matched case-insensitively.
func ParseBearerToken(header string) (string, bool) {
	m := bearerPattern.FindStringSubmatch(header)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// GateTokenMatches reports, in constant time, whether token is the gate
// token of password.
func GateTokenMatches(token, password string) bool {
	return subtle.ConstantTimeCompare([]byte(token), []byte(EncodeGateToken(password))) == 1
}
