// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrChannelNotAllowed = errors.New("channel not allowed")
	ErrUnauthorized      = errors.New("invalid or missing token")

	ErrAuthRequired        = errors.New("channel password required")
	ErrSendInProgress      = errors.New("send already in progress")
	ErrChallengeInProgress = errors.New("password challenge already in progress")
	ErrAttemptsExhausted   = errors.New("too many wrong passwords")
)
