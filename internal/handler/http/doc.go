// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the relay's HTTP transport.
//
// The relay stores and serves opaque ciphertext envelopes per channel. This
// package wires the chat routes, the per-channel bearer gate, the optional
// HMAC body check, request tracing, access logging and response compression
// before requests reach the service layer.
package http
