// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helper utilities shared by the relay
// and the client: context keys, the bearer gate token codec, HMAC request
// signing, JSON response writing, the HTTP client and id generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// TraceIDCtxKey is the key under which the request trace id is stored.
var TraceIDCtxKey = contextKey("traceID")

// ChannelCtxKey is the key under which the relay stores the trimmed channel
// resolved by the bearer gate.
var ChannelCtxKey = contextKey("channel")

// WithTraceID returns a copy of ctx carrying traceID.
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, TraceIDCtxKey, traceID)
}

// GetTraceIDFromContext retrieves the trace id stored by [WithTraceID].
func GetTraceIDFromContext(ctx context.Context) (string, bool) {
	traceID, ok := ctx.Value(TraceIDCtxKey).(string)
	return traceID, ok && traceID != ""
}

// WithChannel returns a copy of ctx carrying channel.
func WithChannel(ctx context.Context, channel string) context.Context {
	return context.WithValue(ctx, ChannelCtxKey, channel)
}

// GetChannelFromContext retrieves the channel stored by [WithChannel].
func GetChannelFromContext(ctx context.Context) (string, bool) {
	channel, ok := ctx.Value(ChannelCtxKey).(string)
	return channel, ok
}
