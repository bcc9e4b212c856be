// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers provides the timers that drive the chat client in the
// background: a restartable [Ticker] for message polling and a [Debouncer]
// that coalesces bursts of events into one call.
//
// Both implement [Worker] so an owner can stop everything it started through
// a single [Workers] aggregate.
package workers

// Worker is a background timer that can be stopped.
//
// Stop must be safe to call when the worker is not running and more than
// once. It stops future executions only; a call already in progress is left
// to finish.
type Worker interface {
	Stop()
}
