// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"time"
)

// Ticker calls a function on every tick of a restartable interval.
type Ticker struct {
	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewTicker returns an idle Ticker.
func NewTicker() *Ticker {
	return &Ticker{}
}

// Start stops any previous schedule, then calls fn(ctx) every interval until
// ctx is done or Stop is called. The first call happens one interval after
// Start. Calls are made one after another from a single goroutine, so a slow
// fn delays the following ticks instead of overlapping them.
//
// fn receives ctx itself, not a context tied to the schedule, so stopping the
// ticker never cancels a call in progress.
func (t *Ticker) Start(ctx context.Context, interval time.Duration, fn func(context.Context)) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.cancel != nil {
		t.cancel()
	}

	loopCtx, cancel := context.WithCancel(ctx)
	t.cancel = cancel
	t.wg.Add(1)

	go func() {
		defer t.wg.Done()
		tick := time.NewTicker(interval)
		defer tick.Stop()

		for {
			select {
			case <-loopCtx.Done():
				return
			case <-tick.C:
				if loopCtx.Err() != nil {
					return
				}
				fn(ctx)
			}
		}
	}()
}

// Stop implements [Worker]. It does not wait for a call in progress; use
// Wait for that.
func (t *Ticker) Stop() {
	t.mu.Lock()
	cancel := t.cancel
	t.cancel = nil
	t.mu.Unlock()

	if cancel != nil {
		cancel()
	}
}

// Wait blocks until every loop started by Start has exited.
func (t *Ticker) Wait() {
	t.wg.Wait()
}
