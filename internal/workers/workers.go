// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

// Workers stops a group of workers together.
type Workers struct {
	workers []Worker
}

// NewWorkers groups ws.
func NewWorkers(ws ...Worker) *Workers {
	return &Workers{workers: ws}
}

// Stop stops every worker in the order they were added.
func (w *Workers) Stop() {
	for _, worker := range w.workers {
		worker.Stop()
	}
}
