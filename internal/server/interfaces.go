// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

// Server defines the lifecycle of the relay.
type Server interface {
	// RunServer serves requests until SIGINT, SIGTERM or SIGQUIT, then shuts
	// down gracefully.
	RunServer()

	// Shutdown stops accepting requests and waits for in-flight ones.
	Shutdown()
}
