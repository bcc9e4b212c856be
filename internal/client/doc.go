// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the chat client runtime.
//
// It wires the settings store, the session, the relay adapter, the sync
// engine and the selected front-end into a single process lifecycle.
package client
