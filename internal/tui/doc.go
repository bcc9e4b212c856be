// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui implements the terminal chat client on bubbletea.
//
// The sync engine talks to the program through a [Bridge], which implements
// both the message view and the password prompter by posting messages into
// the running program.
package tui
