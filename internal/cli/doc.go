// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package cli implements the line-mode chat client.
//
// Every input line is sent as a message unless it starts with a slash
// command. A [Console] implements the message view and the password
// prompter on top of a line reader; on a terminal it uses
// golang.org/x/term so incoming messages do not clobber the line being
// typed and passwords are read without echo.
package cli
