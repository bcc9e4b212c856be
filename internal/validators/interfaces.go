// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks user input before it reaches the network or the
// message store.
//
// Every failure wraps [ErrValidation], so callers can tell a rejected input
// from a transport or storage error with a single errors.Is check.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
// The optional field names restrict validation to those fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
