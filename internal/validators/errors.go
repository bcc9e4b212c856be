// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"errors"
	"fmt"
)

var ErrValidation = errors.New("validation failed")

var (
	ErrUnsupportedType = fmt.Errorf("%w: unsupported type for validation", ErrValidation)
	ErrUnknownField    = fmt.Errorf("%w: unknown field for validation", ErrValidation)

	ErrEmptyName     = fmt.Errorf("%w: name is required", ErrValidation)
	ErrEmptyPassword = fmt.Errorf("%w: password is required", ErrValidation)
	ErrEmptyMessage  = fmt.Errorf("%w: message is required", ErrValidation)
	ErrEmptyChannel  = fmt.Errorf("%w: channel is required", ErrValidation)
	ErrNegativeFrom  = fmt.Errorf("%w: from must not be negative", ErrValidation)
)
