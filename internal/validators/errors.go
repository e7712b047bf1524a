// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyField      = errors.New("field is required")
	ErrInvalidUsername = errors.New("username must be 3-50 characters and may contain only letters, digits, _ and -")
	ErrInvalidPassword = errors.New("password must be 6-100 characters and at most 72 bytes")
)
