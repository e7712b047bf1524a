// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

var (
	// ErrPasswordTooLong is returned by Hash when the password exceeds the
	// 72 byte input limit of bcrypt.
	ErrPasswordTooLong = errors.New("password exceeds 72 bytes")
)
