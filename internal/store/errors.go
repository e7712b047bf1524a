// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by [CredentialStore]. Callers should match them
// with [errors.Is].
var (
	// ErrUsernameAlreadyExists is returned when a user with the same
	// case-folded username is already stored.
	ErrUsernameAlreadyExists = errors.New("username already registered")

	// ErrUserNotFound is returned when a lookup or update targets a user
	// that does not exist.
	ErrUserNotFound = errors.New("user not found")
)
