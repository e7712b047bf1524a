// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import "errors"

var (
	ErrEmptySignKey               = errors.New("token sign key is empty")
	ErrEmptySubject               = errors.New("token has no subject")
	ErrInvalidAuthorizationHeader = errors.New("invalid authorization header")
)
