// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"

	"github.com/MKhiriev/titanic-identity/internal/store"
)

// Error kinds. The HTTP layer maps each kind to exactly one status code;
// callers match them with [errors.Is].
var (
	// ErrUsernameAlreadyExists and ErrUserNotFound originate in the store.
	ErrUsernameAlreadyExists = store.ErrUsernameAlreadyExists
	ErrUserNotFound          = store.ErrUserNotFound

	ErrInvalidCredentials  = errors.New("incorrect username or password")
	ErrUnauthenticated     = errors.New("could not validate credentials")
	ErrForbidden           = errors.New("forbidden")
	ErrServiceUnavailable  = errors.New("identity service unavailable")
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrTokenCreationFailed = errors.New("token creation failed")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)

// Specific reasons reported to clients. Each one unwraps to its kind.
var (
	ErrAuthorizationHeaderMissing = &DetailedError{Kind: ErrUnauthenticated, Detail: "Authorization header missing"}
	ErrMalformedAuthorization     = &DetailedError{Kind: ErrUnauthenticated, Detail: "Invalid authorization header format. Use: Bearer <token>"}

	ErrRefreshTokenRequired   = &DetailedError{Kind: ErrUnauthenticated, Detail: "Invalid token type. Refresh token required"}
	ErrRefreshTokenRevoked    = &DetailedError{Kind: ErrUnauthenticated, Detail: "Refresh token has been revoked or is invalid"}
	ErrInvalidRefreshToken    = &DetailedError{Kind: ErrUnauthenticated, Detail: "Invalid refresh token"}
	ErrRefreshUserUnavailable = &DetailedError{Kind: ErrUnauthenticated, Detail: "User not found or inactive"}

	ErrUserInactive     = &DetailedError{Kind: ErrForbidden, Detail: "User is inactive"}
	ErrInactiveIdentity = &DetailedError{Kind: ErrForbidden, Detail: "Inactive user"}
	ErrAdminRequired    = &DetailedError{Kind: ErrForbidden, Detail: "Admin access required"}
	ErrRoleRequired     = &DetailedError{Kind: ErrForbidden, Detail: "Not enough permissions"}
)

// DetailedError pairs an error kind with the reason shown to the client.
type DetailedError struct {
	Kind   error
	Detail string
}

func (e *DetailedError) Error() string {
	return e.Detail
}

func (e *DetailedError) Unwrap() error {
	return e.Kind
}
