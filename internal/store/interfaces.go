// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/titanic-identity/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/credential_store_mock.go -package=mock

// CredentialStore keeps user records and the set of refresh tokens that are
// currently honoured.
//
// Usernames are compared case-insensitively and always stored lowercase.
// Users are never deleted; only their email may change after creation.
type CredentialStore interface {
	// CreateUser hashes the password and inserts a new user. The first user
	// ever created by a store instance gets [models.RoleAdmin], every later
	// one [models.RoleUser]. Returns [ErrUsernameAlreadyExists] when the
	// case-folded username is taken.
	CreateUser(ctx context.Context, registration models.Registration) (models.User, error)

	// GetUserByUsername returns [ErrUserNotFound] when no user matches.
	GetUserByUsername(ctx context.Context, username string) (models.User, error)
	// GetUserByID returns [ErrUserNotFound] when no user matches.
	GetUserByID(ctx context.Context, userID int64) (models.User, error)

	// UpdateEmail replaces the email of the user. A nil email leaves the
	// record unchanged.
	UpdateEmail(ctx context.Context, userID int64, email *string) (models.User, error)

	RecordRefreshToken(ctx context.Context, token string)
	RevokeRefreshToken(ctx context.Context, token string)
	IsRefreshTokenValid(ctx context.Context, token string) bool

	// Count returns the number of users.
	Count(ctx context.Context) int
	// RefreshTokenCount returns the size of the refresh token set.
	RefreshTokenCount(ctx context.Context) int
}
