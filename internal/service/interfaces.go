// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/titanic-identity/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// TokenService issues and verifies signed tokens. Two tokens issued by one
// TokenService never have the same encoded form.
type TokenService interface {
	IssueAccess(ctx context.Context, user models.User) (string, error)
	IssueRefresh(ctx context.Context, user models.User) (string, error)

	// Decode verifies the signature and expiry of token and returns its
	// claims. Every failure is reported as [ErrUnauthenticated].
	Decode(ctx context.Context, token string) (models.TokenClaims, error)

	// HasType reports whether token decodes and carries tokenType.
	HasType(ctx context.Context, token string, tokenType models.TokenType) bool

	// AccessTTL is the access token lifetime reported as expires_in.
	AccessTTL() time.Duration
}

// AuthService implements the account and session operations of the
// identity service. It also serves as the local authenticator of the guard
// chain.
type AuthService interface {
	Register(ctx context.Context, registration models.Registration) (models.TokenPair, error)
	Login(ctx context.Context, credentials models.Credentials) (models.TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (models.TokenPair, error)

	Profile(ctx context.Context, userID int64) (models.Profile, error)
	UpdateProfile(ctx context.Context, userID int64, update models.ProfileUpdate) (models.Profile, error)

	Logout(ctx context.Context, refreshToken string) error

	Authenticate(ctx context.Context, authorizationHeader string) (models.Identity, error)

	Stats(ctx context.Context) models.Stats
}

// AppInfoService reports the public service status.
type AppInfoService interface {
	Info(ctx context.Context) models.ServiceInfo
}
