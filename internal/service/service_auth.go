// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/MKhiriev/titanic-identity/internal/crypto"
	"github.com/MKhiriev/titanic-identity/internal/logger"
	"github.com/MKhiriev/titanic-identity/internal/metrics"
	"github.com/MKhiriev/titanic-identity/internal/store"
	"github.com/MKhiriev/titanic-identity/internal/utils"
	"github.com/MKhiriev/titanic-identity/models"
)

// operation labels of metrics.AuthEventsTotal
const (
	opRegister     = "register"
	opLogin        = "login"
	opRefresh      = "refresh"
	opLogout       = "logout"
	opAuthenticate = "authenticate"
)

// authService is the concrete implementation of [AuthService].
type authService struct {
	store  store.CredentialStore
	hasher crypto.PasswordHasher
	tokens TokenService

	// decoyHash is verified against when a login names an unknown user, so
	// both failures cost one hash comparison.
	decoyOnce sync.Once
	decoyHash string

	logger *logger.Logger
}

// decoyPassword is hashed once into decoyHash.
const decoyPassword = "titanic-identity-decoy-password"

// NewAuthService constructs an [AuthService]. All state lives in the store;
// the service itself is safe for concurrent use.
func NewAuthService(credentials store.CredentialStore, hasher crypto.PasswordHasher, tokens TokenService, logger *logger.Logger) AuthService {
	return &authService{
		store:  credentials,
		hasher: hasher,
		tokens: tokens,
		logger: logger,
	}
}

// Register creates the account, then issues an access and a refresh token
// and records the refresh token. The first account ever registered becomes
// admin.
func (a *authService) Register(ctx context.Context, registration models.Registration) (pair models.TokenPair, err error) {
	defer func() { metrics.ObserveAuth(opRegister, err) }()
	log := logger.FromContext(ctx)

	user, err := a.store.CreateUser(ctx, registration)
	if errors.Is(err, store.ErrUsernameAlreadyExists) {
		log.Info().Str("func", "*authService.Register").Str("username", registration.Username).Msg("username already taken")
		return models.TokenPair{}, &DetailedError{
			Kind:   ErrUsernameAlreadyExists,
			Detail: fmt.Sprintf("User with username '%s' already exists", registration.Username),
		}
	}
	if err != nil {
		log.Err(err).Str("func", "*authService.Register").Str("username", registration.Username).Msg("user creation ended with error")
		return models.TokenPair{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return a.issuePair(ctx, user)
}

// Login checks the credentials. An unknown username and a wrong password
// produce the same [ErrInvalidCredentials].
func (a *authService) Login(ctx context.Context, credentials models.Credentials) (pair models.TokenPair, err error) {
	defer func() { metrics.ObserveAuth(opLogin, err) }()
	log := logger.FromContext(ctx)

	user, err := a.store.GetUserByUsername(ctx, credentials.Username)
	if errors.Is(err, store.ErrUserNotFound) {
		a.hasher.Verify(credentials.Password, a.decoy())
		log.Info().Str("func", "*authService.Login").Str("username", credentials.Username).Msg("login failed")
		return models.TokenPair{}, ErrInvalidCredentials
	}
	if err != nil {
		return models.TokenPair{}, fmt.Errorf("user search by username failed: %w", err)
	}

	if !a.hasher.Verify(credentials.Password, user.PasswordHash) {
		log.Info().Str("func", "*authService.Login").Str("username", credentials.Username).Msg("login failed")
		return models.TokenPair{}, ErrInvalidCredentials
	}

	if !user.Active {
		log.Info().Str("func", "*authService.Login").Int64("user_id", user.UserID).Msg("inactive user tried to log in")
		return models.TokenPair{}, ErrUserInactive
	}

	return a.issuePair(ctx, user)
}

// Refresh exchanges a live refresh token for a new access token. The same
// refresh token is returned; refresh tokens are not rotated.
//
// Checks run in order: token type, revocation set membership, signature
// and expiry, then the owner must still exist and be active.
func (a *authService) Refresh(ctx context.Context, refreshToken string) (pair models.TokenPair, err error) {
	defer func() { metrics.ObserveAuth(opRefresh, err) }()
	log := logger.FromContext(ctx).With().Str("func", "*authService.Refresh").Logger()

	if !a.tokens.HasType(ctx, refreshToken, models.RefreshToken) {
		log.Info().Msg("refresh rejected: not a refresh token")
		return models.TokenPair{}, ErrRefreshTokenRequired
	}

	if !a.store.IsRefreshTokenValid(ctx, refreshToken) {
		log.Info().Msg("refresh rejected: token revoked")
		return models.TokenPair{}, ErrRefreshTokenRevoked
	}

	claims, err := a.tokens.Decode(ctx, refreshToken)
	if err != nil {
		log.Info().Msg("refresh rejected: token invalid")
		return models.TokenPair{}, ErrInvalidRefreshToken
	}

	user, err := a.store.GetUserByUsername(ctx, claims.Username())
	if err != nil || !user.Active {
		log.Info().Str("username", claims.Username()).Msg("refresh rejected: user not found or inactive")
		return models.TokenPair{}, ErrRefreshUserUnavailable
	}

	accessToken, err := a.tokens.IssueAccess(ctx, user)
	if err != nil {
		log.Err(err).Msg("access token creation failed")
		return models.TokenPair{}, err
	}

	return a.newTokenPair(accessToken, refreshToken), nil
}

func (a *authService) Profile(ctx context.Context, userID int64) (models.Profile, error) {
	user, err := a.store.GetUserByID(ctx, userID)
	if err != nil {
		return models.Profile{}, fmt.Errorf("profile lookup failed: %w", err)
	}

	return user.Profile(), nil
}

// UpdateProfile changes the email of the user. Only the email is mutable.
func (a *authService) UpdateProfile(ctx context.Context, userID int64, update models.ProfileUpdate) (models.Profile, error) {
	user, err := a.store.UpdateEmail(ctx, userID, update.Email)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*authService.UpdateProfile").Int64("user_id", userID).Msg("profile update failed")
		return models.Profile{}, fmt.Errorf("profile update failed: %w", err)
	}

	return user.Profile(), nil
}

// Logout removes the refresh token from the revocation set. Revoking an
// unknown or already revoked token succeeds. Access tokens stay valid until
// they expire.
func (a *authService) Logout(ctx context.Context, refreshToken string) (err error) {
	defer func() { metrics.ObserveAuth(opLogout, err) }()

	if refreshToken == "" {
		return ErrInvalidDataProvided
	}

	a.store.RevokeRefreshToken(ctx, refreshToken)
	return nil
}

// Authenticate resolves an Authorization header to the identity of a
// stored user. Only access tokens are accepted.
func (a *authService) Authenticate(ctx context.Context, authorizationHeader string) (identity models.Identity, err error) {
	defer func() { metrics.ObserveAuth(opAuthenticate, err) }()
	log := logger.FromContext(ctx).With().Str("func", "*authService.Authenticate").Logger()

	if strings.TrimSpace(authorizationHeader) == "" {
		return models.Identity{}, ErrAuthorizationHeaderMissing
	}

	token, err := utils.ParseBearerToken(authorizationHeader)
	if err != nil {
		log.Debug().Msg("malformed authorization header")
		return models.Identity{}, ErrMalformedAuthorization
	}

	claims, err := a.tokens.Decode(ctx, token)
	if err != nil {
		return models.Identity{}, ErrUnauthenticated
	}

	if claims.Type != models.AccessToken {
		log.Debug().Str("type", string(claims.Type)).Msg("non-access token presented")
		return models.Identity{}, ErrUnauthenticated
	}

	user, err := a.store.GetUserByUsername(ctx, claims.Username())
	if err != nil {
		log.Debug().Str("username", claims.Username()).Msg("token subject is not a stored user")
		return models.Identity{}, ErrUnauthenticated
	}

	return user.Identity(), nil
}

func (a *authService) Stats(ctx context.Context) models.Stats {
	return models.Stats{
		UsersCount:    a.store.Count(ctx),
		RefreshTokens: a.store.RefreshTokenCount(ctx),
	}
}

// decoy lazily hashes decoyPassword with the configured hasher. A hashing
// failure leaves an empty hash, which never verifies.
func (a *authService) decoy() string {
	a.decoyOnce.Do(func() {
		hash, err := a.hasher.Hash(decoyPassword)
		if err != nil {
			a.logger.Err(err).Str("func", "*authService.decoy").Msg("decoy hash creation failed")
			return
		}
		a.decoyHash = hash
	})

	return a.decoyHash
}

// issuePair issues both tokens for user and records the refresh token.
func (a *authService) issuePair(ctx context.Context, user models.User) (models.TokenPair, error) {
	accessToken, err := a.tokens.IssueAccess(ctx, user)
	if err != nil {
		return models.TokenPair{}, err
	}

	refreshToken, err := a.tokens.IssueRefresh(ctx, user)
	if err != nil {
		return models.TokenPair{}, err
	}

	a.store.RecordRefreshToken(ctx, refreshToken)

	return a.newTokenPair(accessToken, refreshToken), nil
}

func (a *authService) newTokenPair(accessToken, refreshToken string) models.TokenPair {
	return models.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    models.BearerTokenType,
		ExpiresIn:    int64(a.tokens.AccessTTL().Seconds()),
	}
}
