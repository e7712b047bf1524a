// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/titanic-identity/internal/config"
	"github.com/MKhiriev/titanic-identity/internal/logger"
	"github.com/MKhiriev/titanic-identity/internal/utils"
	"github.com/MKhiriev/titanic-identity/models"
	"github.com/golang-jwt/jwt/v5"
)

// tokenService is the HS256 implementation of [TokenService].
type tokenService struct {
	signKey    string
	accessTTL  time.Duration
	refreshTTL time.Duration

	// now is swapped in tests; the parser uses the same clock.
	now func() time.Time

	// lastExpiry holds the latest exp issued per token type. Expiries of
	// one type strictly increase, so no two issued tokens are identical.
	mu         sync.Mutex
	lastExpiry map[models.TokenType]time.Time
}

// NewTokenService constructs a [TokenService] from the auth configuration.
func NewTokenService(cfg config.Auth) TokenService {
	return &tokenService{
		signKey:    cfg.TokenSignKey,
		accessTTL:  cfg.AccessTokenTTL,
		refreshTTL: cfg.RefreshTokenTTL,
		now:        time.Now,
		lastExpiry: make(map[models.TokenType]time.Time, 2),
	}
}

func (s *tokenService) IssueAccess(ctx context.Context, user models.User) (string, error) {
	return s.issue(user, models.AccessToken, s.accessTTL)
}

func (s *tokenService) IssueRefresh(ctx context.Context, user models.User) (string, error) {
	return s.issue(user, models.RefreshToken, s.refreshTTL)
}

func (s *tokenService) issue(user models.User, tokenType models.TokenType, ttl time.Duration) (string, error) {
	claims := models.TokenClaims{
		UserID: user.UserID,
		Role:   user.Role,
		Type:   tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.Username,
			ExpiresAt: jwt.NewNumericDate(s.nextExpiry(tokenType, ttl)),
		},
	}

	token, err := utils.GenerateJWTToken(claims, s.signKey)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// expiryStep is the resolution of issued expiries and the minimum gap
// between two expiries of the same token type.
const expiryStep = time.Millisecond

// nextExpiry returns now+ttl at expiryStep resolution, moved one step past
// the previous expiry of tokenType when the clock has not advanced enough.
func (s *tokenService) nextExpiry(tokenType models.TokenType, ttl time.Duration) time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()

	expiry := s.now().Add(ttl).Truncate(expiryStep)
	if last, ok := s.lastExpiry[tokenType]; ok && !expiry.After(last) {
		expiry = last.Add(expiryStep)
	}
	s.lastExpiry[tokenType] = expiry

	return expiry
}

func (s *tokenService) Decode(ctx context.Context, token string) (models.TokenClaims, error) {
	claims, err := utils.ValidateAndParseJWTToken(token, s.signKey, s.now)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("func", "*tokenService.Decode").Msg("token rejected")
		return models.TokenClaims{}, fmt.Errorf("%w: %w", ErrUnauthenticated, err)
	}

	return claims, nil
}

func (s *tokenService) HasType(ctx context.Context, token string, tokenType models.TokenType) bool {
	claims, err := s.Decode(ctx, token)
	return err == nil && claims.Type == tokenType
}

func (s *tokenService) AccessTTL() time.Duration {
	return s.accessTTL
}
