// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/titanic-identity/models"
	"github.com/golang-jwt/jwt/v5"
)

// exp is encoded as a fractional NumericDate with sub-second precision.
func init() {
	jwt.TimePrecision = time.Microsecond
}

// GenerateJWTToken signs claims with HMAC-SHA256.
//
// Only the fields set on claims are encoded; zero registered claims are
// omitted, so a token carrying Subject and ExpiresAt has exactly the sub,
// user_id, role, type and exp claims.
func GenerateJWTToken(claims models.TokenClaims, signKey string) (string, error) {
	if signKey == "" {
		return "", ErrEmptySignKey
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return "", fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return tokenString, nil
}

// ValidateAndParseJWTToken verifies tokenString and returns its claims.
//
// Validation includes:
//   - HS256 signature with signKey; any other alg, including "none", fails
//   - a present exp claim that is after now()
//   - a non-empty sub claim
func ValidateAndParseJWTToken(tokenString, signKey string, now func() time.Time) (models.TokenClaims, error) {
	var claims models.TokenClaims

	_, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (any, error) {
		return []byte(signKey), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(now),
	)
	if err != nil {
		return models.TokenClaims{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	if claims.Subject == "" {
		return models.TokenClaims{}, ErrEmptySubject
	}

	return claims, nil
}

// ParseBearerToken extracts the token from an Authorization header of the
// exact form "Bearer <token>". The scheme is matched case-insensitively and
// the header must split into exactly two whitespace-separated parts.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Fields(authorizationHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", ErrInvalidAuthorizationHeader
	}

	return parts[1], nil
}
