// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// TokenType distinguishes short-lived access tokens from refresh tokens.
type TokenType string

const (
	// AccessToken authorizes individual API calls.
	AccessToken TokenType = "access"
	// RefreshToken is exchanged for new access tokens and can be revoked.
	RefreshToken TokenType = "refresh"
)

// TokenClaims is the claim set carried by every issued token.
//
// On the wire a token holds exactly five claims: "sub" (username),
// "user_id", "role", "type" and "exp". The embedded RegisteredClaims is
// used only for Subject and ExpiresAt; its remaining fields stay zero and
// are omitted from the encoded payload.
type TokenClaims struct {
	// UserID is the numeric account id of the subject.
	UserID int64 `json:"user_id"`

	// Role is the role of the subject at issuance time.
	Role Role `json:"role"`

	// Type tells access tokens and refresh tokens apart.
	Type TokenType `json:"type"`

	jwt.RegisteredClaims
}

// Username returns the "sub" claim.
func (c TokenClaims) Username() string {
	return c.Subject
}

// TokenPair is the token bundle returned by register, login and refresh.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`

	// TokenType is always "bearer".
	TokenType string `json:"token_type"`

	// ExpiresIn is the access token lifetime in seconds.
	ExpiresIn int64 `json:"expires_in"`
}

// BearerTokenType is the token_type value of every TokenPair.
const BearerTokenType = "bearer"
