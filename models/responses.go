// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Profile is the public representation of an account returned by GET /me
// and PUT /me. It never contains credential material.
type Profile struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Email     *string   `json:"email"`
	Role      Role      `json:"role"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}

// ServiceInfo is returned by the public status endpoint.
type ServiceInfo struct {
	Service    string `json:"service"`
	Version    string `json:"version"`
	Status     string `json:"status"`
	UsersCount int    `json:"users_count"`
}

// Stats holds store diagnostics for administrators.
//
// RefreshTokens counts the entries currently in the revocation set. The set
// is never swept, so the number includes expired tokens that were not
// explicitly revoked.
type Stats struct {
	UsersCount    int `json:"users_count"`
	RefreshTokens int `json:"refresh_tokens"`
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Detail string `json:"detail"`
}
