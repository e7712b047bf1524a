// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Role is the authorization level attached to an account.
type Role string

const (
	// RoleAdmin is granted to the first account created in a store's lifetime.
	RoleAdmin Role = "admin"
	// RoleUser is granted to every account after the first one.
	RoleUser Role = "user"
)

// String implements fmt.Stringer.
func (r Role) String() string {
	return string(r)
}

// User represents an account entity used for authentication and authorization.
//
// Only Email may change after creation; every other field is write-once.
// PasswordHash must never leave the identity service, so it is excluded
// from JSON serialization.
type User struct {
	// UserID is the store-assigned identifier. Ids grow monotonically
	// starting from 1 and are never reused.
	UserID int64 `json:"id"`

	// Username is unique under case folding and always stored lowercase.
	Username string `json:"username"`

	// Email is optional; nil means the user never provided one.
	Email *string `json:"email"`

	// PasswordHash is the self-describing bcrypt hash of the password.
	PasswordHash string `json:"-"`

	// Role is assigned once at creation by the first-user rule.
	Role Role `json:"role"`

	// Active reports whether the account may authenticate.
	Active bool `json:"active"`

	// CreatedAt is the UTC instant the account was created.
	CreatedAt time.Time `json:"created_at"`
}

// Identity strips credential material from the user and returns the
// identity value carried through the guard chain.
func (u User) Identity() Identity {
	return Identity{
		ID:       u.UserID,
		Username: u.Username,
		Role:     u.Role,
		Active:   u.Active,
	}
}

// Profile returns the public view of the user served by the /me endpoint.
func (u User) Profile() Profile {
	return Profile{
		ID:        u.UserID,
		Username:  u.Username,
		Email:     u.Email,
		Role:      u.Role,
		Active:    u.Active,
		CreatedAt: u.CreatedAt,
	}
}
