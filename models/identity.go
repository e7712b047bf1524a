// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Identity is the caller identity shared between services.
//
// It is the decoded form of the identity service's /me response and the
// value the guard chain places into a request context. Every service that
// protects endpoints relies on exactly these four fields.
type Identity struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Role     Role   `json:"role"`
	Active   bool   `json:"active"`
}
