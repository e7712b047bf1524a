// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils holds small helpers shared by the identity service and its
// callers: context keys, JSON responses, bearer header parsing, token
// signing and the resty HTTP client.
package utils

import (
	"context"

	"github.com/MKhiriev/titanic-identity/models"
)

// contextKey is a private type for context keys so values stored by this
// package cannot collide with string keys used elsewhere.
type contextKey string

// String implements fmt.Stringer.
func (c contextKey) String() string {
	return string(c)
}

// IdentityCtxKey is the key under which the guard chain stores the
// authenticated [models.Identity].
var IdentityCtxKey = contextKey("identity")

// WithIdentity returns a copy of ctx carrying identity.
func WithIdentity(ctx context.Context, identity models.Identity) context.Context {
	return context.WithValue(ctx, IdentityCtxKey, identity)
}

// IdentityFromContext returns the identity placed into ctx by the guard
// chain. ok is false when the request did not pass through a guard.
func IdentityFromContext(ctx context.Context) (models.Identity, bool) {
	identity, ok := ctx.Value(IdentityCtxKey).(models.Identity)
	return identity, ok
}
