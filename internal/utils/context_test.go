// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"

	"github.com/MKhiriev/titanic-identity/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdentityCtxKey(t *testing.T) {
	assert.Equal(t, "identity", IdentityCtxKey.String())
}

func TestIdentityFromContext(t *testing.T) {
	want := models.Identity{ID: 1, Username: "alice", Role: models.RoleAdmin, Active: true}

	got, ok := IdentityFromContext(WithIdentity(context.Background(), want))

	require.True(t, ok)
	assert.Equal(t, want, got)
}

func TestIdentityFromContext_Missing(t *testing.T) {
	_, ok := IdentityFromContext(context.Background())
	assert.False(t, ok)
}

func TestIdentityFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), IdentityCtxKey, "alice")

	_, ok := IdentityFromContext(ctx)
	assert.False(t, ok)
}

// TestIdentityFromContext_StringKeyDoesNotCollide verifies that a plain
// string key with the same text is not picked up.
func TestIdentityFromContext_StringKeyDoesNotCollide(t *testing.T) {
	ctx := context.WithValue(context.Background(), "identity", models.Identity{ID: 1})

	_, ok := IdentityFromContext(ctx)
	assert.False(t, ok)
}
