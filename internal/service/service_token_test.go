// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/titanic-identity/internal/config"
	"github.com/MKhiriev/titanic-identity/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testAuthConfig = config.Auth{
	TokenSignKey:     "test-sign-key",
	AccessTokenTTL:   15 * time.Minute,
	RefreshTokenTTL:  7 * 24 * time.Hour,
	PasswordHashCost: 4,
}

// clock is a manually advanced time source.
type clock struct {
	t time.Time
}

func (c *clock) now() time.Time { return c.t }

func (c *clock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestTokenService(t *testing.T) (*tokenService, *clock) {
	t.Helper()
	c := &clock{t: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	svc := NewTokenService(testAuthConfig).(*tokenService)
	svc.now = c.now
	return svc, c
}

var alice = models.User{UserID: 1, Username: "alice", Role: models.RoleAdmin, Active: true}

func TestTokenService_AccessRoundTrip(t *testing.T) {
	svc, c := newTestTokenService(t)
	ctx := context.Background()

	token, err := svc.IssueAccess(ctx, alice)
	require.NoError(t, err)

	claims, err := svc.Decode(ctx, token)
	require.NoError(t, err)

	assert.Equal(t, "alice", claims.Username())
	assert.Equal(t, int64(1), claims.UserID)
	assert.Equal(t, models.RoleAdmin, claims.Role)
	assert.Equal(t, models.AccessToken, claims.Type)
	assert.Equal(t, c.t.Add(15*time.Minute).Unix(), claims.ExpiresAt.Unix())
}

func TestTokenService_RefreshLifetime(t *testing.T) {
	svc, c := newTestTokenService(t)
	ctx := context.Background()

	token, err := svc.IssueRefresh(ctx, alice)
	require.NoError(t, err)

	claims, err := svc.Decode(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, models.RefreshToken, claims.Type)
	assert.Equal(t, c.t.Add(7*24*time.Hour).Unix(), claims.ExpiresAt.Unix())
}

func TestTokenService_Expiry(t *testing.T) {
	svc, c := newTestTokenService(t)
	ctx := context.Background()

	token, err := svc.IssueAccess(ctx, alice)
	require.NoError(t, err)

	c.advance(15*time.Minute - time.Second)
	_, err = svc.Decode(ctx, token)
	require.NoError(t, err)

	c.advance(2 * time.Second)
	_, err = svc.Decode(ctx, token)
	assert.ErrorIs(t, err, ErrUnauthenticated)
	assert.False(t, svc.HasType(ctx, token, models.AccessToken))
}

func TestTokenService_SameInstantTokensDiffer(t *testing.T) {
	svc, c := newTestTokenService(t)
	ctx := context.Background()

	first, err := svc.IssueRefresh(ctx, alice)
	require.NoError(t, err)
	second, err := svc.IssueRefresh(ctx, alice)
	require.NoError(t, err)
	require.NotEqual(t, first, second)

	firstClaims, err := svc.Decode(ctx, first)
	require.NoError(t, err)
	secondClaims, err := svc.Decode(ctx, second)
	require.NoError(t, err)

	assert.True(t, secondClaims.ExpiresAt.After(firstClaims.ExpiresAt.Time))
	assert.Equal(t, c.t.Add(7*24*time.Hour).Unix(), secondClaims.ExpiresAt.Unix())
	assert.Equal(t, "alice", secondClaims.Username())
}

func TestTokenService_ConcurrentIssuesAreUnique(t *testing.T) {
	svc, _ := newTestTokenService(t)
	ctx := context.Background()

	const n = 50
	tokens := make([]string, n)

	var wg sync.WaitGroup
	for i := range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			token, err := svc.IssueAccess(ctx, alice)
			assert.NoError(t, err)
			tokens[i] = token
		}()
	}
	wg.Wait()

	seen := make(map[string]struct{}, n)
	for _, token := range tokens {
		seen[token] = struct{}{}
	}
	assert.Len(t, seen, n)
}

func TestTokenService_HasType(t *testing.T) {
	svc, _ := newTestTokenService(t)
	ctx := context.Background()

	access, err := svc.IssueAccess(ctx, alice)
	require.NoError(t, err)
	refresh, err := svc.IssueRefresh(ctx, alice)
	require.NoError(t, err)

	assert.True(t, svc.HasType(ctx, access, models.AccessToken))
	assert.False(t, svc.HasType(ctx, access, models.RefreshToken))
	assert.True(t, svc.HasType(ctx, refresh, models.RefreshToken))
	assert.False(t, svc.HasType(ctx, refresh, models.AccessToken))
	assert.False(t, svc.HasType(ctx, "garbage", models.AccessToken))
}

func TestTokenService_ForeignKeyRejected(t *testing.T) {
	svc, c := newTestTokenService(t)
	ctx := context.Background()

	otherCfg := testAuthConfig
	otherCfg.TokenSignKey = "other-key"
	other := NewTokenService(otherCfg).(*tokenService)
	other.now = c.now

	token, err := other.IssueAccess(ctx, alice)
	require.NoError(t, err)

	_, err = svc.Decode(ctx, token)
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestTokenService_EmptySignKey(t *testing.T) {
	cfg := testAuthConfig
	cfg.TokenSignKey = ""

	_, err := NewTokenService(cfg).IssueAccess(context.Background(), alice)
	assert.ErrorIs(t, err, ErrTokenCreationFailed)
}

func TestTokenService_AccessTTL(t *testing.T) {
	svc, _ := newTestTokenService(t)
	assert.Equal(t, 15*time.Minute, svc.AccessTTL())
}
