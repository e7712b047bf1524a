// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/titanic-identity/internal/mock"
	"github.com/MKhiriev/titanic-identity/internal/validators"
	"github.com/MKhiriev/titanic-identity/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newValidatedAuth(t *testing.T) (AuthService, *mock.MockAuthService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	inner := mock.NewMockAuthService(ctrl)
	return NewAuthValidationService().Wrap(inner), inner
}

func TestAuthValidationService_Register(t *testing.T) {
	svc, inner := newValidatedAuth(t)
	ctx := context.Background()

	valid := models.Registration{Username: "alice", Password: "secret1"}
	inner.EXPECT().Register(ctx, valid).Return(models.TokenPair{AccessToken: "a"}, nil)

	pair, err := svc.Register(ctx, valid)
	require.NoError(t, err)
	assert.Equal(t, "a", pair.AccessToken)

	_, err = svc.Register(ctx, models.Registration{Username: "a!", Password: "secret1"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
	assert.ErrorIs(t, err, validators.ErrInvalidUsername)

	_, err = svc.Register(ctx, models.Registration{Username: "alice", Password: "123"})
	assert.ErrorIs(t, err, validators.ErrInvalidPassword)
}

func TestAuthValidationService_Login(t *testing.T) {
	svc, inner := newValidatedAuth(t)
	ctx := context.Background()

	credentials := models.Credentials{Username: "alice", Password: "secret1"}
	inner.EXPECT().Login(ctx, credentials).Return(models.TokenPair{}, ErrInvalidCredentials)

	_, err := svc.Login(ctx, credentials)
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(ctx, models.Credentials{Username: "alice"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestAuthValidationService_RefreshAndLogout(t *testing.T) {
	svc, inner := newValidatedAuth(t)
	ctx := context.Background()

	inner.EXPECT().Refresh(ctx, "r").Return(models.TokenPair{RefreshToken: "r"}, nil)
	inner.EXPECT().Logout(ctx, "r").Return(nil)

	_, err := svc.Refresh(ctx, "r")
	require.NoError(t, err)
	require.NoError(t, svc.Logout(ctx, "r"))

	_, err = svc.Refresh(ctx, "")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
	assert.ErrorIs(t, svc.Logout(ctx, ""), ErrInvalidDataProvided)
}

func TestAuthValidationService_PassThrough(t *testing.T) {
	svc, inner := newValidatedAuth(t)
	ctx := context.Background()

	identity := models.Identity{ID: 1, Username: "alice", Role: models.RoleAdmin, Active: true}
	inner.EXPECT().Authenticate(ctx, "Bearer t").Return(identity, nil)
	inner.EXPECT().Profile(ctx, int64(1)).Return(models.Profile{ID: 1}, nil)
	inner.EXPECT().UpdateProfile(ctx, int64(1), models.ProfileUpdate{}).Return(models.Profile{ID: 1}, nil)
	inner.EXPECT().Stats(ctx).Return(models.Stats{UsersCount: 1})

	got, err := svc.Authenticate(ctx, "Bearer t")
	require.NoError(t, err)
	assert.Equal(t, identity, got)

	_, err = svc.Profile(ctx, 1)
	require.NoError(t, err)
	_, err = svc.UpdateProfile(ctx, 1, models.ProfileUpdate{})
	require.NoError(t, err)
	assert.Equal(t, 1, svc.Stats(ctx).UsersCount)
}
