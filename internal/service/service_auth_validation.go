// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/titanic-identity/internal/validators"
	"github.com/MKhiriev/titanic-identity/models"
)

// AuthServiceWrapper decorates an [AuthService] with additional behavior.
type AuthServiceWrapper interface {
	Wrap(AuthService) AuthService
}

// AuthValidationService rejects malformed input before it reaches the
// wrapped [AuthService]. Validation failures unwrap to
// [ErrInvalidDataProvided].
type AuthValidationService struct {
	inner     AuthService
	validator validators.Validator
}

func NewAuthValidationService() AuthServiceWrapper {
	return &AuthValidationService{
		validator: validators.NewAuthValidator(),
	}
}

func (v *AuthValidationService) Wrap(inner AuthService) AuthService {
	v.inner = inner
	return v
}

func (v *AuthValidationService) Register(ctx context.Context, registration models.Registration) (models.TokenPair, error) {
	if err := v.validator.Validate(ctx, registration); err != nil {
		return models.TokenPair{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Register(ctx, registration)
}

func (v *AuthValidationService) Login(ctx context.Context, credentials models.Credentials) (models.TokenPair, error) {
	if err := v.validator.Validate(ctx, credentials); err != nil {
		return models.TokenPair{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Login(ctx, credentials)
}

func (v *AuthValidationService) Refresh(ctx context.Context, refreshToken string) (models.TokenPair, error) {
	if err := v.validator.Validate(ctx, models.RefreshRequest{RefreshToken: refreshToken}); err != nil {
		return models.TokenPair{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Refresh(ctx, refreshToken)
}

func (v *AuthValidationService) Profile(ctx context.Context, userID int64) (models.Profile, error) {
	return v.inner.Profile(ctx, userID)
}

func (v *AuthValidationService) UpdateProfile(ctx context.Context, userID int64, update models.ProfileUpdate) (models.Profile, error) {
	return v.inner.UpdateProfile(ctx, userID, update)
}

func (v *AuthValidationService) Logout(ctx context.Context, refreshToken string) error {
	if err := v.validator.Validate(ctx, models.RefreshRequest{RefreshToken: refreshToken}); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Logout(ctx, refreshToken)
}

func (v *AuthValidationService) Authenticate(ctx context.Context, authorizationHeader string) (models.Identity, error) {
	return v.inner.Authenticate(ctx, authorizationHeader)
}

func (v *AuthValidationService) Stats(ctx context.Context) models.Stats {
	return v.inner.Stats(ctx)
}
