// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/MKhiriev/titanic-identity/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAuthValidator(t *testing.T) {
	require.NotNil(t, NewAuthValidator())
}

func TestValidate_UnsupportedType(t *testing.T) {
	err := NewAuthValidator().Validate(context.Background(), 42)
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

// ── Registration ─────────────────────────────────────────────────────────────

func TestValidate_Registration(t *testing.T) {
	tests := []struct {
		name     string
		username string
		password string
		wantErr  error
	}{
		{name: "valid", username: "alice", password: "secret1"},
		{name: "underscore and dash", username: "j_doe-2", password: "secret1"},
		{name: "unicode letters", username: "Ярослав", password: "secret1"},
		{name: "min username", username: "abc", password: "secret1"},
		{name: "max username", username: strings.Repeat("a", 50), password: "secret1"},
		{name: "username too short", username: "ab", password: "secret1", wantErr: ErrInvalidUsername},
		{name: "username too long", username: strings.Repeat("a", 51), password: "secret1", wantErr: ErrInvalidUsername},
		{name: "username with space", username: "al ice", password: "secret1", wantErr: ErrInvalidUsername},
		{name: "username with dot", username: "al.ice", password: "secret1", wantErr: ErrInvalidUsername},
		{name: "empty username", username: "", password: "secret1", wantErr: ErrInvalidUsername},
		{name: "password too short", username: "alice", password: "12345", wantErr: ErrInvalidPassword},
		{name: "min password", username: "alice", password: "123456"},
		{name: "password at byte limit", username: "alice", password: strings.Repeat("p", 72)},
		{name: "password over byte limit", username: "alice", password: strings.Repeat("p", 73), wantErr: ErrInvalidPassword},
		{name: "multibyte password over byte limit", username: "alice", password: strings.Repeat("я", 40), wantErr: ErrInvalidPassword},
	}

	v := NewAuthValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			registration := models.Registration{Username: tt.username, Password: tt.password}

			err := v.Validate(context.Background(), registration)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}

			// pointer form behaves the same
			errPtr := v.Validate(context.Background(), &registration)
			assert.Equal(t, err, errPtr)
		})
	}
}

func TestValidate_Registration_SingleField(t *testing.T) {
	v := NewAuthValidator()
	registration := models.Registration{Username: "alice", Password: "x"}

	assert.NoError(t, v.Validate(context.Background(), registration, FieldUsername))
	assert.ErrorIs(t, v.Validate(context.Background(), registration, FieldPassword), ErrInvalidPassword)
	assert.ErrorIs(t, v.Validate(context.Background(), registration, "nickname"), ErrUnknownField)
}

// ── Credentials ──────────────────────────────────────────────────────────────

func TestValidate_Credentials(t *testing.T) {
	v := NewAuthValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.Credentials{Username: "x", Password: "y"}))

	err := v.Validate(ctx, models.Credentials{Password: "y"})
	assert.ErrorIs(t, err, ErrEmptyField)
	assert.Contains(t, err.Error(), FieldUsername)

	err = v.Validate(ctx, &models.Credentials{Username: "x"})
	assert.ErrorIs(t, err, ErrEmptyField)
	assert.Contains(t, err.Error(), FieldPassword)
}

// ── RefreshRequest ───────────────────────────────────────────────────────────

func TestValidate_RefreshRequest(t *testing.T) {
	v := NewAuthValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.RefreshRequest{RefreshToken: "r"}))
	assert.ErrorIs(t, v.Validate(ctx, models.RefreshRequest{}), ErrEmptyField)
	assert.ErrorIs(t, v.Validate(ctx, &models.RefreshRequest{}, "token"), ErrUnknownField)
}
