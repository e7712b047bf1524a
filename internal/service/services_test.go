// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"testing"

	"github.com/MKhiriev/titanic-identity/internal/config"
	"github.com/MKhiriev/titanic-identity/internal/crypto"
	"github.com/MKhiriev/titanic-identity/internal/logger"
	"github.com/MKhiriev/titanic-identity/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServices(t *testing.T) {
	hasher := crypto.NewBcryptHasher(4)
	credentials := store.NewMemoryCredentialStore(hasher, logger.Nop())

	services, err := NewServices(credentials, hasher, config.StructuredConfig{
		App:  config.App{Name: "identity", Version: "1.0.0"},
		Auth: testAuthConfig,
	}, logger.Nop())

	require.NoError(t, err)
	assert.NotNil(t, services.AuthService)
	assert.NotNil(t, services.AppInfoService)
}

func TestNewServices_MissingVersion(t *testing.T) {
	_, err := NewServices(nil, nil, config.StructuredConfig{Auth: testAuthConfig}, logger.Nop())
	assert.ErrorIs(t, err, ErrVersionIsNotSpecified)
}
