// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package guard

import (
	"context"
	"slices"

	"github.com/MKhiriev/titanic-identity/internal/service"
	"github.com/MKhiriev/titanic-identity/models"
)

// Stage is a check applied to an authenticated identity.
type Stage func(ctx context.Context, identity models.Identity) error

// RequireActive rejects inactive identities with service.ErrForbidden.
func RequireActive() Stage {
	return func(_ context.Context, identity models.Identity) error {
		if !identity.Active {
			return service.ErrInactiveIdentity
		}
		return nil
	}
}

// RequireRole rejects identities whose role differs from role with
// service.ErrForbidden.
func RequireRole(role models.Role) Stage {
	return func(_ context.Context, identity models.Identity) error {
		if identity.Role == role {
			return nil
		}
		if role == models.RoleAdmin {
			return service.ErrAdminRequired
		}
		return service.ErrRoleRequired
	}
}

// Chain authenticates a caller and then runs its stages in order. The first
// failing stage stops the chain. A Chain is immutable and safe for
// concurrent use.
type Chain struct {
	authenticator Authenticator
	stages        []Stage
}

// NewChain returns a chain that authenticates with authenticator and then
// applies stages.
func NewChain(authenticator Authenticator, stages ...Stage) *Chain {
	return &Chain{
		authenticator: authenticator,
		stages:        slices.Clone(stages),
	}
}

// Then returns a new chain with stages appended. c is not modified.
func (c *Chain) Then(stages ...Stage) *Chain {
	return &Chain{
		authenticator: c.authenticator,
		stages:        append(slices.Clone(c.stages), stages...),
	}
}

// Authorize runs the whole chain for the given Authorization header.
func (c *Chain) Authorize(ctx context.Context, authorizationHeader string) (models.Identity, error) {
	identity, err := c.authenticator.Authenticate(ctx, authorizationHeader)
	if err != nil {
		return models.Identity{}, err
	}

	for _, stage := range c.stages {
		if err := stage(ctx, identity); err != nil {
			return models.Identity{}, err
		}
	}

	return identity, nil
}
