// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package guard

import (
	"context"

	"github.com/MKhiriev/titanic-identity/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/authenticator_mock.go -package=mock

// Authenticator resolves the raw Authorization header of a request to the
// caller's identity. Failures unwrap to service.ErrUnauthenticated or, for
// remote authenticators that cannot reach the identity service,
// service.ErrServiceUnavailable.
type Authenticator interface {
	Authenticate(ctx context.Context, authorizationHeader string) (models.Identity, error)
}
