// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"github.com/MKhiriev/titanic-identity/internal/service"
)

// Verification failures. Each one unwraps to a service error kind, so a
// guard chain built on the remote client responds exactly like a local one.
var (
	ErrHeaderMissing         = &service.DetailedError{Kind: service.ErrUnauthenticated, Detail: "Authorization header missing. Please provide: Authorization: Bearer <token>"}
	ErrInvalidOrExpiredToken = &service.DetailedError{Kind: service.ErrUnauthenticated, Detail: "Invalid or expired token"}
	ErrIdentityUnavailable   = &service.DetailedError{Kind: service.ErrServiceUnavailable, Detail: "Auth service unavailable"}
	ErrIdentityUnreachable   = &service.DetailedError{Kind: service.ErrServiceUnavailable, Detail: "Cannot connect to Auth Service"}
)
