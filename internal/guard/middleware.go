// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package guard

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/titanic-identity/internal/logger"
	"github.com/MKhiriev/titanic-identity/internal/service"
	"github.com/MKhiriev/titanic-identity/internal/utils"
)

// ErrorResponder writes the response for a request rejected by a chain.
type ErrorResponder func(w http.ResponseWriter, r *http.Request, err error)

// Middleware returns chi-compatible middleware running the chain on every
// request. On success the identity is stored in the request context and can
// be read with utils.IdentityFromContext. On failure respond is called and
// next is not. A nil respond uses [DefaultResponder].
func (c *Chain) Middleware(respond ErrorResponder) func(http.Handler) http.Handler {
	if respond == nil {
		respond = DefaultResponder
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, err := c.Authorize(r.Context(), r.Header.Get("Authorization"))
			if err != nil {
				logger.FromRequest(r).Info().Err(err).Str("func", "guard.Middleware").Msg("request rejected by guard")
				respond(w, r, err)
				return
			}

			next.ServeHTTP(w, r.WithContext(utils.WithIdentity(r.Context(), identity)))
		})
	}
}

// DefaultResponder maps chain failures to status codes: unauthenticated is
// 401 with a Bearer challenge, forbidden is 403, an unreachable identity
// service is 503. Anything else is treated as 401 so a parsing fault never
// surfaces as a server error.
func DefaultResponder(w http.ResponseWriter, r *http.Request, err error) {
	status := StatusFromError(err)
	utils.WriteError(w, status, Detail(err, status))
}

// StatusFromError returns the HTTP status of a chain failure.
func StatusFromError(err error) int {
	switch {
	case errors.Is(err, service.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, service.ErrServiceUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusUnauthorized
	}
}

// Detail returns the client-facing reason of a chain failure.
func Detail(err error, status int) string {
	var detailed *service.DetailedError
	if errors.As(err, &detailed) {
		return detailed.Detail
	}

	switch status {
	case http.StatusForbidden:
		return "Not enough permissions"
	case http.StatusServiceUnavailable:
		return "Auth service unavailable"
	default:
		return "Could not validate credentials"
	}
}
