// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/titanic-identity/internal/logger"
	"github.com/MKhiriev/titanic-identity/internal/utils"
)

// CheckHTTPMethod returns the handler registered with
// chi.Mux.MethodNotAllowed. Instead of chi's 405 it answers 404 with the
// usual error body, so a route is not revealed to callers using a method it
// does not serve.
//
// Usage:
//
//	router := chi.NewRouter()
//	// ... register routes ...
//	router.MethodNotAllowed(CheckHTTPMethod())
func CheckHTTPMethod() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger.FromRequest(r).Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Msg("method is not served for route")

		utils.WriteError(w, http.StatusNotFound, http.StatusText(http.StatusNotFound))
	}
}
