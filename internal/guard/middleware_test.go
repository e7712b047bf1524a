// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package guard

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/titanic-identity/internal/mock"
	"github.com/MKhiriev/titanic-identity/internal/service"
	"github.com/MKhiriev/titanic-identity/internal/utils"
	"github.com/MKhiriev/titanic-identity/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func identityEcho(t *testing.T) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, ok := utils.IdentityFromContext(r.Context())
		require.True(t, ok)
		_, _ = utils.WriteJSON(w, identity, http.StatusOK)
	})
}

func TestMiddleware_StoresIdentity(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	auth := mock.NewMockAuthenticator(ctrl)
	auth.EXPECT().Authenticate(gomock.Any(), "Bearer alice").Return(aliceIdentity, nil)

	handler := NewChain(auth, RequireActive()).Middleware(nil)(identityEcho(t))

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer alice")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var got models.Identity
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, aliceIdentity, got)
}

func TestMiddleware_DefaultResponder(t *testing.T) {
	tests := []struct {
		name          string
		err           error
		wantStatus    int
		wantDetail    string
		wantChallenge bool
	}{
		{name: "unauthenticated", err: service.ErrUnauthenticated, wantStatus: http.StatusUnauthorized, wantDetail: "Could not validate credentials", wantChallenge: true},
		{name: "missing header", err: service.ErrAuthorizationHeaderMissing, wantStatus: http.StatusUnauthorized, wantDetail: "Authorization header missing", wantChallenge: true},
		{name: "inactive", err: service.ErrInactiveIdentity, wantStatus: http.StatusForbidden, wantDetail: "Inactive user"},
		{name: "admin required", err: service.ErrAdminRequired, wantStatus: http.StatusForbidden, wantDetail: "Admin access required"},
		{name: "bare forbidden", err: service.ErrForbidden, wantStatus: http.StatusForbidden, wantDetail: "Not enough permissions"},
		{name: "identity service down", err: fmt.Errorf("call failed: %w", service.ErrServiceUnavailable), wantStatus: http.StatusServiceUnavailable, wantDetail: "Auth service unavailable"},
		{name: "unexpected fault", err: errors.New("parse panic"), wantStatus: http.StatusUnauthorized, wantDetail: "Could not validate credentials", wantChallenge: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			auth := mock.NewMockAuthenticator(ctrl)
			auth.EXPECT().Authenticate(gomock.Any(), gomock.Any()).Return(models.Identity{}, tt.err)

			nextCalled := false
			next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) { nextCalled = true })

			w := httptest.NewRecorder()
			NewChain(auth).Middleware(nil)(next).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

			assert.False(t, nextCalled)
			assert.Equal(t, tt.wantStatus, w.Code)

			var body models.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.wantDetail, body.Detail)

			if tt.wantChallenge {
				assert.Equal(t, "Bearer", w.Header().Get("WWW-Authenticate"))
			}
		})
	}
}

func TestMiddleware_CustomResponder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	auth := mock.NewMockAuthenticator(ctrl)
	auth.EXPECT().Authenticate(gomock.Any(), gomock.Any()).Return(bobIdentity, nil)

	var got error
	respond := func(w http.ResponseWriter, r *http.Request, err error) {
		got = err
		w.WriteHeader(http.StatusTeapot)
	}

	handler := NewChain(auth, RequireRole(models.RoleAdmin)).Middleware(respond)(identityEcho(t))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/stats", nil))

	assert.Equal(t, http.StatusTeapot, w.Code)
	assert.ErrorIs(t, got, service.ErrAdminRequired)
}

func TestMiddleware_PassesRequestContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	type ctxKey struct{}
	auth := mock.NewMockAuthenticator(ctrl)
	auth.EXPECT().Authenticate(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ string) (models.Identity, error) {
			assert.Equal(t, "value", ctx.Value(ctxKey{}))
			return bobIdentity, nil
		},
	)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(context.WithValue(req.Context(), ctxKey{}, "value"))

	w := httptest.NewRecorder()
	NewChain(auth).Middleware(nil)(identityEcho(t)).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
