package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/titanic-identity/internal/logger"
	"github.com/MKhiriev/titanic-identity/internal/service"
	"github.com/MKhiriev/titanic-identity/internal/utils"
)

var errorStatusMap = map[error]int{
	ErrInvalidJSON:                   http.StatusBadRequest,
	service.ErrInvalidDataProvided:   http.StatusBadRequest,
	service.ErrUsernameAlreadyExists: http.StatusBadRequest,
	service.ErrInvalidCredentials:    http.StatusUnauthorized,
	service.ErrUnauthenticated:       http.StatusUnauthorized,
	service.ErrForbidden:             http.StatusForbidden,
	service.ErrUserNotFound:          http.StatusNotFound,
	service.ErrTokenCreationFailed:   http.StatusInternalServerError,
	service.ErrServiceUnavailable:    http.StatusServiceUnavailable,
}

var errorDetailMap = map[error]string{
	service.ErrUsernameAlreadyExists: "Username already registered",
	service.ErrInvalidCredentials:    "Incorrect username or password",
	service.ErrUserNotFound:          "User not found",
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// detailFromError returns the reason shown to the client. Internal errors
// are never described beyond their status text.
func detailFromError(err error, status int) string {
	var detailed *service.DetailedError
	if errors.As(err, &detailed) {
		return detailed.Detail
	}

	for target, detail := range errorDetailMap {
		if errors.Is(err, target) {
			return detail
		}
	}

	switch status {
	case http.StatusBadRequest:
		return err.Error()
	case http.StatusUnauthorized:
		return "Could not validate credentials"
	case http.StatusForbidden:
		return "Not enough permissions"
	default:
		return http.StatusText(status)
	}
}

// writeError logs err and answers with its status and detail.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Info().Err(err).Int("status", status).Msg("request rejected")
	}

	utils.WriteError(w, status, detailFromError(err, status))
}
