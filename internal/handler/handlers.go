package handler

import (
	"github.com/MKhiriev/titanic-identity/internal/config"
	"github.com/MKhiriev/titanic-identity/internal/handler/http"
	"github.com/MKhiriev/titanic-identity/internal/logger"
	"github.com/MKhiriev/titanic-identity/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{HTTP: http.NewHandler(services, logger)}, nil
}
