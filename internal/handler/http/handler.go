package http

import (
	"github.com/MKhiriev/titanic-identity/internal/guard"
	"github.com/MKhiriev/titanic-identity/internal/logger"
	"github.com/MKhiriev/titanic-identity/internal/service"
	"github.com/MKhiriev/titanic-identity/internal/utils"
	"github.com/MKhiriev/titanic-identity/models"
)

type Handler struct {
	services *service.Services

	// active admits authenticated, active callers.
	active *guard.Chain
	// admin additionally requires the admin role.
	admin *guard.Chain

	traceIDs utils.TraceIDGenerator

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	active := guard.NewChain(services.AuthService, guard.RequireActive())

	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		active:   active,
		admin:    active.Then(guard.RequireRole(models.RoleAdmin)),
		traceIDs: utils.NewTraceIDGenerator(),
		logger:   logger,
	}
}
