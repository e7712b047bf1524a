package main

import (
	"fmt"

	"github.com/MKhiriev/titanic-identity/internal/config"
	"github.com/MKhiriev/titanic-identity/internal/crypto"
	"github.com/MKhiriev/titanic-identity/internal/handler"
	"github.com/MKhiriev/titanic-identity/internal/logger"
	"github.com/MKhiriev/titanic-identity/internal/server"
	"github.com/MKhiriev/titanic-identity/internal/service"
	"github.com/MKhiriev/titanic-identity/internal/store"
	"github.com/MKhiriev/titanic-identity/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	log := logger.NewLogger("identity-service")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	// a version injected at build time overrides the configured one
	if buildInfo.HasVersion() {
		cfg.App.Version = buildInfo.BuildVersion()
	}

	log.Debug().
		Str("address", cfg.Server.HTTPAddress).
		Str("version", cfg.App.Version).
		Dur("access_token_ttl", cfg.Auth.AccessTokenTTL).
		Dur("refresh_token_ttl", cfg.Auth.RefreshTokenTTL).
		Msg("received configs")

	hasher := crypto.NewBcryptHasher(cfg.Auth.PasswordHashCost)
	credentials := store.NewMemoryCredentialStore(hasher, log)

	services, err := service.NewServices(credentials, hasher, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
