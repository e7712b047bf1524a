// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/titanic-identity/internal/config"
	"github.com/MKhiriev/titanic-identity/internal/store"
	"github.com/MKhiriev/titanic-identity/models"
)

const statusRunning = "running"

type appInfoService struct {
	appName    string
	appVersion string

	store store.CredentialStore
}

func NewAppInfoService(cfg config.App, credentials store.CredentialStore) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		appName:    cfg.Name,
		appVersion: cfg.Version,
		store:      credentials,
	}, nil
}

func (s *appInfoService) Info(ctx context.Context) models.ServiceInfo {
	return models.ServiceInfo{
		Service:    s.appName,
		Version:    s.appVersion,
		Status:     statusRunning,
		UsersCount: s.store.Count(ctx),
	}
}
