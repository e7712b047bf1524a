// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

const (
	DefaultServiceName         = "Titanic Auth Service"
	DefaultAppVersion          = "1.0.0"
	DefaultHTTPAddress         = ":8003"
	DefaultAccessTokenTTL      = 15 * time.Minute
	DefaultRefreshTokenTTL     = 7 * 24 * time.Hour
	DefaultPasswordHashCost    = bcrypt.DefaultCost
	DefaultRequestTimeout      = 30 * time.Second
	DefaultShutdownTimeout     = 10 * time.Second
	DefaultIdentityURL         = "http://auth-service:8003"
	DefaultIdentityCallTimeout = 5 * time.Second
)

// defaultConfig returns the lowest-priority configuration layer. The token
// sign key has no default and must always be supplied.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Name:    DefaultServiceName,
			Version: DefaultAppVersion,
		},
		Auth: Auth{
			AccessTokenTTL:   DefaultAccessTokenTTL,
			RefreshTokenTTL:  DefaultRefreshTokenTTL,
			PasswordHashCost: DefaultPasswordHashCost,
		},
		Server: Server{
			HTTPAddress:     DefaultHTTPAddress,
			RequestTimeout:  DefaultRequestTimeout,
			ShutdownTimeout: DefaultShutdownTimeout,
		},
		Adapter: Adapter{
			IdentityURL:    DefaultIdentityURL,
			RequestTimeout: DefaultIdentityCallTimeout,
		},
	}
}
