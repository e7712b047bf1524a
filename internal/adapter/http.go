// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter lets dependent services verify callers against the
// identity service over HTTP.
//
// [NewIdentityClient] returns a guard.Authenticator that forwards the
// caller's Authorization header to GET /me and decodes the identity from the
// answer. Failures are the sentinel values from errors.go and unwrap to
// service.ErrUnauthenticated or service.ErrServiceUnavailable.
package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/titanic-identity/internal/config"
	"github.com/MKhiriev/titanic-identity/internal/guard"
	"github.com/MKhiriev/titanic-identity/internal/logger"
	"github.com/MKhiriev/titanic-identity/internal/utils"
	"github.com/MKhiriev/titanic-identity/models"
)

type identityClient struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewIdentityClient constructs the remote [guard.Authenticator]. It
// normalises adapterCfg.IdentityURL and bounds every call by
// adapterCfg.RequestTimeout.
//
// Returns an error if the URL is empty or cannot be parsed.
func NewIdentityClient(adapterCfg config.Adapter, logger *logger.Logger) (guard.Authenticator, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.IdentityURL)
	if err != nil {
		return nil, fmt.Errorf("invalid identity service url: %w", err)
	}

	return &identityClient{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Authenticate implements [guard.Authenticator]. The header is forwarded
// verbatim; an empty header is rejected without a network call.
func (c *identityClient) Authenticate(ctx context.Context, authorizationHeader string) (models.Identity, error) {
	if strings.TrimSpace(authorizationHeader) == "" {
		return models.Identity{}, ErrHeaderMissing
	}

	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Authorization", authorizationHeader).
		Get("/me")
	if err != nil {
		c.logger.Err(err).Str("func", "identityClient.Authenticate").Msg("identity service request failed")
		return models.Identity{}, fmt.Errorf("%w: %w", ErrIdentityUnreachable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Identity{}, err
	}

	var identity models.Identity
	if err = json.Unmarshal(resp.Body(), &identity); err != nil {
		c.logger.Err(err).Str("func", "identityClient.Authenticate").Msg("undecodable identity response")
		return models.Identity{}, fmt.Errorf("%w: decode identity: %w", ErrIdentityUnavailable, err)
	}

	return identity, nil
}
