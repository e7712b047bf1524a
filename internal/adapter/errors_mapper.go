// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// mapHTTPError converts a non-200 answer of the identity service into a
// verification failure. 401 means the token was rejected; every other status,
// 403 included, means the identity service could not vouch for the caller.
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() == http.StatusOK {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}

	switch resp.StatusCode() {
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrInvalidOrExpiredToken, body)
	default:
		return fmt.Errorf("%w: http %d: %s", ErrIdentityUnavailable, resp.StatusCode(), body)
	}
}
