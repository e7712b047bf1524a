// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks request payloads of the identity service
// before they reach the services.
//
// A Validator inspects a value and, optionally, only the named fields of
// it. Validation failures are sentinel errors of this package, wrapped
// with the field they refer to.
package validators

import "context"

// Validator validates arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
