// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks outgoing requests before they reach the
// processing service.
//
// Core concepts:
//   - Validator: generic interface to validate arbitrary values or structures.
//     Supports optional field-level scoping for targeted validation.
//
// Usage patterns:
//  1. Construct a Validator inside the service that issues the request.
//  2. Call Validate with context, value, and optional field names.
//  3. Treat a validation error as a local failure: no request is sent.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
