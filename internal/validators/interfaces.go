// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides input validation for request models.
//
// Core concepts:
//   - Validator: generic interface to validate arbitrary values or structures.
//
// Struct rules are declared with go-playground/validator `validate` tags on
// the models; this package registers the custom tags and turns validator
// errors into readable messages keyed by JSON field name.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input.
	Validate(context.Context, any) error
}
