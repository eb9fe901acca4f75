// Package validators provides abstractions for input validation and
// enforcement of business rules across the application.
//
// Core concepts:
//   - Validator: generic interface to validate arbitrary values or
//     structures, with optional field-level scoping.
//
// Services inject Validator implementations and call Validate with context,
// value, and optional field names. This keeps the rules out of the
// transport layer and makes them independently testable.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input
// values. Implementations may perform structural validation, semantic
// checks, and cross-field rules.
type Validator interface {

	// Validate validates the provided input and optionally restricts
	// validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
