// Package utils provides general-purpose helpers shared by the server and
// client: typed context keys, password hashing, JWT issuing and validation,
// UUID generation, and JSON response writing.
package utils

import (
	"context"
)

// contextKey is a private type for context keys. A dedicated type prevents
// collisions with string keys set by other packages.
type contextKey string

// String implements fmt.Stringer.
func (c contextKey) String() string {
	return string(c)
}

// UsernameCtxKey is the key under which the authenticated username is stored
// in a request context after token validation.
var UsernameCtxKey = contextKey("username")

// GetUsernameFromContext retrieves the authenticated username from ctx.
// ok is false when the value is absent or has an unexpected type.
func GetUsernameFromContext(ctx context.Context) (string, bool) {
	username, ok := ctx.Value(UsernameCtxKey).(string)
	return username, ok
}
