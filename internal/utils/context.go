// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys,
// HTTP response writing, JWT token generation and validation,
// and identifier generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// AdminCtxKey is the key under which the auth interceptor stores the login
// of the authenticated administrator.
//
//	ctx := context.WithValue(ctx, utils.AdminCtxKey, "admin")
var AdminCtxKey = contextKey("admin")

// GetAdminFromContext returns the administrator login stored in ctx.
// ok is false when the request was not authenticated.
func GetAdminFromContext(ctx context.Context) (string, bool) {
	admin, ok := ctx.Value(AdminCtxKey).(string)
	return admin, ok && admin != ""
}
