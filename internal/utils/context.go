// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, session tokens,
// HTTP response writing, HTTP client initialization, identifier generation
// and other common operations.
package utils

import (
	"context"

	"github.com/MKhiriev/lexsight/models"
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

// SessionUserCtxKey is the key used to store the authenticated user of the
// current request in the context. The value is a models.SessionUser.
//
// Use WithSessionUser and SessionUserFromContext instead of accessing the key
// directly.
var SessionUserCtxKey = contextKey("sessionUser")

// WithSessionUser returns a copy of ctx carrying the authenticated user.
func WithSessionUser(ctx context.Context, user models.SessionUser) context.Context {
	return context.WithValue(ctx, SessionUserCtxKey, user)
}

// SessionUserFromContext retrieves the authenticated user from the context.
//
// Returns the user and an ok flag:
//   - ok == true: a user is present with a non-empty ID
//   - ok == false: the request is anonymous
//
// Example usage:
//
//	user, ok := utils.SessionUserFromContext(ctx)
//	if !ok {
//	    // anonymous caller
//	}
func SessionUserFromContext(ctx context.Context) (models.SessionUser, bool) {
	user, ok := ctx.Value(SessionUserCtxKey).(models.SessionUser)
	if !ok || user.ID == "" {
		return models.SessionUser{}, false
	}
	return user, true
}
