// Package utils provides small helpers shared by the transport, service and
// storage layers: typed context keys, password hashing, JWT signing and
// verification, JSON response writing, identifier generation and the base
// HTTP client used by outbound adapters.
package utils

import (
	"context"

	"github.com/MKhiriev/go-engineer-hub/models"
)

// contextKey is a private type for context keys, so that values stored by
// this package cannot collide with string keys set elsewhere.
type contextKey string

// String implements fmt.Stringer.
func (c contextKey) String() string {
	return string(c)
}

// UserCtxKey is the context key under which the auth middleware stores the
// authenticated models.User.
var UserCtxKey = contextKey("user")

// WithUser returns a copy of ctx carrying user.
func WithUser(ctx context.Context, user models.User) context.Context {
	return context.WithValue(ctx, UserCtxKey, user)
}

// GetUserFromContext returns the authenticated user stored in ctx.
// ok is false when no user was stored or the value has an unexpected type.
//
//	user, ok := utils.GetUserFromContext(ctx)
//	if !ok {
//	    // request did not pass through the auth middleware
//	}
func GetUserFromContext(ctx context.Context) (models.User, bool) {
	user, ok := ctx.Value(UserCtxKey).(models.User)
	return user, ok
}
