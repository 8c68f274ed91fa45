package ctxutil

import (
	"context"
)

type ctxKey string

const (
	identityIDKey   ctxKey = "identity_id"
	identityRoleKey ctxKey = "identity_role"
	requestIDKey    ctxKey = "request_id"
)

// WithIdentity stores the caller's identity ID and role in the context.
func WithIdentity(ctx context.Context, id, role string) context.Context {
	ctx = context.WithValue(ctx, identityIDKey, id)
	return context.WithValue(ctx, identityRoleKey, role)
}

// IdentityFromCtx extracts the caller's identity ID and role from the context.
// Returns empty strings and false if the value is missing or empty.
func IdentityFromCtx(ctx context.Context) (id string, role string, ok bool) {
	id, ok = ctx.Value(identityIDKey).(string)
	if !ok || id == "" {
		return "", "", false
	}
	role, _ = ctx.Value(identityRoleKey).(string)
	return id, role, true
}

// IdentityIDFromCtx returns only the caller's identity ID.
func IdentityIDFromCtx(ctx context.Context) (string, bool) {
	id, _, ok := IdentityFromCtx(ctx)
	return id, ok
}

// RoleFromCtx returns the caller's role, or an empty string when anonymous.
func RoleFromCtx(ctx context.Context) string {
	_, role, _ := IdentityFromCtx(ctx)
	return role
}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
