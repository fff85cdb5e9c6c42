package handlers

import (
	"context"
	"net/http"
)

type contextKey string

const ownerIDKey = contextKey("owner_id")

// WithOwnerID stores the authenticated user's id on the context. Set
// by the auth middleware.
func WithOwnerID(ctx context.Context, id int) context.Context {
	return context.WithValue(ctx, ownerIDKey, id)
}

// OwnerID returns the authenticated user's id, or 0 when the request
// carries none.
func OwnerID(r *http.Request) int {
	if val, ok := r.Context().Value(ownerIDKey).(int); ok {
		return val
	}
	return 0
}
