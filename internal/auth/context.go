package auth

import (
	"context"

	"github.com/google/uuid"
)

type contextKey struct{}

// Caller is the authenticated user behind a request.
type Caller struct {
	UserID uuid.UUID
	Role   string
}

func WithCaller(ctx context.Context, caller Caller) context.Context {
	return context.WithValue(ctx, contextKey{}, caller)
}

func FromContext(ctx context.Context) (Caller, bool) {
	caller, ok := ctx.Value(contextKey{}).(Caller)
	return caller, ok
}

func UserID(ctx context.Context) uuid.UUID {
	caller, ok := FromContext(ctx)
	if !ok {
		return uuid.Nil
	}
	return caller.UserID
}
