package context

import (
	"context"

	"portfolio/internal/domain/entity"
)

// KeyIdentity is the key for storing the resolved caller in context.
const KeyIdentity ContextKey = "identity"

// WithIdentity returns a new context carrying the resolved caller.
func WithIdentity(ctx context.Context, identity *entity.Identity) context.Context {
	return context.WithValue(ctx, KeyIdentity, identity)
}

// IdentityFrom returns the caller attached by the auth middleware, or nil when
// the request is anonymous.
func IdentityFrom(ctx context.Context) *entity.Identity {
	identity, _ := ctx.Value(KeyIdentity).(*entity.Identity)

	return identity
}
