package auth

import (
	"context"

	"github.com/and161185/moment-keeper/internal/model"
)

type ctxKey string

const identityKey ctxKey = "mk.identity"

// WithIdentity stores the authenticated identity in ctx.
func WithIdentity(ctx context.Context, id model.Identity) context.Context {
	return context.WithValue(ctx, identityKey, id)
}

// IdentityFrom fetches the identity stored by WithIdentity.
func IdentityFrom(ctx context.Context) (model.Identity, bool) {
	id, ok := ctx.Value(identityKey).(model.Identity)
	return id, ok
}
