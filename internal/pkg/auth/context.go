package auth

import "context"

type ctxKey struct{}

// WithIdentity returns a context carrying the resolved caller identity.
// Identity travels through the request context rather than being pinned onto
// a request object, so any layer of the call chain can read it.
func WithIdentity(ctx context.Context, ident Identity) context.Context {
	return context.WithValue(ctx, ctxKey{}, ident)
}

// IdentityFromContext extracts the caller identity, if any.
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	ident, ok := ctx.Value(ctxKey{}).(Identity)
	return ident, ok
}
