package auth

import (
	"context"
	"testing"
)

func TestIdentityContextRoundTrip(t *testing.T) {
	ctx := context.Background()
	if _, ok := IdentityFromContext(ctx); ok {
		t.Fatal("empty context must not carry an identity")
	}

	ident := Identity{ID: "u-1", Email: "a@b.co", Role: "user"}
	ctx = WithIdentity(ctx, ident)

	got, ok := IdentityFromContext(ctx)
	if !ok {
		t.Fatal("identity not found after WithIdentity")
	}
	if got != ident {
		t.Errorf("expected %+v, got %+v", ident, got)
	}
}
