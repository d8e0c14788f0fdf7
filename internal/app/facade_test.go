package app

import (
	"context"
	"errors"
	"testing"

	domainErrors "github.com/textileoem/platform/internal/domain/errors"
	"github.com/textileoem/platform/internal/domain/model"
	"github.com/textileoem/platform/internal/pkg/auth"
)

type stubUserRepository struct {
	getFn func(context.Context, string) (*model.User, error)
}

func (s stubUserRepository) GetByID(ctx context.Context, id string) (*model.User, error) {
	return s.getFn(ctx, id)
}

type stubStrategy struct {
	parseFn func(string) (*auth.TokenClaims, error)
}

func (s stubStrategy) IssueToken(auth.TokenClaims) (string, error) { return "token", nil }
func (s stubStrategy) ParseToken(token string) (*auth.TokenClaims, error) {
	return s.parseFn(token)
}
func (stubStrategy) Name() string { return "stub" }

type stubVerifier struct {
	verifyFn func(context.Context, string) (string, error)
}

func (s stubVerifier) VerifyToken(ctx context.Context, token string) (string, error) {
	return s.verifyFn(ctx, token)
}

func identityFacade(users stubUserRepository, tokens stubStrategy, verifier stubVerifier) *PlatformFacade {
	return &PlatformFacade{users: users, tokens: tokens, supabase: verifier}
}

func TestResolveIdentityActiveUser(t *testing.T) {
	facade := identityFacade(
		stubUserRepository{getFn: func(_ context.Context, id string) (*model.User, error) {
			return &model.User{ID: id, Email: "owner@textileoem.in", Role: model.RoleAdmin, IsActive: true}, nil
		}},
		stubStrategy{parseFn: func(string) (*auth.TokenClaims, error) {
			return &auth.TokenClaims{Subject: "user-1", Email: "owner@textileoem.in", Role: "admin"}, nil
		}},
		stubVerifier{},
	)

	identity, err := facade.ResolveIdentity(context.Background(), "token")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if identity.ID != "user-1" || identity.Role != "admin" {
		t.Fatalf("unexpected identity %+v", identity)
	}
}

func TestResolveIdentityDeactivatedAccount(t *testing.T) {
	facade := identityFacade(
		stubUserRepository{getFn: func(_ context.Context, id string) (*model.User, error) {
			return &model.User{ID: id, IsActive: false}, nil
		}},
		stubStrategy{parseFn: func(string) (*auth.TokenClaims, error) {
			return &auth.TokenClaims{Subject: "user-1"}, nil
		}},
		stubVerifier{},
	)

	_, err := facade.ResolveIdentity(context.Background(), "token")
	var appErr *domainErrors.AppError
	if !errors.As(err, &appErr) || appErr.Status != 401 {
		t.Fatalf("expected 401, got %v", err)
	}
	if appErr.Message != "Account is deactivated" {
		t.Fatalf("unexpected message %q", appErr.Message)
	}
}

func TestResolveIdentityExpiredTokenPropagates(t *testing.T) {
	facade := identityFacade(
		stubUserRepository{getFn: func(context.Context, string) (*model.User, error) {
			t.Fatal("user lookup must not happen for an expired token")
			return nil, nil
		}},
		stubStrategy{parseFn: func(string) (*auth.TokenClaims, error) {
			return nil, auth.ErrTokenExpired
		}},
		stubVerifier{},
	)

	if _, err := facade.ResolveIdentity(context.Background(), "token"); !errors.Is(err, auth.ErrTokenExpired) {
		t.Fatalf("expected expired token error, got %v", err)
	}
}

func TestResolveIdentityUnknownUser(t *testing.T) {
	facade := identityFacade(
		stubUserRepository{getFn: func(context.Context, string) (*model.User, error) {
			return nil, domainErrors.ErrNotFound
		}},
		stubStrategy{parseFn: func(string) (*auth.TokenClaims, error) {
			return &auth.TokenClaims{Subject: "ghost"}, nil
		}},
		stubVerifier{},
	)

	if _, err := facade.ResolveIdentity(context.Background(), "token"); !errors.Is(err, auth.ErrInvalidToken) {
		t.Fatalf("expected invalid token, got %v", err)
	}
}

func TestResolveSupabaseIdentity(t *testing.T) {
	facade := identityFacade(
		stubUserRepository{getFn: func(_ context.Context, id string) (*model.User, error) {
			if id != "sb-user" {
				t.Fatalf("unexpected lookup %q", id)
			}
			return &model.User{ID: id, Email: "owner@textileoem.in", Role: model.RoleUser, IsActive: true}, nil
		}},
		stubStrategy{},
		stubVerifier{verifyFn: func(_ context.Context, token string) (string, error) {
			if token != "sb-token" {
				t.Fatalf("unexpected token %q", token)
			}
			return "sb-user", nil
		}},
	)

	identity, err := facade.ResolveSupabaseIdentity(context.Background(), "sb-token")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if identity.ID != "sb-user" {
		t.Fatalf("unexpected identity %+v", identity)
	}
}
