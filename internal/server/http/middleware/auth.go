package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/textileoem/platform/internal/domain/errors"
	pkgAuth "github.com/textileoem/platform/internal/pkg/auth"
	"github.com/textileoem/platform/internal/server/http/dto"
)

// IdentityContextKey is the gin context key for the authenticated caller.
const IdentityContextKey = "identity"

// IdentityResolver verifies bearer tokens and resolves the account behind
// them. Implemented by the application facade.
type IdentityResolver interface {
	ResolveIdentity(ctx context.Context, token string) (*pkgAuth.Identity, error)
	ResolveSupabaseIdentity(ctx context.Context, token string) (*pkgAuth.Identity, error)
}

// AuthRequired rejects requests without a valid self-issued bearer token.
func AuthRequired(resolver IdentityResolver) gin.HandlerFunc {
	return requireToken(func(c *gin.Context, token string) (*pkgAuth.Identity, error) {
		return resolver.ResolveIdentity(c.Request.Context(), token)
	})
}

// SupabaseAuth rejects requests without a valid hosted-provider token.
func SupabaseAuth(resolver IdentityResolver) gin.HandlerFunc {
	return requireToken(func(c *gin.Context, token string) (*pkgAuth.Identity, error) {
		return resolver.ResolveSupabaseIdentity(c.Request.Context(), token)
	})
}

func requireToken(resolve func(*gin.Context, string) (*pkgAuth.Identity, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.Fail("Access token is required"))
			return
		}

		identity, err := resolve(c, token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.Fail(authFailureMessage(err)))
			return
		}

		setIdentity(c, identity)
		c.Next()
	}
}

// OptionalAuth resolves the caller when a valid token is present and
// continues anonymously otherwise. Used by the payment webhook.
func OptionalAuth(resolver IdentityResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := extractToken(c); token != "" {
			if identity, err := resolver.ResolveIdentity(c.Request.Context(), token); err == nil {
				setIdentity(c, identity)
			}
		}
		c.Next()
	}
}

// RequireRole gates a route to the listed roles. Must run after AuthRequired.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity := IdentityFrom(c)
		if identity == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.Fail("Authentication required"))
			return
		}
		for _, role := range roles {
			if identity.Role == role {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, dto.Fail("Insufficient permissions"))
	}
}

// IdentityFrom returns the resolved caller, or nil on anonymous requests.
func IdentityFrom(c *gin.Context) *pkgAuth.Identity {
	val, ok := c.Get(IdentityContextKey)
	if !ok {
		return nil
	}
	identity, _ := val.(*pkgAuth.Identity)
	return identity
}

func setIdentity(c *gin.Context, identity *pkgAuth.Identity) {
	c.Set(IdentityContextKey, identity)
	c.Request = c.Request.WithContext(pkgAuth.WithIdentity(c.Request.Context(), *identity))
}

func authFailureMessage(err error) string {
	switch {
	case errors.Is(err, pkgAuth.ErrTokenExpired):
		return "Token expired"
	case errors.Is(err, pkgAuth.ErrInvalidToken):
		return "Invalid token"
	}
	var appErr *domainErrors.AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return "Invalid token"
}

func extractToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimSpace(header[7:])
	}
	return ""
}
