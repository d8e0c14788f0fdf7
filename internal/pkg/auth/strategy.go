package auth

import (
	"errors"
	"time"
)

var (
	// ErrInvalidToken indicates a malformed token or a bad signature.
	ErrInvalidToken = errors.New("invalid token")
	// ErrTokenExpired indicates a well-formed token past its expiry. Clients
	// react to this differently than to ErrInvalidToken (refresh vs re-login).
	ErrTokenExpired = errors.New("token expired")
)

// Identity is the resolved caller attached to every authenticated request.
type Identity struct {
	ID    string
	Email string
	Role  string
}

// TokenClaims is the payload carried by a self-issued token.
type TokenClaims struct {
	Subject string
	Email   string
	Role    string
}

// Strategy issues and verifies self-signed bearer tokens.
type Strategy interface {
	IssueToken(claims TokenClaims) (string, error)
	ParseToken(token string) (*TokenClaims, error)
	Name() string
}

// Options tunes token issuance.
type Options struct {
	TTL time.Duration
}
