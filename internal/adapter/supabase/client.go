package supabase

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/textileoem/platform/internal/pkg/auth"
)

// Verifier resolves a hosted-auth token to the subject user id by asking the
// identity provider directly.
type Verifier interface {
	VerifyToken(ctx context.Context, token string) (string, error)
}

// HTTPClient implements Verifier against the Supabase auth REST API.
type HTTPClient struct {
	baseURL    *url.URL
	anonKey    string
	httpClient *http.Client
	logger     *slog.Logger
}

// userResponse mirrors the subset of GET /auth/v1/user we consume.
type userResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// NewHTTPClient creates a Supabase auth client with default timeout.
func NewHTTPClient(baseURL, anonKey string, logger *slog.Logger) (*HTTPClient, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse supabase url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("supabase url must be absolute")
	}
	return &HTTPClient{
		baseURL: parsed,
		anonKey: anonKey,
		logger:  logger,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}, nil
}

// VerifyToken delegates token validation to the provider and returns the
// subject user id on success.
func (c *HTTPClient) VerifyToken(ctx context.Context, token string) (string, error) {
	endpoint := c.baseURL.JoinPath("/auth/v1/user")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("apikey", c.anonKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return "", err
		}
		var user userResponse
		if err := json.Unmarshal(body, &user); err != nil {
			return "", err
		}
		if user.ID == "" {
			return "", auth.ErrInvalidToken
		}
		return user.ID, nil
	case http.StatusUnauthorized, http.StatusForbidden:
		return "", auth.ErrInvalidToken
	default:
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("supabase auth request failed", slog.Int("status", resp.StatusCode), slog.String("body", string(body)))
		return "", fmt.Errorf("supabase auth error: %s", resp.Status)
	}
}
