package router

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/textileoem/platform/internal/config"
	"github.com/textileoem/platform/internal/logger"
	"github.com/textileoem/platform/internal/obs"
	"github.com/textileoem/platform/internal/pkg/auth"
	testhelpers "github.com/textileoem/platform/internal/test"
	"github.com/textileoem/platform/internal/usecase"
)

func testConfig() *config.Config {
	return &config.Config{
		Env:             "test",
		Version:         "2.0.0",
		CORSOrigin:      "http://localhost:8080",
		RateLimitWindow: time.Minute,
		RateLimitMax:    1000,
	}
}

func testEngine(t *testing.T, facade Facade) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	limiters := NewLimiters(testConfig())
	t.Cleanup(limiters.Stop)
	return Setup(facade, testConfig(), logger.NewNop(), obs.NewMetrics(), limiters)
}

func do(engine *gin.Engine, method, target string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestSetupRootEndpoints(t *testing.T) {
	engine := testEngine(t, testhelpers.PlatformFacadeStub{})

	w := do(engine, http.MethodGet, "/", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 for root, got %d", w.Code)
	}
	var root map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &root); err != nil {
		t.Fatalf("invalid root payload: %v", err)
	}
	if root["message"] != "Textile OEM Platform API" {
		t.Fatalf("unexpected root message %v", root["message"])
	}

	w = do(engine, http.MethodGet, "/api", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 for /api, got %d", w.Code)
	}
}

func TestSetupProtectedRoutesRequireAuth(t *testing.T) {
	engine := testEngine(t, testhelpers.PlatformFacadeStub{})

	for _, target := range []string{"/api/orders", "/api/compliance", "/api/payments", "/api/notify", "/api/health/detailed"} {
		w := do(engine, http.MethodGet, target, nil)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401 for unauthenticated %s, got %d", target, w.Code)
		}
	}
}

func TestSetupAuthedRoutes(t *testing.T) {
	engine := testEngine(t, testhelpers.PlatformFacadeStub{})
	headers := map[string]string{"Authorization": "Bearer token"}

	for _, target := range []string{"/api/orders", "/api/orders/stats", "/api/compliance", "/api/compliance/upcoming", "/api/payments", "/api/notify", "/api/health/metrics"} {
		w := do(engine, http.MethodGet, target, headers)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200 for %s, got %d: %s", target, w.Code, w.Body.String())
		}
	}
}

func TestSetupHealthWithoutAuth(t *testing.T) {
	engine := testEngine(t, testhelpers.PlatformFacadeStub{})

	if w := do(engine, http.MethodGet, "/api/health", nil); w.Code != http.StatusOK {
		t.Fatalf("expected 200 for health, got %d", w.Code)
	}
	if w := do(engine, http.MethodGet, "/api/health/prometheus", nil); w.Code != http.StatusOK {
		t.Fatalf("expected 200 for prometheus exposition, got %d", w.Code)
	}
}

func TestSetupHealthDegradedStatusCode(t *testing.T) {
	facade := testhelpers.PlatformFacadeStub{
		HealthFacadeStub: testhelpers.HealthFacadeStub{HealthFn: func(context.Context) *usecase.HealthStatus {
			return &usecase.HealthStatus{Status: usecase.HealthDegraded}
		}},
	}
	engine := testEngine(t, facade)

	if w := do(engine, http.MethodGet, "/api/health", nil); w.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 for degraded health, got %d", w.Code)
	}
}

func TestSetupNoRoute(t *testing.T) {
	engine := testEngine(t, testhelpers.PlatformFacadeStub{})

	w := do(engine, http.MethodGet, "/api/unknown-resource", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestSetupAuthTokenExchange(t *testing.T) {
	var supabaseCalled bool
	facade := testhelpers.PlatformFacadeStub{
		ResolveSupabaseFn: func(ctx context.Context, token string) (*auth.Identity, error) {
			supabaseCalled = true
			return &auth.Identity{ID: "user-1", Email: "owner@example.com", Role: "user"}, nil
		},
	}
	engine := testEngine(t, facade)

	w := do(engine, http.MethodPost, "/api/auth/token", map[string]string{"Authorization": "Bearer supabase-token"})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if !supabaseCalled {
		t.Fatal("token exchange must verify against the hosted provider")
	}
}

var _ Facade = testhelpers.PlatformFacadeStub{}
