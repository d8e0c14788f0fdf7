package config

import (
	"strings"
	"testing"
	"time"
)

func fullEnv() map[string]string {
	return map[string]string{
		"DATABASE_URI":              "postgres://localhost:5432/platform",
		"SUPABASE_URL":              "https://example.supabase.co",
		"SUPABASE_ANON_KEY":         "anon-key",
		"SUPABASE_SERVICE_ROLE_KEY": "service-key",
		"JWT_SECRET":                "top-secret",
		"RAZORPAY_KEY_ID":           "rzp_test_key",
		"RAZORPAY_KEY_SECRET":       "rzp_secret",
		"TWILIO_ACCOUNT_SID":        "AC123",
		"TWILIO_AUTH_TOKEN":         "tw-token",
	}
}

func lookupFrom(env map[string]string) envLookup {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := load(lookupFrom(fullEnv()))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.RunAddress != ":3000" {
		t.Errorf("expected default address :3000, got %q", cfg.RunAddress)
	}
	if cfg.JWTExpiresIn != 7*24*time.Hour {
		t.Errorf("expected 7 day token expiry, got %s", cfg.JWTExpiresIn)
	}
	if cfg.RateLimitMax != 100 {
		t.Errorf("expected rate limit ceiling 100, got %d", cfg.RateLimitMax)
	}
	if cfg.RateLimitWindow != 15*time.Minute {
		t.Errorf("expected 15m window, got %s", cfg.RateLimitWindow)
	}
	if cfg.TwilioWhatsAppNumber != "whatsapp:+14155238886" {
		t.Errorf("unexpected default whatsapp number %q", cfg.TwilioWhatsAppNumber)
	}
	if cfg.Production() {
		t.Error("default environment must not be production")
	}
}

func TestLoadMissingRequired(t *testing.T) {
	for key := range fullEnv() {
		env := fullEnv()
		delete(env, key)
		if _, err := load(lookupFrom(env)); err == nil {
			t.Errorf("expected error when %s is missing", key)
		} else if !strings.Contains(err.Error(), key) {
			t.Errorf("error for %s should name the variable, got %q", key, err.Error())
		}
	}
}

func TestLoadRejectsMistypedValues(t *testing.T) {
	env := fullEnv()
	env["PORT"] = "not-a-number"
	if _, err := load(lookupFrom(env)); err == nil {
		t.Fatal("expected error for malformed PORT")
	}

	env = fullEnv()
	env["JWT_EXPIRES_IN"] = "seven days"
	if _, err := load(lookupFrom(env)); err == nil {
		t.Fatal("expected error for malformed JWT_EXPIRES_IN")
	}
}

func TestLoadOverrides(t *testing.T) {
	env := fullEnv()
	env["PORT"] = "8081"
	env["APP_ENV"] = "production"
	env["RATE_LIMIT_MAX_REQUESTS"] = "25"
	env["RATE_LIMIT_WINDOW"] = "1m"

	cfg, err := load(lookupFrom(env))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.RunAddress != ":8081" {
		t.Errorf("expected :8081, got %q", cfg.RunAddress)
	}
	if !cfg.Production() {
		t.Error("expected production mode")
	}
	if cfg.RateLimitMax != 25 || cfg.RateLimitWindow != time.Minute {
		t.Errorf("rate limit overrides not applied: %d / %s", cfg.RateLimitMax, cfg.RateLimitWindow)
	}
}

func TestLoadOptionalFeaturesDisabledByDefault(t *testing.T) {
	cfg, err := load(lookupFrom(fullEnv()))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.SentryDSN != "" {
		t.Error("sentry should be disabled without a DSN")
	}
	if cfg.RedisURL != "" || cfg.RedisToken != "" {
		t.Error("cache should be disabled without credentials")
	}
}
