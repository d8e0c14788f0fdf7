package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application level configuration loaded from the environment.
type Config struct {
	Env        string
	RunAddress string
	Version    string

	DatabaseURI            string
	SupabaseURL            string
	SupabaseAnonKey        string
	SupabaseServiceRoleKey string

	JWTSecret    string
	JWTExpiresIn time.Duration

	RazorpayKeyID     string
	RazorpayKeySecret string

	TwilioAccountSID     string
	TwilioAuthToken      string
	TwilioWhatsAppNumber string
	AlertPhoneNumber     string

	SentryDSN  string
	CORSOrigin string

	RateLimitWindow time.Duration
	RateLimitMax    int

	RedisURL   string
	RedisToken string

	LogDir          string
	ShutdownTimeout time.Duration
}

const (
	defaultEnv             = "development"
	defaultPort            = 3000
	defaultVersion         = "2.0.0"
	defaultJWTExpiresIn    = 7 * 24 * time.Hour
	defaultWhatsAppNumber  = "whatsapp:+14155238886"
	defaultCORSOrigin      = "http://localhost:8080"
	defaultRateLimitWindow = 15 * time.Minute
	defaultRateLimitMax    = 100
	defaultLogDir          = "logs"
	defaultShutdownTimeout = 10 * time.Second
)

// Load parses configuration from a .env file (when present) and the process
// environment. Any required value that is missing or malformed aborts startup.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return load(os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(lookup envLookup) (*Config, error) {
	cfg := &Config{
		Env:                  getString(lookup, "APP_ENV", defaultEnv),
		Version:              getString(lookup, "APP_VERSION", defaultVersion),
		TwilioWhatsAppNumber: getString(lookup, "TWILIO_WHATSAPP_NUMBER", defaultWhatsAppNumber),
		AlertPhoneNumber:     getString(lookup, "ALERT_PHONE_NUMBER", ""),
		SentryDSN:            getString(lookup, "SENTRY_DSN", ""),
		CORSOrigin:           getString(lookup, "CORS_ORIGIN", defaultCORSOrigin),
		RedisURL:             getString(lookup, "UPSTASH_REDIS_URL", ""),
		RedisToken:           getString(lookup, "UPSTASH_REDIS_TOKEN", ""),
		LogDir:               getString(lookup, "LOG_DIR", defaultLogDir),
	}

	var err error

	for _, req := range []struct {
		key string
		dst *string
	}{
		{"DATABASE_URI", &cfg.DatabaseURI},
		{"SUPABASE_URL", &cfg.SupabaseURL},
		{"SUPABASE_ANON_KEY", &cfg.SupabaseAnonKey},
		{"SUPABASE_SERVICE_ROLE_KEY", &cfg.SupabaseServiceRoleKey},
		{"JWT_SECRET", &cfg.JWTSecret},
		{"RAZORPAY_KEY_ID", &cfg.RazorpayKeyID},
		{"RAZORPAY_KEY_SECRET", &cfg.RazorpayKeySecret},
		{"TWILIO_ACCOUNT_SID", &cfg.TwilioAccountSID},
		{"TWILIO_AUTH_TOKEN", &cfg.TwilioAuthToken},
	} {
		if *req.dst, err = requireString(lookup, req.key); err != nil {
			return nil, err
		}
	}

	port, err := getInt(lookup, "PORT", defaultPort)
	if err != nil {
		return nil, err
	}
	cfg.RunAddress = fmt.Sprintf(":%d", port)

	if cfg.JWTExpiresIn, err = getDuration(lookup, "JWT_EXPIRES_IN", defaultJWTExpiresIn); err != nil {
		return nil, err
	}
	if cfg.RateLimitWindow, err = getDuration(lookup, "RATE_LIMIT_WINDOW", defaultRateLimitWindow); err != nil {
		return nil, err
	}
	if cfg.RateLimitMax, err = getInt(lookup, "RATE_LIMIT_MAX_REQUESTS", defaultRateLimitMax); err != nil {
		return nil, err
	}
	if cfg.ShutdownTimeout, err = getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout); err != nil {
		return nil, err
	}

	if cfg.RateLimitMax <= 0 {
		cfg.RateLimitMax = defaultRateLimitMax
	}
	if cfg.RateLimitWindow <= 0 {
		cfg.RateLimitWindow = defaultRateLimitWindow
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	return cfg, nil
}

// Production reports whether the service runs in production mode. Stack traces
// are stripped from client responses when it does.
func (c *Config) Production() bool {
	return c.Env == "production"
}

func requireString(lookup envLookup, key string) (string, error) {
	if v, ok := lookup(key); ok && v != "" {
		return v, nil
	}
	return "", fmt.Errorf("config validation error: %s is required", key)
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getInt(lookup envLookup, key string, def int) (int, error) {
	v, ok := lookup(key)
	if !ok || v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("config validation error: %s must be a number: %w", key, err)
	}
	return n, nil
}

func getDuration(lookup envLookup, key string, def time.Duration) (time.Duration, error) {
	v, ok := lookup(key)
	if !ok || v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("config validation error: %s must be a duration: %w", key, err)
	}
	return d, nil
}
