package middleware

import (
	"log/slog"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// RecordCountKey is the gin context key through which handlers publish how
// many records a response carries. Defaults to 1 when unset.
const RecordCountKey = "recordCount"

var auditSkipPaths = map[string]bool{
	"/api/health":            true,
	"/api/health/prometheus": true,
}

// RequestAudit writes one audit-channel line per request with the caller,
// outcome and timing. Health and metrics scrapes are skipped.
func RequestAudit(audit *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if auditSkipPaths[c.Request.URL.Path] {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()

		audit.Info("api request",
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.String("ip", c.ClientIP()),
			slog.String("user_agent", c.Request.UserAgent()),
			slog.String("user_id", auditUserID(c)),
			slog.Int("status", c.Writer.Status()),
			slog.Int("response_size", c.Writer.Size()),
			slog.Duration("elapsed", time.Since(start)),
		)
	}
}

// SecurityEvents writes security-channel lines for auth attempts and failed
// requests.
func SecurityEvents(security *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		status := c.Writer.Status()
		path := c.Request.URL.Path

		if strings.Contains(path, "/auth") || strings.Contains(path, "/login") {
			event := "auth_success"
			if status >= 400 {
				event = "auth_failure"
			}
			security.Info("authentication attempt",
				slog.String("event", event),
				slog.String("ip", c.ClientIP()),
				slog.String("path", path),
				slog.Int("status", status),
			)
		}

		switch {
		case status == 429:
			// Logged by the rate limiter with window context.
		case status >= 500:
			security.Warn("request failed",
				slog.String("event", "server_error"),
				slog.String("method", c.Request.Method),
				slog.String("path", path),
				slog.String("ip", c.ClientIP()),
				slog.Int("status", status),
			)
		case status >= 400:
			security.Info("request rejected",
				slog.String("event", "client_error"),
				slog.String("method", c.Request.Method),
				slog.String("path", path),
				slog.String("ip", c.ClientIP()),
				slog.Int("status", status),
			)
		}
	}
}

var sensitivePrefixes = []string{"/api/orders", "/api/compliance", "/api/payments"}

// DataAccessAudit writes audit-channel lines for reads and writes against
// sensitive resources, including how many records the response carried.
func DataAccessAudit(audit *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		sensitive := false
		for _, prefix := range sensitivePrefixes {
			if strings.HasPrefix(path, prefix) {
				sensitive = true
				break
			}
		}
		if !sensitive {
			c.Next()
			return
		}

		c.Next()

		status := c.Writer.Status()
		audit.Info("data access",
			slog.String("user_id", auditUserID(c)),
			slog.String("resource", resourceFrom(path)),
			slog.String("action", strings.ToLower(c.Request.Method)),
			slog.String("path", path),
			slog.Int("record_count", recordCount(c)),
			slog.Bool("success", status >= 200 && status < 300),
		)
	}
}

func auditUserID(c *gin.Context) string {
	if identity := IdentityFrom(c); identity != nil {
		return identity.ID
	}
	return "anonymous"
}

func resourceFrom(path string) string {
	parts := strings.Split(strings.TrimPrefix(path, "/"), "/")
	if len(parts) >= 2 {
		return parts[1]
	}
	return path
}

func recordCount(c *gin.Context) int {
	if val, ok := c.Get(RecordCountKey); ok {
		if n, ok := val.(int); ok {
			return n
		}
	}
	return 1
}
