package middleware

import (
	"log/slog"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/textileoem/platform/internal/server/http/dto"
)

// Stable 429 messages per limiter class.
const (
	GeneralLimitMessage      = "Too many requests from this IP, please try again later."
	AuthLimitMessage         = "Too many authentication attempts, please try again later."
	PaymentLimitMessage      = "Too many payment attempts, please try again later."
	NotificationLimitMessage = "Too many notification attempts, please try again later."
)

type window struct {
	count int
	reset time.Time
}

// Limiter is a fixed-window per-IP request counter. Counts reset at window
// boundaries rather than draining continuously, so a burst near a boundary
// can briefly double the ceiling; the stable reset time in the response
// headers is worth that trade.
type Limiter struct {
	mu      sync.Mutex
	windows map[string]*window
	max     int
	period  time.Duration
	done    chan struct{}
}

// NewLimiter creates a limiter allowing max requests per period per client.
// A janitor goroutine evicts expired windows until Stop is called.
func NewLimiter(max int, period time.Duration) *Limiter {
	l := &Limiter{
		windows: make(map[string]*window),
		max:     max,
		period:  period,
		done:    make(chan struct{}),
	}
	go l.janitor()
	return l
}

// Allow counts a request for key. It reports whether the request fits the
// window and how many seconds remain until the window resets.
func (l *Limiter) Allow(key string) (bool, int) {
	now := time.Now()

	l.mu.Lock()
	defer l.mu.Unlock()

	w, ok := l.windows[key]
	if !ok || now.After(w.reset) {
		w = &window{reset: now.Add(l.period)}
		l.windows[key] = w
	}
	w.count++
	remaining := int(time.Until(w.reset).Seconds()) + 1
	return w.count <= l.max, remaining
}

// Stop terminates the janitor goroutine.
func (l *Limiter) Stop() {
	close(l.done)
}

func (l *Limiter) janitor() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-l.done:
			return
		case <-ticker.C:
			now := time.Now()
			l.mu.Lock()
			for key, w := range l.windows {
				if now.After(w.reset) {
					delete(l.windows, key)
				}
			}
			l.mu.Unlock()
		}
	}
}

// RateLimit rejects over-limit requests with 429 and the class message, and
// logs the violation to the security channel.
func RateLimit(limiter *Limiter, message string, security *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ok, resetSeconds := limiter.Allow(c.ClientIP())

		c.Header("RateLimit-Limit", strconv.Itoa(limiter.max))
		c.Header("RateLimit-Reset", strconv.Itoa(resetSeconds))

		if !ok {
			security.Warn("rate limit exceeded",
				slog.String("event", "rate_limit_exceeded"),
				slog.String("ip", c.ClientIP()),
				slog.String("method", c.Request.Method),
				slog.String("path", c.Request.URL.Path),
			)
			c.AbortWithStatusJSON(http.StatusTooManyRequests, dto.Fail(message))
			return
		}
		c.Next()
	}
}
