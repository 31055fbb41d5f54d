package middlewares

import (
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/danielevilela/go-api-boilerplate/internal/httpx"
	"github.com/danielevilela/go-api-boilerplate/pkg/redis"
)

// Rate limit defaults: 100 requests per minute per client.
const (
	DefaultRateLimit       = 100
	DefaultRateLimitWindow = time.Minute
)

// RateLimitConfig configures the rate limiting middleware.
type RateLimitConfig struct {
	Limit     int                            // max requests per window
	Window    time.Duration                  // fixed window length
	KeyPrefix string                         // counter key namespace
	KeyFunc   func(r *http.Request) string   // client identity (default: IP)
}

// RateLimitOption configures RateLimitConfig.
type RateLimitOption func(*RateLimitConfig)

// WithRateLimit sets the request budget per window.
func WithRateLimit(limit int, window time.Duration) RateLimitOption {
	return func(cfg *RateLimitConfig) {
		cfg.Limit = limit
		cfg.Window = window
	}
}

// WithRateLimitKeyFunc sets a custom client identity function.
func WithRateLimitKeyFunc(fn func(r *http.Request) string) RateLimitOption {
	return func(cfg *RateLimitConfig) {
		cfg.KeyFunc = fn
	}
}

// RateLimit returns middleware enforcing a fixed-window request budget per
// client, counted in Redis with INCR + EXPIRE. When the store is down or a
// counter operation fails the middleware fails open: limiting degrades,
// requests are never rejected because of infrastructure trouble.
func RateLimit(conn *redis.Conn, log *slog.Logger, opts ...RateLimitOption) func(http.Handler) http.Handler {
	cfg := &RateLimitConfig{
		Limit:     DefaultRateLimit,
		Window:    DefaultRateLimitWindow,
		KeyPrefix: "ratelimit",
		KeyFunc:   ClientIP,
	}

	for _, opt := range opts {
		opt(cfg)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !conn.Status.Up() {
				next.ServeHTTP(w, r)
				return
			}

			key := cfg.KeyPrefix + ":" + cfg.KeyFunc(r)

			count, err := conn.Client.Incr(r.Context(), key).Result()
			if err != nil {
				conn.Status.MarkDownFrom(err)
				log.WarnContext(r.Context(), "rate limit counter failed", "key", key, "error", err)
				next.ServeHTTP(w, r)
				return
			}
			if count == 1 {
				_ = conn.Client.Expire(r.Context(), key, cfg.Window).Err()
			}

			remaining := max(int64(cfg.Limit)-count, 0)
			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(cfg.Limit))
			w.Header().Set("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))

			if count > int64(cfg.Limit) {
				w.Header().Set("Retry-After", strconv.FormatInt(int64(cfg.Window.Seconds()), 10))
				httpx.Error(w, http.StatusTooManyRequests, "rate limit exceeded")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// ClientIP identifies the client by the first X-Forwarded-For hop, falling
// back to the connection's remote address. It is the rate limiter's default
// identity function.
func ClientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		if ip, _, ok := strings.Cut(fwd, ","); ok || ip != "" {
			return strings.TrimSpace(ip)
		}
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
