package middlewares

import (
	"net/http"
	"strconv"
	"time"
)

// DefaultSecurityHeadersConfig provides sensible defaults for an API that
// serves no HTML.
var DefaultSecurityHeadersConfig = SecurityHeadersConfig{
	ContentTypeOptions: "nosniff",
	FrameOptions:       "DENY",
	ReferrerPolicy:     "no-referrer",
}

// SecurityHeadersConfig configures the security headers middleware.
type SecurityHeadersConfig struct {
	// ContentTypeOptions sets X-Content-Type-Options. Empty disables.
	ContentTypeOptions string

	// FrameOptions sets X-Frame-Options. Empty disables.
	FrameOptions string

	// ReferrerPolicy sets Referrer-Policy. Empty disables.
	ReferrerPolicy string

	// ContentSecurityPolicy sets Content-Security-Policy. Empty disables.
	ContentSecurityPolicy string

	// HSTSMaxAge enables Strict-Transport-Security with the given max-age.
	// Zero disables. Only meaningful behind TLS.
	HSTSMaxAge time.Duration
}

// SecurityHeadersOption configures SecurityHeadersConfig.
type SecurityHeadersOption func(*SecurityHeadersConfig)

// WithFrameOptions sets the X-Frame-Options value.
func WithFrameOptions(v string) SecurityHeadersOption {
	return func(cfg *SecurityHeadersConfig) {
		cfg.FrameOptions = v
	}
}

// WithReferrerPolicy sets the Referrer-Policy value.
func WithReferrerPolicy(v string) SecurityHeadersOption {
	return func(cfg *SecurityHeadersConfig) {
		cfg.ReferrerPolicy = v
	}
}

// WithContentSecurityPolicy sets the Content-Security-Policy value.
func WithContentSecurityPolicy(v string) SecurityHeadersOption {
	return func(cfg *SecurityHeadersConfig) {
		cfg.ContentSecurityPolicy = v
	}
}

// WithHSTS enables Strict-Transport-Security with the given max-age.
func WithHSTS(maxAge time.Duration) SecurityHeadersOption {
	return func(cfg *SecurityHeadersConfig) {
		cfg.HSTSMaxAge = maxAge
	}
}

// SecurityHeaders returns middleware that attaches standard security headers
// to every response.
func SecurityHeaders(opts ...SecurityHeadersOption) func(http.Handler) http.Handler {
	cfg := DefaultSecurityHeadersConfig

	for _, opt := range opts {
		opt(&cfg)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			if cfg.ContentTypeOptions != "" {
				h.Set("X-Content-Type-Options", cfg.ContentTypeOptions)
			}
			if cfg.FrameOptions != "" {
				h.Set("X-Frame-Options", cfg.FrameOptions)
			}
			if cfg.ReferrerPolicy != "" {
				h.Set("Referrer-Policy", cfg.ReferrerPolicy)
			}
			if cfg.ContentSecurityPolicy != "" {
				h.Set("Content-Security-Policy", cfg.ContentSecurityPolicy)
			}
			if cfg.HSTSMaxAge > 0 {
				h.Set("Strict-Transport-Security",
					"max-age="+strconv.FormatInt(int64(cfg.HSTSMaxAge.Seconds()), 10))
			}

			next.ServeHTTP(w, r)
		})
	}
}
