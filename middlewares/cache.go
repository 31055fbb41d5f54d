package middlewares

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/danielevilela/go-api-boilerplate/pkg/cache"
	"github.com/danielevilela/go-api-boilerplate/pkg/logger"
)

// Response markers attached to every cacheable read for observability.
const (
	HeaderCacheStatus = "X-Cache-Status"
	HeaderCacheKey    = "X-Cache-Key"
)

// Cache status marker values.
const (
	CacheHit   = "HIT"   // served from the store without invoking the handler
	CacheMiss  = "MISS"  // handler invoked, result scheduled for storage
	CacheSkip  = "SKIP"  // caching bypassed (disabled or store unavailable)
	CacheError = "ERROR" // store lookup failed, handler invoked uncached
)

// DefaultCacheTTL is the default entry lifetime.
const DefaultCacheTTL = 300 * time.Second

// DefaultCacheKeyPrefix namespaces derived keys in the store.
const DefaultCacheKeyPrefix = "api"

// DefaultCacheMaxBody caps how large a response body may be to qualify for
// caching.
const DefaultCacheMaxBody int64 = 1 << 20

// defaultWriteTimeout bounds the detached background store write.
const defaultWriteTimeout = 5 * time.Second

// CacheConfig configures the caching middleware for a route group.
// It is fixed at registration time.
type CacheConfig struct {
	TTL       time.Duration // entry lifetime (default: 300s)
	KeyPrefix string        // key namespace (default: "api")
	MaxBody   int64         // max cacheable body size in bytes (default: 1MB)
	Disabled  bool          // bypass caching for this route group
}

// CacheOption configures CacheConfig.
type CacheOption func(*CacheConfig)

// WithCacheTTL sets the entry lifetime.
func WithCacheTTL(d time.Duration) CacheOption {
	return func(cfg *CacheConfig) {
		cfg.TTL = d
	}
}

// WithCacheKeyPrefix sets the key namespace.
func WithCacheKeyPrefix(prefix string) CacheOption {
	return func(cfg *CacheConfig) {
		cfg.KeyPrefix = prefix
	}
}

// WithCacheMaxBody sets the maximum response body size that will be cached.
func WithCacheMaxBody(n int64) CacheOption {
	return func(cfg *CacheConfig) {
		cfg.MaxBody = n
	}
}

// WithCacheDisabled registers the middleware in bypass mode. Responses carry
// a SKIP marker but the store is never touched. Useful for routes that opt
// out of a group-level cache.
func WithCacheDisabled() CacheOption {
	return func(cfg *CacheConfig) {
		cfg.Disabled = true
	}
}

// cachedResponse is the envelope stored per cache entry. A new write
// overwrites the previous entry; entries are never mutated in place.
type cachedResponse struct {
	StatusCode  int    `json:"status_code"`
	ContentType string `json:"content_type,omitempty"`
	Body        []byte `json:"body"`
}

// Cache returns middleware that serves GET responses from the store and
// populates it from handler output on misses.
//
// Per request the middleware is in exactly one of four states:
//
//   - SKIP: non-cacheable method, caching disabled, or store unavailable.
//     The handler runs normally with no store interaction.
//   - HIT: the derived key was found. The stored payload is returned
//     verbatim and the handler never runs.
//   - MISS: the handler runs and its output is written to the store by a
//     detached background goroutine; the response is never delayed by the
//     store write.
//   - ERROR: the lookup failed. The failure is logged and the request
//     proceeds exactly as a miss.
//
// Store failures never surface as request failures: caching is best-effort
// on every path. Only 2xx responses are stored; a failed handler's output
// is never cached. Non-GET requests pass through without cache markers.
func Cache(store cache.Store, log *slog.Logger, opts ...CacheOption) func(http.Handler) http.Handler {
	if log == nil {
		log = logger.NewNope()
	}

	cfg := &CacheConfig{
		TTL:       DefaultCacheTTL,
		KeyPrefix: DefaultCacheKeyPrefix,
		MaxBody:   DefaultCacheMaxBody,
	}

	for _, opt := range opts {
		opt(cfg)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodGet {
				next.ServeHTTP(w, r)
				return
			}

			key := cache.DeriveKey(cfg.KeyPrefix, r.Method, r.URL.Path, r.URL.Query())
			w.Header().Set(HeaderCacheKey, key)

			if cfg.Disabled || !store.Available() {
				w.Header().Set(HeaderCacheStatus, CacheSkip)
				next.ServeHTTP(w, r)
				return
			}

			marker := CacheMiss
			data, err := store.Get(r.Context(), key)
			switch {
			case err == nil:
				if serveCached(w, data) {
					return
				}
				// Undecodable entry: treat as a miss so the rewrite below
				// replaces it.
				log.WarnContext(r.Context(), "discarding undecodable cache entry", "key", key)
			case errors.Is(err, cache.ErrNotFound):
				// miss
			default:
				log.ErrorContext(r.Context(), "cache lookup failed",
					"key", key,
					"operation", "get",
					"error", err,
				)
				marker = CacheError
			}

			w.Header().Set(HeaderCacheStatus, marker)

			rec := newResponseRecorder(w, cfg.MaxBody)
			next.ServeHTTP(rec, r)

			if rec.Status() < 200 || rec.Status() >= 300 {
				return
			}
			body := rec.Body()
			if len(body) == 0 {
				return
			}

			payload, err := json.Marshal(cachedResponse{
				StatusCode:  rec.Status(),
				ContentType: rec.Header().Get("Content-Type"),
				Body:        body,
			})
			if err != nil {
				log.ErrorContext(r.Context(), "cache entry encode failed", "key", key, "error", err)
				return
			}

			// The write is decoupled from the request: it survives client
			// disconnects and its errors are logged, never awaited.
			writeCtx := context.WithoutCancel(r.Context())
			go func() {
				ctx, cancel := context.WithTimeout(writeCtx, defaultWriteTimeout)
				defer cancel()

				if err := store.Set(ctx, key, payload, cfg.TTL); err != nil {
					log.ErrorContext(ctx, "cache write failed",
						"key", key,
						"operation", "set",
						"error", err,
					)
				}
			}()
		})
	}
}

// serveCached replays a stored envelope to the client. Returns false when
// the entry cannot be decoded.
func serveCached(w http.ResponseWriter, data []byte) bool {
	var entry cachedResponse
	if err := json.Unmarshal(data, &entry); err != nil || entry.StatusCode == 0 {
		return false
	}

	w.Header().Set(HeaderCacheStatus, CacheHit)
	if entry.ContentType != "" {
		w.Header().Set("Content-Type", entry.ContentType)
	}
	w.WriteHeader(entry.StatusCode)
	_, _ = w.Write(entry.Body)
	return true
}
