// Package middlewares provides the HTTP middleware stack for the API
// scaffold: response caching, request IDs, panic recovery, request logging,
// security headers, and Redis-backed rate limiting.
//
// All middleware are standard func(http.Handler) http.Handler decorators
// configured through functional options, so they compose with chi or any
// net/http router:
//
//	r.Use(
//	    middlewares.RequestID(),
//	    middlewares.Logging(log),
//	    middlewares.Recover(log),
//	    middlewares.SecurityHeaders(),
//	)
//	r.Group(func(r chi.Router) {
//	    r.Use(middlewares.Cache(store, log, middlewares.WithCacheTTL(time.Minute)))
//	    r.Get("/api/v1/artists", listArtists)
//	})
//
// # Caching
//
// Cache is deliberately best-effort. It never adds a failure mode to the
// request path: an unreachable store produces SKIP responses, a failed
// lookup produces ERROR and falls through to the handler, and the store
// write happens on a detached goroutine after the response is sent.
// Invalidation is explicit; write handlers clear the read-path keys they
// know about via Store.DeleteMatching. There is no dependency tracking
// between cached reads and the writes that stale them.
package middlewares
