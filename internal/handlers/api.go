// Package handlers wires the catalog API routes: cached reads, invalidating
// writes, and development-only cache diagnostics.
package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/danielevilela/go-api-boilerplate/internal/catalog"
	"github.com/danielevilela/go-api-boilerplate/pkg/cache"
	"github.com/danielevilela/go-api-boilerplate/pkg/logger"
)

// API bundles the dependencies of the catalog endpoints.
type API struct {
	catalog     *catalog.Catalog
	store       cache.Store
	stats       func(context.Context) cache.Stats
	log         *slog.Logger
	keyPrefix   string
	diagnostics bool
}

// Option configures the API.
type Option func(*API)

// WithKeyPrefix sets the cache key namespace used for invalidation patterns.
// Must match the prefix configured on the caching middleware.
func WithKeyPrefix(prefix string) Option {
	return func(a *API) {
		a.keyPrefix = prefix
	}
}

// WithDiagnostics enables the cache stats and bulk-delete endpoints.
// Intended for development builds only.
func WithDiagnostics(stats func(context.Context) cache.Stats) Option {
	return func(a *API) {
		a.diagnostics = true
		a.stats = stats
	}
}

// WithLogger sets the handler logger.
func WithLogger(l *slog.Logger) Option {
	return func(a *API) {
		if l != nil {
			a.log = l
		}
	}
}

// New creates the API handler set.
func New(cat *catalog.Catalog, store cache.Store, opts ...Option) *API {
	a := &API{
		catalog:   cat,
		store:     store,
		log:       logger.NewNope(),
		keyPrefix: "api",
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Routes registers all endpoints on a fresh router. cacheMW wraps the
// read-path routes; write-path routes stay outside it and invalidate
// explicitly after mutating.
func (a *API) Routes(cacheMW func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	r.Group(func(r chi.Router) {
		r.Use(cacheMW)
		r.Get("/artists", a.listArtists)
		r.Get("/artists/{id}", a.getArtist)
		r.Get("/artists/{id}/albums", a.getArtistAlbums)
		r.Get("/artists/{id}/top-tracks", a.getArtistTopTracks)
		r.Get("/search", a.search)
	})

	r.Patch("/artists/{id}", a.updateArtist)
	r.Delete("/artists/{id}", a.deleteArtist)

	if a.diagnostics {
		r.Get("/cache/stats", a.cacheStats)
		r.Delete("/cache", a.cacheFlush)
	}

	return r
}
