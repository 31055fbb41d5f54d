package handlers

import (
	"net/http"

	"github.com/danielevilela/go-api-boilerplate/internal/httpx"
	"github.com/danielevilela/go-api-boilerplate/pkg/cache"
)

// cacheStats reports aggregate store metrics. Never fails: an unreachable
// store yields a zeroed result with available=false.
func (a *API) cacheStats(w http.ResponseWriter, r *http.Request) {
	var stats cache.Stats
	if a.stats != nil {
		stats = a.stats(r.Context())
	}
	httpx.JSON(w, http.StatusOK, stats)
}

// cacheFlush bulk-deletes cache entries by glob pattern and reports the
// count deleted.
func (a *API) cacheFlush(w http.ResponseWriter, r *http.Request) {
	pattern := r.URL.Query().Get("pattern")
	if pattern == "" {
		pattern = a.keyPrefix + ":*"
	}

	deleted, err := a.store.DeleteMatching(r.Context(), pattern)
	if err != nil {
		a.log.WarnContext(r.Context(), "cache flush failed", "pattern", pattern, "error", err)
	}

	httpx.JSON(w, http.StatusOK, map[string]any{
		"pattern": pattern,
		"deleted": deleted,
	})
}
