package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/danielevilela/go-api-boilerplate/internal/catalog"
	"github.com/danielevilela/go-api-boilerplate/internal/httpx"
	"github.com/danielevilela/go-api-boilerplate/pkg/cache"
)

func (a *API) listArtists(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusOK, map[string]any{
		"artists": a.catalog.ListArtists(),
	})
}

func (a *API) getArtist(w http.ResponseWriter, r *http.Request) {
	artist, err := a.catalog.GetArtist(chi.URLParam(r, "id"))
	if err != nil {
		httpx.Error(w, http.StatusNotFound, "artist not found")
		return
	}
	httpx.JSON(w, http.StatusOK, artist)
}

func (a *API) getArtistAlbums(w http.ResponseWriter, r *http.Request) {
	albums, err := a.catalog.Albums(chi.URLParam(r, "id"))
	if err != nil {
		httpx.Error(w, http.StatusNotFound, "artist not found")
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"albums": albums})
}

func (a *API) getArtistTopTracks(w http.ResponseWriter, r *http.Request) {
	tracks, err := a.catalog.TopTracks(chi.URLParam(r, "id"))
	if err != nil {
		httpx.Error(w, http.StatusNotFound, "artist not found")
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"tracks": tracks})
}

func (a *API) search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	if q == "" {
		httpx.Error(w, http.StatusBadRequest, "missing query parameter q")
		return
	}
	httpx.JSON(w, http.StatusOK, a.catalog.Search(q, r.URL.Query().Get("type")))
}

// updateArtistRequest is the PATCH body. Absent fields are left untouched.
type updateArtistRequest struct {
	Name   *string  `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Genres []string `json:"genres,omitempty" validate:"omitempty,dive,min=1"`
}

func (a *API) updateArtist(w http.ResponseWriter, r *http.Request) {
	var req updateArtistRequest
	if err := httpx.Decode(r, &req); err != nil {
		if fields := httpx.FieldErrors(err); fields != nil {
			httpx.ValidationError(w, fields)
			return
		}
		httpx.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	artist, err := a.catalog.UpdateArtist(chi.URLParam(r, "id"), req.Name, req.Genres)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			httpx.Error(w, http.StatusNotFound, "artist not found")
			return
		}
		httpx.Error(w, http.StatusInternalServerError, "update failed")
		return
	}

	a.invalidateArtistReads(r)
	httpx.JSON(w, http.StatusOK, artist)
}

func (a *API) deleteArtist(w http.ResponseWriter, r *http.Request) {
	if err := a.catalog.DeleteArtist(chi.URLParam(r, "id")); err != nil {
		httpx.Error(w, http.StatusNotFound, "artist not found")
		return
	}

	a.invalidateArtistReads(r)
	w.WriteHeader(http.StatusNoContent)
}

// invalidateArtistReads drops every cached read that can embed artist data.
// The route owns the choice of patterns; nothing tracks which cached reads
// actually depend on the mutated entity.
func (a *API) invalidateArtistReads(r *http.Request) {
	for _, pattern := range []string{
		cache.KeyPattern(a.keyPrefix, http.MethodGet, "/api/v1/artists"),
		cache.KeyPattern(a.keyPrefix, http.MethodGet, "/api/v1/search"),
	} {
		n, err := a.store.DeleteMatching(r.Context(), pattern)
		if err != nil {
			a.log.WarnContext(r.Context(), "cache invalidation failed",
				"pattern", pattern,
				"error", err,
			)
			continue
		}
		a.log.InfoContext(r.Context(), "cache invalidated", "pattern", pattern, "deleted", n)
	}
}
