// Package catalog is an in-memory stand-in for a remote music-catalog API.
// The caching layer only requires that handlers eventually produce a
// JSON-serializable payload; deterministic mock data keeps the scaffold
// runnable and testable without third-party credentials.
package catalog

import (
	"errors"
	"sort"
	"strings"
	"sync"
)

// ErrNotFound is returned when the requested entity does not exist.
var ErrNotFound = errors.New("catalog: not found")

// Artist is a catalog artist.
type Artist struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Genres     []string `json:"genres"`
	Popularity int      `json:"popularity"`
}

// Album is a catalog album.
type Album struct {
	ID          string `json:"id"`
	ArtistID    string `json:"artist_id"`
	Name        string `json:"name"`
	ReleaseYear int    `json:"release_year"`
	TotalTracks int    `json:"total_tracks"`
}

// Track is a catalog track.
type Track struct {
	ID         string `json:"id"`
	ArtistID   string `json:"artist_id"`
	Name       string `json:"name"`
	DurationMS int    `json:"duration_ms"`
	Popularity int    `json:"popularity"`
}

// Catalog is a thread-safe in-memory music catalog.
type Catalog struct {
	mu      sync.RWMutex
	artists map[string]*Artist
	albums  map[string][]Album // keyed by artist ID
	tracks  map[string][]Track // keyed by artist ID
}

// New creates a catalog seeded with deterministic mock data.
func New() *Catalog {
	c := &Catalog{
		artists: make(map[string]*Artist),
		albums:  make(map[string][]Album),
		tracks:  make(map[string][]Track),
	}
	c.seed()
	return c
}

// ListArtists returns all artists sorted by name.
func (c *Catalog) ListArtists() []Artist {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]Artist, 0, len(c.artists))
	for _, a := range c.artists {
		out = append(out, *a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// GetArtist returns the artist with the given ID.
func (c *Catalog) GetArtist(id string) (Artist, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	a, ok := c.artists[id]
	if !ok {
		return Artist{}, ErrNotFound
	}
	return *a, nil
}

// Albums returns the artist's albums, newest first.
func (c *Catalog) Albums(artistID string) ([]Album, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if _, ok := c.artists[artistID]; !ok {
		return nil, ErrNotFound
	}

	albums := append([]Album(nil), c.albums[artistID]...)
	sort.Slice(albums, func(i, j int) bool { return albums[i].ReleaseYear > albums[j].ReleaseYear })
	return albums, nil
}

// TopTracks returns the artist's tracks ordered by popularity.
func (c *Catalog) TopTracks(artistID string) ([]Track, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if _, ok := c.artists[artistID]; !ok {
		return nil, ErrNotFound
	}

	tracks := append([]Track(nil), c.tracks[artistID]...)
	sort.Slice(tracks, func(i, j int) bool { return tracks[i].Popularity > tracks[j].Popularity })
	return tracks, nil
}

// SearchResult groups matches by entity type.
type SearchResult struct {
	Artists []Artist `json:"artists,omitempty"`
	Albums  []Album  `json:"albums,omitempty"`
	Tracks  []Track  `json:"tracks,omitempty"`
}

// Search returns entities whose names contain q, case-insensitively.
// kind filters the result to "artist", "album", or "track"; empty matches
// everything.
func (c *Catalog) Search(q, kind string) SearchResult {
	c.mu.RLock()
	defer c.mu.RUnlock()

	q = strings.ToLower(q)
	var res SearchResult

	if kind == "" || kind == "artist" {
		for _, a := range c.artists {
			if strings.Contains(strings.ToLower(a.Name), q) {
				res.Artists = append(res.Artists, *a)
			}
		}
		sort.Slice(res.Artists, func(i, j int) bool { return res.Artists[i].Name < res.Artists[j].Name })
	}
	if kind == "" || kind == "album" {
		for _, albums := range c.albums {
			for _, al := range albums {
				if strings.Contains(strings.ToLower(al.Name), q) {
					res.Albums = append(res.Albums, al)
				}
			}
		}
		sort.Slice(res.Albums, func(i, j int) bool { return res.Albums[i].Name < res.Albums[j].Name })
	}
	if kind == "" || kind == "track" {
		for _, tracks := range c.tracks {
			for _, t := range tracks {
				if strings.Contains(strings.ToLower(t.Name), q) {
					res.Tracks = append(res.Tracks, t)
				}
			}
		}
		sort.Slice(res.Tracks, func(i, j int) bool { return res.Tracks[i].Name < res.Tracks[j].Name })
	}

	return res
}

// UpdateArtist applies non-nil fields to the artist and returns the result.
func (c *Catalog) UpdateArtist(id string, name *string, genres []string) (Artist, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	a, ok := c.artists[id]
	if !ok {
		return Artist{}, ErrNotFound
	}

	if name != nil {
		a.Name = *name
	}
	if genres != nil {
		a.Genres = genres
	}
	return *a, nil
}

// DeleteArtist removes the artist and its albums and tracks.
func (c *Catalog) DeleteArtist(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.artists[id]; !ok {
		return ErrNotFound
	}
	delete(c.artists, id)
	delete(c.albums, id)
	delete(c.tracks, id)
	return nil
}

func (c *Catalog) seed() {
	artists := []Artist{
		{ID: "art-1", Name: "The Midnight Owls", Genres: []string{"indie rock"}, Popularity: 74},
		{ID: "art-2", Name: "Velvet Harbor", Genres: []string{"dream pop", "shoegaze"}, Popularity: 61},
		{ID: "art-3", Name: "Glass Meridian", Genres: []string{"electronic"}, Popularity: 82},
	}
	for i := range artists {
		a := artists[i]
		c.artists[a.ID] = &a
	}

	c.albums["art-1"] = []Album{
		{ID: "alb-1", ArtistID: "art-1", Name: "Nocturne Avenue", ReleaseYear: 2019, TotalTracks: 11},
		{ID: "alb-2", ArtistID: "art-1", Name: "Paper Lanterns", ReleaseYear: 2022, TotalTracks: 9},
	}
	c.albums["art-2"] = []Album{
		{ID: "alb-3", ArtistID: "art-2", Name: "Salt & Static", ReleaseYear: 2021, TotalTracks: 10},
	}
	c.albums["art-3"] = []Album{
		{ID: "alb-4", ArtistID: "art-3", Name: "Meridian Lines", ReleaseYear: 2020, TotalTracks: 12},
		{ID: "alb-5", ArtistID: "art-3", Name: "Afterglow Protocol", ReleaseYear: 2023, TotalTracks: 8},
	}

	c.tracks["art-1"] = []Track{
		{ID: "trk-1", ArtistID: "art-1", Name: "Streetlight Waltz", DurationMS: 214000, Popularity: 71},
		{ID: "trk-2", ArtistID: "art-1", Name: "Last Train North", DurationMS: 189000, Popularity: 66},
	}
	c.tracks["art-2"] = []Track{
		{ID: "trk-3", ArtistID: "art-2", Name: "Undertow", DurationMS: 243000, Popularity: 58},
	}
	c.tracks["art-3"] = []Track{
		{ID: "trk-4", ArtistID: "art-3", Name: "Axis Mundi", DurationMS: 302000, Popularity: 80},
		{ID: "trk-5", ArtistID: "art-3", Name: "Afterglow", DurationMS: 255000, Popularity: 77},
	}
}
