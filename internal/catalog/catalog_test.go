package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/danielevilela/go-api-boilerplate/internal/catalog"
)

func TestCatalog_Artists(t *testing.T) {
	t.Parallel()

	c := catalog.New()

	t.Run("list is sorted by name", func(t *testing.T) {
		t.Parallel()

		artists := c.ListArtists()
		require.Len(t, artists, 3)
		for i := 1; i < len(artists); i++ {
			require.LessOrEqual(t, artists[i-1].Name, artists[i].Name)
		}
	})

	t.Run("get by id", func(t *testing.T) {
		t.Parallel()

		a, err := c.GetArtist("art-1")
		require.NoError(t, err)
		require.Equal(t, "The Midnight Owls", a.Name)
	})

	t.Run("unknown id", func(t *testing.T) {
		t.Parallel()

		_, err := c.GetArtist("art-999")
		require.ErrorIs(t, err, catalog.ErrNotFound)
	})
}

func TestCatalog_AlbumsAndTracks(t *testing.T) {
	t.Parallel()

	c := catalog.New()

	t.Run("albums are newest first", func(t *testing.T) {
		t.Parallel()

		albums, err := c.Albums("art-3")
		require.NoError(t, err)
		require.Len(t, albums, 2)
		require.Equal(t, "Afterglow Protocol", albums[0].Name)
	})

	t.Run("top tracks are ordered by popularity", func(t *testing.T) {
		t.Parallel()

		tracks, err := c.TopTracks("art-3")
		require.NoError(t, err)
		require.Len(t, tracks, 2)
		require.GreaterOrEqual(t, tracks[0].Popularity, tracks[1].Popularity)
	})

	t.Run("unknown artist", func(t *testing.T) {
		t.Parallel()

		_, err := c.Albums("nope")
		require.ErrorIs(t, err, catalog.ErrNotFound)

		_, err = c.TopTracks("nope")
		require.ErrorIs(t, err, catalog.ErrNotFound)
	})
}

func TestCatalog_Search(t *testing.T) {
	t.Parallel()

	c := catalog.New()

	t.Run("matches case-insensitively across types", func(t *testing.T) {
		t.Parallel()

		res := c.Search("afterglow", "")
		require.Len(t, res.Albums, 1)
		require.Len(t, res.Tracks, 1)
		require.Empty(t, res.Artists)
	})

	t.Run("type filter", func(t *testing.T) {
		t.Parallel()

		res := c.Search("afterglow", "album")
		require.Len(t, res.Albums, 1)
		require.Empty(t, res.Tracks)
	})
}

func TestCatalog_Mutations(t *testing.T) {
	t.Parallel()

	t.Run("update applies only provided fields", func(t *testing.T) {
		t.Parallel()

		c := catalog.New()
		name := "Renamed"
		updated, err := c.UpdateArtist("art-1", &name, nil)
		require.NoError(t, err)
		require.Equal(t, "Renamed", updated.Name)
		require.Equal(t, []string{"indie rock"}, updated.Genres, "genres untouched")
	})

	t.Run("delete removes artist and dependents", func(t *testing.T) {
		t.Parallel()

		c := catalog.New()
		require.NoError(t, c.DeleteArtist("art-2"))

		_, err := c.GetArtist("art-2")
		require.ErrorIs(t, err, catalog.ErrNotFound)
		_, err = c.Albums("art-2")
		require.ErrorIs(t, err, catalog.ErrNotFound)
	})

	t.Run("mutating unknown artist", func(t *testing.T) {
		t.Parallel()

		c := catalog.New()
		_, err := c.UpdateArtist("nope", nil, nil)
		require.ErrorIs(t, err, catalog.ErrNotFound)
		require.ErrorIs(t, c.DeleteArtist("nope"), catalog.ErrNotFound)
	})
}
