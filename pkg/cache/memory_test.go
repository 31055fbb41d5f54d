package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/danielevilela/go-api-boilerplate/pkg/cache"
)

func TestMemory_GetSet(t *testing.T) {
	t.Parallel()

	t.Run("returns ErrNotFound for missing key", func(t *testing.T) {
		t.Parallel()

		store := cache.NewMemory(cache.WithCleanupInterval(0))
		defer store.Close()

		_, err := store.Get(context.Background(), "missing")
		require.ErrorIs(t, err, cache.ErrNotFound)
	})

	t.Run("returns stored value", func(t *testing.T) {
		t.Parallel()

		store := cache.NewMemory(cache.WithCleanupInterval(0))
		defer store.Close()

		ctx := context.Background()
		require.NoError(t, store.Set(ctx, "key", []byte("value"), time.Minute))

		val, err := store.Get(ctx, "key")
		require.NoError(t, err)
		require.Equal(t, []byte("value"), val)
	})

	t.Run("returns ErrNotFound for expired key", func(t *testing.T) {
		t.Parallel()

		store := cache.NewMemory(cache.WithCleanupInterval(0))
		defer store.Close()

		ctx := context.Background()
		require.NoError(t, store.Set(ctx, "key", []byte("value"), time.Millisecond))

		time.Sleep(5 * time.Millisecond)

		_, err := store.Get(ctx, "key")
		require.ErrorIs(t, err, cache.ErrNotFound)
	})

	t.Run("zero TTL uses default", func(t *testing.T) {
		t.Parallel()

		store := cache.NewMemory(
			cache.WithMemoryDefaultTTL(50*time.Millisecond),
			cache.WithCleanupInterval(0),
		)
		defer store.Close()

		ctx := context.Background()
		require.NoError(t, store.Set(ctx, "key", []byte("value"), 0))

		_, err := store.Get(ctx, "key")
		require.NoError(t, err)

		time.Sleep(60 * time.Millisecond)

		_, err = store.Get(ctx, "key")
		require.ErrorIs(t, err, cache.ErrNotFound)
	})

	t.Run("callers cannot mutate stored values", func(t *testing.T) {
		t.Parallel()

		store := cache.NewMemory(cache.WithCleanupInterval(0))
		defer store.Close()

		ctx := context.Background()
		require.NoError(t, store.Set(ctx, "key", []byte("abc"), time.Minute))

		val, err := store.Get(ctx, "key")
		require.NoError(t, err)
		val[0] = 'x'

		again, err := store.Get(ctx, "key")
		require.NoError(t, err)
		require.Equal(t, []byte("abc"), again)
	})
}

func TestMemory_DeleteMatching(t *testing.T) {
	t.Parallel()

	t.Run("deletes only matching keys and returns count", func(t *testing.T) {
		t.Parallel()

		store := cache.NewMemory(cache.WithCleanupInterval(0))
		defer store.Close()

		ctx := context.Background()
		require.NoError(t, store.Set(ctx, "api:GET:/artists", []byte("a"), time.Minute))
		require.NoError(t, store.Set(ctx, "api:GET:/artists/1", []byte("b"), time.Minute))
		require.NoError(t, store.Set(ctx, "api:GET:/albums", []byte("c"), time.Minute))

		n, err := store.DeleteMatching(ctx, "api:GET:/artists*")
		require.NoError(t, err)
		require.Equal(t, 2, n)

		_, err = store.Get(ctx, "api:GET:/albums")
		require.NoError(t, err)
	})

	t.Run("no matches deletes nothing", func(t *testing.T) {
		t.Parallel()

		store := cache.NewMemory(cache.WithCleanupInterval(0))
		defer store.Close()

		n, err := store.DeleteMatching(context.Background(), "nope:*")
		require.NoError(t, err)
		require.Zero(t, n)
	})
}

func TestMemory_Availability(t *testing.T) {
	t.Parallel()

	store := cache.NewMemory(cache.WithCleanupInterval(0))
	defer store.Close()

	ctx := context.Background()
	require.NoError(t, store.Set(ctx, "key", []byte("value"), time.Minute))

	store.SetAvailable(false)

	require.False(t, store.Available())
	require.Error(t, store.Ping(ctx))

	_, err := store.Get(ctx, "key")
	require.ErrorIs(t, err, cache.ErrNotFound, "reads degrade to absent")

	require.ErrorIs(t, store.Set(ctx, "other", []byte("v"), time.Minute), cache.ErrUnavailable)

	n, err := store.DeleteMatching(ctx, "*")
	require.NoError(t, err)
	require.Zero(t, n, "deletes return zero while unavailable")

	store.SetAvailable(true)

	val, err := store.Get(ctx, "key")
	require.NoError(t, err)
	require.Equal(t, []byte("value"), val, "entries survive a simulated outage")
}

func TestMemory_Close(t *testing.T) {
	t.Parallel()

	store := cache.NewMemory()
	require.NoError(t, store.Close())
	require.NoError(t, store.Close(), "close is idempotent")

	require.ErrorIs(t, store.Set(context.Background(), "k", []byte("v"), time.Minute), cache.ErrClosed)
}
