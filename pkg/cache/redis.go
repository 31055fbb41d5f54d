package cache

import (
	"context"
	"errors"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/danielevilela/go-api-boilerplate/pkg/redis"
)

// RedisStore is a Store backed by one logical Redis database.
//
// Availability comes from the connection's injected Status: transport errors
// mark it down, successful operations and health check pings mark it up.
// The store itself holds no cross-request state beyond the borrowed client.
type RedisStore struct {
	client goredis.UniversalClient
	status *redis.Status
	opts   *redisOptions
}

// NewRedisStore creates a Store over the given connection.
// The connection should be obtained from pkg/redis.Open or OpenAll.
//
// Example:
//
//	store := cache.NewRedisStore(conns.Cache,
//	    cache.WithDefaultTTL(5 * time.Minute),
//	)
func NewRedisStore(conn *redis.Conn, opts ...RedisOption) *RedisStore {
	o := defaultRedisOptions()
	for _, opt := range opts {
		opt(o)
	}

	return &RedisStore{
		client: conn.Client,
		status: conn.Status,
		opts:   o,
	}
}

// Get retrieves a value by key.
// Returns ErrNotFound when the key is absent or the store is unavailable;
// transport errors are returned as-is after marking the status down.
func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, error) {
	if !s.status.Up() {
		return nil, ErrNotFound
	}

	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, ErrNotFound
		}
		s.status.MarkDownFrom(err)
		return nil, err
	}

	return data, nil
}

// Set stores a value with the given TTL. A zero TTL uses the default.
func (s *RedisStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if !s.status.Up() {
		return ErrUnavailable
	}

	if ttl == 0 {
		ttl = s.opts.defaultTTL
	}

	if err := s.client.Set(ctx, key, value, ttl).Err(); err != nil {
		s.status.MarkDownFrom(err)
		return err
	}
	return nil
}

// DeleteMatching removes every key matching the glob pattern via SCAN and
// returns the count deleted. SCAN does not block the server, so bulk
// invalidation is safe on a live instance. Returns 0 immediately when the
// store is unavailable.
func (s *RedisStore) DeleteMatching(ctx context.Context, pattern string) (int, error) {
	if !s.status.Up() {
		return 0, nil
	}

	var (
		cursor  uint64
		deleted int
	)
	for {
		keys, nextCursor, err := s.client.Scan(ctx, cursor, pattern, 100).Result()
		if err != nil {
			s.status.MarkDownFrom(err)
			return deleted, err
		}

		if len(keys) > 0 {
			n, err := s.client.Del(ctx, keys...).Result()
			deleted += int(n)
			if err != nil {
				s.status.MarkDownFrom(err)
				return deleted, err
			}
		}

		cursor = nextCursor
		if cursor == 0 {
			break
		}
	}

	return deleted, nil
}

// Ping verifies connectivity and refreshes the availability status.
func (s *RedisStore) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		s.status.MarkDownFrom(err)
		return err
	}
	s.status.MarkUp()
	return nil
}

// Available reports whether the backing database is currently reachable.
func (s *RedisStore) Available() bool {
	return s.status.Up()
}

var _ Store = (*RedisStore)(nil)
