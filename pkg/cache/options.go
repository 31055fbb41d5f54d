package cache

import "time"

// RedisOption configures the Redis-backed store.
type RedisOption func(*redisOptions)

type redisOptions struct {
	defaultTTL time.Duration
}

func defaultRedisOptions() *redisOptions {
	return &redisOptions{
		defaultTTL: 5 * time.Minute,
	}
}

// WithDefaultTTL sets the expiration applied when Set is called with a
// zero TTL.
// Default: 5 minutes.
func WithDefaultTTL(d time.Duration) RedisOption {
	return func(o *redisOptions) {
		o.defaultTTL = d
	}
}
