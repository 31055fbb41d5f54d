package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/danielevilela/go-api-boilerplate/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	require.Equal(t, "development", cfg.Env)
	require.True(t, cfg.IsDevelopment())
	require.Equal(t, ":8080", cfg.Addr())
	require.Equal(t, 10*time.Second, cfg.ShutdownTimeout)

	require.Equal(t, 300*time.Second, cfg.Cache.TTL)
	require.Equal(t, "api", cfg.Cache.KeyPrefix)

	require.Equal(t, 100, cfg.RateLimit.Limit)
	require.Equal(t, time.Minute, cfg.RateLimit.Window)

	require.Equal(t, "localhost:6379", cfg.Redis.Addr())
	require.Equal(t, 0, cfg.Redis.CacheDB)
	require.Equal(t, 1, cfg.Redis.LogsDB)
	require.Equal(t, 2, cfg.Redis.PubSubDB)
	require.Equal(t, 15*time.Second, cfg.Redis.PingInterval)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("PORT", "9000")
	t.Setenv("CACHE_TTL", "45s")
	t.Setenv("CACHE_KEY_PREFIX", "v2")
	t.Setenv("REDIS_HOST", "redis.internal")
	t.Setenv("REDIS_PORT", "6380")
	t.Setenv("RATE_LIMIT", "5")

	cfg, err := config.Load()
	require.NoError(t, err)

	require.False(t, cfg.IsDevelopment())
	require.Equal(t, ":9000", cfg.Addr())
	require.Equal(t, 45*time.Second, cfg.Cache.TTL)
	require.Equal(t, "v2", cfg.Cache.KeyPrefix)
	require.Equal(t, "redis.internal:6380", cfg.Redis.Addr())
	require.Equal(t, 5, cfg.RateLimit.Limit)
}

func TestLoad_InvalidValue(t *testing.T) {
	t.Setenv("CACHE_TTL", "not-a-duration")

	_, err := config.Load()
	require.Error(t, err)
}
