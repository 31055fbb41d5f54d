package cache

import (
	"context"
	"strconv"
	"strings"
)

// Stats aggregates store-level cache metrics for diagnostics.
//
// Hits and misses are the backend's global counters since server start, not
// per-process numbers. HitRate is hits / (hits + misses), zero when no
// lookups have happened yet.
type Stats struct {
	Available  bool    `json:"available"`
	TotalKeys  int64   `json:"total_keys"`
	MemoryUsed string  `json:"memory_used"`
	Hits       int64   `json:"hits"`
	Misses     int64   `json:"misses"`
	HitRate    float64 `json:"hit_rate"`
}

// Stats derives aggregate metrics from store introspection commands:
// key count in the cache database, memory usage, and the server's global
// hit/miss counters. Returns a zeroed result with Available=false when the
// store is unreachable; it never fails the caller.
func (s *RedisStore) Stats(ctx context.Context) Stats {
	if !s.status.Up() {
		return Stats{}
	}

	stats := Stats{Available: true}

	if n, err := s.client.DBSize(ctx).Result(); err == nil {
		stats.TotalKeys = n
	} else {
		s.status.MarkDownFrom(err)
		return Stats{}
	}

	if info, err := s.client.Info(ctx, "memory").Result(); err == nil {
		stats.MemoryUsed = parseInfo(info)["used_memory_human"]
	}

	if info, err := s.client.Info(ctx, "stats").Result(); err == nil {
		fields := parseInfo(info)
		stats.Hits, _ = strconv.ParseInt(fields["keyspace_hits"], 10, 64)
		stats.Misses, _ = strconv.ParseInt(fields["keyspace_misses"], 10, 64)
		if total := stats.Hits + stats.Misses; total > 0 {
			stats.HitRate = float64(stats.Hits) / float64(total)
		}
	}

	return stats
}

// parseInfo splits an INFO reply into its key:value fields.
// Section headers ("# Memory") and blank lines are skipped.
func parseInfo(raw string) map[string]string {
	fields := make(map[string]string)
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		k, v, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		fields[k] = v
	}
	return fields
}
