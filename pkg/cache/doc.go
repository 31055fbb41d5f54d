// Package cache provides the key-value store behind response caching:
// a Store interface with Redis and in-memory backends, deterministic cache
// key derivation, glob-pattern invalidation, and a statistics reporter.
//
// # Stores
//
// RedisStore wraps one logical Redis database and reports into the
// connection's availability Status; every operation degrades gracefully
// when the backend is down (reads miss, writes are skipped, deletes return
// zero). Memory mirrors the same semantics in-process for tests and local
// runs without Redis.
//
// # Keys
//
// DeriveKey maps {prefix, method, path, query} to a stable string key with
// query parameters canonicalized by sorted key order. KeyPattern builds the
// matching glob for bulk invalidation after writes.
//
// # Statistics
//
// RedisStore.Stats issues DBSIZE and INFO against the cache database and
// returns key count, human-readable memory usage, and the server's global
// hit rate, zeroed when the store is unreachable.
package cache
