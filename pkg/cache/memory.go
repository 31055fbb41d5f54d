package cache

import (
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	expiresAt time.Time
	value     []byte
}

func (e *memoryEntry) isExpired() bool {
	return time.Now().After(e.expiresAt)
}

// Memory is an in-process Store used by tests and Redis-less local runs.
// It honors the same TTL and glob-invalidation semantics as RedisStore and
// can simulate a disconnected backend via SetAvailable.
type Memory struct {
	items     map[string]*memoryEntry
	opts      *memoryOptions
	done      chan struct{}
	mu        sync.Mutex
	available bool
	closed    bool
}

// NewMemory creates a new in-memory store.
//
// Example:
//
//	store := cache.NewMemory(
//	    cache.WithMemoryDefaultTTL(time.Minute),
//	    cache.WithCleanupInterval(30 * time.Second),
//	)
//	defer store.Close()
func NewMemory(opts ...MemoryOption) *Memory {
	o := defaultMemoryOptions()
	for _, opt := range opts {
		opt(o)
	}

	m := &Memory{
		items:     make(map[string]*memoryEntry),
		opts:      o,
		done:      make(chan struct{}),
		available: true,
	}

	if o.cleanupInterval > 0 {
		go m.janitor()
	}

	return m
}

// Get retrieves a value by key.
// Returns ErrNotFound if the key does not exist or has expired.
func (m *Memory) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.available {
		return nil, ErrNotFound
	}

	e, ok := m.items[key]
	if !ok {
		return nil, ErrNotFound
	}
	if e.isExpired() {
		delete(m.items, key)
		return nil, ErrNotFound
	}

	// Copy so callers cannot mutate the stored entry.
	out := make([]byte, len(e.value))
	copy(out, e.value)
	return out, nil
}

// Set stores a value with the given TTL. A zero TTL uses the default.
func (m *Memory) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrClosed
	}
	if !m.available {
		return ErrUnavailable
	}

	if ttl == 0 {
		ttl = m.opts.defaultTTL
	}

	stored := make([]byte, len(value))
	copy(stored, value)

	m.items[key] = &memoryEntry{
		value:     stored,
		expiresAt: time.Now().Add(ttl),
	}
	return nil
}

// DeleteMatching removes every key matching the glob pattern and returns the
// count deleted. Returns 0 when the store is marked unavailable.
func (m *Memory) DeleteMatching(_ context.Context, pattern string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return 0, ErrClosed
	}
	if !m.available {
		return 0, nil
	}

	deleted := 0
	for key := range m.items {
		if globMatch(pattern, key) {
			delete(m.items, key)
			deleted++
		}
	}
	return deleted, nil
}

// globMatch implements Redis-style glob matching: '*' spans any run of
// characters, including key separators, and '?' matches exactly one.
// path.Match is not usable here because its '*' stops at '/' while cache
// keys embed the request path.
func globMatch(pattern, key string) bool {
	var pi, ki int
	star, mark := -1, 0
	for ki < len(key) {
		switch {
		case pi < len(pattern) && (pattern[pi] == '?' || pattern[pi] == key[ki]):
			pi++
			ki++
		case pi < len(pattern) && pattern[pi] == '*':
			star, mark = pi, ki
			pi++
		case star >= 0:
			pi = star + 1
			mark++
			ki = mark
		default:
			return false
		}
	}
	for pi < len(pattern) && pattern[pi] == '*' {
		pi++
	}
	return pi == len(pattern)
}

// Ping reports the simulated availability state.
func (m *Memory) Ping(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.available {
		return ErrUnavailable
	}
	return nil
}

// Available reports whether the store is currently marked reachable.
func (m *Memory) Available() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.available
}

// SetAvailable toggles the simulated availability of the store.
// Tests use this to exercise the disconnected-store degradation paths.
func (m *Memory) SetAvailable(up bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.available = up
}

// Len returns the number of live entries.
func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.items)
}

// Close stops the background janitor. Close is idempotent.
func (m *Memory) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return nil
	}
	m.closed = true
	close(m.done)
	return nil
}

// janitor periodically removes expired entries.
func (m *Memory) janitor() {
	ticker := time.NewTicker(m.opts.cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-m.done:
			return
		case <-ticker.C:
			m.deleteExpired()
		}
	}
}

func (m *Memory) deleteExpired() {
	m.mu.Lock()
	defer m.mu.Unlock()

	for key, e := range m.items {
		if e.isExpired() {
			delete(m.items, key)
		}
	}
}

var _ Store = (*Memory)(nil)

// MemoryOption configures the in-memory store.
type MemoryOption func(*memoryOptions)

type memoryOptions struct {
	defaultTTL      time.Duration
	cleanupInterval time.Duration
}

func defaultMemoryOptions() *memoryOptions {
	return &memoryOptions{
		defaultTTL:      5 * time.Minute,
		cleanupInterval: time.Minute,
	}
}

// WithMemoryDefaultTTL sets the expiration applied when Set is called with
// a zero TTL.
// Default: 5 minutes.
func WithMemoryDefaultTTL(d time.Duration) MemoryOption {
	return func(o *memoryOptions) {
		o.defaultTTL = d
	}
}

// WithCleanupInterval sets how often expired entries are removed by the
// background janitor goroutine. Zero disables the janitor; expired entries
// are then only dropped lazily on access.
// Default: 1 minute.
func WithCleanupInterval(d time.Duration) MemoryOption {
	return func(o *memoryOptions) {
		o.cleanupInterval = d
	}
}
