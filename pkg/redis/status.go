package redis

import (
	"context"
	"errors"
	"sync/atomic"
)

// Status tracks whether a Redis connection is currently usable.
//
// It is owned by the connection that reports into it and injected into the
// components that need to consult it (cache store, rate limiter, health
// checks), so tests can simulate disconnects without touching a real server.
type Status struct {
	up atomic.Bool
}

// NewStatus creates a Status in the given initial state.
func NewStatus(up bool) *Status {
	s := &Status{}
	s.up.Store(up)
	return s
}

// Up reports whether the connection is currently considered available.
func (s *Status) Up() bool {
	return s.up.Load()
}

// MarkUp records a successful connection or operation.
func (s *Status) MarkUp() {
	s.up.Store(true)
}

// MarkDown records a failed connection or operation.
func (s *Status) MarkDown() {
	s.up.Store(false)
}

// MarkDownFrom records a failed operation, unless the failure is client-side
// cancellation: a caller abandoning its request says nothing about the
// server's reachability.
func (s *Status) MarkDownFrom(err error) {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return
	}
	s.up.Store(false)
}
