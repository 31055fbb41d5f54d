package redis

import (
	"context"
	"io"
)

// Shutdown returns a function that gracefully closes the given closer.
// Use as a shutdown hook when the server stops.
func Shutdown(closer io.Closer) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		return closer.Close()
	}
}
