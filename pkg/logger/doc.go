// Package logger provides slog-based structured logging with per-call
// context enrichment and optional Sentry error reporting.
//
// The factory functions return ready-to-use *slog.Logger instances:
//
//	log := logger.New(middlewares.RequestIDExtractor())
//	log.InfoContext(ctx, "request started", "path", r.URL.Path)
//
// NewWithSentry fans records out to stdout and Sentry when a DSN is
// configured, falling back to stdout-only otherwise.
package logger
