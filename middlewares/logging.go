package middlewares

import (
	"log/slog"
	"net/http"
	"time"
)

// Logging returns middleware that emits one structured log line per request
// with method, path, status, response size, and duration. The request ID is
// attached automatically when the logger carries RequestIDExtractor.
func Logging(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := newResponseRecorder(w, 0)

			next.ServeHTTP(rec, r)

			log.InfoContext(r.Context(), "request completed",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", rec.Status()),
				slog.Int64("size", rec.Size()),
				slog.String("duration", time.Since(start).String()),
			)
		})
	}
}
