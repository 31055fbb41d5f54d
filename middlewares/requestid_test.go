package middlewares_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/danielevilela/go-api-boilerplate/middlewares"
)

func TestRequestID(t *testing.T) {
	t.Parallel()

	t.Run("generates an ID when none is provided", func(t *testing.T) {
		t.Parallel()

		var captured string
		h := middlewares.RequestID()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			captured = middlewares.GetRequestID(r.Context())
		}))

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		require.NotEmpty(t, captured)
		require.Equal(t, captured, rec.Header().Get("X-Request-ID"))
	})

	t.Run("preserves an upstream ID", func(t *testing.T) {
		t.Parallel()

		var captured string
		h := middlewares.RequestID()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			captured = middlewares.GetRequestID(r.Context())
		}))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Correlation-ID", "upstream-123")

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		require.Equal(t, "upstream-123", captured)
		require.Equal(t, "upstream-123", rec.Header().Get("X-Request-ID"))
	})

	t.Run("custom generator", func(t *testing.T) {
		t.Parallel()

		h := middlewares.RequestID(
			middlewares.WithRequestIDGenerator(func() string { return "fixed" }),
		)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		require.Equal(t, "fixed", rec.Header().Get("X-Request-ID"))
	})

	t.Run("extractor surfaces the ID for logging", func(t *testing.T) {
		t.Parallel()

		extract := middlewares.RequestIDExtractor()

		h := middlewares.RequestID(
			middlewares.WithRequestIDGenerator(func() string { return "log-me" }),
		)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			attr, ok := extract(r.Context())
			require.True(t, ok)
			require.Equal(t, "log-me", attr.Value.String())
		}))

		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	})
}
