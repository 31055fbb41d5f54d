package middlewares_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/danielevilela/go-api-boilerplate/middlewares"
)

func TestSecurityHeaders(t *testing.T) {
	t.Parallel()

	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	t.Run("defaults", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		middlewares.SecurityHeaders()(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		require.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
		require.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
		require.Equal(t, "no-referrer", rec.Header().Get("Referrer-Policy"))
		require.Empty(t, rec.Header().Get("Strict-Transport-Security"))
		require.Empty(t, rec.Header().Get("Content-Security-Policy"))
	})

	t.Run("options override defaults", func(t *testing.T) {
		t.Parallel()

		mw := middlewares.SecurityHeaders(
			middlewares.WithFrameOptions("SAMEORIGIN"),
			middlewares.WithHSTS(24*time.Hour),
			middlewares.WithContentSecurityPolicy("default-src 'none'"),
		)

		rec := httptest.NewRecorder()
		mw(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		require.Equal(t, "SAMEORIGIN", rec.Header().Get("X-Frame-Options"))
		require.Equal(t, "max-age=86400", rec.Header().Get("Strict-Transport-Security"))
		require.Equal(t, "default-src 'none'", rec.Header().Get("Content-Security-Policy"))
	})
}
