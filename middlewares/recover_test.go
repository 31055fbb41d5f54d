package middlewares_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/danielevilela/go-api-boilerplate/middlewares"
	"github.com/danielevilela/go-api-boilerplate/pkg/logger"
)

func TestRecover(t *testing.T) {
	t.Parallel()

	t.Run("converts a panic into a 500", func(t *testing.T) {
		t.Parallel()

		h := middlewares.Recover(logger.NewNope())(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
			panic("boom")
		}))

		rec := httptest.NewRecorder()
		require.NotPanics(t, func() {
			h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		})

		require.Equal(t, http.StatusInternalServerError, rec.Code)
		require.JSONEq(t, `{"error":"internal server error"}`, rec.Body.String())
	})

	t.Run("leaves a partially written response alone", func(t *testing.T) {
		t.Parallel()

		h := middlewares.Recover(logger.NewNope())(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusAccepted)
			panic("after write")
		}))

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		require.Equal(t, http.StatusAccepted, rec.Code)
	})

	t.Run("passes healthy requests through", func(t *testing.T) {
		t.Parallel()

		h := middlewares.Recover(logger.NewNope())(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}))

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		require.Equal(t, http.StatusNoContent, rec.Code)
	})
}
