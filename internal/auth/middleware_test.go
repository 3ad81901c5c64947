package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mybooklist/internal/httpx"
)

func TestCuratorMiddleware(t *testing.T) {
	protected := CuratorMiddleware(testSecret, testCurator)(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, testCurator, httpx.EmailFrom(r))
			w.WriteHeader(http.StatusOK)
		}))

	t.Run("curator token passes", func(t *testing.T) {
		token, err := GenerateToken(testSecret, "sub-1", testCurator, time.Hour)
		require.NoError(t, err)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/books", nil)
		r.Header.Set("Authorization", "Bearer "+token)

		protected.ServeHTTP(w, r)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("missing header", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/books", nil)

		protected.ServeHTTP(w, r)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("garbage token", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/books", nil)
		r.Header.Set("Authorization", "Bearer nope")

		protected.ServeHTTP(w, r)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("token for another address", func(t *testing.T) {
		token, err := GenerateToken(testSecret, "sub-2", "visitor@example.com", time.Hour)
		require.NoError(t, err)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/books", nil)
		r.Header.Set("Authorization", "Bearer "+token)

		protected.ServeHTTP(w, r)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}
