package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdminAuth(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	t.Run("empty key leaves routes open", func(t *testing.T) {
		rec := httptest.NewRecorder()
		AdminAuth("")(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/feedback", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("missing key rejected", func(t *testing.T) {
		rec := httptest.NewRecorder()
		AdminAuth("secret")(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/feedback", nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("wrong key rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/feedback", nil)
		req.Header.Set("X-Admin-Key", "nope")
		rec := httptest.NewRecorder()
		AdminAuth("secret")(next).ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("correct key passes", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/feedback", nil)
		req.Header.Set("X-Admin-Key", "secret")
		rec := httptest.NewRecorder()
		AdminAuth("secret")(next).ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
