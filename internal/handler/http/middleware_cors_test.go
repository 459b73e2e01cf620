package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithCORS(t *testing.T) {
	h := &Handler{allowedOrigins: []string{"http://localhost:8080"}}

	t.Run("preflight is answered without reaching the handler", func(t *testing.T) {
		called := false
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called = true })

		req := httptest.NewRequest(http.MethodOptions, "/admin/article/save", nil)
		req.Header.Set("Origin", "http://localhost:8080")
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		req.Header.Set("Access-Control-Request-Headers", "Authorization, Content-Type")
		rr := httptest.NewRecorder()

		h.withCORS()(next).ServeHTTP(rr, req)

		assert.False(t, called)
		assert.Less(t, rr.Code, 300)
		assert.Equal(t, "http://localhost:8080", rr.Header().Get("Access-Control-Allow-Origin"))
		assert.Contains(t, rr.Header().Get("Access-Control-Allow-Methods"), http.MethodPost)
	})

	t.Run("simple request from allowed origin", func(t *testing.T) {
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

		req := httptest.NewRequest(http.MethodGet, "/article/all", nil)
		req.Header.Set("Origin", "http://localhost:8080")
		rr := httptest.NewRecorder()

		h.withCORS()(next).ServeHTTP(rr, req)

		assert.Equal(t, "http://localhost:8080", rr.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "true", rr.Header().Get("Access-Control-Allow-Credentials"))
		assert.Equal(t, http.CanonicalHeaderKey(traceIDHeader), rr.Header().Get("Access-Control-Expose-Headers"))
	})

	t.Run("foreign origin gets no CORS headers", func(t *testing.T) {
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

		req := httptest.NewRequest(http.MethodGet, "/article/all", nil)
		req.Header.Set("Origin", "http://evil.example")
		rr := httptest.NewRecorder()

		h.withCORS()(next).ServeHTTP(rr, req)

		assert.Empty(t, rr.Header().Get("Access-Control-Allow-Origin"))
	})
}
