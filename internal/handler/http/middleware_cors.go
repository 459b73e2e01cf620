package http

import (
	"net/http"

	"github.com/go-chi/cors"
)

// withCORS answers preflight requests itself and decorates every other
// response with the CORS headers for the configured origins.
func (h *Handler) withCORS() func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins:   h.allowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Accept", "Origin", "Content-Type"},
		ExposedHeaders:   []string{traceIDHeader},
		AllowCredentials: true,
		MaxAge:           86400,
	})
}
