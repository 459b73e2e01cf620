package http

import (
	"context"
	"net/http"
	"path"

	"github.com/MKhiriev/go-blog/internal/logger"
)

// withAccessCount increments the counter of the cleaned request path before
// passing the request on. It never fails the request: store errors are
// logged and counted, and the increment runs on a context that ignores
// client cancellation but is bounded by counterTimeout.
func (h *Handler) withAccessCount(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p := normalizePath(r.URL.Path)

		ctx, cancel := context.WithTimeout(context.WithoutCancel(r.Context()), h.counterTimeout)
		err := h.services.AccessService.RecordAccess(ctx, p)
		cancel()

		if h.metrics != nil {
			h.metrics.CounterIncremented(err)
		}
		if err != nil {
			logger.FromRequest(r).Warn().Err(err).Str("path", p).Msg("access counter increment failed")
		}

		next.ServeHTTP(w, r)
	})
}

func normalizePath(p string) string {
	if p == "" {
		return "/"
	}
	return path.Clean(p)
}
