package http

import (
	"errors"
	"net/http"
	"runtime/debug"

	"github.com/MKhiriev/go-blog/internal/app"
	"github.com/MKhiriev/go-blog/internal/logger"
)

// withRecoverer turns a panic in any inner interceptor or handler into a
// 500 envelope. When the response was already started the panic is only
// logged. http.ErrAbortHandler is re-raised so that net/http can abort the
// connection as intended.
func (h *Handler) withRecoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rw := &responseWriter{ResponseWriter: w}

		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if err, ok := rec.(error); ok && errors.Is(err, http.ErrAbortHandler) {
				panic(rec)
			}

			logger.FromRequest(r).Error().
				Any("panic", rec).
				Bytes("stack", debug.Stack()).
				Bool("response_started", rw.wroteHeader).
				Msg("recovered from panic")

			if rw.wroteHeader {
				return
			}
			writeFail(w, r, http.StatusInternalServerError, app.MsgInternalServerError)
		}()

		next.ServeHTTP(rw, r)
	})
}
