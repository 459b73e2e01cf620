package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-blog/internal/app"
	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/utils"
)

// auth is the interceptor that gates admin routes.
//
// For every request it decides, in this order:
//  1. the path matches an exempt rule: the request passes without any
//     credential check;
//  2. the path matches a protected rule: a valid bearer token is required
//     in the "Authorization" header, otherwise a 401 envelope is written and
//     the handler never runs;
//  3. anything else passes.
//
// On success the admin login is stored in the request context under
// [utils.AdminCtxKey].
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method, path := r.Method, r.URL.Path

		if h.exempt.MatchAny(method, path) || !h.protected.MatchAny(method, path) {
			next.ServeHTTP(w, r)
			return
		}

		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Debug().Err(ErrEmptyAuthorizationHeader).Str("path", path).Msg("unauthorized request")
			h.rejectUnauthorized(w, r, app.MsgUnauthorized)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Debug().Err(err).Str("path", path).Msg("unauthorized request")
			h.rejectUnauthorized(w, r, app.MsgUnauthorized)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Warn().Err(err).Str("path", path).Msg("rejected admin token")
			h.rejectUnauthorized(w, r, app.MsgTokenIsExpiredOrInvalid)
			return
		}

		ctx = context.WithValue(ctx, utils.AdminCtxKey, token.Subject)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (h *Handler) rejectUnauthorized(w http.ResponseWriter, r *http.Request, message string) {
	if h.metrics != nil {
		h.metrics.AuthRejected()
	}
	writeFail(w, r, http.StatusUnauthorized, message)
}
