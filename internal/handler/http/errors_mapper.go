package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-blog/internal/app"
	"github.com/MKhiriev/go-blog/internal/service"
	"github.com/MKhiriev/go-blog/internal/store"
)

// errorResponse maps a sentinel error to the status and message of the
// envelope sent for it. An empty message means the error text is safe to
// show to the client and is used as is.
type errorResponse struct {
	target  error
	status  int
	message string
}

// errorResponses is checked in order; the first match wins.
var errorResponses = []errorResponse{
	{service.ErrEmptyID, http.StatusBadRequest, app.MsgEmptyID},
	{service.ErrInvalidDataProvided, http.StatusBadRequest, ""},

	{service.ErrWrongCredentials, http.StatusUnauthorized, app.MsgInvalidLoginPassword},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid},

	{store.ErrArticleNotFound, http.StatusNotFound, app.MsgArticleNotFound},
	{store.ErrQuoteNotFound, http.StatusNotFound, app.MsgQuoteNotFound},

	{service.ErrTokenCreationFailed, http.StatusInternalServerError, app.MsgInternalServerError},
	{store.ErrCounterUnavailable, http.StatusInternalServerError, app.MsgInternalServerError},
	{store.ErrBuildingSQLQuery, http.StatusInternalServerError, app.MsgInternalServerError},
	{store.ErrExecutingQuery, http.StatusInternalServerError, app.MsgInternalServerError},
	{store.ErrScanningRow, http.StatusInternalServerError, app.MsgInternalServerError},
	{store.ErrScanningRows, http.StatusInternalServerError, app.MsgInternalServerError},
}

// responseFromError returns the HTTP status and envelope message for err.
// Unknown errors are internal server errors.
func responseFromError(err error) (int, string) {
	for _, resp := range errorResponses {
		if errors.Is(err, resp.target) {
			if resp.message == "" {
				return resp.status, err.Error()
			}
			return resp.status, resp.message
		}
	}

	return http.StatusInternalServerError, app.MsgInternalServerError
}
