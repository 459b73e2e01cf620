package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-blog/internal/service"
	"github.com/MKhiriev/go-blog/internal/store"
	"github.com/MKhiriev/go-blog/internal/validators"
	"github.com/stretchr/testify/assert"
)

func TestResponseFromError(t *testing.T) {
	invalid := fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, validators.ErrEmptyTitle)

	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{name: "empty id", err: service.ErrEmptyID, wantStatus: http.StatusBadRequest, wantMessage: "empty id"},
		{name: "invalid data keeps the validation detail", err: invalid, wantStatus: http.StatusBadRequest, wantMessage: invalid.Error()},
		{name: "wrong credentials", err: service.ErrWrongCredentials, wantStatus: http.StatusUnauthorized, wantMessage: "invalid login/password"},
		{name: "bad token", err: service.ErrTokenIsExpiredOrInvalid, wantStatus: http.StatusUnauthorized, wantMessage: "token is expired or invalid"},
		{name: "wrapped article not found", err: fmt.Errorf("get: %w", store.ErrArticleNotFound), wantStatus: http.StatusNotFound, wantMessage: "article not found"},
		{name: "quote not found", err: store.ErrQuoteNotFound, wantStatus: http.StatusNotFound, wantMessage: "no quotes found"},
		{name: "query failure", err: fmt.Errorf("%w: connection reset", store.ErrExecutingQuery), wantStatus: http.StatusInternalServerError, wantMessage: "internal server error"},
		{name: "token creation failure", err: service.ErrTokenCreationFailed, wantStatus: http.StatusInternalServerError, wantMessage: "internal server error"},
		{name: "unknown error", err: errors.New("something odd"), wantStatus: http.StatusInternalServerError, wantMessage: "internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, message := responseFromError(tt.err)

			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantMessage, message)
		})
	}
}

func TestResponseFromError_FirstMatchWins(t *testing.T) {
	err := errors.Join(store.ErrArticleNotFound, service.ErrEmptyID)

	status, message := responseFromError(err)

	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "empty id", message)
}
