package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-blog/internal/store"
	"github.com/MKhiriev/go-blog/models"
	"github.com/stretchr/testify/assert"
)

func TestWriteResult(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		rr := httptest.NewRecorder()
		req := withNopLogger(httptest.NewRequest(http.MethodGet, "/", nil))

		writeResult(rr, req, []string{"a"}, nil)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "application/json; charset=utf-8", rr.Header().Get("Content-Type"))
		env := decodeEnvelope(t, rr.Body)
		assert.Equal(t, models.CodeOK, env.Code)
		assert.JSONEq(t, `["a"]`, string(env.Data))
	})

	t.Run("success with zero value still carries data", func(t *testing.T) {
		rr := httptest.NewRecorder()
		req := withNopLogger(httptest.NewRequest(http.MethodGet, "/", nil))

		writeResult(rr, req, []models.Article{}, nil)

		env := decodeEnvelope(t, rr.Body)
		assert.JSONEq(t, `[]`, string(env.Data))
	})

	t.Run("error drops data", func(t *testing.T) {
		rr := httptest.NewRecorder()
		req := withNopLogger(httptest.NewRequest(http.MethodGet, "/", nil))

		writeResult(rr, req, models.Article{ID: "leak"}, store.ErrArticleNotFound)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		env := decodeEnvelope(t, rr.Body)
		assert.Equal(t, models.CodeNotFound, env.Code)
		assert.NotContains(t, rr.Body.String(), "leak")
	})

	t.Run("unknown error is internal", func(t *testing.T) {
		rr := httptest.NewRecorder()
		req := withNopLogger(httptest.NewRequest(http.MethodGet, "/", nil))

		writeResult(rr, req, 1, errors.New("db exploded"))

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		env := decodeEnvelope(t, rr.Body)
		assert.Equal(t, "internal server error", env.Message)
	})
}

func TestWriteCreated(t *testing.T) {
	rr := httptest.NewRecorder()
	req := withNopLogger(httptest.NewRequest(http.MethodPost, "/", nil))

	writeCreated(rr, req, models.Quote{ID: "q"}, nil)

	assert.Equal(t, http.StatusCreated, rr.Code)
	env := decodeEnvelope(t, rr.Body)
	assert.Equal(t, models.CodeOK, env.Code)
}

func TestWriteFail(t *testing.T) {
	rr := httptest.NewRecorder()
	req := withNopLogger(httptest.NewRequest(http.MethodGet, "/", nil))

	writeFail(rr, req, http.StatusUnauthorized, "unauthorized")

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.JSONEq(t, `{"code":401,"message":"unauthorized","data":null}`, rr.Body.String())
}
