package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/models"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestWithRecoverer_PanicBecomesInternalError(t *testing.T) {
	h := &Handler{logger: logger.Nop()}
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})

	rr := httptest.NewRecorder()
	req := withNopLogger(httptest.NewRequest(http.MethodGet, "/article/all", nil))

	assert.NotPanics(t, func() {
		h.withRecoverer(next).ServeHTTP(rr, req)
	})

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	env := decodeEnvelope(t, rr.Body)
	assert.Equal(t, http.StatusInternalServerError, env.Code)
	assert.Equal(t, "internal server error", env.Message)
}

func TestWithRecoverer_AbortHandlerIsRepanicked(t *testing.T) {
	h := &Handler{logger: logger.Nop()}
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic(http.ErrAbortHandler)
	})

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/article/all", nil)

	assert.PanicsWithValue(t, http.ErrAbortHandler, func() {
		h.withRecoverer(next).ServeHTTP(rr, req)
	})
}

func TestWithRecoverer_PanicAfterResponseStarted(t *testing.T) {
	h := &Handler{logger: logger.Nop()}
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"code":0,"message":"","data":[]}`))
		panic("boom")
	})

	rr := httptest.NewRecorder()
	req := withNopLogger(httptest.NewRequest(http.MethodGet, "/article/all", nil))

	assert.NotPanics(t, func() {
		h.withRecoverer(next).ServeHTTP(rr, req)
	})

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"code":0,"message":"","data":[]}`, rr.Body.String())
}

func TestWithRecoverer_NoPanic(t *testing.T) {
	h := &Handler{logger: logger.Nop()}
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	rr := httptest.NewRecorder()
	h.withRecoverer(next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusTeapot, rr.Code)
}

func TestRoutes_PanicInServiceIsRecovered(t *testing.T) {
	h, mocks := newTestHandler(t)
	allowAnyAccess(mocks)
	mocks.quotes.EXPECT().RandomQuote(gomock.Any()).DoAndReturn(func(context.Context) (models.Quote, error) {
		panic("nil map")
	})

	rr := doRequest(h.Init(), http.MethodGet, "/quote/random", "", nil)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	decodeEnvelope(t, rr.Body)
}
