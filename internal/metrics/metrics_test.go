package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_ObserveRequest(t *testing.T) {
	m := New()

	m.ObserveRequest(http.MethodGet, http.StatusOK, 10*time.Millisecond)
	m.ObserveRequest(http.MethodGet, http.StatusOK, 20*time.Millisecond)
	m.ObserveRequest(http.MethodPost, http.StatusUnauthorized, time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.requests.WithLabelValues("GET", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues("POST", "401")))
}

func TestMetrics_CounterIncremented(t *testing.T) {
	m := New()

	m.CounterIncremented(nil)
	m.CounterIncremented(nil)
	m.CounterIncremented(errors.New("redis down"))

	assert.Equal(t, 2.0, testutil.ToFloat64(m.counterIncrement.WithLabelValues(ResultOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.counterIncrement.WithLabelValues(ResultError)))
}

func TestMetrics_AuthRejected(t *testing.T) {
	m := New()
	m.AuthRejected()

	assert.Equal(t, 1.0, testutil.ToFloat64(m.authRejections))
}

func TestMetrics_Handler(t *testing.T) {
	m := New()
	m.AuthRejected()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.True(t, strings.Contains(body, "blog_auth_rejections_total 1"), body)
	assert.Contains(t, body, "go_goroutines")
}

func TestMetrics_Handler_LeavesCompressionToCaller(t *testing.T) {
	m := New()

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("Content-Encoding"))
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}

func TestNew_IndependentRegistries(t *testing.T) {
	assert.NotPanics(t, func() {
		_ = New()
		_ = New()
	})
}
