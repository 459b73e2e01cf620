package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithTraceID(t *testing.T) {
	tests := []struct {
		name       string
		header     string
		wantHeader string
		wantUUID   bool
	}{
		{name: "client trace id is kept", header: "abc-123", wantHeader: "abc-123"},
		{name: "missing trace id is generated", wantUUID: true},
		{name: "oversized trace id is replaced", header: strings.Repeat("x", maxTraceIDLength+1), wantUUID: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			h := &Handler{logger: &logger.Logger{Logger: zerolog.New(&buf)}}

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				logger.FromRequest(r).Info().Msg("inside")
			})

			req := httptest.NewRequest(http.MethodGet, "/article/all", nil)
			if tt.header != "" {
				req.Header.Set(traceIDHeader, tt.header)
			}
			rr := httptest.NewRecorder()

			h.withTraceID(next).ServeHTTP(rr, req)

			got := rr.Header().Get(traceIDHeader)
			if tt.wantUUID {
				_, err := uuid.Parse(got)
				assert.NoError(t, err)
			} else {
				assert.Equal(t, tt.wantHeader, got)
			}

			var entry map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
			assert.Equal(t, got, entry["trace_id"])
		})
	}
}

func TestWithTraceID_DoesNotTouchParentLogger(t *testing.T) {
	var buf bytes.Buffer
	parent := &logger.Logger{Logger: zerolog.New(&buf)}
	h := &Handler{logger: parent}

	h.withTraceID(http.NotFoundHandler()).
		ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	parent.Info().Msg("after")

	assert.NotContains(t, buf.String(), "trace_id")
}
