package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-blog/models"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeJSON(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr error
		anyErr  bool
		want    models.Quote
	}{
		{name: "valid body", body: `{"content":"hi","author":"me"}`, want: models.Quote{Content: "hi", Author: "me"}},
		{name: "empty body", body: "", wantErr: ErrEmptyRequestBody},
		{name: "whitespace body", body: "   ", wantErr: ErrEmptyRequestBody},
		{name: "two values", body: `{"content":"a"} {"content":"b"}`, wantErr: ErrTrailingData},
		{name: "malformed", body: `{"content":`, anyErr: true},
		{name: "wrong type", body: `{"content":1}`, anyErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			if tt.body == "" {
				req.Body = http.NoBody
			}

			var got models.Quote
			err := decodeJSON(httptest.NewRecorder(), req, &got)

			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.anyErr:
				assert.Error(t, err)
			default:
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestDecodeJSON_TooLarge(t *testing.T) {
	body := `{"content":"` + strings.Repeat("x", maxBodySize) + `"}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))

	var got models.Quote
	err := decodeJSON(httptest.NewRecorder(), req, &got)

	assert.Error(t, err)
}

func TestIDParam(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  string
	}{
		{name: "plain", value: "a1", want: "a1"},
		{name: "padded", value: " a1 ", want: "a1"},
		{name: "blank", value: "  ", want: ""},
		{name: "absent", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rctx := chi.NewRouteContext()
			if tt.value != "" {
				rctx.URLParams.Add("id", tt.value)
			}
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

			assert.Equal(t, tt.want, idParam(req))
		})
	}
}
