package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

// maxBodySize bounds JSON request bodies.
const maxBodySize = 1 << 20

// decodeJSON decodes exactly one JSON value from the request body into dst.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	if r.Body == nil || r.Body == http.NoBody {
		return ErrEmptyRequestBody
	}

	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodySize))
	if err := decoder.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return ErrEmptyRequestBody
		}
		return fmt.Errorf("error decoding request body: %w", err)
	}

	if decoder.More() {
		return ErrTrailingData
	}

	return nil
}

// idParam returns the trimmed {id} URL parameter; empty when absent.
func idParam(r *http.Request) string {
	return strings.TrimSpace(chi.URLParam(r, "id"))
}
