package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// ContentTypeJSON is the Content-Type of every response body the server
// produces.
const ContentTypeJSON = "application/json; charset=utf-8"

// WriteJSON serializes data to JSON and writes it to w with statusCode.
//
// If marshaling fails nothing has been written yet, so a plain 500 response
// is sent instead and a wrapped error is returned.
//
//	WriteJSON(w, http.StatusOK, envelope)
func WriteJSON(w http.ResponseWriter, statusCode int, data any) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", ContentTypeJSON)
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}
