package http

import (
	"net/http"

	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/utils"
	"github.com/MKhiriev/go-blog/models"
)

// writeResult is the single adapter between a service call and the
// response: a nil err yields a success envelope around data, anything else
// an error envelope with null data.
func writeResult[T any](w http.ResponseWriter, r *http.Request, data T, err error) {
	writeResultWithStatus(w, r, http.StatusOK, data, err)
}

// writeCreated is writeResult for operations that create a document.
func writeCreated[T any](w http.ResponseWriter, r *http.Request, data T, err error) {
	writeResultWithStatus(w, r, http.StatusCreated, data, err)
}

func writeResultWithStatus[T any](w http.ResponseWriter, r *http.Request, successStatus int, data T, err error) {
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeEnvelope(w, r, successStatus, models.Ok(data))
}

// writeError maps err to an error envelope.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, message := responseFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	writeFail(w, r, status, message)
}

// writeFail sends an error envelope whose code mirrors status.
func writeFail(w http.ResponseWriter, r *http.Request, status int, message string) {
	writeEnvelope(w, r, status, models.Fail(status, message))
}

func writeEnvelope(w http.ResponseWriter, r *http.Request, status int, envelope any) {
	if _, err := utils.WriteJSON(w, status, envelope); err != nil {
		logger.FromRequest(r).Err(err).Msg("failed to write response")
	}
}
