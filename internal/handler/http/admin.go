package http

import (
	"net/http"

	"github.com/MKhiriev/go-blog/internal/app"
	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/models"
)

// login exchanges the admin credentials for a bearer token.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var credentials models.Credentials
	if err := decodeJSON(w, r, &credentials); err != nil {
		logger.FromRequest(r).Debug().Err(err).Msg("undecodable credentials")
		writeFail(w, r, http.StatusBadRequest, app.MsgInvalidDataProvided)
		return
	}

	token, err := h.services.AuthService.Login(r.Context(), credentials)
	if err != nil {
		writeError(w, r, err)
		return
	}

	response := models.LoginResponse{Token: token.SignedString}
	if token.ExpiresAt != nil {
		response.ExpiresAt = token.ExpiresAt.Unix()
	}

	writeResult(w, r, response, nil)
}

// accessCounts lists the per-path request counters.
func (h *Handler) accessCounts(w http.ResponseWriter, r *http.Request) {
	counts, err := h.services.AccessService.AccessCounts(r.Context())
	writeResult(w, r, counts, err)
}
