package http

import (
	"net/http"

	"github.com/MKhiriev/go-blog/internal/app"
	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/models"
)

func (h *Handler) randomQuote(w http.ResponseWriter, r *http.Request) {
	quote, err := h.services.QuoteService.RandomQuote(r.Context())
	writeResult(w, r, quote, err)
}

func (h *Handler) saveQuote(w http.ResponseWriter, r *http.Request) {
	var quote models.Quote
	if err := decodeJSON(w, r, &quote); err != nil {
		logger.FromRequest(r).Debug().Err(err).Msg("undecodable quote")
		writeFail(w, r, http.StatusBadRequest, app.MsgInvalidDataProvided)
		return
	}

	saved, err := h.services.QuoteService.SaveQuote(r.Context(), quote)
	writeCreated(w, r, saved, err)
}
