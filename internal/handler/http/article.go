package http

import (
	"net/http"

	"github.com/MKhiriev/go-blog/internal/app"
	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/models"
)

func (h *Handler) listAllArticles(w http.ResponseWriter, r *http.Request) {
	articles, err := h.services.ArticleService.ListAllArticles(r.Context())
	writeResult(w, r, articles, err)
}

func (h *Handler) listRecentArticles(w http.ResponseWriter, r *http.Request) {
	articles, err := h.services.ArticleService.ListRecentArticles(r.Context(), h.recentLimit)
	writeResult(w, r, articles, err)
}

func (h *Handler) getArticle(w http.ResponseWriter, r *http.Request) {
	id := idParam(r)
	if id == "" {
		writeFail(w, r, http.StatusBadRequest, app.MsgEmptyID)
		return
	}

	article, err := h.services.ArticleService.GetArticle(r.Context(), id)
	writeResult(w, r, article, err)
}

func (h *Handler) saveArticle(w http.ResponseWriter, r *http.Request) {
	var article models.Article
	if err := decodeJSON(w, r, &article); err != nil {
		logger.FromRequest(r).Debug().Err(err).Msg("undecodable article")
		writeFail(w, r, http.StatusBadRequest, app.MsgInvalidDataProvided)
		return
	}

	saved, err := h.services.ArticleService.SaveArticle(r.Context(), article)
	writeCreated(w, r, saved, err)
}

func (h *Handler) updateArticle(w http.ResponseWriter, r *http.Request) {
	id := idParam(r)
	if id == "" {
		writeFail(w, r, http.StatusBadRequest, app.MsgEmptyID)
		return
	}

	var article models.Article
	if err := decodeJSON(w, r, &article); err != nil {
		logger.FromRequest(r).Debug().Err(err).Str("id", id).Msg("undecodable article")
		writeFail(w, r, http.StatusBadRequest, app.MsgInvalidDataProvided)
		return
	}

	updated, err := h.services.ArticleService.UpdateArticle(r.Context(), id, article)
	writeResult(w, r, updated, err)
}

func (h *Handler) removeArticle(w http.ResponseWriter, r *http.Request) {
	id := idParam(r)
	if id == "" {
		writeFail(w, r, http.StatusBadRequest, app.MsgEmptyID)
		return
	}

	removed, err := h.services.ArticleService.RemoveArticle(r.Context(), id)
	writeResult(w, r, removed, err)
}
