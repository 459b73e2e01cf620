package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Init builds the router and wraps it with the interceptor chain.
//
// Routes taking an {id} are also registered with an empty trailing segment
// so that a missing id reaches the controller and is answered with a 400
// envelope instead of a 404.
func (h *Handler) Init() http.Handler {
	router := chi.NewRouter()

	router.Route("/article", func(r chi.Router) {
		r.Get("/all", h.listAllArticles)
		r.Get("/recent", h.listRecentArticles)
		r.Get("/get/", h.getArticle)
		r.Get("/get/{id}", h.getArticle)
	})

	router.Get("/quote/random", h.randomQuote)

	router.Route("/admin", func(r chi.Router) {
		r.Post("/login", h.login)
		r.Get("/access", h.accessCounts)

		r.Post("/article/save", h.saveArticle)
		r.Put("/article/update/", h.updateArticle)
		r.Post("/article/update/", h.updateArticle)
		r.Put("/article/update/{id}", h.updateArticle)
		r.Post("/article/update/{id}", h.updateArticle)
		r.Delete("/article/remove/", h.removeArticle)
		r.Delete("/article/remove/{id}", h.removeArticle)

		r.Post("/quote/save", h.saveQuote)
	})

	router.Get("/version", h.getServerVersion)
	if h.metrics != nil {
		router.Method(http.MethodGet, "/metrics", h.metrics.Handler())
	}

	router.NotFound(routeNotFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	h.logger.Debug().Strs("interceptors", h.interceptors().names()).Msg("http routes registered")

	return h.interceptors().then(router)
}
