package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/graph-gophers/graphql-go/relay"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)

	// the single GraphQL endpoint; the viewer middleware resolves an
	// optional bearer token into the request context
	router.Group(func(r chi.Router) {
		r.Use(h.withViewer)
		r.Method(http.MethodPost, "/query", &relay.Handler{Schema: h.schema})
	})

	router.Get("/api/version", h.getServerVersion)
	router.Get("/api/health", h.health)

	return router
}
