package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, middleware.Recoverer, withGZip)

	router.Get("/api/version", h.getServerVersion)

	router.Get("/api/contents", h.getContents)
	router.Post("/api/contents", h.postContents)

	// embedded config server, served only with a native repository
	if h.services.ConfigServerService != nil {
		router.Route("/config", func(r chi.Router) {
			r.Get("/{application}/{profile}", h.getEnvironment)
			r.Get("/{application}/{profile}/{label}", h.getEnvironmentOrResource)
			r.Get("/{application}/{profile}/{label}/*", h.getResource)
		})
	}

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
