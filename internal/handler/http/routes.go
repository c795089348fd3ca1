package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/user/register", h.register)
		r.Post("/api/user/login", h.login)
		r.Get("/api/version", h.getServerVersion)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/api/save-settings", h.saveSettings)
		r.Get("/api/get-length", h.getLength)

		r.Post("/api/get-question", h.getQuestion)
		r.Post("/api/get-answer", h.getAnswer)

		r.Post("/api/save-log", h.saveLog)
		r.Get("/api/result", h.getResult)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
