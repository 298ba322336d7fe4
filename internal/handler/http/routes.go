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

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/register", h.register)
		r.Post("/token", h.token)
	})

	// routes requiring a valid token and an active account
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Use(h.requireActive)

		r.Get("/users/me", h.usersMe)
		r.Get("/protected", h.protected)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
