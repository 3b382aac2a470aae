package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, middleware.Recoverer, h.withSession)

	// routes open to anonymous visitors
	router.Group(func(r chi.Router) {
		r.Get("/", h.root)
		r.Get("/register", h.registerPage)
		r.Post("/register", h.registerSubmit)
		r.Get("/login", h.loginPage)
		r.Post("/login", h.loginSubmit)
	})

	// routes behind a session; mutations additionally echo the anti-forgery token
	router.Group(func(r chi.Router) {
		r.Use(h.requireSession)

		r.Get("/users/{username}", h.userPage)
		r.Get("/users/{username}/notes/add", h.noteAddPage)
		r.Get("/notes/{id}/update", h.noteEditPage)

		r.Group(func(r chi.Router) {
			r.Use(h.requireCSRF)

			r.Post("/logout", h.logout)
			r.Post("/users/{username}/delete", h.deleteUser)
			r.Post("/users/{username}/notes/add", h.noteAddSubmit)
			r.Post("/notes/{id}/update", h.noteEditSubmit)
			r.Post("/notes/{id}/delete", h.noteDelete)
		})
	})

	return router
}
