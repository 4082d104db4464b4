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
		r.Post("/api/auth/login", h.login)
	})

	// login-addressed and collection routes
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/api/users", h.createUsers)
		r.Get("/api/users/active", h.listActiveUsers)
		r.Get("/api/users/self", h.getOwnProfile)
		r.Get("/api/users/older-than/{years}", h.listUsersOlderThan)
		r.Get("/api/users/{login}", h.getUserByLogin)
		r.Delete("/api/users/{login}", h.deleteUser)
		r.Put("/api/users/{login}/restore", h.restoreUser)
	})

	// ID-addressed update routes; the singular prefix keeps one wildcard
	// name per position in the routing tree
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Put("/api/user/{id}/details", h.updateUserDetails)
		r.Put("/api/user/{id}/password", h.updateUserPassword)
		r.Put("/api/user/{id}/login", h.updateUserLogin)
	})

	return router
}
