package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/Matheus-hora48/Teste-Conectar/docs" //nolint:revive,nolintlint
)

func NewRouter(h *Handler, mw *Middleware) http.Handler {
	router := chi.NewRouter()

	router.Use(mw.Recover, mw.Cors, mw.WithIP, mw.Log)

	router.Route("/api", func(r chi.Router) {
		r.Get("/health", h.Health)
		r.Get("/swagger/*", httpSwagger.WrapHandler)
	})

	router.Route("/auth", func(r chi.Router) {
		r.Post("/login", h.Login)
		r.Post("/register", h.Register)
		r.Get("/{provider}", h.OAuthRedirect)
		r.Get("/{provider}/callback", h.OAuthCallback)
	})

	router.Group(func(r chi.Router) {
		r.Use(mw.Auth)

		r.Route("/users", func(r chi.Router) {
			r.Get("/profile/me", h.Profile)
			r.Patch("/profile/me", h.UpdateProfile)
			r.Patch("/profile/me/password", h.UpdateProfilePassword)

			r.Get("/{id}", h.User)
			r.Patch("/{id}", h.UpdateUser)
			r.Patch("/{id}/password", h.UpdatePassword)

			r.Group(func(r chi.Router) {
				r.Use(mw.AdminOnly)

				r.Post("/", h.CreateUser)
				r.Get("/", h.Users)
				r.Get("/inactive/list", h.InactiveUsers)
				r.Delete("/{id}", h.DeleteUser)
			})
		})

		r.Route("/clients", func(r chi.Router) {
			r.Post("/", h.CreateClient)
			r.Get("/", h.Clients)
			r.Get("/{id}", h.Client)
			r.Patch("/{id}", h.UpdateClient)

			r.Group(func(r chi.Router) {
				r.Use(mw.AdminOnly)

				r.Delete("/{id}", h.DeleteClient)
				r.Patch("/{clientId}/assign/{userId}", h.AssignUser)
			})
		})
	})

	return router
}
