package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/cmaina/shoplist-api/internal/api"
	"github.com/cmaina/shoplist-api/internal/api/middleware"
	"github.com/cmaina/shoplist-api/internal/api/shared"
)

// routerDeps bundles the handlers and middleware the router mounts.
type routerDeps struct {
	auth     *api.AuthHandler
	users    *api.UserHandler
	lists    *api.ListHandler
	items    *api.ItemHandler
	authMw   *middleware.AuthMiddleware
	traceMw  func(http.Handler) http.Handler
	metricMw func(http.Handler) http.Handler
}

// newRouter builds the chi router with the full route tree. Paths are
// matched with and without a trailing slash; the auth endpoints are
// public, everything else sits behind the bearer token middleware.
func newRouter(deps routerDeps) chi.Router {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(deps.traceMw)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.StripSlashes)
	r.Use(deps.metricMw)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithError(w, r, http.StatusNotFound,
			"The requested resource is not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithError(w, r, http.StatusMethodNotAllowed,
			"Method not allowed for the requested URL")
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/auth", func(r chi.Router) {
		r.Get("/register", deps.auth.RegisterInfo)
		r.Post("/register", deps.auth.Register)
		r.Get("/login", deps.auth.LoginInfo)
		r.Post("/login", deps.auth.Login)
	})

	// Reset endpoints are public: the request identifies the account by
	// email and the confirmation by the reset token itself.
	r.Post("/user/reset", deps.users.RequestReset)
	r.Put("/user/reset/password/{token}", deps.users.ResetPassword)

	r.Group(func(r chi.Router) {
		r.Use(deps.authMw.Authenticate)

		r.Get("/user", deps.users.Profile)
		r.Put("/user", deps.users.UpdateProfile)

		r.Route("/shoppinglists", func(r chi.Router) {
			r.Get("/", deps.lists.Index)
			r.Post("/", deps.lists.Create)

			r.Route("/{listID}", func(r chi.Router) {
				r.Get("/", deps.lists.Get)
				r.Put("/", deps.lists.Update)
				r.Delete("/", deps.lists.Delete)

				r.Route("/items", func(r chi.Router) {
					r.Get("/", deps.items.Index)
					r.Post("/", deps.items.Create)

					r.Route("/{itemID}", func(r chi.Router) {
						r.Get("/", deps.items.Get)
						r.Put("/", deps.items.Update)
						r.Delete("/", deps.items.Delete)
					})
				})
			})
		})
	})

	return r
}
