// Package router arma el árbol de rutas del servicio.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	socialctrl "github.com/dropDatabas3/workhub/internal/http/controllers/social"
	wsctrl "github.com/dropDatabas3/workhub/internal/http/controllers/workspace"
	httperrors "github.com/dropDatabas3/workhub/internal/http/errors"
	mw "github.com/dropDatabas3/workhub/internal/http/middlewares"
)

// Deps contiene todas las dependencias del router.
type Deps struct {
	Lookup *wsctrl.LookupController
	Social *socialctrl.Controller

	// Middlewares opcionales (nil = deshabilitado)
	Auth      mw.Middleware
	RateLimit mw.Middleware

	// Handler para /metrics (nil = no se expone)
	Metrics http.Handler

	// Readiness check (ping a la DB). nil = siempre ready.
	Ready func(r *http.Request) error
}

// New construye el router chi con todas las rutas registradas.
func New(deps Deps) chi.Router {
	r := chi.NewRouter()

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		httperrors.WriteError(w, httperrors.ErrRouteNotFound)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		httperrors.WriteError(w, httperrors.ErrMethodNotAllowed)
	})

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/readyz", func(w http.ResponseWriter, req *http.Request) {
		if deps.Ready != nil {
			if err := deps.Ready(req); err != nil {
				w.WriteHeader(http.StatusServiceUnavailable)
				_, _ = w.Write([]byte("not ready"))
				return
			}
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	if deps.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", deps.Metrics)
	}

	// Lookup de workspace por email. Rate limit y auth aplican solo acá.
	r.Route("/workspaces/email", func(r chi.Router) {
		if deps.RateLimit != nil {
			r.Use(deps.RateLimit)
		}
		if deps.Auth != nil {
			r.Use(deps.Auth)
		}
		r.Get("/datasets", deps.Lookup.Datasets)
		r.Get("/apps", deps.Lookup.Apps)
	})

	// Flujo de social login.
	r.Route("/oauth", func(r chi.Router) {
		if deps.RateLimit != nil {
			r.Use(deps.RateLimit)
		}
		r.Get("/providers", deps.Social.Providers)
		r.Get("/login/{provider}", deps.Social.Login)
		r.Get("/authorize/{provider}", deps.Social.Authorize)
	})

	return r
}
