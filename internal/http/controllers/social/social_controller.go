// Package social expone los endpoints del flujo de social login.
package social

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	httperrors "github.com/dropDatabas3/workhub/internal/http/errors"
	"github.com/dropDatabas3/workhub/internal/http/helpers"
	socialsvc "github.com/dropDatabas3/workhub/internal/http/services/social"
	"github.com/dropDatabas3/workhub/internal/observability/logger"
)

// Controller maneja GET /oauth/login/{provider} y
// GET /oauth/authorize/{provider}.
type Controller struct {
	registry *socialsvc.Registry
}

func NewController(registry *socialsvc.Registry) *Controller {
	return &Controller{registry: registry}
}

// Providers lista los providers habilitados.
func (c *Controller) Providers(w http.ResponseWriter, r *http.Request) {
	helpers.WriteJSON(w, http.StatusOK, map[string]any{
		"providers": c.registry.Names(),
	})
}

// Login redirige al endpoint de autorización del provider.
// El invite_token opcional viaja como state.
func (c *Controller) Login(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "provider")
	l := logger.From(r.Context()).With(
		logger.Layer("controller"),
		logger.Op("oauth_login"),
		logger.Provider(name),
	)

	provider, ok := c.registry.Get(name)
	if !ok {
		httperrors.WriteError(w, httperrors.ErrProviderNotFound)
		return
	}

	inviteToken := strings.TrimSpace(r.URL.Query().Get("invite_token"))
	authURL, err := provider.AuthorizationURL(inviteToken)
	if err != nil {
		l.Error("no se pudo armar la authorization URL", logger.Err(err))
		httperrors.WriteError(w, httperrors.ErrInternalServerError.WithCause(err))
		return
	}

	l.Info("redirigiendo al provider")
	http.Redirect(w, r, authURL, http.StatusFound)
}

// Authorize completa el flujo: intercambia el code y retorna el perfil
// normalizado. El alta de cuentas es responsabilidad de otro servicio.
func (c *Controller) Authorize(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "provider")
	l := logger.From(r.Context()).With(
		logger.Layer("controller"),
		logger.Op("oauth_authorize"),
		logger.Provider(name),
	)

	provider, ok := c.registry.Get(name)
	if !ok {
		httperrors.WriteError(w, httperrors.ErrProviderNotFound)
		return
	}

	code := strings.TrimSpace(r.URL.Query().Get("code"))
	if code == "" {
		httperrors.WriteError(w, httperrors.ErrInvalidParameter.WithDetail("code es requerido"))
		return
	}

	token, err := provider.ExchangeCode(r.Context(), code)
	if err != nil {
		l.Error("intercambio de code falló", logger.Err(err))
		httperrors.WriteError(w, httperrors.ErrUpstreamProvider.WithCause(err))
		return
	}

	info, err := provider.UserInfo(r.Context(), token)
	if err != nil {
		l.Error("userinfo del provider falló", logger.Err(err))
		httperrors.WriteError(w, httperrors.ErrUpstreamProvider.WithCause(err))
		return
	}

	l.Info("social login completado", logger.Email(info.Email))
	helpers.WriteJSON(w, http.StatusOK, info)
}
