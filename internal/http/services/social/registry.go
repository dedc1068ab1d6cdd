// Package social arma el registro de providers de social login a partir
// de la configuración.
package social

import (
	"sort"

	"github.com/dropDatabas3/workhub/internal/config"
	"github.com/dropDatabas3/workhub/internal/oauth"
	"github.com/dropDatabas3/workhub/internal/oauth/ailab"
	"github.com/dropDatabas3/workhub/internal/oauth/github"
	"github.com/dropDatabas3/workhub/internal/oauth/google"
)

// Registry resuelve providers habilitados por nombre.
type Registry struct {
	providers map[string]oauth.Provider
}

// NewRegistry construye el registro con los providers habilitados en config.
func NewRegistry(cfg *config.Config) *Registry {
	r := &Registry{providers: make(map[string]oauth.Provider)}

	if p := cfg.Providers.GitHub; p.Enabled {
		r.register(github.New(p.ClientID, p.ClientSecret, p.RedirectURL))
	}
	if p := cfg.Providers.Google; p.Enabled {
		r.register(google.New(p.ClientID, p.ClientSecret, p.RedirectURL))
	}
	if p := cfg.Providers.AILab; p.Enabled {
		r.register(ailab.New(p.ClientID, p.ClientSecret, p.RedirectURL, p.BaseURL))
	}

	return r
}

func (r *Registry) register(p oauth.Provider) {
	r.providers[p.Name()] = p
}

// Get retorna el provider por nombre, o (nil, false) si no está habilitado.
func (r *Registry) Get(name string) (oauth.Provider, bool) {
	p, ok := r.providers[name]
	return p, ok
}

// Names lista los providers habilitados, ordenados.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.providers))
	for name := range r.providers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
