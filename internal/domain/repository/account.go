package repository

import (
	"context"
	"time"
)

// Account es una cuenta de usuario del workspace.
// El modelo completo (password, estado, etc.) es dueño de otro servicio;
// acá sólo se consume lo necesario para el lookup por email.
type Account struct {
	ID        string
	Name      string
	Email     string
	CreatedAt time.Time
}

// AccountRepository resuelve cuentas.
type AccountRepository interface {
	// GetByEmail busca una cuenta por email exacto.
	// Retorna (nil, nil) si no existe: el caller decide si eso es error.
	GetByEmail(ctx context.Context, email string) (*Account, error)
}
