package repository

import "context"

// TenantAccountJoin relaciona una cuenta con un tenant.
// A lo sumo una fila por cuenta tiene Current=true (invariante blanda:
// el código tolera cero filas current).
type TenantAccountJoin struct {
	ID        string
	TenantID  string
	AccountID string
	Role      string
	Current   bool
}

// TenantRepository resuelve la membresía tenant de una cuenta.
type TenantRepository interface {
	// CurrentJoin retorna el join marcado current=true, o (nil, nil) si no hay.
	CurrentJoin(ctx context.Context, accountID string) (*TenantAccountJoin, error)

	// AnyJoin retorna cualquier join de la cuenta, o (nil, nil) si no hay.
	// Se usa como fallback cuando no existe join current.
	AnyJoin(ctx context.Context, accountID string) (*TenantAccountJoin, error)
}
