package repository

import (
	"context"
	"time"
)

// App es una aplicación (agente) dentro de un tenant.
type App struct {
	ID                  string
	TenantID            string
	Name                string
	Description         string
	Mode                string
	Icon                *string
	IconBackground      *string
	IconType            *string
	EnableSite          bool
	EnableAPI           bool
	APIRpm              int
	APIRph              int
	Status              string
	IsDemo              bool
	IsPublic            bool
	IsUniversal         bool
	AppModelConfigID    *string
	WorkflowID          *string
	UseIconAsAnswerIcon bool
	CreatedBy           string
	CreatedAt           time.Time
	UpdatedBy           *string
	UpdatedAt           time.Time
}

// IsAgent indica si la app corre en modo agente.
// Derivado del mode, igual que en el modelo original.
func (a *App) IsAgent() bool {
	return a.Mode == "agent-chat"
}

// AppRepository lista apps visibles para una cuenta.
type AppRepository interface {
	// ListVisible retorna la página de apps del tenant visibles para la cuenta
	// (creadora, públicas, o instaladas a nivel tenant), más el total.
	// Orden: created_at DESC.
	ListVisible(ctx context.Context, tenantID, accountID string, limit, offset int) ([]App, int, error)
}
