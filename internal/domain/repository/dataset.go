package repository

import (
	"context"
	"time"
)

// Permission modes de un dataset.
const (
	DatasetPermissionOnlyMe         = "only_me"
	DatasetPermissionAllTeam        = "all_team_members"
	DatasetPermissionPartialMembers = "partial_members"
)

// Dataset es una base de conocimiento dentro de un tenant.
type Dataset struct {
	ID                string
	TenantID          string
	Name              string
	Description       *string
	Permission        string
	Provider          string
	DocumentCount     int
	IndexingTechnique *string
	CreatedBy         string
	CreatedAt         time.Time
	UpdatedBy         *string
	UpdatedAt         time.Time
}

// DatasetRepository lista datasets visibles para una cuenta.
type DatasetRepository interface {
	// ListVisible retorna la página de datasets del tenant visibles para la
	// cuenta (creadora, compartidos a todo el equipo, o compartidos
	// parcialmente con grant positivo), más el total sin paginar.
	// Orden: created_at DESC.
	ListVisible(ctx context.Context, tenantID, accountID string, limit, offset int) ([]Dataset, int, error)
}
