package pg

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dropDatabas3/workhub/internal/domain/repository"
)

// appRepo implementa repository.AppRepository.
type appRepo struct {
	pool *pgxpool.Pool
}

// NewAppRepo crea un nuevo repositorio de apps.
func NewAppRepo(pool *pgxpool.Pool) repository.AppRepository {
	return &appRepo{pool: pool}
}

// Visibilidad: creadora, pública dentro del tenant, o instalada a nivel tenant.
const appVisibleWhere = `
	tenant_id = $1
	AND (
		created_by = $2
		OR is_public = TRUE
		OR id IN (
			SELECT app_id FROM installed_apps WHERE tenant_id = $1
		)
	)
`

// ListVisible retorna la página de apps visibles más el total.
func (r *appRepo) ListVisible(ctx context.Context, tenantID, accountID string, limit, offset int) ([]repository.App, int, error) {
	countQuery := `SELECT COUNT(*) FROM apps WHERE ` + appVisibleWhere

	var total int
	if err := r.pool.QueryRow(ctx, countQuery, tenantID, accountID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count visible apps: %w", err)
	}

	query := `
		SELECT id, tenant_id, name, description, mode,
			icon, icon_background, icon_type,
			enable_site, enable_api, api_rpm, api_rph, status,
			is_demo, is_public, is_universal,
			app_model_config_id, workflow_id, use_icon_as_answer_icon,
			created_by, created_at, updated_by, updated_at
		FROM apps
		WHERE ` + appVisibleWhere + `
		ORDER BY created_at DESC
		LIMIT $3 OFFSET $4
	`

	rows, err := r.pool.Query(ctx, query, tenantID, accountID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list visible apps: %w", err)
	}
	defer rows.Close()

	var apps []repository.App
	for rows.Next() {
		var a repository.App
		if err := rows.Scan(
			&a.ID, &a.TenantID, &a.Name, &a.Description, &a.Mode,
			&a.Icon, &a.IconBackground, &a.IconType,
			&a.EnableSite, &a.EnableAPI, &a.APIRpm, &a.APIRph, &a.Status,
			&a.IsDemo, &a.IsPublic, &a.IsUniversal,
			&a.AppModelConfigID, &a.WorkflowID, &a.UseIconAsAnswerIcon,
			&a.CreatedBy, &a.CreatedAt, &a.UpdatedBy, &a.UpdatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("scan app: %w", err)
		}
		apps = append(apps, a)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate apps: %w", err)
	}

	return apps, total, nil
}
