package pg

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dropDatabas3/workhub/internal/domain/repository"
)

// datasetRepo implementa repository.DatasetRepository.
type datasetRepo struct {
	pool *pgxpool.Pool
}

// NewDatasetRepo crea un nuevo repositorio de datasets.
func NewDatasetRepo(pool *pgxpool.Pool) repository.DatasetRepository {
	return &datasetRepo{pool: pool}
}

// Visibilidad: creadora, compartido a todo el equipo, o compartido
// parcialmente con grant positivo para la cuenta.
const datasetVisibleWhere = `
	tenant_id = $1
	AND (
		created_by = $2
		OR permission = 'all_team_members'
		OR (
			permission = 'partial_members'
			AND id IN (
				SELECT dataset_id FROM dataset_permissions
				WHERE account_id = $2 AND has_permission = TRUE
			)
		)
	)
`

// ListVisible retorna la página de datasets visibles más el total.
func (r *datasetRepo) ListVisible(ctx context.Context, tenantID, accountID string, limit, offset int) ([]repository.Dataset, int, error) {
	countQuery := `SELECT COUNT(*) FROM datasets WHERE ` + datasetVisibleWhere

	var total int
	if err := r.pool.QueryRow(ctx, countQuery, tenantID, accountID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count visible datasets: %w", err)
	}

	query := `
		SELECT id, tenant_id, name, description, permission, provider,
			document_count, indexing_technique,
			created_by, created_at, updated_by, updated_at
		FROM datasets
		WHERE ` + datasetVisibleWhere + `
		ORDER BY created_at DESC
		LIMIT $3 OFFSET $4
	`

	rows, err := r.pool.Query(ctx, query, tenantID, accountID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list visible datasets: %w", err)
	}
	defer rows.Close()

	var datasets []repository.Dataset
	for rows.Next() {
		var d repository.Dataset
		if err := rows.Scan(
			&d.ID, &d.TenantID, &d.Name, &d.Description, &d.Permission, &d.Provider,
			&d.DocumentCount, &d.IndexingTechnique,
			&d.CreatedBy, &d.CreatedAt, &d.UpdatedBy, &d.UpdatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("scan dataset: %w", err)
		}
		datasets = append(datasets, d)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate datasets: %w", err)
	}

	return datasets, total, nil
}
