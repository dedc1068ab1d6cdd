package pg

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dropDatabas3/workhub/internal/domain/repository"
)

// tenantRepo implementa repository.TenantRepository.
type tenantRepo struct {
	pool *pgxpool.Pool
}

// NewTenantRepo crea un nuevo repositorio de membresías tenant.
func NewTenantRepo(pool *pgxpool.Pool) repository.TenantRepository {
	return &tenantRepo{pool: pool}
}

// CurrentJoin retorna el join marcado current=true. (nil, nil) si no hay.
func (r *tenantRepo) CurrentJoin(ctx context.Context, accountID string) (*repository.TenantAccountJoin, error) {
	query := `
		SELECT id, tenant_id, account_id, role, current
		FROM tenant_account_joins
		WHERE account_id = $1 AND current = TRUE
		LIMIT 1
	`
	return r.scanJoin(ctx, query, accountID)
}

// AnyJoin retorna cualquier join de la cuenta. (nil, nil) si no hay.
func (r *tenantRepo) AnyJoin(ctx context.Context, accountID string) (*repository.TenantAccountJoin, error) {
	query := `
		SELECT id, tenant_id, account_id, role, current
		FROM tenant_account_joins
		WHERE account_id = $1
		ORDER BY created_at ASC
		LIMIT 1
	`
	return r.scanJoin(ctx, query, accountID)
}

func (r *tenantRepo) scanJoin(ctx context.Context, query, accountID string) (*repository.TenantAccountJoin, error) {
	var j repository.TenantAccountJoin
	err := r.pool.QueryRow(ctx, query, accountID).Scan(
		&j.ID, &j.TenantID, &j.AccountID, &j.Role, &j.Current,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get tenant join: %w", err)
	}
	return &j, nil
}
