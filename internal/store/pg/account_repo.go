package pg

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dropDatabas3/workhub/internal/domain/repository"
)

// accountRepo implementa repository.AccountRepository.
type accountRepo struct {
	pool *pgxpool.Pool
}

// NewAccountRepo crea un nuevo repositorio de cuentas.
func NewAccountRepo(pool *pgxpool.Pool) repository.AccountRepository {
	return &accountRepo{pool: pool}
}

// GetByEmail busca una cuenta por email exacto. (nil, nil) si no existe.
func (r *accountRepo) GetByEmail(ctx context.Context, email string) (*repository.Account, error) {
	query := `
		SELECT id, name, email, created_at
		FROM accounts
		WHERE email = $1
	`

	var a repository.Account
	err := r.pool.QueryRow(ctx, query, strings.TrimSpace(email)).Scan(
		&a.ID, &a.Name, &a.Email, &a.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get account by email: %w", err)
	}
	return &a, nil
}
