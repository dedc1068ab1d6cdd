package main

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"github.com/dropDatabas3/workhub/internal/config"
)

// Datos de demo para desarrollo local: un tenant con una cuenta dueña,
// algunos datasets con distintos permission modes y un par de apps.
func newSeedCmd(loadConfig func() (*config.Config, error)) *cobra.Command {
	var email, name string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Inserta datos de demo (solo para desarrollo)",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			ctx := context.Background()
			pool, err := pgxpool.New(ctx, cfg.Storage.DSN)
			if err != nil {
				return fmt.Errorf("pgxpool: %w", err)
			}
			defer pool.Close()

			accountID := uuid.NewString()
			tenantID := uuid.NewString()

			tx, err := pool.Begin(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = tx.Rollback(ctx) }()

			if _, err := tx.Exec(ctx,
				`INSERT INTO accounts (id, name, email) VALUES ($1, $2, $3)
				 ON CONFLICT (email) DO NOTHING`,
				accountID, name, email,
			); err != nil {
				return fmt.Errorf("seed account: %w", err)
			}
			// Si la cuenta ya existía, reusar su id
			if err := tx.QueryRow(ctx,
				`SELECT id FROM accounts WHERE email = $1`, email,
			).Scan(&accountID); err != nil {
				return fmt.Errorf("seed account lookup: %w", err)
			}

			if _, err := tx.Exec(ctx,
				`INSERT INTO tenants (id, name) VALUES ($1, $2)`,
				tenantID, name+"'s Workspace",
			); err != nil {
				return fmt.Errorf("seed tenant: %w", err)
			}
			if _, err := tx.Exec(ctx,
				`INSERT INTO tenant_account_joins (id, tenant_id, account_id, role, current)
				 VALUES ($1, $2, $3, 'owner', TRUE)`,
				uuid.NewString(), tenantID, accountID,
			); err != nil {
				return fmt.Errorf("seed join: %w", err)
			}

			for i, perm := range []string{"only_me", "all_team_members", "partial_members"} {
				if _, err := tx.Exec(ctx,
					`INSERT INTO datasets (id, tenant_id, name, permission, provider, created_by)
					 VALUES ($1, $2, $3, $4, 'vendor', $5)`,
					uuid.NewString(), tenantID, fmt.Sprintf("demo-dataset-%d", i+1), perm, accountID,
				); err != nil {
					return fmt.Errorf("seed dataset: %w", err)
				}
			}

			for i, mode := range []string{"chat", "agent-chat"} {
				if _, err := tx.Exec(ctx,
					`INSERT INTO apps (id, tenant_id, name, mode, status, created_by)
					 VALUES ($1, $2, $3, $4, 'normal', $5)`,
					uuid.NewString(), tenantID, fmt.Sprintf("demo-app-%d", i+1), mode, accountID,
				); err != nil {
					return fmt.Errorf("seed app: %w", err)
				}
			}

			if err := tx.Commit(ctx); err != nil {
				return err
			}

			log.Printf("Seed OK: account=%s tenant=%s email=%s", accountID, tenantID, email)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "demo@example.com", "Email de la cuenta de demo")
	cmd.Flags().StringVar(&name, "name", "Demo", "Nombre de la cuenta de demo")
	return cmd
}
