package pg

import (
	"context"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	migrations "github.com/dropDatabas3/workhub/migrations/postgres"
)

// Tests de integración contra un Postgres real. Corren sólo con
// DATABASE_DSN configurado; cada corrida crea un schema propio, aplica
// la migración embebida y lo descarta al final.

func setupTestPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	dsn := os.Getenv("DATABASE_DSN")
	if dsn == "" {
		t.Skip("DATABASE_DSN no configurado; skipping")
	}

	schema := "workhub_test_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:12]

	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		t.Fatalf("parse dsn: %v", err)
	}
	cfg.ConnConfig.RuntimeParams["search_path"] = schema

	ctx := context.Background()
	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		t.Fatalf("new pool: %v", err)
	}
	t.Cleanup(pool.Close)

	if _, err := pool.Exec(ctx, "CREATE SCHEMA "+schema); err != nil {
		t.Fatalf("create schema: %v", err)
	}
	t.Cleanup(func() {
		_, _ = pool.Exec(context.Background(), "DROP SCHEMA "+schema+" CASCADE")
	})

	up, err := migrations.FS.ReadFile("0001_init_up.sql")
	if err != nil {
		t.Fatalf("read migration: %v", err)
	}
	if _, err := pool.Exec(ctx, string(up)); err != nil {
		t.Fatalf("apply migration: %v", err)
	}

	return pool
}

// ---- seed helpers ----

func seedAccount(t *testing.T, pool *pgxpool.Pool, name string) string {
	t.Helper()
	id := uuid.NewString()
	_, err := pool.Exec(context.Background(),
		`INSERT INTO accounts (id, name, email) VALUES ($1, $2, $3)`,
		id, name, name+"@example.com")
	if err != nil {
		t.Fatalf("seed account %s: %v", name, err)
	}
	return id
}

func seedTenant(t *testing.T, pool *pgxpool.Pool, name string) string {
	t.Helper()
	id := uuid.NewString()
	_, err := pool.Exec(context.Background(),
		`INSERT INTO tenants (id, name) VALUES ($1, $2)`, id, name)
	if err != nil {
		t.Fatalf("seed tenant %s: %v", name, err)
	}
	return id
}

func seedDataset(t *testing.T, pool *pgxpool.Pool, tenantID, createdBy, name, permission string, createdAt time.Time) string {
	t.Helper()
	id := uuid.NewString()
	_, err := pool.Exec(context.Background(),
		`INSERT INTO datasets (id, tenant_id, name, permission, created_by, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		id, tenantID, name, permission, createdBy, createdAt)
	if err != nil {
		t.Fatalf("seed dataset %s: %v", name, err)
	}
	return id
}

func grantDataset(t *testing.T, pool *pgxpool.Pool, datasetID, accountID string, has bool) {
	t.Helper()
	_, err := pool.Exec(context.Background(),
		`INSERT INTO dataset_permissions (id, dataset_id, account_id, has_permission)
		 VALUES ($1, $2, $3, $4)`,
		uuid.NewString(), datasetID, accountID, has)
	if err != nil {
		t.Fatalf("grant dataset: %v", err)
	}
}

func seedApp(t *testing.T, pool *pgxpool.Pool, tenantID, createdBy, name string, isPublic bool, createdAt time.Time) string {
	t.Helper()
	id := uuid.NewString()
	_, err := pool.Exec(context.Background(),
		`INSERT INTO apps (id, tenant_id, name, mode, is_public, created_by, created_at)
		 VALUES ($1, $2, $3, 'chat', $4, $5, $6)`,
		id, tenantID, name, isPublic, createdBy, createdAt)
	if err != nil {
		t.Fatalf("seed app %s: %v", name, err)
	}
	return id
}

func installApp(t *testing.T, pool *pgxpool.Pool, tenantID, appID string) {
	t.Helper()
	_, err := pool.Exec(context.Background(),
		`INSERT INTO installed_apps (id, tenant_id, app_id) VALUES ($1, $2, $3)`,
		uuid.NewString(), tenantID, appID)
	if err != nil {
		t.Fatalf("install app: %v", err)
	}
}

// ---- tests ----

func TestDatasetRepo_ListVisible_Postgres(t *testing.T) {
	pool := setupTestPool(t)
	repo := NewDatasetRepo(pool)
	ctx := context.Background()

	tenant := seedTenant(t, pool, "acme")
	owner := seedAccount(t, pool, "owner")
	viewer := seedAccount(t, pool, "viewer")

	base := time.Now().UTC().Add(-time.Hour)
	private := seedDataset(t, pool, tenant, owner, "privado", "only_me", base)
	team := seedDataset(t, pool, tenant, owner, "equipo", "all_team_members", base.Add(time.Minute))
	granted := seedDataset(t, pool, tenant, owner, "parcial-con-grant", "partial_members", base.Add(2*time.Minute))
	revoked := seedDataset(t, pool, tenant, owner, "parcial-revocado", "partial_members", base.Add(3*time.Minute))
	ungranted := seedDataset(t, pool, tenant, owner, "parcial-sin-grant", "partial_members", base.Add(4*time.Minute))

	grantDataset(t, pool, granted, viewer, true)
	grantDataset(t, pool, revoked, viewer, false)

	// La creadora ve todo lo suyo, sin importar el permission
	items, total, err := repo.ListVisible(ctx, tenant, owner, 10, 0)
	if err != nil {
		t.Fatalf("list for owner: %v", err)
	}
	if total != 5 || len(items) != 5 {
		t.Fatalf("owner: want 5 datasets, got total=%d len=%d", total, len(items))
	}

	// La otra cuenta: el compartido al equipo y el parcial con grant
	// positivo; nunca el privado, el revocado ni el sin grant.
	items, total, err = repo.ListVisible(ctx, tenant, viewer, 10, 0)
	if err != nil {
		t.Fatalf("list for viewer: %v", err)
	}
	if total != 2 || len(items) != 2 {
		t.Fatalf("viewer: want 2 datasets, got total=%d len=%d", total, len(items))
	}
	seen := map[string]bool{}
	for _, d := range items {
		seen[d.ID] = true
	}
	if !seen[team] || !seen[granted] {
		t.Fatalf("viewer: expected %s and %s, got %v", team, granted, seen)
	}
	if seen[private] || seen[revoked] || seen[ungranted] {
		t.Fatalf("viewer: leaked dataset, got %v", seen)
	}

	// Orden created_at DESC: el grant positivo es el más nuevo
	if items[0].ID != granted || items[1].ID != team {
		t.Fatalf("viewer: wrong order, got [%s %s]", items[0].ID, items[1].ID)
	}
}

func TestAppRepo_ListVisible_Postgres(t *testing.T) {
	pool := setupTestPool(t)
	repo := NewAppRepo(pool)
	ctx := context.Background()

	tenant := seedTenant(t, pool, "acme")
	owner := seedAccount(t, pool, "owner")
	viewer := seedAccount(t, pool, "viewer")

	base := time.Now().UTC().Add(-time.Hour)
	owned := seedApp(t, pool, tenant, owner, "propia", false, base)
	public := seedApp(t, pool, tenant, owner, "publica", true, base.Add(time.Minute))
	installed := seedApp(t, pool, tenant, owner, "instalada", false, base.Add(2*time.Minute))
	hidden := seedApp(t, pool, tenant, owner, "oculta", false, base.Add(3*time.Minute))

	installApp(t, pool, tenant, installed)

	// La creadora ve las cuatro
	_, total, err := repo.ListVisible(ctx, tenant, owner, 10, 0)
	if err != nil {
		t.Fatalf("list for owner: %v", err)
	}
	if total != 4 {
		t.Fatalf("owner: want 4 apps, got total=%d", total)
	}

	// La otra cuenta: la pública y la instalada en el tenant
	items, total, err := repo.ListVisible(ctx, tenant, viewer, 10, 0)
	if err != nil {
		t.Fatalf("list for viewer: %v", err)
	}
	if total != 2 || len(items) != 2 {
		t.Fatalf("viewer: want 2 apps, got total=%d len=%d", total, len(items))
	}
	seen := map[string]bool{}
	for _, a := range items {
		seen[a.ID] = true
	}
	if !seen[public] || !seen[installed] {
		t.Fatalf("viewer: expected %s and %s, got %v", public, installed, seen)
	}
	if seen[owned] || seen[hidden] {
		t.Fatalf("viewer: leaked app, got %v", seen)
	}
}
