package main

import (
	"context"
	"fmt"
	"io/fs"
	"log"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"github.com/dropDatabas3/workhub/internal/config"
	migrations "github.com/dropDatabas3/workhub/migrations/postgres"
)

func newMigrateCmd(loadConfig func() (*config.Config, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate [up|down] [steps]",
		Short: "Aplica las migraciones embebidas de Postgres",
		Args:  cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			action := "up"
			steps := 0
			if len(args) >= 1 && args[0] != "" {
				action = strings.ToLower(args[0])
			}
			if len(args) >= 2 {
				if n, err := strconv.Atoi(args[1]); err == nil && n > 0 {
					steps = n
				}
			}

			ctx := context.Background()
			pool, err := pgxpool.New(ctx, cfg.Storage.DSN)
			if err != nil {
				return fmt.Errorf("pgxpool: %w", err)
			}
			defer pool.Close()

			switch action {
			case "up":
				files, err := listSQL("_up.sql")
				if err != nil {
					return err
				}
				sort.Strings(files) // apply in ascending order
				if steps > 0 && steps < len(files) {
					files = files[:steps]
				}
				log.Printf("Applying %d up migration(s)...", len(files))
				for _, f := range files {
					if err := execSQLFile(ctx, pool, f); err != nil {
						return fmt.Errorf("exec %s: %w", f, err)
					}
				}
				log.Println("Up migrations completed.")

			case "down":
				files, err := listSQL("_down.sql")
				if err != nil {
					return err
				}
				sort.Strings(files)
				reverseInPlace(files) // run in reverse
				if steps > 0 && steps < len(files) {
					files = files[:steps] // only N most-recent downs
				}
				log.Printf("Applying %d down migration(s)...", len(files))
				for _, f := range files {
					if err := execSQLFile(ctx, pool, f); err != nil {
						return fmt.Errorf("exec %s: %w", f, err)
					}
				}
				log.Println("Down migrations completed.")

			default:
				return fmt.Errorf("unknown action %q. Use: up | down [steps]", action)
			}
			return nil
		},
	}
}

func listSQL(suffix string) ([]string, error) {
	entries, err := fs.ReadDir(migrations.FS, ".")
	if err != nil {
		return nil, err
	}
	var out []string
	for _, e := range entries {
		name := e.Name()
		if e.Type().IsRegular() && strings.HasSuffix(strings.ToLower(name), suffix) {
			out = append(out, name)
		}
	}
	return out, nil
}

func reverseInPlace(ss []string) {
	for i, j := 0, len(ss)-1; i < j; i, j = i+1, j-1 {
		ss[i], ss[j] = ss[j], ss[i]
	}
}

func execSQLFile(ctx context.Context, pool *pgxpool.Pool, name string) error {
	b, err := migrations.FS.ReadFile(name)
	if err != nil {
		return fmt.Errorf("read: %w", err)
	}

	start := time.Now()
	if _, err := pool.Exec(ctx, string(b)); err != nil {
		return fmt.Errorf("exec: %w", err)
	}
	log.Printf("OK %s (%s)", name, time.Since(start).Truncate(time.Millisecond))
	return nil
}
