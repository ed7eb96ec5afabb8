package db

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"log/slog"
	"sort"

	"github.com/jackc/pgx/v5/pgxpool"
)

//go:embed migrations/*.sql
var migrationFS embed.FS

// Migrate applies the embedded schema files in name order. Every statement is
// idempotent, so running it on each start is safe.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	files, err := fs.Glob(migrationFS, "migrations/*.sql")
	if err != nil {
		return fmt.Errorf("failed to list migrations: %w", err)
	}
	sort.Strings(files)

	for _, file := range files {
		sqlContent, err := migrationFS.ReadFile(file)
		if err != nil {
			return fmt.Errorf("failed to read migration %s: %w", file, err)
		}
		if _, err := pool.Exec(ctx, string(sqlContent)); err != nil {
			return fmt.Errorf("failed to execute migration %s: %w", file, err)
		}
		slog.Info("Migration applied", "file", file)
	}
	return nil
}

// EnsureProbeApplication creates the application the status probe looks up.
func EnsureProbeApplication(ctx context.Context, pool *pgxpool.Pool, namespace, appID string) error {
	_, err := pool.Exec(ctx,
		`INSERT INTO applications (namespace, appid) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
		namespace, appID)
	if err != nil {
		return fmt.Errorf("failed to create probe application: %w", err)
	}
	return nil
}
