package postgres

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"strings"

	"househunt-service/internal/contextkeys"
	"househunt-service/internal/core/port"

	"github.com/jackc/pgx/v5/pgxpool"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

const migrationsTable = `
	CREATE TABLE IF NOT EXISTS schema_migrations (
		version    text PRIMARY KEY,
		applied_at timestamptz NOT NULL DEFAULT now()
	)`

// Migrate применяет еще не примененные миграции по порядку имен файлов.
// Каждая миграция выполняется в своей транзакции. Возвращает список примененных версий.
func Migrate(ctx context.Context, pool *pgxpool.Pool) ([]string, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	migrateLogger := logger.WithFields(port.Fields{"component": "PostgresMigrator"})

	if _, err := pool.Exec(ctx, migrationsTable); err != nil {
		return nil, fmt.Errorf("failed to create schema_migrations: %w", err)
	}

	entries, err := fs.ReadDir(migrationFiles, "migrations")
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded migrations: %w", err)
	}

	applied := make([]string, 0)
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".sql") {
			continue
		}
		version := strings.TrimSuffix(entry.Name(), ".sql")

		var exists bool
		if err := pool.QueryRow(ctx,
			"SELECT EXISTS (SELECT 1 FROM schema_migrations WHERE version = $1)", version,
		).Scan(&exists); err != nil {
			return applied, fmt.Errorf("failed to check migration %s: %w", version, err)
		}
		if exists {
			migrateLogger.Debug("Migration already applied", port.Fields{"version": version})
			continue
		}

		body, err := migrationFiles.ReadFile("migrations/" + entry.Name())
		if err != nil {
			return applied, fmt.Errorf("failed to read migration %s: %w", version, err)
		}

		tx, err := pool.Begin(ctx)
		if err != nil {
			return applied, fmt.Errorf("failed to begin transaction: %w", err)
		}
		if _, err := tx.Exec(ctx, string(body)); err != nil {
			_ = tx.Rollback(ctx)
			migrateLogger.Error("Migration failed", err, port.Fields{"version": version})
			return applied, fmt.Errorf("failed to apply migration %s: %w", version, err)
		}
		if _, err := tx.Exec(ctx, "INSERT INTO schema_migrations (version) VALUES ($1)", version); err != nil {
			_ = tx.Rollback(ctx)
			return applied, fmt.Errorf("failed to record migration %s: %w", version, err)
		}
		if err := tx.Commit(ctx); err != nil {
			return applied, fmt.Errorf("failed to commit migration %s: %w", version, err)
		}

		migrateLogger.Info("Migration applied", port.Fields{"version": version})
		applied = append(applied, version)
	}

	return applied, nil
}
