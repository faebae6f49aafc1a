package migrations

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/yigit/placement/internal/db"
	"github.com/yigit/placement/internal/pkg/dberrors"
)

//go:embed sql/*.sql
var embedded embed.FS

// Files returns the SQL migrations compiled into the binary.
func Files() fs.FS {
	sub, err := fs.Sub(embedded, "sql")
	if err != nil {
		panic(err)
	}
	return sub
}

// Migrator applies versioned SQL files once each, tracking them in schema_migrations.
type Migrator struct {
	db     db.TxBeginner
	files  fs.FS
	logger zerolog.Logger
}

// NewMigrator creates a new migrator over the given SQL file set
func NewMigrator(conn db.TxBeginner, files fs.FS, lgr zerolog.Logger) *Migrator {
	return &Migrator{
		db:     conn,
		files:  files,
		logger: lgr,
	}
}

// ensureMigrationTableExists creates the migration tracking table if it doesn't exist
func (m *Migrator) ensureMigrationTableExists(ctx context.Context) error {
	createTableSQL := `
	CREATE TABLE IF NOT EXISTS schema_migrations (
		version VARCHAR(255) PRIMARY KEY,
		applied_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	);`

	if _, err := m.db.Exec(ctx, createTableSQL); err != nil {
		return fmt.Errorf("failed to create migration tracking table: %w", err)
	}
	return nil
}

// isMigrationApplied checks if a specific migration has already been applied
func (m *Migrator) isMigrationApplied(ctx context.Context, version string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM schema_migrations WHERE version = $1);`
	if err := m.db.QueryRow(ctx, query, version).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check migration status: %w", err)
	}
	return exists, nil
}

// Version extracts the version prefix of a migration file ("001_init.sql" => "001").
func Version(filename string) string {
	base := path.Base(filename)
	return strings.TrimSuffix(strings.SplitN(base, "_", 2)[0], ".sql")
}

// migrateFile executes one SQL file and records it, both in one transaction.
// It reports whether the file was applied by this call.
func (m *Migrator) migrateFile(ctx context.Context, name string) (bool, error) {
	version := Version(name)

	applied, err := m.isMigrationApplied(ctx, version)
	if err != nil {
		return false, err
	}
	if applied {
		m.logger.Debug().Str("file", name).Msg("Migration already applied, skipping")
		return false, nil
	}

	content, err := fs.ReadFile(m.files, name)
	if err != nil {
		return false, fmt.Errorf("failed to read migration file %s: %w", name, err)
	}

	tx, err := m.db.Begin(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to start transaction: %w", err)
	}

	if _, err := tx.Exec(ctx, string(content)); err != nil {
		_ = tx.Rollback(ctx)
		return false, fmt.Errorf("error occurred during SQL migration %s: %w", name, err)
	}

	_, err = tx.Exec(ctx, `INSERT INTO schema_migrations (version, applied_at) VALUES ($1, $2)`, version, time.Now())
	if err != nil {
		_ = tx.Rollback(ctx)
		if dberrors.IsDuplicateConstraintError(err, "schema_migrations_pkey") {
			// another process applied it concurrently
			m.logger.Warn().Str("file", name).Msg("Migration recorded by a concurrent run")
			return false, nil
		}
		return false, fmt.Errorf("failed to record migration: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return false, fmt.Errorf("failed to commit transaction: %w", err)
	}

	m.logger.Info().Str("file", name).Str("version", version).Msg("Migration applied")
	return true, nil
}

// Up applies every pending .sql file in lexical order and returns how many ran.
func (m *Migrator) Up(ctx context.Context) (int, error) {
	if err := m.ensureMigrationTableExists(ctx); err != nil {
		return 0, err
	}

	entries, err := fs.ReadDir(m.files, ".")
	if err != nil {
		return 0, fmt.Errorf("failed to read migration directory: %w", err)
	}

	var sqlFiles []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".sql") {
			sqlFiles = append(sqlFiles, entry.Name())
		}
	}
	sort.Strings(sqlFiles)

	count := 0
	for _, file := range sqlFiles {
		applied, err := m.migrateFile(ctx, file)
		if err != nil {
			return count, err
		}
		if applied {
			count++
		}
	}

	m.logger.Info().Int("applied", count).Int("total", len(sqlFiles)).Msg("Database migrations up to date")
	return count, nil
}
