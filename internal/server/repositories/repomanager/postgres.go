// Package repomanager provides a concrete RepositoryManager for PostgreSQL,
// wiring together repository constructors and database migrations (via goose).
package repomanager

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"

	"github.com/dmitrijs2005/farmsync/internal/dbx"
	"github.com/dmitrijs2005/farmsync/internal/server/migrations"
	"github.com/dmitrijs2005/farmsync/internal/server/repositories/operations"
	"github.com/dmitrijs2005/farmsync/internal/server/repositories/plots"
)

// PostgresRepositoryManager vends PostgreSQL-backed repository implementations
// and exposes a schema migration hook.
type PostgresRepositoryManager struct{}

// Operations returns an operations.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Operations(db dbx.DBTX) operations.Repository {
	return operations.NewPostgresRepository(db)
}

// Plots returns a plots.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Plots(db dbx.DBTX) plots.Repository {
	return plots.NewPostgresRepository(db)
}

// migrate is a seam for testing; it applies all pending migrations.
var migrate = func(ctx context.Context, db *sql.DB) error {
	p, err := goose.NewProvider(goose.DialectPostgres, db, migrations.Migrations)
	if err != nil {
		return err
	}
	_, err = p.Up(ctx)
	return err
}

// RunMigrations applies the embedded migrations to db.
func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	if err := migrate(ctx, db); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

// NewPostgresRepositoryManager constructs a PostgreSQL-backed RepositoryManager.
func NewPostgresRepositoryManager() RepositoryManager {
	return &PostgresRepositoryManager{}
}
