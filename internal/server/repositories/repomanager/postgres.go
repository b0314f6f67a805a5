// Package repomanager vends the repository implementations for one SQL
// backend and runs its embedded goose migrations.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/neontetris/internal/dbx"
	"github.com/dmitrijs2005/neontetris/internal/server/migrations"
	"github.com/dmitrijs2005/neontetris/internal/server/repositories/leaderboard"
	"github.com/dmitrijs2005/neontetris/internal/server/repositories/users"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// PostgresRepositoryManager vends PostgreSQL-backed repository implementations
// and exposes a schema migration hook.
type PostgresRepositoryManager struct{}

func (m *PostgresRepositoryManager) DriverName() string { return DriverPostgres }

// ConfigurePool keeps database/sql defaults; Postgres handles concurrent writers.
func (m *PostgresRepositoryManager) ConfigurePool(*sql.DB) {}

// Users returns a users.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return users.NewPostgresRepository(db)
}

// Leaderboard returns a leaderboard.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Leaderboard(db dbx.DBTX) leaderboard.Repository {
	return leaderboard.NewPostgresRepository(db)
}

// RunMigrations sets up goose with the embedded migrations and runs them
// against the provided database connection.
func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}
	return gooseUpContext(ctx, db, migrations.PostgresDir)
}

// NewPostgresRepositoryManager constructs a PostgreSQL-backed RepositoryManager.
func NewPostgresRepositoryManager() *PostgresRepositoryManager {
	return &PostgresRepositoryManager{}
}
