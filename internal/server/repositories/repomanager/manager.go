package repomanager

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/neontetris/internal/dbx"
	"github.com/dmitrijs2005/neontetris/internal/server/repositories/leaderboard"
	"github.com/dmitrijs2005/neontetris/internal/server/repositories/users"
	"github.com/pressly/goose/v3"
)

const (
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite"
)

type RepositoryManager interface {
	// DriverName is the database/sql driver the manager's SQL is written for.
	DriverName() string
	// ConfigurePool tunes a freshly opened pool for the dialect.
	ConfigurePool(db *sql.DB)
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Leaderboard(db dbx.DBTX) leaderboard.Repository
}

// New picks the manager for a configured database driver.
func New(driver string) (RepositoryManager, error) {
	switch driver {
	case DriverPostgres, "postgres":
		return NewPostgresRepositoryManager(), nil
	case DriverSQLite:
		return NewSQLiteRepositoryManager(), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}
