package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/neontetris/internal/dbx"
	"github.com/dmitrijs2005/neontetris/internal/server/migrations"
	"github.com/dmitrijs2005/neontetris/internal/server/repositories/leaderboard"
	"github.com/dmitrijs2005/neontetris/internal/server/repositories/users"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"
)

// SQLiteRepositoryManager serves the single-file deployment.
type SQLiteRepositoryManager struct{}

func (m *SQLiteRepositoryManager) DriverName() string { return DriverSQLite }

// ConfigurePool pins the pool to one connection. SQLite allows a single
// writer, so extra connections only turn contention into SQLITE_BUSY, and
// each connection to ":memory:" would open its own empty database.
func (m *SQLiteRepositoryManager) ConfigurePool(db *sql.DB) {
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)
	db.SetConnMaxIdleTime(0)
}

func (m *SQLiteRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return users.NewSQLiteRepository(db)
}

func (m *SQLiteRepositoryManager) Leaderboard(db dbx.DBTX) leaderboard.Repository {
	return leaderboard.NewSQLiteRepository(db)
}

func (m *SQLiteRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}
	return gooseUpContext(ctx, db, migrations.SQLiteDir)
}

func NewSQLiteRepositoryManager() *SQLiteRepositoryManager {
	return &SQLiteRepositoryManager{}
}
