package repomanager

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/neontetris/internal/server/migrations"
	"github.com/dmitrijs2005/neontetris/internal/server/repositories/leaderboard"
	"github.com/dmitrijs2005/neontetris/internal/server/repositories/users"
	"github.com/pressly/goose/v3"
)

func newDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return db, mock
}

func TestNew(t *testing.T) {
	cases := map[string]string{
		"pgx":      DriverPostgres,
		"postgres": DriverPostgres,
		"sqlite":   DriverSQLite,
	}
	for in, want := range cases {
		m, err := New(in)
		if err != nil {
			t.Fatalf("New(%q) error: %v", in, err)
		}
		if m.DriverName() != want {
			t.Fatalf("New(%q).DriverName() = %q, want %q", in, m.DriverName(), want)
		}
	}

	if _, err := New("oracle"); err == nil {
		t.Fatal("expected error for unknown driver")
	}
}

func TestFactories_ReturnConcreteRepos(t *testing.T) {
	db, _ := newDB(t)
	defer db.Close()

	pg := NewPostgresRepositoryManager()
	if _, ok := pg.Users(db).(*users.PostgresRepository); !ok {
		t.Fatal("Users() is not the postgres repository")
	}
	if _, ok := pg.Leaderboard(db).(*leaderboard.PostgresRepository); !ok {
		t.Fatal("Leaderboard() is not the postgres repository")
	}

	lite := NewSQLiteRepositoryManager()
	if _, ok := lite.Users(db).(*users.SQLiteRepository); !ok {
		t.Fatal("Users() is not the sqlite repository")
	}
	if _, ok := lite.Leaderboard(db).(*leaderboard.SQLiteRepository); !ok {
		t.Fatal("Leaderboard() is not the sqlite repository")
	}
}

func TestRunMigrations_Success(t *testing.T) {
	db, _ := newDB(t)
	defer db.Close()

	orig := gooseUpContext
	var gotDir string
	gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
		gotDir = dir
		if len(opts) != 0 {
			return errors.New("unexpected opts")
		}
		return nil
	}
	defer func() { gooseUpContext = orig }()

	if err := NewPostgresRepositoryManager().RunMigrations(context.Background(), db); err != nil {
		t.Fatalf("RunMigrations error: %v", err)
	}
	if gotDir != migrations.PostgresDir {
		t.Fatalf("unexpected dir %q", gotDir)
	}

	if err := NewSQLiteRepositoryManager().RunMigrations(context.Background(), db); err != nil {
		t.Fatalf("RunMigrations error: %v", err)
	}
	if gotDir != migrations.SQLiteDir {
		t.Fatalf("unexpected dir %q", gotDir)
	}
}

func TestRunMigrations_Error(t *testing.T) {
	db, _ := newDB(t)
	defer db.Close()

	orig := gooseUpContext
	gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
		return errors.New("boom")
	}
	defer func() { gooseUpContext = orig }()

	m := NewPostgresRepositoryManager()
	if err := m.RunMigrations(context.Background(), db); err == nil || err.Error() != "boom" {
		t.Fatalf("expected boom, got %v", err)
	}
}
