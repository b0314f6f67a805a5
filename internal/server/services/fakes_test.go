package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"sync"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/neontetris/internal/dbx"
	"github.com/dmitrijs2005/neontetris/internal/server/models"
	"github.com/dmitrijs2005/neontetris/internal/server/repositories/leaderboard"
	"github.com/dmitrijs2005/neontetris/internal/server/repositories/users"
)

// --- helpers ---

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

type fakeUsersRepo struct {
	createErr error

	getOut *models.User
	getErr error

	updateRows int64
	updateErr  error

	created []*models.User
	updated []string
}

func (f *fakeUsersRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.created = append(f.created, u)
	return u, nil
}

func (f *fakeUsersRepo) GetUserByLogin(ctx context.Context, userName string) (*models.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

func (f *fakeUsersRepo) UpdateSave(ctx context.Context, userName string, saveData json.RawMessage, highScore int64) (int64, error) {
	if f.updateErr != nil {
		return 0, f.updateErr
	}
	f.updated = append(f.updated, userName)
	return f.updateRows, nil
}

type fakeLeaderboardRepo struct {
	mu sync.Mutex

	upsertErr error
	topOut    []models.LeaderboardEntry
	topErr    error
	topCalls  int
	release   chan struct{}

	upserted map[string]int64
}

func (f *fakeLeaderboardRepo) Upsert(ctx context.Context, userName string, highScore int64) error {
	if f.upsertErr != nil {
		return f.upsertErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.upserted == nil {
		f.upserted = map[string]int64{}
	}
	f.upserted[userName] = highScore
	return nil
}

func (f *fakeLeaderboardRepo) Top(ctx context.Context, limit int) ([]models.LeaderboardEntry, error) {
	f.mu.Lock()
	f.topCalls++
	f.mu.Unlock()
	if f.release != nil {
		<-f.release
	}
	return f.topOut, f.topErr
}

type fakeRepoManager struct {
	u *fakeUsersRepo
	l *fakeLeaderboardRepo

	// handles records the DBTX each repository was bound to
	handles []dbx.DBTX
}

func (m *fakeRepoManager) DriverName() string                            { return "fake" }
func (m *fakeRepoManager) ConfigurePool(*sql.DB)                        {}
func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }

func (m *fakeRepoManager) Users(db dbx.DBTX) users.Repository {
	m.handles = append(m.handles, db)
	return m.u
}

func (m *fakeRepoManager) Leaderboard(db dbx.DBTX) leaderboard.Repository {
	m.handles = append(m.handles, db)
	return m.l
}
