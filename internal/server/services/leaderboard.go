package services

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/neontetris/internal/server/models"
	"github.com/dmitrijs2005/neontetris/internal/server/repositories/repomanager"
	"golang.org/x/sync/singleflight"
)

// LeaderboardSize is the fixed number of entries returned by Top.
const LeaderboardSize = 10

// LeaderboardService reads the top scores. Identical reads in flight at the
// same time share one query.
type LeaderboardService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	group       singleflight.Group
}

func NewLeaderboardService(db *sql.DB, m repomanager.RepositoryManager) *LeaderboardService {
	return &LeaderboardService{db: db, repomanager: m}
}

func (s *LeaderboardService) Top(ctx context.Context) ([]models.LeaderboardEntry, error) {
	// the shared query must not die with whichever caller started it
	qctx := context.WithoutCancel(ctx)

	v, err, _ := s.group.Do("top", func() (any, error) {
		return s.repomanager.Leaderboard(s.db).Top(qctx, LeaderboardSize)
	})
	if err != nil {
		return nil, err
	}

	shared := v.([]models.LeaderboardEntry)
	out := make([]models.LeaderboardEntry, len(shared))
	copy(out, shared)
	return out, nil
}
