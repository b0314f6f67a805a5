package leaderboard

import (
	"context"

	"github.com/dmitrijs2005/neontetris/internal/server/models"
)

// Repository keeps one score per username, overwritten by every save.
type Repository interface {
	Upsert(ctx context.Context, login string, highScore int64) error
	Top(ctx context.Context, limit int) ([]models.LeaderboardEntry, error)
}
