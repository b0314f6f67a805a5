package leaderboard

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/neontetris/internal/dbx"
	"github.com/dmitrijs2005/neontetris/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Upsert(ctx context.Context, userName string, highScore int64) error {
	query :=
		`INSERT INTO leaderboard (username, high_score, updated_at)
		 VALUES ($1, $2, now())
		 ON CONFLICT (username) DO UPDATE
		 SET high_score = EXCLUDED.high_score, updated_at = now()
		 `

	if _, err := r.db.ExecContext(ctx, query, userName, highScore); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) Top(ctx context.Context, limit int) ([]models.LeaderboardEntry, error) {
	query :=
		`SELECT username, high_score FROM leaderboard
		 ORDER BY high_score DESC, username
		 LIMIT $1
		 `

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	return scanEntries(rows, limit)
}
