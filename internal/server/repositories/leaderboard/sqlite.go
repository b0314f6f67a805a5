package leaderboard

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/neontetris/internal/dbx"
	"github.com/dmitrijs2005/neontetris/internal/server/models"
)

type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Upsert(ctx context.Context, userName string, highScore int64) error {
	query :=
		`INSERT INTO leaderboard (username, high_score, updated_at)
		 VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT (username) DO UPDATE
		 SET high_score = excluded.high_score, updated_at = CURRENT_TIMESTAMP
		 `

	if _, err := r.db.ExecContext(ctx, query, userName, highScore); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) Top(ctx context.Context, limit int) ([]models.LeaderboardEntry, error) {
	query :=
		`SELECT username, high_score FROM leaderboard
		 ORDER BY high_score DESC, username
		 LIMIT ?
		 `

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	return scanEntries(rows, limit)
}

// scanEntries never returns nil so an empty board encodes as [].
func scanEntries(rows *sql.Rows, capHint int) ([]models.LeaderboardEntry, error) {
	entries := make([]models.LeaderboardEntry, 0, capHint)
	for rows.Next() {
		var e models.LeaderboardEntry
		if err := rows.Scan(&e.UserName, &e.HighScore); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return entries, nil
}
