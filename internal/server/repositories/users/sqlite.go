package users

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/neontetris/internal/common"
	"github.com/dmitrijs2005/neontetris/internal/dbx"
	"github.com/dmitrijs2005/neontetris/internal/server/models"
)

// SQLiteRepository is the embedded single-file variant of the users store.
type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	query :=
		`INSERT INTO users (username, password_digest, high_score)
		 VALUES (?, ?, ?)
		 RETURNING id
		 `

	err := r.db.QueryRowContext(ctx, query,
		user.UserName, user.PasswordDigest, user.HighScore).Scan(&user.ID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}

func (r *SQLiteRepository) GetUserByLogin(ctx context.Context, userName string) (*models.User, error) {
	query :=
		`SELECT id, username, password_digest, high_score, save_data FROM users
		 WHERE username = ?
		 ORDER BY id
		 LIMIT 1
		 `

	user := &models.User{}
	var save sql.NullString
	err := r.db.QueryRowContext(ctx, query, userName).
		Scan(&user.ID, &user.UserName, &user.PasswordDigest, &user.HighScore, &save)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	if save.Valid {
		user.SaveData = json.RawMessage(save.String)
	}

	return user, nil
}

func (r *SQLiteRepository) UpdateSave(ctx context.Context, userName string, saveData json.RawMessage, highScore int64) (int64, error) {
	query :=
		`UPDATE users SET save_data = ?, high_score = ?
		 WHERE username = ?
		 `

	res, err := r.db.ExecContext(ctx, query, string(saveData), highScore, userName)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}

	return n, nil
}
