package users

import (
	"context"
	"encoding/json"

	"github.com/dmitrijs2005/neontetris/internal/server/models"
)

// Repository stores player accounts. Usernames are not unique at this
// level; lookups resolve to the earliest registered row.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetUserByLogin(ctx context.Context, login string) (*models.User, error)
	// UpdateSave replaces the save blob and high score of every row with the
	// given username and reports how many rows changed.
	UpdateSave(ctx context.Context, login string, saveData json.RawMessage, highScore int64) (int64, error)
}
