// Package services contains server-side business logic. This file implements
// UserService, which handles registration and per-request credential checks.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/neontetris/internal/common"
	"github.com/dmitrijs2005/neontetris/internal/digest"
	"github.com/dmitrijs2005/neontetris/internal/logging"
	"github.com/dmitrijs2005/neontetris/internal/server/models"
	"github.com/dmitrijs2005/neontetris/internal/server/repositories/repomanager"
)

// UserService registers players and checks their credentials. No session or
// token is issued; every call stands alone.
type UserService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	hasher      digest.Hasher
	log         logging.Logger
}

// NewUserService constructs a UserService using repositories and a digest strategy.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, hasher digest.Hasher, log logging.Logger) *UserService {
	return &UserService{
		db:          db,
		repomanager: m,
		hasher:      hasher,
		log:         log,
	}
}

// Register creates a user with a zero high score and no save. The existence
// check and the insert are separate statements, so two concurrent
// registrations of one name can both succeed.
func (s *UserService) Register(ctx context.Context, username, password string) error {
	if username == "" || password == "" {
		return common.ErrorValidation
	}

	repo := s.repomanager.Users(s.db)

	_, err := repo.GetUserByLogin(ctx, username)
	switch {
	case err == nil:
		return common.ErrorConflict
	case !errors.Is(err, common.ErrorNotFound):
		return fmt.Errorf("error searching user: %w", err)
	}

	d, err := s.hasher.Digest(password)
	if err != nil {
		return common.WrapError(common.KindInternal, "internal error", err)
	}

	user := &models.User{UserName: username, PasswordDigest: d}
	if _, err := repo.Create(ctx, user); err != nil {
		return fmt.Errorf("error creating user: %w", err)
	}

	s.log.Info(ctx, "user registered", "username", username, "id", user.ID)
	return nil
}

// Login succeeds when the password matches the stored digest. Unknown users
// and wrong passwords return the same error.
func (s *UserService) Login(ctx context.Context, username, password string) error {
	repo := s.repomanager.Users(s.db)

	user, err := repo.GetUserByLogin(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrorUnauthorized
		}
		return fmt.Errorf("error searching user: %w", err)
	}

	if !s.hasher.Verify(password, user.PasswordDigest) {
		return common.ErrorUnauthorized
	}

	return nil
}
