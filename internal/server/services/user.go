// Package services contains server-side business logic: authentication,
// evidence custody, verification, and the audit trail.
package services

import (
	"context"
	"crypto/subtle"
	"database/sql"
	"errors"
	"time"

	"github.com/steveuniverseuwu/EvidenceShield8/internal/common"
	"github.com/steveuniverseuwu/EvidenceShield8/internal/server/auth"
	"github.com/steveuniverseuwu/EvidenceShield8/internal/server/config"
	"github.com/steveuniverseuwu/EvidenceShield8/internal/server/models"
	"github.com/steveuniverseuwu/EvidenceShield8/internal/server/repositories/repomanager"
)

// UserService authenticates against the static credential table and
// mints access tokens. There is no self-registration: the user set is
// seeded by migration, standing in for an agency directory.
type UserService struct {
	db                          *sql.DB
	repomanager                 repomanager.RepositoryManager
	jwtSecret                   []byte
	accessTokenValidityDuration time.Duration
}

// NewUserService constructs a UserService using repositories and server config.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		db:                          db,
		repomanager:                 m,
		jwtSecret:                   []byte(cfg.SecretKey),
		accessTokenValidityDuration: cfg.AccessTokenValidityDuration,
	}
}

// Login verifies the credentials and returns a signed access token plus
// the authenticated actor. Unknown accounts, wrong passwords and
// inactive accounts all collapse to ErrorUnauthorized.
func (s *UserService) Login(ctx context.Context, email, password string) (string, models.Actor, error) {
	repo := s.repomanager.Users(s.db)
	user, err := repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", models.Actor{}, common.ErrorUnauthorized
		}
		return "", models.Actor{}, common.ErrorInternal
	}

	if subtle.ConstantTimeCompare([]byte(user.Password), []byte(password)) != 1 {
		return "", models.Actor{}, common.ErrorUnauthorized
	}
	if user.Status != models.UserStatusActive {
		return "", models.Actor{}, common.ErrorUnauthorized
	}

	actor := models.Actor{Email: user.Email, Name: user.Name, Role: user.Role}
	token, err := auth.GenerateToken(actor, s.jwtSecret, s.accessTokenValidityDuration)
	if err != nil {
		return "", models.Actor{}, common.ErrorInternal
	}
	return token, actor, nil
}

// ListUsers returns the directory, used by clients to pick share
// recipients.
func (s *UserService) ListUsers(ctx context.Context) ([]*models.User, error) {
	return s.repomanager.Users(s.db).List(ctx)
}
