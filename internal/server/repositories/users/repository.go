package users

import (
	"context"

	"github.com/steveuniverseuwu/EvidenceShield8/internal/server/models"
)

type Repository interface {
	// GetByEmail returns common.ErrorNotFound when no such user exists.
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	List(ctx context.Context) ([]*models.User, error)
}
