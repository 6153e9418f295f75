// Package batches persists multi-file upload records.
package batches

import (
	"context"

	"github.com/steveuniverseuwu/EvidenceShield8/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, batch *models.Batch) error
	GetByID(ctx context.Context, id string) (*models.Batch, error)
	DeleteAll(ctx context.Context) error
}
