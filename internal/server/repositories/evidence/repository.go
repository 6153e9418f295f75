// Package evidence persists evidence file records and their share sets.
package evidence

import (
	"context"

	"github.com/steveuniverseuwu/EvidenceShield8/internal/server/models"
)

// Repository is the persistence contract for evidence file records.
// Records are append-mostly: after creation the only mutation is adding
// recipients to the share set, plus the destructive full reset.
type Repository interface {
	Create(ctx context.Context, file *models.EvidenceFile) error
	GetByID(ctx context.Context, id string) (*models.EvidenceFile, error)
	GetByProofID(ctx context.Context, proofID string) (*models.EvidenceFile, error)
	SelectAccessible(ctx context.Context, actorEmail string) ([]*models.EvidenceFile, error)
	SelectByBatch(ctx context.Context, batchID string) ([]*models.EvidenceFile, error)
	AddShare(ctx context.Context, fileID, sharedWith string) error
	ListStoragePaths(ctx context.Context) ([]string, error)
	DeleteAll(ctx context.Context) error
}
