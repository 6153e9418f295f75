// Package proofs persists the commitment bindings minted at upload
// time: proof identifier to plaintext hash plus upload context, 1:1 and
// immutable.
package proofs

import (
	"context"

	"github.com/steveuniverseuwu/EvidenceShield8/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, proof *models.Proof) error
	GetByID(ctx context.Context, id string) (*models.Proof, error)
	DeleteAll(ctx context.Context) error
}
