package proofs

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/steveuniverseuwu/EvidenceShield8/internal/common"
	"github.com/steveuniverseuwu/EvidenceShield8/internal/dbx"
	"github.com/steveuniverseuwu/EvidenceShield8/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, p *models.Proof) error {
	query := `
		INSERT INTO proofs (id, plaintext_hash, case_number, uploaded_by, description, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.db.ExecContext(ctx, query,
		p.ID, p.PlaintextHash, p.CaseNumber, p.UploadedBy, p.Description, p.CreatedAt)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// GetByID returns the commitment record, or common.ErrProofNotFound for
// an unknown identifier.
func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Proof, error) {
	query := `
		SELECT id, plaintext_hash, case_number, uploaded_by, description, created_at
		FROM proofs WHERE id=$1
	`
	p := &models.Proof{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&p.ID, &p.PlaintextHash, &p.CaseNumber, &p.UploadedBy, &p.Description, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrProofNotFound
		}
		return nil, fmt.Errorf("failed to select proof: %w", err)
	}
	return p, nil
}

func (r *PostgresRepository) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM proofs`); err != nil {
		return fmt.Errorf("failed to delete proofs: %w", err)
	}
	return nil
}
