package batches

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

func (r *PostgresRepository) Create(ctx context.Context, b *models.Batch) error {
	query := `
		INSERT INTO evidence_batches
			(id, case_number, description, merkle_root, commit_token, file_count,
			 uploaded_by, uploader_name, uploader_role, department, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	_, err := r.db.ExecContext(ctx, query,
		b.ID, b.CaseNumber, b.Description, b.MerkleRoot, b.CommitToken, b.FileCount,
		b.UploadedBy, b.UploaderName, b.UploaderRole, b.Department, b.CreatedAt)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// GetByID returns a batch with FileIDs restored in Merkle leaf order.
func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Batch, error) {
	query := `
		SELECT id, case_number, description, merkle_root, commit_token, file_count,
		       uploaded_by, uploader_name, uploader_role, department, created_at
		FROM evidence_batches WHERE id=$1
	`
	b := &models.Batch{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&b.ID, &b.CaseNumber, &b.Description, &b.MerkleRoot, &b.CommitToken, &b.FileCount,
		&b.UploadedBy, &b.UploaderName, &b.UploaderRole, &b.Department, &b.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrMetadataNotFound
		}
		return nil, fmt.Errorf("failed to select batch: %w", err)
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT id FROM evidence_files WHERE batch_id=$1 ORDER BY batch_index`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to select batch files: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var fileID string
		if err := rows.Scan(&fileID); err != nil {
			return nil, err
		}
		b.FileIDs = append(b.FileIDs, fileID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return b, nil
}

func (r *PostgresRepository) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM evidence_batches`); err != nil {
		return fmt.Errorf("failed to delete batches: %w", err)
	}
	return nil
}
