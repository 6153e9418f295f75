package evidence

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/steveuniverseuwu/EvidenceShield8/internal/common"
	"github.com/steveuniverseuwu/EvidenceShield8/internal/dbx"
	"github.com/steveuniverseuwu/EvidenceShield8/internal/server/models"
)

// PostgresRepository implements Repository over a dbx.DBTX
// (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const fileColumns = `id, case_number, description, file_name, file_size, file_type,
		plaintext_hash, cid, proof_id, commit_token, storage_path,
		batch_id, batch_index, merkle_root, iv, salt, encryption_key,
		uploaded_by, uploader_name, uploader_role, department, created_at`

// Create inserts a new file record. Records are immutable after insert
// (share additions go through AddShare), so there is no upsert path.
func (r *PostgresRepository) Create(ctx context.Context, f *models.EvidenceFile) error {
	query := `
		INSERT INTO evidence_files (` + fileColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22)
	`
	var batchID, merkleRoot sql.NullString
	var batchIndex sql.NullInt32
	if f.BatchID != "" {
		batchID = sql.NullString{String: f.BatchID, Valid: true}
		batchIndex = sql.NullInt32{Int32: int32(f.BatchIndex), Valid: true}
		merkleRoot = sql.NullString{String: f.MerkleRoot, Valid: true}
	}

	_, err := r.db.ExecContext(ctx, query,
		f.ID, f.CaseNumber, f.Description, f.FileName, f.FileSize, f.FileType,
		f.PlaintextHash, f.CID, f.ProofID, f.CommitToken, f.StoragePath,
		batchID, batchIndex, merkleRoot, f.IV, f.Salt, f.EncryptionKey,
		f.UploadedBy, f.UploaderName, f.UploaderRole, f.Department, f.CreatedAt)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func scanFile(row interface{ Scan(...any) error }) (*models.EvidenceFile, error) {
	f := &models.EvidenceFile{}
	var batchID, merkleRoot sql.NullString
	var batchIndex sql.NullInt32

	err := row.Scan(
		&f.ID, &f.CaseNumber, &f.Description, &f.FileName, &f.FileSize, &f.FileType,
		&f.PlaintextHash, &f.CID, &f.ProofID, &f.CommitToken, &f.StoragePath,
		&batchID, &batchIndex, &merkleRoot, &f.IV, &f.Salt, &f.EncryptionKey,
		&f.UploadedBy, &f.UploaderName, &f.UploaderRole, &f.Department, &f.CreatedAt)
	if err != nil {
		return nil, err
	}

	if batchID.Valid {
		f.BatchID = batchID.String
		f.BatchIndex = int(batchIndex.Int32)
		f.MerkleRoot = merkleRoot.String
	}
	return f, nil
}

// GetByID returns one file record with its share set loaded, or
// common.ErrMetadataNotFound.
func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.EvidenceFile, error) {
	query := `SELECT ` + fileColumns + ` FROM evidence_files WHERE id=$1`

	f, err := scanFile(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrMetadataNotFound
		}
		return nil, fmt.Errorf("failed to select evidence file: %w", err)
	}

	if f.SharedWith, err = r.sharedWith(ctx, f.ID); err != nil {
		return nil, err
	}
	return f, nil
}

// GetByProofID resolves the file record bound to a proof identifier.
func (r *PostgresRepository) GetByProofID(ctx context.Context, proofID string) (*models.EvidenceFile, error) {
	query := `SELECT ` + fileColumns + ` FROM evidence_files WHERE proof_id=$1`

	f, err := scanFile(r.db.QueryRowContext(ctx, query, proofID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrMetadataNotFound
		}
		return nil, fmt.Errorf("failed to select evidence file: %w", err)
	}

	if f.SharedWith, err = r.sharedWith(ctx, f.ID); err != nil {
		return nil, err
	}
	return f, nil
}

// SelectAccessible returns files uploaded by the actor or shared with
// them, newest first. Share sets are not populated here; list views do
// not need them.
func (r *PostgresRepository) SelectAccessible(ctx context.Context, actorEmail string) ([]*models.EvidenceFile, error) {
	query := `
		SELECT ` + fileColumns + ` FROM evidence_files
		WHERE uploaded_by=$1
		   OR id IN (SELECT file_id FROM evidence_shares WHERE shared_with=$1)
		ORDER BY created_at DESC
	`
	return r.selectFiles(ctx, query, actorEmail)
}

// SelectByBatch returns the files of a batch in Merkle leaf order.
func (r *PostgresRepository) SelectByBatch(ctx context.Context, batchID string) ([]*models.EvidenceFile, error) {
	query := `
		SELECT ` + fileColumns + ` FROM evidence_files
		WHERE batch_id=$1
		ORDER BY batch_index
	`
	return r.selectFiles(ctx, query, batchID)
}

func (r *PostgresRepository) selectFiles(ctx context.Context, query string, args ...any) ([]*models.EvidenceFile, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to select evidence files: %w", err)
	}
	defer rows.Close()

	var result []*models.EvidenceFile
	for rows.Next() {
		f, err := scanFile(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, f)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// AddShare appends a recipient to a file's share set. Re-sharing with
// the same recipient is a no-op.
func (r *PostgresRepository) AddShare(ctx context.Context, fileID, sharedWith string) error {
	query := `
		INSERT INTO evidence_shares (file_id, shared_with)
		VALUES ($1, $2)
		ON CONFLICT (file_id, shared_with) DO NOTHING
	`
	if _, err := r.db.ExecContext(ctx, query, fileID, sharedWith); err != nil {
		return fmt.Errorf("failed to add share: %w", err)
	}
	return nil
}

func (r *PostgresRepository) sharedWith(ctx context.Context, fileID string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT shared_with FROM evidence_shares WHERE file_id=$1 ORDER BY created_at`, fileID)
	if err != nil {
		return nil, fmt.Errorf("failed to select shares: %w", err)
	}
	defer rows.Close()

	var result []string
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, err
		}
		result = append(result, s)
	}
	return result, rows.Err()
}

// ListStoragePaths returns every blob path referenced by a file record,
// used by the administrative reset to clear object storage.
func (r *PostgresRepository) ListStoragePaths(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT storage_path FROM evidence_files`)
	if err != nil {
		return nil, fmt.Errorf("failed to select storage paths: %w", err)
	}
	defer rows.Close()

	var result []string
	for rows.Next() {
		var p string
		if err := rows.Scan(&p); err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	return result, rows.Err()
}

// DeleteAll removes every file record and share. Only the
// administrative bulk reset calls this.
func (r *PostgresRepository) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM evidence_shares`); err != nil {
		return fmt.Errorf("failed to delete shares: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, `DELETE FROM evidence_files`); err != nil {
		return fmt.Errorf("failed to delete evidence files: %w", err)
	}
	return nil
}
