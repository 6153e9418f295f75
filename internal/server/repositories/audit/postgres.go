package audit

import (
	"context"
	"fmt"
	"strings"

	"github.com/steveuniverseuwu/EvidenceShield8/internal/dbx"
	"github.com/steveuniverseuwu/EvidenceShield8/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const eventColumns = `id, kind, file_id, file_name, case_number, batch_id, proof_id,
		actor_email, actor_name, actor_role, commit_token, original_token,
		merkle_root, file_count, file_ids, outcome, verification_mode,
		local_file_name, shared_with, details, recorded_at`

func (r *PostgresRepository) Append(ctx context.Context, e *models.AuditEvent) error {
	query := `
		INSERT INTO audit_events (` + eventColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)
	`
	_, err := r.db.ExecContext(ctx, query,
		e.ID, string(e.Kind), e.FileID, e.FileName, e.CaseNumber, e.BatchID, e.ProofID,
		e.Actor.Email, e.Actor.Name, e.Actor.Role, e.CommitToken, e.OriginalToken,
		e.MerkleRoot, e.FileCount, strings.Join(e.FileIDs, ","), string(e.Outcome),
		string(e.VerificationMode), e.LocalFileName, e.SharedWith, e.Details, e.RecordedAt)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// Select returns events matching the filter, newest first. Zero-valued
// filter fields match anything.
func (r *PostgresRepository) Select(ctx context.Context, filter models.AuditFilter) ([]*models.AuditEvent, error) {
	query := `SELECT ` + eventColumns + ` FROM audit_events`

	var conds []string
	var args []any
	add := func(cond, value string) {
		args = append(args, value)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}

	if filter.ActorEmail != "" {
		add("(actor_email=$%[1]d OR shared_with=$%[1]d)", filter.ActorEmail)
	}
	if filter.Kind != "" {
		add("kind=$%d", string(filter.Kind))
	}
	if filter.CaseNumber != "" {
		add("case_number=$%d", filter.CaseNumber)
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY recorded_at DESC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to select audit events: %w", err)
	}
	defer rows.Close()

	var result []*models.AuditEvent
	for rows.Next() {
		e := &models.AuditEvent{}
		var kind, outcome, mode, fileIDs string
		err := rows.Scan(
			&e.ID, &kind, &e.FileID, &e.FileName, &e.CaseNumber, &e.BatchID, &e.ProofID,
			&e.Actor.Email, &e.Actor.Name, &e.Actor.Role, &e.CommitToken, &e.OriginalToken,
			&e.MerkleRoot, &e.FileCount, &fileIDs, &outcome,
			&mode, &e.LocalFileName, &e.SharedWith, &e.Details, &e.RecordedAt)
		if err != nil {
			return nil, err
		}
		e.Kind = models.EventKind(kind)
		e.Outcome = models.VerificationOutcome(outcome)
		e.VerificationMode = models.VerificationMode(mode)
		if fileIDs != "" {
			e.FileIDs = strings.Split(fileIDs, ",")
		}
		result = append(result, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *PostgresRepository) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM audit_events`); err != nil {
		return fmt.Errorf("failed to delete audit events: %w", err)
	}
	return nil
}
