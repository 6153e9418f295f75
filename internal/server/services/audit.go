package services

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/steveuniverseuwu/EvidenceShield8/internal/dbx"
	"github.com/steveuniverseuwu/EvidenceShield8/internal/logging"
	"github.com/steveuniverseuwu/EvidenceShield8/internal/server/models"
	"github.com/steveuniverseuwu/EvidenceShield8/internal/server/repositories/repomanager"
)

// AuditService appends chain-of-custody events and serves audit
// queries. Writes that are part of a custody action run inside that
// action's transaction through record; standalone best-effort writes go
// through RecordBestEffort.
type AuditService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	logger      logging.Logger
}

func NewAuditService(db *sql.DB, m repomanager.RepositoryManager, logger logging.Logger) *AuditService {
	return &AuditService{db: db, repomanager: m, logger: logger}
}

// record appends an event on the given handle, stamping ID and
// timestamp if unset. Callers pass their transaction handle when the
// event must commit atomically with the action it describes.
func (s *AuditService) record(ctx context.Context, db dbx.DBTX, event *models.AuditEvent) error {
	if event.ID == "" {
		id, err := models.NewAuditID()
		if err != nil {
			return fmt.Errorf("failed to mint audit id: %w", err)
		}
		event.ID = id
	}
	if event.RecordedAt.IsZero() {
		event.RecordedAt = time.Now()
	}
	return s.repomanager.Audit(db).Append(ctx, event)
}

// RecordBestEffort appends an event outside any transaction. A failed
// append is logged and swallowed: read-path actions (downloads) must
// not fail because the log is unavailable.
func (s *AuditService) RecordBestEffort(ctx context.Context, event *models.AuditEvent) {
	if err := s.record(ctx, s.db, event); err != nil {
		s.logger.Warn(ctx, "failed to record audit event", "kind", event.Kind, "file_id", event.FileID, "error", err)
	}
}

// Trail returns the events visible to the actor: everything they
// performed plus shares addressed to them, newest first. Administrators
// see all actors' events. Filters narrow further.
func (s *AuditService) Trail(ctx context.Context, actor models.Actor, kind models.EventKind, caseNumber string) ([]*models.AuditEvent, error) {
	filter := models.AuditFilter{
		Kind:       kind,
		CaseNumber: caseNumber,
	}
	if !actor.IsAdmin() {
		filter.ActorEmail = actor.Email
	}
	return s.repomanager.Audit(s.db).Select(ctx, filter)
}
