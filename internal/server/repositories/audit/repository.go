// Package audit persists the append-only chain-of-custody log.
package audit

import (
	"context"

	"github.com/steveuniverseuwu/EvidenceShield8/internal/server/models"
)

// Repository appends and queries audit events. There is no update or
// per-row delete: history is immutable except for the administrative
// full reset.
type Repository interface {
	Append(ctx context.Context, event *models.AuditEvent) error
	Select(ctx context.Context, filter models.AuditFilter) ([]*models.AuditEvent, error)
	DeleteAll(ctx context.Context) error
}
