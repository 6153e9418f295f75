package repomanager

import (
	"context"
	"database/sql"

	"github.com/steveuniverseuwu/EvidenceShield8/internal/dbx"
	"github.com/steveuniverseuwu/EvidenceShield8/internal/server/repositories/audit"
	"github.com/steveuniverseuwu/EvidenceShield8/internal/server/repositories/batches"
	"github.com/steveuniverseuwu/EvidenceShield8/internal/server/repositories/evidence"
	"github.com/steveuniverseuwu/EvidenceShield8/internal/server/repositories/proofs"
	"github.com/steveuniverseuwu/EvidenceShield8/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Evidence(db dbx.DBTX) evidence.Repository
	Batches(db dbx.DBTX) batches.Repository
	Proofs(db dbx.DBTX) proofs.Repository
	Audit(db dbx.DBTX) audit.Repository
}
