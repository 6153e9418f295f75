// Package repomanager provides a concrete RepositoryManager for PostgreSQL,
// wiring together repository constructors and database migrations (via goose).
package repomanager

import (
	"context"
	"database/sql"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/steveuniverseuwu/EvidenceShield8/internal/dbx"
	"github.com/steveuniverseuwu/EvidenceShield8/internal/server/migrations"
	"github.com/steveuniverseuwu/EvidenceShield8/internal/server/repositories/audit"
	"github.com/steveuniverseuwu/EvidenceShield8/internal/server/repositories/batches"
	"github.com/steveuniverseuwu/EvidenceShield8/internal/server/repositories/evidence"
	"github.com/steveuniverseuwu/EvidenceShield8/internal/server/repositories/proofs"
	"github.com/steveuniverseuwu/EvidenceShield8/internal/server/repositories/users"
)

// PostgresRepositoryManager vends PostgreSQL-backed repository implementations
// and exposes a schema migration hook.
type PostgresRepositoryManager struct{}

// Users returns a users.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return users.NewPostgresRepository(db)
}

// Evidence returns an evidence.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Evidence(db dbx.DBTX) evidence.Repository {
	return evidence.NewPostgresRepository(db)
}

// Batches returns a batches.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Batches(db dbx.DBTX) batches.Repository {
	return batches.NewPostgresRepository(db)
}

// Proofs returns a proofs.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Proofs(db dbx.DBTX) proofs.Repository {
	return proofs.NewPostgresRepository(db)
}

// Audit returns an audit.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Audit(db dbx.DBTX) audit.Repository {
	return audit.NewPostgresRepository(db)
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations sets up goose with the embedded migrations and runs them
// against the provided database connection.
func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	goose.SetDialect("pgx")
	if err := gooseUpContext(ctx, db, "."); err != nil {
		return err
	}
	return nil
}

// NewPostgresRepositoryManager constructs a PostgreSQL-backed RepositoryManager.
func NewPostgresRepositoryManager() (RepositoryManager, error) {
	return &PostgresRepositoryManager{}, nil
}
