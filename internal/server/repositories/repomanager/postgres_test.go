package repomanager

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/pressly/goose/v3"
	"github.com/steveuniverseuwu/EvidenceShield8/internal/server/repositories/audit"
	"github.com/steveuniverseuwu/EvidenceShield8/internal/server/repositories/batches"
	"github.com/steveuniverseuwu/EvidenceShield8/internal/server/repositories/evidence"
	"github.com/steveuniverseuwu/EvidenceShield8/internal/server/repositories/proofs"
	"github.com/steveuniverseuwu/EvidenceShield8/internal/server/repositories/users"
)

func newDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return db, mock
}

func TestNewPostgresRepositoryManager_ReturnsInterface(t *testing.T) {
	m, err := NewPostgresRepositoryManager()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var _ RepositoryManager = m
}

func TestFactories_ReturnConcreteRepos(t *testing.T) {
	db, _ := newDB(t)
	defer db.Close()

	m := &PostgresRepositoryManager{}

	if u := m.Users(db); u == nil {
		t.Fatal("Users() nil")
	}
	if e := m.Evidence(db); e == nil {
		t.Fatal("Evidence() nil")
	}
	if b := m.Batches(db); b == nil {
		t.Fatal("Batches() nil")
	}
	if p := m.Proofs(db); p == nil {
		t.Fatal("Proofs() nil")
	}
	if a := m.Audit(db); a == nil {
		t.Fatal("Audit() nil")
	}

	var _ users.Repository = m.Users(db)
	var _ evidence.Repository = m.Evidence(db)
	var _ batches.Repository = m.Batches(db)
	var _ proofs.Repository = m.Proofs(db)
	var _ audit.Repository = m.Audit(db)
}

func TestRunMigrations_Success(t *testing.T) {
	db, _ := newDB(t)
	defer db.Close()

	orig := gooseUpContext
	gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
		if dir != "." {
			return errors.New("unexpected dir")
		}
		if len(opts) != 0 {
			return errors.New("unexpected opts")
		}
		return nil
	}
	defer func() { gooseUpContext = orig }()

	m := &PostgresRepositoryManager{}
	if err := m.RunMigrations(context.Background(), db); err != nil {
		t.Fatalf("RunMigrations error: %v", err)
	}
}

func TestRunMigrations_Error(t *testing.T) {
	db, _ := newDB(t)
	defer db.Close()

	orig := gooseUpContext
	gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
		return errors.New("boom")
	}
	defer func() { gooseUpContext = orig }()

	m := &PostgresRepositoryManager{}
	if err := m.RunMigrations(context.Background(), db); err == nil || err.Error() != "boom" {
		t.Fatalf("expected boom, got %v", err)
	}
}
