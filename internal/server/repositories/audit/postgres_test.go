package audit

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/steveuniverseuwu/EvidenceShield8/internal/server/models"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

var eventCols = []string{
	"id", "kind", "file_id", "file_name", "case_number", "batch_id", "proof_id",
	"actor_email", "actor_name", "actor_role", "commit_token", "original_token",
	"merkle_root", "file_count", "file_ids", "outcome", "verification_mode",
	"local_file_name", "shared_with", "details", "recorded_at",
}

func TestAppend_JoinsFileIDs(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	recorded := time.Now()
	mock.ExpectExec(`(?s)INSERT\s+INTO\s+audit_events`).
		WithArgs("audit_1_a", "batch_upload", "", "", "CASE-7", "batch_1_x", "",
			"sarah.chen@agency.gov", "Det. Sarah Chen", "Detective", "0xtoken", "",
			"roothash", 2, "file_1_a,file_1_b", "",
			"", "", "", "", recorded).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Append(context.Background(), &models.AuditEvent{
		ID:         "audit_1_a",
		Kind:       models.KindBatchUpload,
		CaseNumber: "CASE-7",
		BatchID:    "batch_1_x",
		Actor: models.Actor{
			Email: "sarah.chen@agency.gov",
			Name:  "Det. Sarah Chen",
			Role:  "Detective",
		},
		CommitToken: "0xtoken",
		MerkleRoot:  "roothash",
		FileCount:   2,
		FileIDs:     []string{"file_1_a", "file_1_b"},
		RecordedAt:  recorded,
	})
	if err != nil {
		t.Fatalf("Append error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestAppend_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`(?s)INSERT\s+INTO\s+audit_events`).
		WillReturnError(errors.New("db down"))

	err := repo.Append(context.Background(), &models.AuditEvent{ID: "audit_1_a"})
	if err == nil || !regexp.MustCompile(`db error: .*db down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestSelect_NoFilter(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows(eventCols).
		AddRow("audit_2_b", "verify", "file_1_a", "scene.jpg", "CASE-7", "", "ZKP-1-a",
			"sarah.chen@agency.gov", "Det. Sarah Chen", "Detective", "0xt2", "0xt1",
			"", 0, "", "verified", "remote", "", "", "", time.Now()).
		AddRow("audit_1_a", "upload", "file_1_a", "scene.jpg", "CASE-7", "", "",
			"sarah.chen@agency.gov", "Det. Sarah Chen", "Detective", "0xt1", "",
			"", 0, "", "", "", "", "", "", time.Now())
	mock.ExpectQuery(`(?s)SELECT\s+id,.*\s+FROM\s+audit_events\s+ORDER\s+BY\s+recorded_at\s+DESC`).
		WillReturnRows(rows)

	got, err := repo.Select(context.Background(), models.AuditFilter{})
	if err != nil {
		t.Fatalf("Select error: %v", err)
	}
	if len(got) != 2 || got[0].Kind != models.KindVerify || got[0].Outcome != models.OutcomeVerified || got[0].ProofID != "ZKP-1-a" {
		t.Fatalf("unexpected events: %+v", got)
	}
}

func TestSelect_ActorFilterMatchesRecipient(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows(eventCols).
		AddRow("audit_3_c", "share", "file_1_a", "scene.jpg", "CASE-7", "", "",
			"sarah.chen@agency.gov", "Det. Sarah Chen", "Detective", "0xt3", "0xt1",
			"", 0, "", "", "", "", "marcus.washington@agency.gov", "", time.Now())
	q := `(?s)SELECT\s+id,.*\s+FROM\s+audit_events\s+WHERE\s+\(actor_email\s*=\s*\$1\s+OR\s+shared_with\s*=\s*\$1\)\s+ORDER\s+BY\s+recorded_at\s+DESC`
	mock.ExpectQuery(q).
		WithArgs("marcus.washington@agency.gov").
		WillReturnRows(rows)

	got, err := repo.Select(context.Background(), models.AuditFilter{
		ActorEmail: "marcus.washington@agency.gov",
	})
	if err != nil {
		t.Fatalf("Select error: %v", err)
	}
	if len(got) != 1 || got[0].SharedWith != "marcus.washington@agency.gov" {
		t.Fatalf("unexpected events: %+v", got)
	}
}

func TestSelect_KindAndCaseFilters(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)SELECT\s+id,.*\s+FROM\s+audit_events\s+WHERE\s+\(actor_email\s*=\s*\$1\s+OR\s+shared_with\s*=\s*\$1\)\s+AND\s+kind\s*=\s*\$2\s+AND\s+case_number\s*=\s*\$3`
	mock.ExpectQuery(q).
		WithArgs("sarah.chen@agency.gov", "upload", "CASE-7").
		WillReturnRows(sqlmock.NewRows(eventCols))

	got, err := repo.Select(context.Background(), models.AuditFilter{
		ActorEmail: "sarah.chen@agency.gov",
		Kind:       models.KindUpload,
		CaseNumber: "CASE-7",
	})
	if err != nil {
		t.Fatalf("Select error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no events, got %+v", got)
	}
}

func TestSelect_RestoresFileIDs(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows(eventCols).
		AddRow("audit_1_a", "batch_upload", "", "", "CASE-7", "batch_1_x", "",
			"sarah.chen@agency.gov", "Det. Sarah Chen", "Detective", "0xt", "",
			"roothash", 2, "file_1_a,file_1_b", "", "", "", "", "", time.Now())
	mock.ExpectQuery(`(?s)SELECT\s+id,.*\s+FROM\s+audit_events`).
		WillReturnRows(rows)

	got, err := repo.Select(context.Background(), models.AuditFilter{})
	if err != nil {
		t.Fatalf("Select error: %v", err)
	}
	if len(got) != 1 || len(got[0].FileIDs) != 2 || got[0].FileIDs[1] != "file_1_b" {
		t.Fatalf("unexpected events: %+v", got)
	}
}

func TestDeleteAll(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`DELETE\s+FROM\s+audit_events`).
		WillReturnResult(sqlmock.NewResult(0, 4))

	if err := repo.DeleteAll(context.Background()); err != nil {
		t.Fatalf("DeleteAll error: %v", err)
	}
}
