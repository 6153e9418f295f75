package batches

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/steveuniverseuwu/EvidenceShield8/internal/common"
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

func TestCreate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)INSERT\s+INTO\s+evidence_batches`

	created := time.Now()
	mock.ExpectExec(q).
		WithArgs("batch_1700000000000_a1b2c3d4e5f6g", "CASE-2024-001", "scene photos",
			"roothash", "0xtoken", 3,
			"sarah.chen@agency.gov", "Det. Sarah Chen", "Detective", "Major Crimes", created).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Create(context.Background(), &models.Batch{
		ID:           "batch_1700000000000_a1b2c3d4e5f6g",
		CaseNumber:   "CASE-2024-001",
		Description:  "scene photos",
		MerkleRoot:   "roothash",
		CommitToken:  "0xtoken",
		FileCount:    3,
		UploadedBy:   "sarah.chen@agency.gov",
		UploaderName: "Det. Sarah Chen",
		UploaderRole: "Detective",
		Department:   "Major Crimes",
		CreatedAt:    created,
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestGetByID_RestoresLeafOrder(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	batchRows := sqlmock.NewRows([]string{
		"id", "case_number", "description", "merkle_root", "commit_token", "file_count",
		"uploaded_by", "uploader_name", "uploader_role", "department", "created_at",
	}).AddRow("batch_1_a", "CASE-7", "d", "root", "0xt", 2,
		"sarah.chen@agency.gov", "Det. Sarah Chen", "Detective", "Major Crimes", time.Now())
	mock.ExpectQuery(`(?s)SELECT\s+id,.*\s+FROM\s+evidence_batches\s+WHERE\s+id\s*=\s*\$1`).
		WithArgs("batch_1_a").
		WillReturnRows(batchRows)

	fileRows := sqlmock.NewRows([]string{"id"}).
		AddRow("file_1_a").
		AddRow("file_1_b")
	mock.ExpectQuery(`SELECT\s+id\s+FROM\s+evidence_files\s+WHERE\s+batch_id\s*=\s*\$1\s+ORDER\s+BY\s+batch_index`).
		WithArgs("batch_1_a").
		WillReturnRows(fileRows)

	got, err := repo.GetByID(context.Background(), "batch_1_a")
	if err != nil {
		t.Fatalf("GetByID error: %v", err)
	}
	if got.MerkleRoot != "root" || len(got.FileIDs) != 2 || got.FileIDs[0] != "file_1_a" {
		t.Fatalf("unexpected batch: %+v", got)
	}
}

func TestGetByID_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`(?s)SELECT\s+id,.*\s+FROM\s+evidence_batches`).
		WithArgs("batch_0_missing").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), "batch_0_missing")
	if !errors.Is(err, common.ErrMetadataNotFound) {
		t.Fatalf("want common.ErrMetadataNotFound, got %v", err)
	}
}

func TestCreate_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`INSERT\s+INTO\s+evidence_batches`).
		WillReturnError(errors.New("db down"))

	err := repo.Create(context.Background(), &models.Batch{ID: "batch_1_a"})
	if err == nil || !regexp.MustCompile(`db error: .*db down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}
