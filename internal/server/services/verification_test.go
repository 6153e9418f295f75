package services

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/steveuniverseuwu/EvidenceShield8/internal/common"
	"github.com/steveuniverseuwu/EvidenceShield8/internal/ledger"
	"github.com/steveuniverseuwu/EvidenceShield8/internal/server/models"
)

func newVerificationService(db *sql.DB, m *fakeRepoManager, blobs *fakeBlobStore) *VerificationService {
	auditSvc := NewAuditService(db, m, nopLogger{})
	return NewVerificationService(db, m, blobs, RecordKeyring{}, auditSvc)
}

// uploadFixture runs a real upload so verification sees a consistent
// record, proof and ciphertext blob.
func uploadFixture(t *testing.T, db *sql.DB, mock sqlmock.Sqlmock, m *fakeRepoManager,
	blobs *fakeBlobStore, data []byte) *models.EvidenceFile {
	t.Helper()
	mock.ExpectBegin()
	mock.ExpectCommit()

	s := newEvidenceService(db, m, blobs)
	file, err := s.Upload(context.Background(), testActor, &UploadRequest{
		CaseNumber: "CASE-2024-042", FileName: "report.pdf", MimeType: "application/pdf", Data: data,
	})
	if err != nil {
		t.Fatalf("Upload error: %v", err)
	}
	m.e.byID[file.ID] = file
	m.e.byProof[file.ProofID] = file
	m.p.byID[file.ProofID] = m.p.created[len(m.p.created)-1]
	return file
}

func TestVerify_RemoteVerified(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()

	m := newFakeManager()
	blobs := newFakeBlobStore()
	file := uploadFixture(t, db, mock, m, blobs, []byte("untouched content"))

	s := newVerificationService(db, m, blobs)
	res, err := s.Verify(context.Background(), testActor, &VerifyRequest{
		ProofID: file.ProofID, Mode: models.ModeRemote,
	})
	if err != nil {
		t.Fatalf("Verify error: %v", err)
	}
	if res.Outcome != models.OutcomeVerified {
		t.Fatalf("want verified, got %s (%s)", res.Outcome, res.Details)
	}
	if res.ComputedHash != res.StoredHash {
		t.Errorf("hash mismatch on verified outcome")
	}
	if !ledger.ValidToken(res.CommitToken) {
		t.Errorf("invalid verification token")
	}

	last := m.a.appended[len(m.a.appended)-1]
	if last.Kind != models.KindVerify || last.Outcome != models.OutcomeVerified {
		t.Errorf("verification not audited: %+v", last)
	}
	if last.VerificationMode != models.ModeRemote {
		t.Errorf("mode not recorded")
	}
	if last.ProofID != file.ProofID {
		t.Errorf("audit entry lost the proof id: %q", last.ProofID)
	}
	if !last.RecordedAt.Equal(res.VerifiedAt) {
		t.Errorf("audit timestamp %v differs from verification time %v", last.RecordedAt, res.VerifiedAt)
	}
}

func TestVerify_LocalMatchesRemote(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()

	data := []byte("same bytes either way")
	m := newFakeManager()
	blobs := newFakeBlobStore()
	file := uploadFixture(t, db, mock, m, blobs, data)

	s := newVerificationService(db, m, blobs)

	remote, err := s.Verify(context.Background(), testActor, &VerifyRequest{
		FileID: file.ID, Mode: models.ModeRemote,
	})
	if err != nil {
		t.Fatalf("remote Verify error: %v", err)
	}
	local, err := s.Verify(context.Background(), testActor, &VerifyRequest{
		FileID: file.ID, Mode: models.ModeLocal, LocalData: data, LocalFileName: "copy.pdf",
	})
	if err != nil {
		t.Fatalf("local Verify error: %v", err)
	}

	if remote.Outcome != models.OutcomeVerified || local.Outcome != models.OutcomeVerified {
		t.Fatalf("expected both modes verified, got %s / %s", remote.Outcome, local.Outcome)
	}
	if remote.ComputedHash != local.ComputedHash {
		t.Errorf("modes disagree on the content hash")
	}
}

func TestVerify_LocalTampered(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()

	m := newFakeManager()
	blobs := newFakeBlobStore()
	file := uploadFixture(t, db, mock, m, blobs, []byte("original"))

	s := newVerificationService(db, m, blobs)
	res, err := s.Verify(context.Background(), testActor, &VerifyRequest{
		FileID: file.ID, Mode: models.ModeLocal, LocalData: []byte("edited"), LocalFileName: "original.pdf",
	})
	if err != nil {
		t.Fatalf("Verify error: %v", err)
	}
	if res.Outcome != models.OutcomeTampered {
		t.Fatalf("want tampered, got %s", res.Outcome)
	}
	if res.ComputedHash == res.StoredHash {
		t.Errorf("hashes equal on tampered outcome")
	}
}

func TestVerify_CorruptedBlobInconclusive(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()

	m := newFakeManager()
	blobs := newFakeBlobStore()
	file := uploadFixture(t, db, mock, m, blobs, []byte("original"))

	// Flip bytes in the stored ciphertext. GCM authentication fails,
	// so the comparison cannot run: inconclusive, not tampered.
	blobs.objects[file.StoragePath] = []byte("garbage")

	s := newVerificationService(db, m, blobs)
	res, err := s.Verify(context.Background(), testActor, &VerifyRequest{
		FileID: file.ID, Mode: models.ModeRemote,
	})
	if err != nil {
		t.Fatalf("Verify error: %v", err)
	}
	if res.Outcome != models.OutcomeInconclusive {
		t.Fatalf("want inconclusive, got %s", res.Outcome)
	}
	if res.Details == "" {
		t.Errorf("inconclusive outcome missing cause")
	}
}

func TestVerify_MissingBlobInconclusive(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()

	m := newFakeManager()
	blobs := newFakeBlobStore()
	file := uploadFixture(t, db, mock, m, blobs, []byte("original"))
	delete(blobs.objects, file.StoragePath)

	s := newVerificationService(db, m, blobs)
	res, err := s.Verify(context.Background(), testActor, &VerifyRequest{
		FileID: file.ID, Mode: models.ModeRemote,
	})
	if err != nil {
		t.Fatalf("Verify error: %v", err)
	}
	if res.Outcome != models.OutcomeInconclusive {
		t.Fatalf("want inconclusive, got %s", res.Outcome)
	}
}

func TestVerify_UnknownProof(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	m := newFakeManager()
	s := newVerificationService(db, m, newFakeBlobStore())
	_, err := s.Verify(context.Background(), testActor, &VerifyRequest{
		ProofID: "ZKP-0-nonexistent", Mode: models.ModeRemote,
	})
	if !errors.Is(err, common.ErrProofNotFound) {
		t.Fatalf("want ErrProofNotFound, got %v", err)
	}
}

func TestVerify_StrangerForbidden(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()

	m := newFakeManager()
	blobs := newFakeBlobStore()
	file := uploadFixture(t, db, mock, m, blobs, []byte("original"))

	s := newVerificationService(db, m, blobs)
	stranger := models.Actor{Email: "lisa.wang@agency.gov"}
	_, err := s.Verify(context.Background(), stranger, &VerifyRequest{
		FileID: file.ID, Mode: models.ModeRemote,
	})
	if !errors.Is(err, common.ErrForbidden) {
		t.Fatalf("want ErrForbidden, got %v", err)
	}
}

func TestVerify_AuditFailureFailsVerification(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()

	m := newFakeManager()
	blobs := newFakeBlobStore()
	file := uploadFixture(t, db, mock, m, blobs, []byte("original"))
	m.a.appendErr = errBoom{}

	s := newVerificationService(db, m, blobs)
	_, err := s.Verify(context.Background(), testActor, &VerifyRequest{
		FileID: file.ID, Mode: models.ModeRemote,
	})
	if err == nil {
		t.Fatal("expected error when the audit write fails")
	}
}
