package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/steveuniverseuwu/EvidenceShield8/internal/common"
	"github.com/steveuniverseuwu/EvidenceShield8/internal/cryptox"
	"github.com/steveuniverseuwu/EvidenceShield8/internal/hashx"
	"github.com/steveuniverseuwu/EvidenceShield8/internal/ledger"
	"github.com/steveuniverseuwu/EvidenceShield8/internal/server/models"
	"github.com/steveuniverseuwu/EvidenceShield8/internal/server/repositories/repomanager"
	"github.com/steveuniverseuwu/EvidenceShield8/internal/server/storage"
)

// VerifyRequest identifies the file to check, by proof identifier or
// file identifier, and how to obtain the comparison bytes. In local
// mode the caller supplies the bytes; in remote mode the stored copy is
// fetched and decrypted.
type VerifyRequest struct {
	ProofID string
	FileID  string

	Mode          models.VerificationMode
	LocalData     []byte
	LocalFileName string
}

// VerificationResult is the verdict of one verification attempt. Both
// hashes are reported so a mismatch can be inspected; on an
// inconclusive outcome ComputedHash is empty and Details carries the
// cause.
type VerificationResult struct {
	ProofID      string
	FileID       string
	FileName     string
	Outcome      models.VerificationOutcome
	StoredHash   string
	ComputedHash string
	Mode         models.VerificationMode
	CommitToken  string
	Details      string
	VerifiedAt   time.Time
}

// VerificationService re-derives content hashes and compares them to
// the hash committed at upload time. Every attempt, whatever the
// verdict, is written to the audit trail before the result is returned;
// an unrecordable verification is a failed verification.
type VerificationService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	blobs       storage.BlobStore
	keyring     Keyring
	audit       *AuditService
}

func NewVerificationService(db *sql.DB, m repomanager.RepositoryManager, blobs storage.BlobStore,
	keyring Keyring, audit *AuditService) *VerificationService {
	return &VerificationService{
		db:          db,
		repomanager: m,
		blobs:       blobs,
		keyring:     keyring,
		audit:       audit,
	}
}

// Verify resolves the target file, obtains comparison bytes per the
// requested mode and renders a verdict. A verdict never depends on file
// name, size or type; only content bytes count. Retrieval and
// decryption failures in remote mode yield an inconclusive outcome, not
// a tamper verdict.
func (s *VerificationService) Verify(ctx context.Context, actor models.Actor, req *VerifyRequest) (*VerificationResult, error) {
	file, err := s.resolve(ctx, req)
	if err != nil {
		return nil, err
	}
	if !canAccess(actor, file) {
		return nil, common.ErrForbidden
	}

	proof, err := s.repomanager.Proofs(s.db).GetByID(ctx, file.ProofID)
	if err != nil {
		return nil, err
	}

	result := &VerificationResult{
		ProofID:    proof.ID,
		FileID:     file.ID,
		FileName:   file.FileName,
		StoredHash: proof.PlaintextHash,
		Mode:       req.Mode,
		VerifiedAt: time.Now(),
	}

	switch req.Mode {
	case models.ModeLocal:
		result.ComputedHash = hashx.Sum(req.LocalData)
	case models.ModeRemote:
		plaintext, err := s.fetchPlaintext(ctx, file)
		if err != nil {
			result.Outcome = models.OutcomeInconclusive
			result.Details = err.Error()
		} else {
			result.ComputedHash = hashx.Sum(plaintext)
		}
	default:
		return nil, fmt.Errorf("unknown verification mode %q", req.Mode)
	}

	if result.Outcome == "" {
		if hashx.Equal(result.StoredHash, result.ComputedHash) {
			result.Outcome = models.OutcomeVerified
		} else {
			result.Outcome = models.OutcomeTampered
		}
	}

	token, err := ledger.NewToken()
	if err != nil {
		return nil, err
	}
	result.CommitToken = token

	err = s.audit.record(ctx, s.db, &models.AuditEvent{
		Kind:             models.KindVerify,
		FileID:           file.ID,
		FileName:         file.FileName,
		CaseNumber:       file.CaseNumber,
		ProofID:          proof.ID,
		Actor:            actor,
		CommitToken:      token,
		OriginalToken:    file.CommitToken,
		Outcome:          result.Outcome,
		VerificationMode: req.Mode,
		LocalFileName:    req.LocalFileName,
		Details:          result.Details,
		RecordedAt:       result.VerifiedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to record verification: %w", err)
	}
	return result, nil
}

func (s *VerificationService) resolve(ctx context.Context, req *VerifyRequest) (*models.EvidenceFile, error) {
	repo := s.repomanager.Evidence(s.db)
	if req.ProofID != "" {
		file, err := repo.GetByProofID(ctx, req.ProofID)
		if errors.Is(err, common.ErrMetadataNotFound) {
			return nil, common.ErrProofNotFound
		}
		return file, err
	}
	if req.FileID != "" {
		return repo.GetByID(ctx, req.FileID)
	}
	return nil, common.ErrorNotFound
}

// fetchPlaintext downloads and decrypts the stored copy of file.
func (s *VerificationService) fetchPlaintext(ctx context.Context, file *models.EvidenceFile) ([]byte, error) {
	ciphertext, err := s.blobs.Get(ctx, file.StoragePath)
	if err != nil {
		return nil, err
	}
	passphrase, err := s.keyring.KeyFor(file)
	if err != nil {
		return nil, err
	}
	iv, salt, err := file.EncryptionMetadata().Params()
	if err != nil {
		return nil, err
	}
	return cryptox.Decrypt(ciphertext, iv, salt, passphrase)
}
