package services

import (
	"context"
	"database/sql"
	"fmt"
	"slices"
	"time"

	"github.com/steveuniverseuwu/EvidenceShield8/internal/common"
	"github.com/steveuniverseuwu/EvidenceShield8/internal/cryptox"
	"github.com/steveuniverseuwu/EvidenceShield8/internal/dbx"
	"github.com/steveuniverseuwu/EvidenceShield8/internal/hashx"
	"github.com/steveuniverseuwu/EvidenceShield8/internal/ledger"
	"github.com/steveuniverseuwu/EvidenceShield8/internal/logging"
	"github.com/steveuniverseuwu/EvidenceShield8/internal/merkle"
	"github.com/steveuniverseuwu/EvidenceShield8/internal/server/models"
	"github.com/steveuniverseuwu/EvidenceShield8/internal/server/repositories/repomanager"
	"github.com/steveuniverseuwu/EvidenceShield8/internal/server/storage"
)

// UploadRequest carries one file to be taken into custody.
type UploadRequest struct {
	CaseNumber  string
	Description string
	FileName    string
	MimeType    string
	Data        []byte
}

// DownloadResult is a decrypted file handed back to an authorized
// actor, together with the token minted for the retrieval.
type DownloadResult struct {
	FileName    string
	MimeType    string
	Data        []byte
	CommitToken string
}

// ShareReceipt reports a completed share: the token minted for the
// share action and the token of the original custody action it chains
// back to.
type ShareReceipt struct {
	CommitToken   string
	OriginalToken string
	MerkleRoot    string
}

// EvidenceService implements the custody operations: taking files in
// (single and batched), sharing, retrieval and the administrative
// reset. Every state change mints its own commit token and lands in the
// audit trail atomically with the change itself.
type EvidenceService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	blobs       storage.BlobStore
	keyring     Keyring
	audit       *AuditService
	logger      logging.Logger
}

func NewEvidenceService(db *sql.DB, m repomanager.RepositoryManager, blobs storage.BlobStore,
	keyring Keyring, audit *AuditService, logger logging.Logger) *EvidenceService {
	return &EvidenceService{
		db:          db,
		repomanager: m,
		blobs:       blobs,
		keyring:     keyring,
		audit:       audit,
		logger:      logger,
	}
}

// canAccess reports whether the actor may read the file: the uploader
// always can, recipients after a share.
func canAccess(actor models.Actor, file *models.EvidenceFile) bool {
	return actor.Email == file.UploadedBy || slices.Contains(file.SharedWith, actor.Email)
}

// prepare hashes, encrypts and uploads one file, returning the fully
// populated record. The blob is in object storage when prepare returns;
// the caller owns cleanup if the surrounding transaction fails.
func (s *EvidenceService) prepare(ctx context.Context, actor models.Actor, user *models.User,
	req *UploadRequest) (*models.EvidenceFile, *models.Proof, error) {

	fileID, err := models.NewFileID()
	if err != nil {
		return nil, nil, err
	}
	proofID, err := models.NewProofID()
	if err != nil {
		return nil, nil, err
	}
	token, err := ledger.NewToken()
	if err != nil {
		return nil, nil, err
	}

	// The integrity hash covers the original bytes, never ciphertext.
	plaintextHash := hashx.Sum(req.Data)

	passphrase := s.keyring.MintKey(actor.Email, req.CaseNumber)
	enc, err := cryptox.Encrypt(req.Data, passphrase)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to encrypt %s: %w", req.FileName, err)
	}
	meta := cryptox.NewMetadata(enc, req.FileName, int64(len(req.Data)), req.MimeType)

	path := storage.ObjectKey(actor.Email, req.CaseNumber, fileID, req.FileName)
	if err := s.blobs.Put(ctx, path, enc.Ciphertext); err != nil {
		return nil, nil, err
	}

	now := time.Now()
	file := &models.EvidenceFile{
		ID:            fileID,
		CaseNumber:    req.CaseNumber,
		Description:   req.Description,
		FileName:      req.FileName,
		FileSize:      int64(len(req.Data)),
		FileType:      req.MimeType,
		PlaintextHash: plaintextHash,
		CID:           ledger.ContentCID(plaintextHash),
		ProofID:       proofID,
		CommitToken:   token,
		StoragePath:   path,
		IV:            meta.IV,
		Salt:          meta.Salt,
		EncryptionKey: passphrase,
		UploadedBy:    actor.Email,
		UploaderName:  actor.Name,
		UploaderRole:  actor.Role,
		Department:    user.Department,
		CreatedAt:     now,
	}
	proof := &models.Proof{
		ID:            proofID,
		PlaintextHash: plaintextHash,
		CaseNumber:    req.CaseNumber,
		UploadedBy:    actor.Email,
		Description:   req.Description,
		CreatedAt:     now,
	}
	return file, proof, nil
}

// Upload takes one file into custody: hash, mint a proof, encrypt,
// store the ciphertext, then persist the record, proof and audit entry
// in one transaction. A failed transaction removes the orphaned blob.
func (s *EvidenceService) Upload(ctx context.Context, actor models.Actor, req *UploadRequest) (*models.EvidenceFile, error) {
	user, err := s.repomanager.Users(s.db).GetByEmail(ctx, actor.Email)
	if err != nil {
		return nil, err
	}

	file, proof, err := s.prepare(ctx, actor, user, req)
	if err != nil {
		return nil, err
	}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.repomanager.Evidence(tx).Create(ctx, file); err != nil {
			return err
		}
		if err := s.repomanager.Proofs(tx).Create(ctx, proof); err != nil {
			return err
		}
		return s.audit.record(ctx, tx, &models.AuditEvent{
			Kind:        models.KindUpload,
			FileID:      file.ID,
			FileName:    file.FileName,
			CaseNumber:  file.CaseNumber,
			Actor:       actor,
			CommitToken: file.CommitToken,
			Details:     req.Description,
		})
	})
	if err != nil {
		s.discardBlobs(ctx, file.StoragePath)
		return nil, err
	}
	return file, nil
}

// UploadBatch takes up to common.MaxBatchSize files into custody as one
// unit. File order is preserved as Merkle leaf order, the whole batch
// shares a single commit token, and every record commits in one
// transaction or none do.
func (s *EvidenceService) UploadBatch(ctx context.Context, actor models.Actor, caseNumber, description string,
	reqs []*UploadRequest) (*models.Batch, []*models.EvidenceFile, error) {

	if len(reqs) == 0 {
		return nil, nil, common.ErrEmptyBatch
	}
	if len(reqs) > common.MaxBatchSize {
		return nil, nil, fmt.Errorf("%w: %d files, max %d", common.ErrBatchTooLarge, len(reqs), common.MaxBatchSize)
	}

	user, err := s.repomanager.Users(s.db).GetByEmail(ctx, actor.Email)
	if err != nil {
		return nil, nil, err
	}

	batchID, err := models.NewBatchID()
	if err != nil {
		return nil, nil, err
	}
	batchToken, err := ledger.NewToken()
	if err != nil {
		return nil, nil, err
	}

	files := make([]*models.EvidenceFile, 0, len(reqs))
	proofsToCreate := make([]*models.Proof, 0, len(reqs))
	leafHashes := make([]string, 0, len(reqs))
	var uploaded []string

	for i, req := range reqs {
		req.CaseNumber = caseNumber
		file, proof, err := s.prepare(ctx, actor, user, req)
		if err != nil {
			s.discardBlobs(ctx, uploaded...)
			return nil, nil, err
		}
		uploaded = append(uploaded, file.StoragePath)

		file.BatchID = batchID
		file.BatchIndex = i
		file.CommitToken = batchToken
		files = append(files, file)
		proofsToCreate = append(proofsToCreate, proof)
		leafHashes = append(leafHashes, file.PlaintextHash)
	}

	tree, err := merkle.Build(leafHashes)
	if err != nil {
		s.discardBlobs(ctx, uploaded...)
		return nil, nil, err
	}
	root := tree.RootHash()

	fileIDs := make([]string, len(files))
	for i, f := range files {
		f.MerkleRoot = root
		fileIDs[i] = f.ID
	}

	batch := &models.Batch{
		ID:           batchID,
		CaseNumber:   caseNumber,
		Description:  description,
		MerkleRoot:   root,
		CommitToken:  batchToken,
		FileCount:    len(files),
		FileIDs:      fileIDs,
		UploadedBy:   actor.Email,
		UploaderName: actor.Name,
		UploaderRole: actor.Role,
		Department:   user.Department,
		CreatedAt:    time.Now(),
	}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.repomanager.Batches(tx).Create(ctx, batch); err != nil {
			return err
		}
		for i, f := range files {
			if err := s.repomanager.Evidence(tx).Create(ctx, f); err != nil {
				return err
			}
			if err := s.repomanager.Proofs(tx).Create(ctx, proofsToCreate[i]); err != nil {
				return err
			}
		}
		return s.audit.record(ctx, tx, &models.AuditEvent{
			Kind:        models.KindBatchUpload,
			BatchID:     batchID,
			CaseNumber:  caseNumber,
			Actor:       actor,
			CommitToken: batchToken,
			MerkleRoot:  root,
			FileCount:   len(files),
			FileIDs:     fileIDs,
			Details:     description,
		})
	})
	if err != nil {
		s.discardBlobs(ctx, uploaded...)
		return nil, nil, err
	}
	return batch, files, nil
}

// Share grants a recipient read access to one file. Only the uploader
// may share. A fresh token is minted for the share, chained to the
// upload token through the audit entry.
func (s *EvidenceService) Share(ctx context.Context, actor models.Actor, fileID, recipientEmail string) (*ShareReceipt, error) {
	file, err := s.repomanager.Evidence(s.db).GetByID(ctx, fileID)
	if err != nil {
		return nil, err
	}
	if file.UploadedBy != actor.Email {
		return nil, common.ErrForbidden
	}
	if _, err := s.repomanager.Users(s.db).GetByEmail(ctx, recipientEmail); err != nil {
		return nil, err
	}

	token, err := ledger.NewToken()
	if err != nil {
		return nil, err
	}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.repomanager.Evidence(tx).AddShare(ctx, fileID, recipientEmail); err != nil {
			return err
		}
		return s.audit.record(ctx, tx, &models.AuditEvent{
			Kind:          models.KindShare,
			FileID:        file.ID,
			FileName:      file.FileName,
			CaseNumber:    file.CaseNumber,
			Actor:         actor,
			CommitToken:   token,
			OriginalToken: file.CommitToken,
			SharedWith:    recipientEmail,
		})
	})
	if err != nil {
		return nil, err
	}
	return &ShareReceipt{CommitToken: token, OriginalToken: file.CommitToken}, nil
}

// ShareBatch grants a recipient read access to every file of a batch.
// The Merkle root is recomputed from the stored leaf hashes at share
// time, so a diverged store surfaces here rather than silently
// re-attesting the original root.
func (s *EvidenceService) ShareBatch(ctx context.Context, actor models.Actor, batchID, recipientEmail string) (*ShareReceipt, error) {
	batch, err := s.repomanager.Batches(s.db).GetByID(ctx, batchID)
	if err != nil {
		return nil, err
	}
	if batch.UploadedBy != actor.Email {
		return nil, common.ErrForbidden
	}
	if _, err := s.repomanager.Users(s.db).GetByEmail(ctx, recipientEmail); err != nil {
		return nil, err
	}

	files, err := s.repomanager.Evidence(s.db).SelectByBatch(ctx, batchID)
	if err != nil {
		return nil, err
	}
	leafHashes := make([]string, len(files))
	for i, f := range files {
		leafHashes[i] = f.PlaintextHash
	}
	tree, err := merkle.Build(leafHashes)
	if err != nil {
		return nil, err
	}
	root := tree.RootHash()

	token, err := ledger.NewToken()
	if err != nil {
		return nil, err
	}

	fileIDs := make([]string, len(files))
	for i, f := range files {
		fileIDs[i] = f.ID
	}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		for _, f := range files {
			if err := s.repomanager.Evidence(tx).AddShare(ctx, f.ID, recipientEmail); err != nil {
				return err
			}
		}
		return s.audit.record(ctx, tx, &models.AuditEvent{
			Kind:          models.KindBatchShare,
			BatchID:       batchID,
			CaseNumber:    batch.CaseNumber,
			Actor:         actor,
			CommitToken:   token,
			OriginalToken: batch.CommitToken,
			MerkleRoot:    root,
			FileCount:     len(files),
			FileIDs:       fileIDs,
			SharedWith:    recipientEmail,
		})
	})
	if err != nil {
		return nil, err
	}
	return &ShareReceipt{CommitToken: token, OriginalToken: batch.CommitToken, MerkleRoot: root}, nil
}

// Download returns the decrypted plaintext to an authorized actor. The
// retrieval mints its own token and is logged best-effort: a log
// failure does not block the read.
func (s *EvidenceService) Download(ctx context.Context, actor models.Actor, fileID string) (*DownloadResult, error) {
	file, err := s.repomanager.Evidence(s.db).GetByID(ctx, fileID)
	if err != nil {
		return nil, err
	}
	if !canAccess(actor, file) {
		return nil, common.ErrForbidden
	}

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
	plaintext, err := cryptox.Decrypt(ciphertext, iv, salt, passphrase)
	if err != nil {
		return nil, err
	}

	token, err := ledger.NewToken()
	if err != nil {
		return nil, err
	}

	s.audit.RecordBestEffort(ctx, &models.AuditEvent{
		Kind:          models.KindDownload,
		FileID:        file.ID,
		FileName:      file.FileName,
		CaseNumber:    file.CaseNumber,
		Actor:         actor,
		CommitToken:   token,
		OriginalToken: file.CommitToken,
	})

	return &DownloadResult{
		FileName:    file.FileName,
		MimeType:    file.FileType,
		Data:        plaintext,
		CommitToken: token,
	}, nil
}

// List returns every file the actor can read: own uploads plus files
// shared with them, newest first.
func (s *EvidenceService) List(ctx context.Context, actor models.Actor) ([]*models.EvidenceFile, error) {
	return s.repomanager.Evidence(s.db).SelectAccessible(ctx, actor.Email)
}

// Reset wipes every blob, record, proof, batch and audit entry. Only
// the user table survives. Restricted to administrators.
func (s *EvidenceService) Reset(ctx context.Context, actor models.Actor) error {
	if !actor.IsAdmin() {
		return common.ErrForbidden
	}
	if err := s.blobs.DeleteAll(ctx); err != nil {
		return err
	}
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.repomanager.Audit(tx).DeleteAll(ctx); err != nil {
			return err
		}
		if err := s.repomanager.Proofs(tx).DeleteAll(ctx); err != nil {
			return err
		}
		if err := s.repomanager.Evidence(tx).DeleteAll(ctx); err != nil {
			return err
		}
		return s.repomanager.Batches(tx).DeleteAll(ctx)
	})
}

// discardBlobs removes orphaned ciphertext after a failed transaction.
// Failures are logged only; the original error is what the caller sees.
func (s *EvidenceService) discardBlobs(ctx context.Context, paths ...string) {
	for _, p := range paths {
		if err := s.blobs.Delete(ctx, p); err != nil {
			s.logger.Warn(ctx, "failed to remove orphaned blob", "path", p, "error", err)
		}
	}
}
