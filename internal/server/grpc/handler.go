package grpc

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/steveuniverseuwu/EvidenceShield8/internal/common"
	pb "github.com/steveuniverseuwu/EvidenceShield8/internal/proto"
	"github.com/steveuniverseuwu/EvidenceShield8/internal/server/models"
	"github.com/steveuniverseuwu/EvidenceShield8/internal/server/services"
)

// statusFromError maps service sentinels to gRPC status codes. Unknown
// errors collapse to Internal without leaking their message.
func statusFromError(err error) error {
	switch {
	case errors.Is(err, common.ErrorUnauthorized),
		errors.Is(err, common.ErrInvalidToken),
		errors.Is(err, common.ErrTokenExpired):
		return status.Error(codes.Unauthenticated, "unauthorized")
	case errors.Is(err, common.ErrForbidden):
		return status.Error(codes.PermissionDenied, "access denied")
	case errors.Is(err, common.ErrorNotFound),
		errors.Is(err, common.ErrProofNotFound),
		errors.Is(err, common.ErrMetadataNotFound),
		errors.Is(err, common.ErrBlobNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, common.ErrEmptyBatch),
		errors.Is(err, common.ErrBatchTooLarge):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, common.ErrDecryptionFailed):
		return status.Error(codes.FailedPrecondition, "decryption failed")
	default:
		return status.Error(codes.Internal, "internal error")
	}
}

func requireActor(ctx context.Context) (models.Actor, error) {
	actor, ok := ActorFromContext(ctx)
	if !ok {
		return models.Actor{}, status.Error(codes.Unauthenticated, "missing actor")
	}
	return actor, nil
}

func toRecord(f *models.EvidenceFile) *pb.EvidenceRecord {
	return &pb.EvidenceRecord{
		Id:              f.ID,
		CaseNumber:      f.CaseNumber,
		Description:     f.Description,
		FileName:        f.FileName,
		FileSize:        f.FileSize,
		FileType:        f.FileType,
		PlaintextHash:   f.PlaintextHash,
		Cid:             f.CID,
		ProofId:         f.ProofID,
		CommitToken:     f.CommitToken,
		BatchId:         f.BatchID,
		BatchIndex:      int32(f.BatchIndex),
		MerkleRoot:      f.MerkleRoot,
		UploadedBy:      f.UploadedBy,
		UploaderName:    f.UploaderName,
		UploaderRole:    f.UploaderRole,
		Department:      f.Department,
		SharedWith:      f.SharedWith,
		CreatedAtUnixMs: f.CreatedAt.UnixMilli(),
	}
}

func toAuditEntry(e *models.AuditEvent) *pb.AuditEntry {
	return &pb.AuditEntry{
		Id:               e.ID,
		Kind:             string(e.Kind),
		FileId:           e.FileID,
		FileName:         e.FileName,
		CaseNumber:       e.CaseNumber,
		BatchId:          e.BatchID,
		ProofId:          e.ProofID,
		ActorEmail:       e.Actor.Email,
		ActorName:        e.Actor.Name,
		ActorRole:        e.Actor.Role,
		CommitToken:      e.CommitToken,
		OriginalToken:    e.OriginalToken,
		MerkleRoot:       e.MerkleRoot,
		FileCount:        int32(e.FileCount),
		FileIds:          e.FileIDs,
		Outcome:          string(e.Outcome),
		VerificationMode: string(e.VerificationMode),
		LocalFileName:    e.LocalFileName,
		SharedWith:       e.SharedWith,
		Details:          e.Details,
		RecordedAtUnixMs: e.RecordedAt.UnixMilli(),
	}
}

func (s *GRPCServer) Ping(ctx context.Context, req *pb.PingRequest) (*pb.PingResponse, error) {
	return &pb.PingResponse{Status: "OK"}, nil
}

func (s *GRPCServer) Login(ctx context.Context, req *pb.LoginRequest) (*pb.LoginResponse, error) {

	token, actor, err := s.users.Login(ctx, req.Email, req.Password)
	if err != nil {
		return nil, statusFromError(err)
	}

	s.logger.Info(ctx, "Login", "email", actor.Email)
	return &pb.LoginResponse{
		AccessToken: token,
		Email:       actor.Email,
		Name:        actor.Name,
		Role:        actor.Role,
	}, nil
}

func (s *GRPCServer) UploadEvidence(ctx context.Context, req *pb.UploadEvidenceRequest) (*pb.UploadEvidenceResponse, error) {

	actor, err := requireActor(ctx)
	if err != nil {
		return nil, err
	}
	if req.File == nil || len(req.File.Data) == 0 {
		return nil, status.Error(codes.InvalidArgument, "missing file content")
	}

	file, err := s.evidence.Upload(ctx, actor, &services.UploadRequest{
		CaseNumber:  req.CaseNumber,
		Description: req.Description,
		FileName:    req.File.FileName,
		MimeType:    req.File.MimeType,
		Data:        req.File.Data,
	})
	if err != nil {
		s.logger.Error(ctx, "upload failed", "case", req.CaseNumber, "error", err)
		return nil, statusFromError(err)
	}

	s.logger.Info(ctx, "Evidence uploaded", "file_id", file.ID, "case", file.CaseNumber)
	return &pb.UploadEvidenceResponse{Record: toRecord(file)}, nil
}

func (s *GRPCServer) UploadBatch(ctx context.Context, req *pb.UploadBatchRequest) (*pb.UploadBatchResponse, error) {

	actor, err := requireActor(ctx)
	if err != nil {
		return nil, err
	}

	reqs := make([]*services.UploadRequest, 0, len(req.Files))
	for _, f := range req.Files {
		if f == nil || len(f.Data) == 0 {
			return nil, status.Error(codes.InvalidArgument, "missing file content")
		}
		reqs = append(reqs, &services.UploadRequest{
			Description: f.Description,
			FileName:    f.FileName,
			MimeType:    f.MimeType,
			Data:        f.Data,
		})
	}

	batch, files, err := s.evidence.UploadBatch(ctx, actor, req.CaseNumber, req.Description, reqs)
	if err != nil {
		s.logger.Error(ctx, "batch upload failed", "case", req.CaseNumber, "error", err)
		return nil, statusFromError(err)
	}

	records := make([]*pb.EvidenceRecord, len(files))
	for i, f := range files {
		records[i] = toRecord(f)
	}

	s.logger.Info(ctx, "Batch uploaded", "batch_id", batch.ID, "files", batch.FileCount)
	return &pb.UploadBatchResponse{
		BatchId:     batch.ID,
		MerkleRoot:  batch.MerkleRoot,
		CommitToken: batch.CommitToken,
		Records:     records,
	}, nil
}

func (s *GRPCServer) VerifyEvidence(ctx context.Context, req *pb.VerifyEvidenceRequest) (*pb.VerifyEvidenceResponse, error) {

	actor, err := requireActor(ctx)
	if err != nil {
		return nil, err
	}

	mode := models.VerificationMode(req.Mode)
	if mode == "" {
		mode = models.ModeRemote
	}

	res, err := s.verification.Verify(ctx, actor, &services.VerifyRequest{
		ProofID:       req.ProofId,
		FileID:        req.FileId,
		Mode:          mode,
		LocalData:     req.LocalData,
		LocalFileName: req.LocalFileName,
	})
	if err != nil {
		s.logger.Error(ctx, "verification failed", "proof_id", req.ProofId, "error", err)
		return nil, statusFromError(err)
	}

	s.logger.Info(ctx, "Verification complete", "proof_id", res.ProofID, "outcome", res.Outcome)
	return &pb.VerifyEvidenceResponse{
		Outcome:          string(res.Outcome),
		StoredHash:       res.StoredHash,
		ComputedHash:     res.ComputedHash,
		ProofId:          res.ProofID,
		FileId:           res.FileID,
		FileName:         res.FileName,
		Mode:             string(res.Mode),
		CommitToken:      res.CommitToken,
		Details:          res.Details,
		VerifiedAtUnixMs: res.VerifiedAt.UnixMilli(),
	}, nil
}

func (s *GRPCServer) ShareEvidence(ctx context.Context, req *pb.ShareEvidenceRequest) (*pb.ShareEvidenceResponse, error) {

	actor, err := requireActor(ctx)
	if err != nil {
		return nil, err
	}

	receipt, err := s.evidence.Share(ctx, actor, req.FileId, req.RecipientEmail)
	if err != nil {
		return nil, statusFromError(err)
	}

	s.logger.Info(ctx, "Evidence shared", "file_id", req.FileId, "with", req.RecipientEmail)
	return &pb.ShareEvidenceResponse{
		CommitToken:   receipt.CommitToken,
		OriginalToken: receipt.OriginalToken,
	}, nil
}

func (s *GRPCServer) ShareBatch(ctx context.Context, req *pb.ShareBatchRequest) (*pb.ShareBatchResponse, error) {

	actor, err := requireActor(ctx)
	if err != nil {
		return nil, err
	}

	receipt, err := s.evidence.ShareBatch(ctx, actor, req.BatchId, req.RecipientEmail)
	if err != nil {
		return nil, statusFromError(err)
	}

	s.logger.Info(ctx, "Batch shared", "batch_id", req.BatchId, "with", req.RecipientEmail)
	return &pb.ShareBatchResponse{
		CommitToken:   receipt.CommitToken,
		OriginalToken: receipt.OriginalToken,
		MerkleRoot:    receipt.MerkleRoot,
	}, nil
}

func (s *GRPCServer) DownloadEvidence(ctx context.Context, req *pb.DownloadEvidenceRequest) (*pb.DownloadEvidenceResponse, error) {

	actor, err := requireActor(ctx)
	if err != nil {
		return nil, err
	}

	res, err := s.evidence.Download(ctx, actor, req.FileId)
	if err != nil {
		return nil, statusFromError(err)
	}

	return &pb.DownloadEvidenceResponse{
		FileName:    res.FileName,
		MimeType:    res.MimeType,
		Data:        res.Data,
		CommitToken: res.CommitToken,
	}, nil
}

func (s *GRPCServer) ListEvidence(ctx context.Context, req *pb.ListEvidenceRequest) (*pb.ListEvidenceResponse, error) {

	actor, err := requireActor(ctx)
	if err != nil {
		return nil, err
	}

	files, err := s.evidence.List(ctx, actor)
	if err != nil {
		return nil, statusFromError(err)
	}

	records := make([]*pb.EvidenceRecord, len(files))
	for i, f := range files {
		records[i] = toRecord(f)
	}
	return &pb.ListEvidenceResponse{Records: records}, nil
}

func (s *GRPCServer) GetAuditTrail(ctx context.Context, req *pb.GetAuditTrailRequest) (*pb.GetAuditTrailResponse, error) {

	actor, err := requireActor(ctx)
	if err != nil {
		return nil, err
	}

	events, err := s.audit.Trail(ctx, actor, models.EventKind(req.Kind), req.CaseNumber)
	if err != nil {
		return nil, statusFromError(err)
	}

	entries := make([]*pb.AuditEntry, len(events))
	for i, e := range events {
		entries[i] = toAuditEntry(e)
	}
	return &pb.GetAuditTrailResponse{Events: entries}, nil
}

func (s *GRPCServer) ResetStorage(ctx context.Context, req *pb.ResetStorageRequest) (*pb.ResetStorageResponse, error) {

	actor, err := requireActor(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.evidence.Reset(ctx, actor); err != nil {
		s.logger.Error(ctx, "reset failed", "error", err)
		return nil, statusFromError(err)
	}

	s.logger.Warn(ctx, "Storage reset", "by", actor.Email)
	return &pb.ResetStorageResponse{Status: "OK"}, nil
}
