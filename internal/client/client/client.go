package client

import (
	"context"

	pb "github.com/steveuniverseuwu/EvidenceShield8/internal/proto"
)

// Client is the transport surface the CLI works against. The concrete
// implementation is GRPCClient; tests substitute a stub.
type Client interface {
	Close() error
	Ping(ctx context.Context) error
	Login(ctx context.Context, email, password string) (*pb.LoginResponse, error)
	Upload(ctx context.Context, req *pb.UploadEvidenceRequest) (*pb.EvidenceRecord, error)
	UploadBatch(ctx context.Context, req *pb.UploadBatchRequest) (*pb.UploadBatchResponse, error)
	Verify(ctx context.Context, req *pb.VerifyEvidenceRequest) (*pb.VerifyEvidenceResponse, error)
	Share(ctx context.Context, fileID, recipientEmail string) (*pb.ShareEvidenceResponse, error)
	ShareBatch(ctx context.Context, batchID, recipientEmail string) (*pb.ShareBatchResponse, error)
	Download(ctx context.Context, fileID string) (*pb.DownloadEvidenceResponse, error)
	List(ctx context.Context) ([]*pb.EvidenceRecord, error)
	AuditTrail(ctx context.Context, kind, caseNumber string) ([]*pb.AuditEntry, error)
	ResetStorage(ctx context.Context) error
}
