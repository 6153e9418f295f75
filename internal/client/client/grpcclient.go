package client

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/steveuniverseuwu/EvidenceShield8/internal/common"
	pb "github.com/steveuniverseuwu/EvidenceShield8/internal/proto"
)

// GRPCClient wraps the generated client, holding the access token
// received at login and attaching it to every outgoing call.
type GRPCClient struct {
	endpointURL string
	conn        *grpc.ClientConn
	client      pb.EvidenceShieldServiceClient
	accessToken string
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Delete(common.AccessTokenHeaderName)
	md.Set(common.AccessTokenHeaderName, token)

	return metadata.NewOutgoingContext(ctx, md)
}

func (s *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply interface{},
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	if s.accessToken != "" {
		ctx = withAccessToken(ctx, s.accessToken)
	}
	return invoker(ctx, method, req, reply, cc, opts...)
}

func NewEvidenceShieldClientService(endpointURL string) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL}
	if err := c.InitGRPCClient(); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) InitGRPCClient() error {

	conn, err := grpc.NewClient(s.endpointURL,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(s.accessTokenInterceptor))
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = pb.NewEvidenceShieldServiceClient(conn)
	return nil
}

func (s *GRPCClient) Close() error {
	return s.conn.Close()
}

// mapError turns transport-level failures into package sentinels the
// CLI can branch on; everything else passes through.
func (s *GRPCClient) mapError(err error) error {
	st, ok := status.FromError(err)
	if !ok {
		return err
	}
	switch st.Code() {
	case codes.Unavailable:
		return ErrUnavailable
	case codes.Unauthenticated:
		return ErrUnauthorized
	default:
		return err
	}
}

func (s *GRPCClient) Ping(ctx context.Context) error {

	resp, err := s.client.Ping(ctx, &pb.PingRequest{})
	if err != nil {
		return s.mapError(err)
	}
	if resp.Status != "OK" {
		return ErrUnavailable
	}
	return nil
}

func (s *GRPCClient) Login(ctx context.Context, email, password string) (*pb.LoginResponse, error) {

	resp, err := s.client.Login(ctx, &pb.LoginRequest{Email: email, Password: password})
	if err != nil {
		return nil, s.mapError(err)
	}

	s.accessToken = resp.AccessToken
	return resp, nil
}

func (s *GRPCClient) Upload(ctx context.Context, req *pb.UploadEvidenceRequest) (*pb.EvidenceRecord, error) {

	resp, err := s.client.UploadEvidence(ctx, req)
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.Record, nil
}

func (s *GRPCClient) UploadBatch(ctx context.Context, req *pb.UploadBatchRequest) (*pb.UploadBatchResponse, error) {

	resp, err := s.client.UploadBatch(ctx, req)
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp, nil
}

func (s *GRPCClient) Verify(ctx context.Context, req *pb.VerifyEvidenceRequest) (*pb.VerifyEvidenceResponse, error) {

	resp, err := s.client.VerifyEvidence(ctx, req)
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp, nil
}

func (s *GRPCClient) Share(ctx context.Context, fileID, recipientEmail string) (*pb.ShareEvidenceResponse, error) {

	resp, err := s.client.ShareEvidence(ctx, &pb.ShareEvidenceRequest{FileId: fileID, RecipientEmail: recipientEmail})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp, nil
}

func (s *GRPCClient) ShareBatch(ctx context.Context, batchID, recipientEmail string) (*pb.ShareBatchResponse, error) {

	resp, err := s.client.ShareBatch(ctx, &pb.ShareBatchRequest{BatchId: batchID, RecipientEmail: recipientEmail})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp, nil
}

func (s *GRPCClient) Download(ctx context.Context, fileID string) (*pb.DownloadEvidenceResponse, error) {

	resp, err := s.client.DownloadEvidence(ctx, &pb.DownloadEvidenceRequest{FileId: fileID})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp, nil
}

func (s *GRPCClient) List(ctx context.Context) ([]*pb.EvidenceRecord, error) {

	resp, err := s.client.ListEvidence(ctx, &pb.ListEvidenceRequest{})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.Records, nil
}

func (s *GRPCClient) AuditTrail(ctx context.Context, kind, caseNumber string) ([]*pb.AuditEntry, error) {

	resp, err := s.client.GetAuditTrail(ctx, &pb.GetAuditTrailRequest{Kind: kind, CaseNumber: caseNumber})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.Events, nil
}

func (s *GRPCClient) ResetStorage(ctx context.Context) error {

	_, err := s.client.ResetStorage(ctx, &pb.ResetStorageRequest{})
	if err != nil {
		return s.mapError(err)
	}
	return nil
}
