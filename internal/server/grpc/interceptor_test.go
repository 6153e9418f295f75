package grpc

import (
	"context"
	"testing"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/steveuniverseuwu/EvidenceShield8/internal/common"
	pb "github.com/steveuniverseuwu/EvidenceShield8/internal/proto"
	"github.com/steveuniverseuwu/EvidenceShield8/internal/server/auth"
	"github.com/steveuniverseuwu/EvidenceShield8/internal/server/models"
)

// helper to build server
func newTestServer(secret string) *GRPCServer {
	return &GRPCServer{
		logger:    nopLogger{},
		jwtSecret: []byte(secret),
	}
}

func TestInterceptor_OpenMethod_AllowsWithoutToken(t *testing.T) {
	s := newTestServer("secret")

	ctx := context.Background()
	info := &grpc.UnaryServerInfo{FullMethod: pb.EvidenceShieldService_Login_FullMethodName}
	handlerCalled := false

	h := func(ctx context.Context, req interface{}) (interface{}, error) {
		handlerCalled = true
		return "ok", nil
	}

	resp, err := s.accessTokenInterceptor(ctx, nil, info, h)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !handlerCalled {
		t.Fatal("handler was not called")
	}
	if resp != "ok" {
		t.Fatalf("unexpected handler resp: %v", resp)
	}
}

func TestInterceptor_Protected_MissingToken(t *testing.T) {
	s := newTestServer("secret")

	ctx := context.Background()
	info := &grpc.UnaryServerInfo{FullMethod: pb.EvidenceShieldService_UploadEvidence_FullMethodName}

	h := func(ctx context.Context, req interface{}) (interface{}, error) {
		t.Fatal("handler should not be called when token missing")
		return nil, nil
	}

	_, err := s.accessTokenInterceptor(ctx, nil, info, h)
	if err == nil {
		t.Fatal("expected error")
	}
	if status.Code(err) != codes.Unauthenticated {
		t.Fatalf("expected Unauthenticated, got %v", status.Code(err))
	}
	if status.Convert(err).Message() != "missing token" {
		t.Fatalf("expected 'missing token', got %q", status.Convert(err).Message())
	}
}

func TestInterceptor_Protected_InvalidToken(t *testing.T) {
	s := newTestServer("secret")

	md := metadata.New(map[string]string{
		common.AccessTokenHeaderName: "not-a-valid-jwt",
	})
	ctx := metadata.NewIncomingContext(context.Background(), md)
	info := &grpc.UnaryServerInfo{FullMethod: pb.EvidenceShieldService_DownloadEvidence_FullMethodName}

	h := func(ctx context.Context, req interface{}) (interface{}, error) {
		t.Fatal("handler should not be called for invalid token")
		return nil, nil
	}

	_, err := s.accessTokenInterceptor(ctx, nil, info, h)
	if err == nil {
		t.Fatal("expected error")
	}
	if status.Code(err) != codes.Unauthenticated {
		t.Fatalf("expected Unauthenticated, got %v", status.Code(err))
	}
}

func TestInterceptor_Protected_ExpiredToken(t *testing.T) {
	s := newTestServer("secret")

	actor := models.Actor{Email: "sarah.chen@agency.gov"}
	token, err := auth.GenerateToken(actor, []byte("secret"), -time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	md := metadata.New(map[string]string{common.AccessTokenHeaderName: token})
	ctx := metadata.NewIncomingContext(context.Background(), md)
	info := &grpc.UnaryServerInfo{FullMethod: pb.EvidenceShieldService_ListEvidence_FullMethodName}

	h := func(ctx context.Context, req interface{}) (interface{}, error) {
		t.Fatal("handler should not be called for expired token")
		return nil, nil
	}

	_, err = s.accessTokenInterceptor(ctx, nil, info, h)
	if status.Code(err) != codes.Unauthenticated {
		t.Fatalf("expected Unauthenticated, got %v", status.Code(err))
	}
	if status.Convert(err).Message() != "token expired" {
		t.Fatalf("expected 'token expired', got %q", status.Convert(err).Message())
	}
}

func TestInterceptor_Protected_ValidTokenInjectsActor(t *testing.T) {
	s := newTestServer("secret")

	actor := models.Actor{Email: "sarah.chen@agency.gov", Name: "Sarah Chen", Role: "Detective"}
	token, err := auth.GenerateToken(actor, []byte("secret"), time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	md := metadata.New(map[string]string{common.AccessTokenHeaderName: token})
	ctx := metadata.NewIncomingContext(context.Background(), md)
	info := &grpc.UnaryServerInfo{FullMethod: pb.EvidenceShieldService_VerifyEvidence_FullMethodName}

	h := func(ctx context.Context, req interface{}) (interface{}, error) {
		got, ok := ActorFromContext(ctx)
		if !ok {
			t.Fatal("actor missing from handler context")
		}
		if got != actor {
			t.Fatalf("actor mismatch: %+v", got)
		}
		return nil, nil
	}

	if _, err := s.accessTokenInterceptor(ctx, nil, info, h); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
