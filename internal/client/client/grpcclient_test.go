package client

import (
	"context"
	"errors"
	"testing"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/steveuniverseuwu/EvidenceShield8/internal/common"
)

func TestWithAccessToken_SetsMetadata(t *testing.T) {
	ctx := withAccessToken(context.Background(), "tok-123")

	md, ok := metadata.FromOutgoingContext(ctx)
	if !ok {
		t.Fatal("no outgoing metadata")
	}
	values := md.Get(common.AccessTokenHeaderName)
	if len(values) != 1 || values[0] != "tok-123" {
		t.Fatalf("unexpected token values: %v", values)
	}
}

func TestWithAccessToken_ReplacesExisting(t *testing.T) {
	ctx := metadata.NewOutgoingContext(context.Background(),
		metadata.Pairs(common.AccessTokenHeaderName, "stale"))
	ctx = withAccessToken(ctx, "fresh")

	md, _ := metadata.FromOutgoingContext(ctx)
	values := md.Get(common.AccessTokenHeaderName)
	if len(values) != 1 || values[0] != "fresh" {
		t.Fatalf("stale token not replaced: %v", values)
	}
}

func TestMapError(t *testing.T) {
	c := &GRPCClient{}

	if got := c.mapError(status.Error(codes.Unavailable, "down")); !errors.Is(got, ErrUnavailable) {
		t.Errorf("Unavailable not mapped: %v", got)
	}
	if got := c.mapError(status.Error(codes.Unauthenticated, "no")); !errors.Is(got, ErrUnauthorized) {
		t.Errorf("Unauthenticated not mapped: %v", got)
	}
	orig := status.Error(codes.NotFound, "missing")
	if got := c.mapError(orig); !errors.Is(got, orig) {
		t.Errorf("other codes should pass through: %v", got)
	}
}

func TestInitGRPCClient(t *testing.T) {
	c := &GRPCClient{endpointURL: "127.0.0.1:50051"}
	if err := c.InitGRPCClient(); err != nil {
		t.Fatalf("InitGRPCClient error: %v", err)
	}
	defer c.Close()
	if c.client == nil {
		t.Fatal("client not initialized")
	}
}
