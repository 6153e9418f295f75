// Package grpc exposes the custody services over gRPC. Authentication
// runs in a unary interceptor; handlers translate between wire messages
// and service types and map sentinel errors to status codes.
package grpc

import (
	"context"
	"net"

	"google.golang.org/grpc"

	"github.com/steveuniverseuwu/EvidenceShield8/internal/logging"
	pb "github.com/steveuniverseuwu/EvidenceShield8/internal/proto"
	"github.com/steveuniverseuwu/EvidenceShield8/internal/server/services"
)

type GRPCServer struct {
	pb.UnimplementedEvidenceShieldServiceServer
	address      string
	logger       logging.Logger
	users        *services.UserService
	evidence     *services.EvidenceService
	verification *services.VerificationService
	audit        *services.AuditService
	jwtSecret    []byte
}

func NewGRPCServer(address string, l logging.Logger, us *services.UserService, es *services.EvidenceService,
	vs *services.VerificationService, as *services.AuditService, secretKey string) (*GRPCServer, error) {
	return &GRPCServer{
		address:      address,
		logger:       l.With("module", "grpc_server"),
		users:        us,
		evidence:     es,
		verification: vs,
		audit:        as,
		jwtSecret:    []byte(secretKey),
	}, nil
}

func (s *GRPCServer) Run(ctx context.Context) error {

	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.accessTokenInterceptor))

	pb.RegisterEvidenceShieldServiceServer(srv, s)

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", s.address)

	if err := srv.Serve(listen); err != nil {
		return err
	}

	return nil
}
