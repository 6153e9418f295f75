package grpc

import (
	"context"
	"errors"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/steveuniverseuwu/EvidenceShield8/internal/common"
	pb "github.com/steveuniverseuwu/EvidenceShield8/internal/proto"
	"github.com/steveuniverseuwu/EvidenceShield8/internal/server/auth"
	"github.com/steveuniverseuwu/EvidenceShield8/internal/server/models"
)

type ctxKey string

const actorKey ctxKey = "actor"

// openMethods need no access token.
var openMethods = map[string]bool{
	pb.EvidenceShieldService_Ping_FullMethodName:  true,
	pb.EvidenceShieldService_Login_FullMethodName: true,
}

// ActorFromContext returns the authenticated actor placed into the
// context by the interceptor.
func ActorFromContext(ctx context.Context) (models.Actor, bool) {
	actor, ok := ctx.Value(actorKey).(models.Actor)
	return actor, ok
}

func (s *GRPCServer) accessTokenInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {

	if !openMethods[info.FullMethod] {

		var accessToken string
		if md, ok := metadata.FromIncomingContext(ctx); ok {
			values := md.Get(common.AccessTokenHeaderName)
			if len(values) > 0 {
				accessToken = values[0]
			}
		}
		if len(accessToken) == 0 {
			return nil, status.Error(codes.Unauthenticated, "missing token")
		}

		actor, err := auth.GetActorFromToken(accessToken, s.jwtSecret)
		if err != nil {
			if errors.Is(err, common.ErrTokenExpired) {
				return nil, status.Error(codes.Unauthenticated, "token expired")
			}
			return nil, status.Error(codes.Unauthenticated, "invalid token")
		}

		ctx = context.WithValue(ctx, actorKey, actor)
	}

	return handler(ctx, req)
}
