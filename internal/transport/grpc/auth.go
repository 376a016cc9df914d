package grpc_server

import (
	"context"
	"strings"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// AccessValidator resolves an access token to the admin id it was issued for.
type AccessValidator interface {
	ValidateAccess(token string) (string, error)
}

type userIDKey struct{}

// UserID returns the admin id set by the auth interceptor.
func UserID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userIDKey{}).(string)
	return id, ok
}

// authInterceptor requires "authorization: Bearer <access token>" on every
// unary call except health checks.
func authInterceptor(auth AccessValidator) grpc.UnaryServerInterceptor {
	healthPrefix := "/" + healthpb.Health_ServiceDesc.ServiceName + "/"
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		if strings.HasPrefix(info.FullMethod, healthPrefix) {
			return handler(ctx, req)
		}

		md, _ := metadata.FromIncomingContext(ctx)
		values := md.Get("authorization")
		if len(values) == 0 {
			return nil, status.Error(codes.Unauthenticated, "authorization metadata is required")
		}
		parts := strings.Fields(values[0])
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return nil, status.Error(codes.Unauthenticated, "invalid authorization format")
		}
		userID, err := auth.ValidateAccess(parts[1])
		if err != nil {
			return nil, status.Error(codes.Unauthenticated, "invalid or expired token")
		}
		return handler(context.WithValue(ctx, userIDKey{}, userID), req)
	}
}
