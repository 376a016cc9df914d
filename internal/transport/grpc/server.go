package grpc_server

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/waste3d/course-admin/internal/domain"
	"github.com/waste3d/course-admin/internal/platform/logger"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

type ContentFetcher interface {
	Fetch(ctx context.Context, slug string) (*domain.CourseContent, error)
}

type ContentServer struct {
	content ContentFetcher
	log     *logger.Logger
}

func NewContentServer(content ContentFetcher, log *logger.Logger) *ContentServer {
	if log == nil {
		log = logger.Nop()
	}
	return &ContentServer{content: content, log: log}
}

func (s *ContentServer) GetCourseContent(ctx context.Context, req *wrapperspb.StringValue) (*structpb.Struct, error) {
	slug := strings.TrimSpace(req.GetValue())
	if slug == "" {
		return nil, status.Error(codes.InvalidArgument, "project slug is required")
	}

	content, err := s.content.Fetch(ctx, slug)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return nil, status.Error(codes.NotFound, "project not found")
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			return nil, status.FromContextError(err).Err()
		}
		s.log.Error("fetch course content failed", "slug", slug, "error", err)
		return nil, status.Error(codes.Internal, "database error")
	}

	out, err := EncodeCourseContent(content)
	if err != nil {
		return nil, status.Error(codes.Internal, "encode course content")
	}
	return out, nil
}

// EncodeCourseContent converts content to a Struct carrying the same
// fields the HTTP API serves.
func EncodeCourseContent(content *domain.CourseContent) (*structpb.Struct, error) {
	raw, err := json.Marshal(content)
	if err != nil {
		return nil, err
	}
	out := &structpb.Struct{}
	if err := protojson.Unmarshal(raw, out); err != nil {
		return nil, err
	}
	return out, nil
}

func DecodeCourseContent(s *structpb.Struct) (*domain.CourseContent, error) {
	raw, err := protojson.Marshal(s)
	if err != nil {
		return nil, err
	}
	var out domain.CourseContent
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// NewServer builds the gRPC server with the content service, the health
// service and reflection registered. Content calls need an access token
// accepted by auth.
func NewServer(content ContentFetcher, auth AccessValidator, log *logger.Logger) (*grpc.Server, *health.Server) {
	if log == nil {
		log = logger.Nop()
	}
	s := grpc.NewServer(grpc.ChainUnaryInterceptor(
		loggingInterceptor(log),
		authInterceptor(auth),
	))
	RegisterContentServiceServer(s, NewContentServer(content, log))

	hs := health.NewServer()
	hs.SetServingStatus(ContentServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(s, hs)

	reflection.Register(s)
	return s, hs
}

func loggingInterceptor(log *logger.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		start := time.Now()
		resp, err := handler(ctx, req)
		code := status.Code(err)
		kv := []interface{}{"method", info.FullMethod, "code", code.String(), "latency", time.Since(start)}
		if code == codes.Internal || code == codes.Unknown {
			log.Error("grpc call", kv...)
		} else {
			log.Debug("grpc call", kv...)
		}
		return resp, err
	}
}
