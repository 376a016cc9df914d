package grpc_server

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// ContentService is described by hand over well-known types, so no
// generated code is needed on either side.
const (
	ContentServiceName      = "courseadmin.v1.ContentService"
	getCourseContentFullRPC = "/" + ContentServiceName + "/GetCourseContent"
)

type ContentServiceServer interface {
	GetCourseContent(ctx context.Context, slug *wrapperspb.StringValue) (*structpb.Struct, error)
}

var ContentServiceDesc = grpc.ServiceDesc{
	ServiceName: ContentServiceName,
	HandlerType: (*ContentServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "GetCourseContent", Handler: getCourseContentHandler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: contentProtoFile,
}

func RegisterContentServiceServer(s grpc.ServiceRegistrar, srv ContentServiceServer) {
	s.RegisterService(&ContentServiceDesc, srv)
}

func getCourseContentHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(wrapperspb.StringValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ContentServiceServer).GetCourseContent(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: getCourseContentFullRPC}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ContentServiceServer).GetCourseContent(ctx, req.(*wrapperspb.StringValue))
	}
	return interceptor(ctx, in, info, handler)
}

type ContentServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewContentServiceClient(cc grpc.ClientConnInterface) *ContentServiceClient {
	return &ContentServiceClient{cc: cc}
}

func (c *ContentServiceClient) GetCourseContent(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, getCourseContentFullRPC, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
