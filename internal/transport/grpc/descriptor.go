package grpc_server

import (
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protodesc"
	"google.golang.org/protobuf/reflect/protoregistry"
	"google.golang.org/protobuf/types/descriptorpb"
)

const contentProtoFile = "courseadmin/v1/content.proto"

// contentFileProto is the descriptor of the service as if compiled from
//
//	service ContentService {
//	  rpc GetCourseContent(google.protobuf.StringValue) returns (google.protobuf.Struct);
//	}
var contentFileProto = &descriptorpb.FileDescriptorProto{
	Name:    proto.String(contentProtoFile),
	Package: proto.String("courseadmin.v1"),
	Dependency: []string{
		"google/protobuf/struct.proto",
		"google/protobuf/wrappers.proto",
	},
	Service: []*descriptorpb.ServiceDescriptorProto{{
		Name: proto.String("ContentService"),
		Method: []*descriptorpb.MethodDescriptorProto{{
			Name:       proto.String("GetCourseContent"),
			InputType:  proto.String(".google.protobuf.StringValue"),
			OutputType: proto.String(".google.protobuf.Struct"),
		}},
	}},
	Syntax: proto.String("proto3"),
}

// Registered globally so server reflection can describe the service.
func init() {
	fd, err := protodesc.NewFile(contentFileProto, protoregistry.GlobalFiles)
	if err != nil {
		panic("courseadmin descriptor: " + err.Error())
	}
	if err := protoregistry.GlobalFiles.RegisterFile(fd); err != nil {
		panic("courseadmin descriptor: " + err.Error())
	}
}
