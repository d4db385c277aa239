package service

import (
	"context"
	"encoding/json"

	"google.golang.org/grpc"
	"google.golang.org/grpc/encoding"
)

// jsonCodec lets the gRPC server exchange the same Go structs the HTTP
// gateway uses, without a protoc step: spec §4.8 calls Arrow Flight's
// internals out of scope, so this module stands in gRPC as the
// collaborator transport and keeps one message representation for both
// transports by registering JSON as a gRPC wire codec (clients select it
// with grpc.CallContentSubtype("json")).
type jsonCodec struct{}

func (jsonCodec) Marshal(v interface{}) ([]byte, error)      { return json.Marshal(v) }
func (jsonCodec) Unmarshal(data []byte, v interface{}) error { return json.Unmarshal(data, v) }
func (jsonCodec) Name() string                               { return "json" }

func init() {
	encoding.RegisterCodec(jsonCodec{})
}

// ListRequest is the empty input of the `list` action.
type ListRequest struct{}

// ServiceName is the gRPC service name clients dial against.
const ServiceName = "csrgraph.v1.CsrGraphService"

// ServiceDesc is hand-written in the shape protoc-gen-go-grpc would
// otherwise generate from a .proto file describing the same four RPCs.
var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*Service)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Create", Handler: createHandler},
		{MethodName: "List", Handler: listHandler},
		{MethodName: "Relabel", Handler: relabelHandler},
		{MethodName: "Compute", Handler: computeHandler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "csrgraph.proto",
}

// RegisterCsrGraphServiceServer attaches srv's four RPCs to an
// *grpc.Server under ServiceName.
func RegisterCsrGraphServiceServer(s *grpc.Server, srv *Service) {
	s.RegisterService(&ServiceDesc, srv)
}

func createHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CreateRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	s := srv.(*Service)
	if interceptor == nil {
		_, span := startSpan(ctx, "grpc.Create")
		defer span.End()
		res, err := s.Create(*in)
		return res, toGRPCStatus(err)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + ServiceName + "/Create"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		res, err := s.Create(*req.(*CreateRequest))
		return res, toGRPCStatus(err)
	}
	return interceptor(ctx, in, info, handler)
}

func listHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	s := srv.(*Service)
	if interceptor == nil {
		res := s.List()
		return &res, nil
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + ServiceName + "/List"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		res := s.List()
		return &res, nil
	}
	return interceptor(ctx, in, info, handler)
}

func relabelHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RelabelRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	s := srv.(*Service)
	if interceptor == nil {
		res, err := s.Relabel(*in)
		return res, toGRPCStatus(err)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + ServiceName + "/Relabel"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		res, err := s.Relabel(*req.(*RelabelRequest))
		return res, toGRPCStatus(err)
	}
	return interceptor(ctx, in, info, handler)
}

func computeHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ComputeRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	s := srv.(*Service)
	if interceptor == nil {
		_, span := startSpan(ctx, "grpc.Compute")
		defer span.End()
		res, err := s.Compute(*in)
		return res, toGRPCStatus(err)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + ServiceName + "/Compute"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		res, err := s.Compute(*req.(*ComputeRequest))
		return res, toGRPCStatus(err)
	}
	return interceptor(ctx, in, info, handler)
}
