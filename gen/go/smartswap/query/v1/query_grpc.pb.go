// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.6.2
// - protoc             (unknown)
// source: smartswap/query/v1/query.proto

package queryv1

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.64.0 or later.
const _ = grpc.SupportPackageIsVersion9

const (
	QueryService_GetReserves_FullMethodName         = "/smartswap.query.v1.QueryService/GetReserves"
	QueryService_GetReserve_FullMethodName          = "/smartswap.query.v1.QueryService/GetReserve"
	QueryService_GetEngineStatus_FullMethodName     = "/smartswap.query.v1.QueryService/GetEngineStatus"
	QueryService_GetReturn_FullMethodName           = "/smartswap.query.v1.QueryService/GetReturn"
	QueryService_ListConversions_FullMethodName     = "/smartswap.query.v1.QueryService/ListConversions"
	QueryService_ListLiquidityEvents_FullMethodName = "/smartswap.query.v1.QueryService/ListLiquidityEvents"
)

// QueryServiceClient is the client API for QueryService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// QueryService serves read-only state from the Postgres projections and
// live pricing quotes from the engine. All 256-bit amounts ride as
// decimal strings.
type QueryServiceClient interface {
	// GetReserves returns every configured reserve with its projected balance.
	GetReserves(ctx context.Context, in *GetReservesRequest, opts ...grpc.CallOption) (*GetReservesResponse, error)
	// GetReserve returns one reserve by token address.
	GetReserve(ctx context.Context, in *GetReserveRequest, opts ...grpc.CallOption) (*GetReserveResponse, error)
	// GetEngineStatus returns the projected fee, activation state and
	// projection watermark.
	GetEngineStatus(ctx context.Context, in *GetEngineStatusRequest, opts ...grpc.CallOption) (*GetEngineStatusResponse, error)
	// GetReturn quotes the expected output and fee for a conversion
	// without executing it.
	GetReturn(ctx context.Context, in *GetReturnRequest, opts ...grpc.CallOption) (*GetReturnResponse, error)
	// ListConversions returns executed conversions, newest first.
	ListConversions(ctx context.Context, in *ListConversionsRequest, opts ...grpc.CallOption) (*ListConversionsResponse, error)
	// ListLiquidityEvents returns liquidity operation legs, newest first.
	ListLiquidityEvents(ctx context.Context, in *ListLiquidityEventsRequest, opts ...grpc.CallOption) (*ListLiquidityEventsResponse, error)
}

type queryServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewQueryServiceClient(cc grpc.ClientConnInterface) QueryServiceClient {
	return &queryServiceClient{cc}
}

func (c *queryServiceClient) GetReserves(ctx context.Context, in *GetReservesRequest, opts ...grpc.CallOption) (*GetReservesResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetReservesResponse)
	err := c.cc.Invoke(ctx, QueryService_GetReserves_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryServiceClient) GetReserve(ctx context.Context, in *GetReserveRequest, opts ...grpc.CallOption) (*GetReserveResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetReserveResponse)
	err := c.cc.Invoke(ctx, QueryService_GetReserve_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryServiceClient) GetEngineStatus(ctx context.Context, in *GetEngineStatusRequest, opts ...grpc.CallOption) (*GetEngineStatusResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetEngineStatusResponse)
	err := c.cc.Invoke(ctx, QueryService_GetEngineStatus_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryServiceClient) GetReturn(ctx context.Context, in *GetReturnRequest, opts ...grpc.CallOption) (*GetReturnResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetReturnResponse)
	err := c.cc.Invoke(ctx, QueryService_GetReturn_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryServiceClient) ListConversions(ctx context.Context, in *ListConversionsRequest, opts ...grpc.CallOption) (*ListConversionsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListConversionsResponse)
	err := c.cc.Invoke(ctx, QueryService_ListConversions_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryServiceClient) ListLiquidityEvents(ctx context.Context, in *ListLiquidityEventsRequest, opts ...grpc.CallOption) (*ListLiquidityEventsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListLiquidityEventsResponse)
	err := c.cc.Invoke(ctx, QueryService_ListLiquidityEvents_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// QueryServiceServer is the server API for QueryService service.
// All implementations must embed UnimplementedQueryServiceServer
// for forward compatibility.
//
// QueryService serves read-only state from the Postgres projections and
// live pricing quotes from the engine. All 256-bit amounts ride as
// decimal strings.
type QueryServiceServer interface {
	// GetReserves returns every configured reserve with its projected balance.
	GetReserves(context.Context, *GetReservesRequest) (*GetReservesResponse, error)
	// GetReserve returns one reserve by token address.
	GetReserve(context.Context, *GetReserveRequest) (*GetReserveResponse, error)
	// GetEngineStatus returns the projected fee, activation state and
	// projection watermark.
	GetEngineStatus(context.Context, *GetEngineStatusRequest) (*GetEngineStatusResponse, error)
	// GetReturn quotes the expected output and fee for a conversion
	// without executing it.
	GetReturn(context.Context, *GetReturnRequest) (*GetReturnResponse, error)
	// ListConversions returns executed conversions, newest first.
	ListConversions(context.Context, *ListConversionsRequest) (*ListConversionsResponse, error)
	// ListLiquidityEvents returns liquidity operation legs, newest first.
	ListLiquidityEvents(context.Context, *ListLiquidityEventsRequest) (*ListLiquidityEventsResponse, error)
	mustEmbedUnimplementedQueryServiceServer()
}

// UnimplementedQueryServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedQueryServiceServer struct{}

func (UnimplementedQueryServiceServer) GetReserves(context.Context, *GetReservesRequest) (*GetReservesResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetReserves not implemented")
}
func (UnimplementedQueryServiceServer) GetReserve(context.Context, *GetReserveRequest) (*GetReserveResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetReserve not implemented")
}
func (UnimplementedQueryServiceServer) GetEngineStatus(context.Context, *GetEngineStatusRequest) (*GetEngineStatusResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetEngineStatus not implemented")
}
func (UnimplementedQueryServiceServer) GetReturn(context.Context, *GetReturnRequest) (*GetReturnResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetReturn not implemented")
}
func (UnimplementedQueryServiceServer) ListConversions(context.Context, *ListConversionsRequest) (*ListConversionsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListConversions not implemented")
}
func (UnimplementedQueryServiceServer) ListLiquidityEvents(context.Context, *ListLiquidityEventsRequest) (*ListLiquidityEventsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListLiquidityEvents not implemented")
}
func (UnimplementedQueryServiceServer) mustEmbedUnimplementedQueryServiceServer() {}
func (UnimplementedQueryServiceServer) testEmbeddedByValue()                      {}

// UnsafeQueryServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to QueryServiceServer will
// result in compilation errors.
type UnsafeQueryServiceServer interface {
	mustEmbedUnimplementedQueryServiceServer()
}

func RegisterQueryServiceServer(s grpc.ServiceRegistrar, srv QueryServiceServer) {
	// If the following call panics, it indicates UnimplementedQueryServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&QueryService_ServiceDesc, srv)
}

func _QueryService_GetReserves_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetReservesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(QueryServiceServer).GetReserves(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: QueryService_GetReserves_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(QueryServiceServer).GetReserves(ctx, req.(*GetReservesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _QueryService_GetReserve_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetReserveRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(QueryServiceServer).GetReserve(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: QueryService_GetReserve_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(QueryServiceServer).GetReserve(ctx, req.(*GetReserveRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _QueryService_GetEngineStatus_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetEngineStatusRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(QueryServiceServer).GetEngineStatus(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: QueryService_GetEngineStatus_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(QueryServiceServer).GetEngineStatus(ctx, req.(*GetEngineStatusRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _QueryService_GetReturn_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetReturnRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(QueryServiceServer).GetReturn(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: QueryService_GetReturn_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(QueryServiceServer).GetReturn(ctx, req.(*GetReturnRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _QueryService_ListConversions_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListConversionsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(QueryServiceServer).ListConversions(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: QueryService_ListConversions_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(QueryServiceServer).ListConversions(ctx, req.(*ListConversionsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _QueryService_ListLiquidityEvents_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListLiquidityEventsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(QueryServiceServer).ListLiquidityEvents(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: QueryService_ListLiquidityEvents_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(QueryServiceServer).ListLiquidityEvents(ctx, req.(*ListLiquidityEventsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// QueryService_ServiceDesc is the grpc.ServiceDesc for QueryService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var QueryService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "smartswap.query.v1.QueryService",
	HandlerType: (*QueryServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "GetReserves",
			Handler:    _QueryService_GetReserves_Handler,
		},
		{
			MethodName: "GetReserve",
			Handler:    _QueryService_GetReserve_Handler,
		},
		{
			MethodName: "GetEngineStatus",
			Handler:    _QueryService_GetEngineStatus_Handler,
		},
		{
			MethodName: "GetReturn",
			Handler:    _QueryService_GetReturn_Handler,
		},
		{
			MethodName: "ListConversions",
			Handler:    _QueryService_ListConversions_Handler,
		},
		{
			MethodName: "ListLiquidityEvents",
			Handler:    _QueryService_ListLiquidityEvents_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "smartswap/query/v1/query.proto",
}
