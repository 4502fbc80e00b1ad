// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.6.2
// - protoc             (unknown)
// source: smartswap/admin/v1/admin.proto

package adminv1

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
	AdminService_AddReserve_FullMethodName           = "/smartswap.admin.v1.AdminService/AddReserve"
	AdminService_SetConversionFee_FullMethodName     = "/smartswap.admin.v1.AdminService/SetConversionFee"
	AdminService_AcceptTokenOwnership_FullMethodName = "/smartswap.admin.v1.AdminService/AcceptTokenOwnership"
	AdminService_RebuildProjections_FullMethodName   = "/smartswap.admin.v1.AdminService/RebuildProjections"
	AdminService_GetEventLogInfo_FullMethodName      = "/smartswap.admin.v1.AdminService/GetEventLogInfo"
	AdminService_VerifyIntegrity_FullMethodName      = "/smartswap.admin.v1.AdminService/VerifyIntegrity"
)

// AdminServiceClient is the client API for AdminService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// AdminService covers governance operations and operational maintenance.
// Governance requests flow through the same ordered engine input as
// everything else; maintenance operations act on storage directly.
type AdminServiceClient interface {
	// AddReserve configures a reserve while the engine is inactive.
	AddReserve(ctx context.Context, in *AddReserveRequest, opts ...grpc.CallOption) (*AddReserveResponse, error)
	// SetConversionFee updates the fee charged on conversions.
	SetConversionFee(ctx context.Context, in *SetConversionFeeRequest, opts ...grpc.CallOption) (*SetConversionFeeResponse, error)
	// AcceptTokenOwnership completes the activation handshake.
	AcceptTokenOwnership(ctx context.Context, in *AcceptTokenOwnershipRequest, opts ...grpc.CallOption) (*AcceptTokenOwnershipResponse, error)
	// RebuildProjections truncates and replays all read models from the
	// event log.
	RebuildProjections(ctx context.Context, in *RebuildProjectionsRequest, opts ...grpc.CallOption) (*RebuildProjectionsResponse, error)
	// GetEventLogInfo reports the durable log's high-water mark.
	GetEventLogInfo(ctx context.Context, in *GetEventLogInfoRequest, opts ...grpc.CallOption) (*GetEventLogInfoResponse, error)
	// VerifyIntegrity checks the hash chain and the reserve weight bound.
	VerifyIntegrity(ctx context.Context, in *VerifyIntegrityRequest, opts ...grpc.CallOption) (*VerifyIntegrityResponse, error)
}

type adminServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewAdminServiceClient(cc grpc.ClientConnInterface) AdminServiceClient {
	return &adminServiceClient{cc}
}

func (c *adminServiceClient) AddReserve(ctx context.Context, in *AddReserveRequest, opts ...grpc.CallOption) (*AddReserveResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(AddReserveResponse)
	err := c.cc.Invoke(ctx, AdminService_AddReserve_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *adminServiceClient) SetConversionFee(ctx context.Context, in *SetConversionFeeRequest, opts ...grpc.CallOption) (*SetConversionFeeResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(SetConversionFeeResponse)
	err := c.cc.Invoke(ctx, AdminService_SetConversionFee_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *adminServiceClient) AcceptTokenOwnership(ctx context.Context, in *AcceptTokenOwnershipRequest, opts ...grpc.CallOption) (*AcceptTokenOwnershipResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(AcceptTokenOwnershipResponse)
	err := c.cc.Invoke(ctx, AdminService_AcceptTokenOwnership_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *adminServiceClient) RebuildProjections(ctx context.Context, in *RebuildProjectionsRequest, opts ...grpc.CallOption) (*RebuildProjectionsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(RebuildProjectionsResponse)
	err := c.cc.Invoke(ctx, AdminService_RebuildProjections_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *adminServiceClient) GetEventLogInfo(ctx context.Context, in *GetEventLogInfoRequest, opts ...grpc.CallOption) (*GetEventLogInfoResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetEventLogInfoResponse)
	err := c.cc.Invoke(ctx, AdminService_GetEventLogInfo_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *adminServiceClient) VerifyIntegrity(ctx context.Context, in *VerifyIntegrityRequest, opts ...grpc.CallOption) (*VerifyIntegrityResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(VerifyIntegrityResponse)
	err := c.cc.Invoke(ctx, AdminService_VerifyIntegrity_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// AdminServiceServer is the server API for AdminService service.
// All implementations must embed UnimplementedAdminServiceServer
// for forward compatibility.
//
// AdminService covers governance operations and operational maintenance.
// Governance requests flow through the same ordered engine input as
// everything else; maintenance operations act on storage directly.
type AdminServiceServer interface {
	// AddReserve configures a reserve while the engine is inactive.
	AddReserve(context.Context, *AddReserveRequest) (*AddReserveResponse, error)
	// SetConversionFee updates the fee charged on conversions.
	SetConversionFee(context.Context, *SetConversionFeeRequest) (*SetConversionFeeResponse, error)
	// AcceptTokenOwnership completes the activation handshake.
	AcceptTokenOwnership(context.Context, *AcceptTokenOwnershipRequest) (*AcceptTokenOwnershipResponse, error)
	// RebuildProjections truncates and replays all read models from the
	// event log.
	RebuildProjections(context.Context, *RebuildProjectionsRequest) (*RebuildProjectionsResponse, error)
	// GetEventLogInfo reports the durable log's high-water mark.
	GetEventLogInfo(context.Context, *GetEventLogInfoRequest) (*GetEventLogInfoResponse, error)
	// VerifyIntegrity checks the hash chain and the reserve weight bound.
	VerifyIntegrity(context.Context, *VerifyIntegrityRequest) (*VerifyIntegrityResponse, error)
	mustEmbedUnimplementedAdminServiceServer()
}

// UnimplementedAdminServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedAdminServiceServer struct{}

func (UnimplementedAdminServiceServer) AddReserve(context.Context, *AddReserveRequest) (*AddReserveResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method AddReserve not implemented")
}
func (UnimplementedAdminServiceServer) SetConversionFee(context.Context, *SetConversionFeeRequest) (*SetConversionFeeResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method SetConversionFee not implemented")
}
func (UnimplementedAdminServiceServer) AcceptTokenOwnership(context.Context, *AcceptTokenOwnershipRequest) (*AcceptTokenOwnershipResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method AcceptTokenOwnership not implemented")
}
func (UnimplementedAdminServiceServer) RebuildProjections(context.Context, *RebuildProjectionsRequest) (*RebuildProjectionsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method RebuildProjections not implemented")
}
func (UnimplementedAdminServiceServer) GetEventLogInfo(context.Context, *GetEventLogInfoRequest) (*GetEventLogInfoResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetEventLogInfo not implemented")
}
func (UnimplementedAdminServiceServer) VerifyIntegrity(context.Context, *VerifyIntegrityRequest) (*VerifyIntegrityResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method VerifyIntegrity not implemented")
}
func (UnimplementedAdminServiceServer) mustEmbedUnimplementedAdminServiceServer() {}
func (UnimplementedAdminServiceServer) testEmbeddedByValue()                      {}

// UnsafeAdminServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to AdminServiceServer will
// result in compilation errors.
type UnsafeAdminServiceServer interface {
	mustEmbedUnimplementedAdminServiceServer()
}

func RegisterAdminServiceServer(s grpc.ServiceRegistrar, srv AdminServiceServer) {
	// If the following call panics, it indicates UnimplementedAdminServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&AdminService_ServiceDesc, srv)
}

func _AdminService_AddReserve_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(AddReserveRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AdminServiceServer).AddReserve(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AdminService_AddReserve_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AdminServiceServer).AddReserve(ctx, req.(*AddReserveRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _AdminService_SetConversionFee_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SetConversionFeeRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AdminServiceServer).SetConversionFee(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AdminService_SetConversionFee_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AdminServiceServer).SetConversionFee(ctx, req.(*SetConversionFeeRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _AdminService_AcceptTokenOwnership_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(AcceptTokenOwnershipRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AdminServiceServer).AcceptTokenOwnership(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AdminService_AcceptTokenOwnership_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AdminServiceServer).AcceptTokenOwnership(ctx, req.(*AcceptTokenOwnershipRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _AdminService_RebuildProjections_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RebuildProjectionsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AdminServiceServer).RebuildProjections(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AdminService_RebuildProjections_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AdminServiceServer).RebuildProjections(ctx, req.(*RebuildProjectionsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _AdminService_GetEventLogInfo_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetEventLogInfoRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AdminServiceServer).GetEventLogInfo(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AdminService_GetEventLogInfo_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AdminServiceServer).GetEventLogInfo(ctx, req.(*GetEventLogInfoRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _AdminService_VerifyIntegrity_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(VerifyIntegrityRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AdminServiceServer).VerifyIntegrity(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AdminService_VerifyIntegrity_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AdminServiceServer).VerifyIntegrity(ctx, req.(*VerifyIntegrityRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// AdminService_ServiceDesc is the grpc.ServiceDesc for AdminService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var AdminService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "smartswap.admin.v1.AdminService",
	HandlerType: (*AdminServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "AddReserve",
			Handler:    _AdminService_AddReserve_Handler,
		},
		{
			MethodName: "SetConversionFee",
			Handler:    _AdminService_SetConversionFee_Handler,
		},
		{
			MethodName: "AcceptTokenOwnership",
			Handler:    _AdminService_AcceptTokenOwnership_Handler,
		},
		{
			MethodName: "RebuildProjections",
			Handler:    _AdminService_RebuildProjections_Handler,
		},
		{
			MethodName: "GetEventLogInfo",
			Handler:    _AdminService_GetEventLogInfo_Handler,
		},
		{
			MethodName: "VerifyIntegrity",
			Handler:    _AdminService_VerifyIntegrity_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "smartswap/admin/v1/admin.proto",
}
