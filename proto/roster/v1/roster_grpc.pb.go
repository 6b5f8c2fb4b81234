// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.5.1
// - protoc             (unknown)
// source: roster/v1/roster.proto

package rosterv1

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
	RosterService_CreateSession_FullMethodName  = "/roster.v1.RosterService/CreateSession"
	RosterService_AddEntry_FullMethodName       = "/roster.v1.RosterService/AddEntry"
	RosterService_RemoveEntry_FullMethodName    = "/roster.v1.RosterService/RemoveEntry"
	RosterService_ClearRoster_FullMethodName    = "/roster.v1.RosterService/ClearRoster"
	RosterService_SetPointsLimit_FullMethodName = "/roster.v1.RosterService/SetPointsLimit"
	RosterService_SetFaction_FullMethodName     = "/roster.v1.RosterService/SetFaction"
	RosterService_GetRoster_FullMethodName      = "/roster.v1.RosterService/GetRoster"
	RosterService_ExportRoster_FullMethodName   = "/roster.v1.RosterService/ExportRoster"
)

// RosterServiceClient is the client API for RosterService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// RosterService gestisce le sessioni di roster e la validazione
// della composizione dopo ogni mutazione.
type RosterServiceClient interface {
	CreateSession(ctx context.Context, in *CreateSessionRequest, opts ...grpc.CallOption) (*CreateSessionResponse, error)
	AddEntry(ctx context.Context, in *AddEntryRequest, opts ...grpc.CallOption) (*AddEntryResponse, error)
	RemoveEntry(ctx context.Context, in *RemoveEntryRequest, opts ...grpc.CallOption) (*RemoveEntryResponse, error)
	ClearRoster(ctx context.Context, in *ClearRosterRequest, opts ...grpc.CallOption) (*ClearRosterResponse, error)
	SetPointsLimit(ctx context.Context, in *SetPointsLimitRequest, opts ...grpc.CallOption) (*SetPointsLimitResponse, error)
	SetFaction(ctx context.Context, in *SetFactionRequest, opts ...grpc.CallOption) (*SetFactionResponse, error)
	GetRoster(ctx context.Context, in *GetRosterRequest, opts ...grpc.CallOption) (*GetRosterResponse, error)
	ExportRoster(ctx context.Context, in *ExportRosterRequest, opts ...grpc.CallOption) (*ExportRosterResponse, error)
}

type rosterServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewRosterServiceClient(cc grpc.ClientConnInterface) RosterServiceClient {
	return &rosterServiceClient{cc}
}

func (c *rosterServiceClient) CreateSession(ctx context.Context, in *CreateSessionRequest, opts ...grpc.CallOption) (*CreateSessionResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CreateSessionResponse)
	err := c.cc.Invoke(ctx, RosterService_CreateSession_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *rosterServiceClient) AddEntry(ctx context.Context, in *AddEntryRequest, opts ...grpc.CallOption) (*AddEntryResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(AddEntryResponse)
	err := c.cc.Invoke(ctx, RosterService_AddEntry_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *rosterServiceClient) RemoveEntry(ctx context.Context, in *RemoveEntryRequest, opts ...grpc.CallOption) (*RemoveEntryResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(RemoveEntryResponse)
	err := c.cc.Invoke(ctx, RosterService_RemoveEntry_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *rosterServiceClient) ClearRoster(ctx context.Context, in *ClearRosterRequest, opts ...grpc.CallOption) (*ClearRosterResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ClearRosterResponse)
	err := c.cc.Invoke(ctx, RosterService_ClearRoster_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *rosterServiceClient) SetPointsLimit(ctx context.Context, in *SetPointsLimitRequest, opts ...grpc.CallOption) (*SetPointsLimitResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(SetPointsLimitResponse)
	err := c.cc.Invoke(ctx, RosterService_SetPointsLimit_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *rosterServiceClient) SetFaction(ctx context.Context, in *SetFactionRequest, opts ...grpc.CallOption) (*SetFactionResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(SetFactionResponse)
	err := c.cc.Invoke(ctx, RosterService_SetFaction_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *rosterServiceClient) GetRoster(ctx context.Context, in *GetRosterRequest, opts ...grpc.CallOption) (*GetRosterResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetRosterResponse)
	err := c.cc.Invoke(ctx, RosterService_GetRoster_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *rosterServiceClient) ExportRoster(ctx context.Context, in *ExportRosterRequest, opts ...grpc.CallOption) (*ExportRosterResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ExportRosterResponse)
	err := c.cc.Invoke(ctx, RosterService_ExportRoster_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// RosterServiceServer is the server API for RosterService service.
// All implementations must embed UnimplementedRosterServiceServer
// for forward compatibility.
//
// RosterService gestisce le sessioni di roster e la validazione
// della composizione dopo ogni mutazione.
type RosterServiceServer interface {
	CreateSession(context.Context, *CreateSessionRequest) (*CreateSessionResponse, error)
	AddEntry(context.Context, *AddEntryRequest) (*AddEntryResponse, error)
	RemoveEntry(context.Context, *RemoveEntryRequest) (*RemoveEntryResponse, error)
	ClearRoster(context.Context, *ClearRosterRequest) (*ClearRosterResponse, error)
	SetPointsLimit(context.Context, *SetPointsLimitRequest) (*SetPointsLimitResponse, error)
	SetFaction(context.Context, *SetFactionRequest) (*SetFactionResponse, error)
	GetRoster(context.Context, *GetRosterRequest) (*GetRosterResponse, error)
	ExportRoster(context.Context, *ExportRosterRequest) (*ExportRosterResponse, error)
	mustEmbedUnimplementedRosterServiceServer()
}

// UnimplementedRosterServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedRosterServiceServer struct{}

func (UnimplementedRosterServiceServer) CreateSession(context.Context, *CreateSessionRequest) (*CreateSessionResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CreateSession not implemented")
}
func (UnimplementedRosterServiceServer) AddEntry(context.Context, *AddEntryRequest) (*AddEntryResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method AddEntry not implemented")
}
func (UnimplementedRosterServiceServer) RemoveEntry(context.Context, *RemoveEntryRequest) (*RemoveEntryResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RemoveEntry not implemented")
}
func (UnimplementedRosterServiceServer) ClearRoster(context.Context, *ClearRosterRequest) (*ClearRosterResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ClearRoster not implemented")
}
func (UnimplementedRosterServiceServer) SetPointsLimit(context.Context, *SetPointsLimitRequest) (*SetPointsLimitResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SetPointsLimit not implemented")
}
func (UnimplementedRosterServiceServer) SetFaction(context.Context, *SetFactionRequest) (*SetFactionResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SetFaction not implemented")
}
func (UnimplementedRosterServiceServer) GetRoster(context.Context, *GetRosterRequest) (*GetRosterResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetRoster not implemented")
}
func (UnimplementedRosterServiceServer) ExportRoster(context.Context, *ExportRosterRequest) (*ExportRosterResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ExportRoster not implemented")
}
func (UnimplementedRosterServiceServer) mustEmbedUnimplementedRosterServiceServer() {}
func (UnimplementedRosterServiceServer) testEmbeddedByValue()                       {}

// UnsafeRosterServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to RosterServiceServer will
// result in compilation errors.
type UnsafeRosterServiceServer interface {
	mustEmbedUnimplementedRosterServiceServer()
}

func RegisterRosterServiceServer(s grpc.ServiceRegistrar, srv RosterServiceServer) {
	// If the following call pancis, it indicates UnimplementedRosterServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&RosterService_ServiceDesc, srv)
}

func _RosterService_CreateSession_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CreateSessionRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RosterServiceServer).CreateSession(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: RosterService_CreateSession_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(RosterServiceServer).CreateSession(ctx, req.(*CreateSessionRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _RosterService_AddEntry_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(AddEntryRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RosterServiceServer).AddEntry(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: RosterService_AddEntry_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(RosterServiceServer).AddEntry(ctx, req.(*AddEntryRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _RosterService_RemoveEntry_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RemoveEntryRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RosterServiceServer).RemoveEntry(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: RosterService_RemoveEntry_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(RosterServiceServer).RemoveEntry(ctx, req.(*RemoveEntryRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _RosterService_ClearRoster_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ClearRosterRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RosterServiceServer).ClearRoster(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: RosterService_ClearRoster_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(RosterServiceServer).ClearRoster(ctx, req.(*ClearRosterRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _RosterService_SetPointsLimit_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SetPointsLimitRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RosterServiceServer).SetPointsLimit(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: RosterService_SetPointsLimit_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(RosterServiceServer).SetPointsLimit(ctx, req.(*SetPointsLimitRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _RosterService_SetFaction_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SetFactionRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RosterServiceServer).SetFaction(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: RosterService_SetFaction_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(RosterServiceServer).SetFaction(ctx, req.(*SetFactionRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _RosterService_GetRoster_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetRosterRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RosterServiceServer).GetRoster(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: RosterService_GetRoster_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(RosterServiceServer).GetRoster(ctx, req.(*GetRosterRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _RosterService_ExportRoster_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ExportRosterRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RosterServiceServer).ExportRoster(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: RosterService_ExportRoster_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(RosterServiceServer).ExportRoster(ctx, req.(*ExportRosterRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// RosterService_ServiceDesc is the grpc.ServiceDesc for RosterService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var RosterService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "roster.v1.RosterService",
	HandlerType: (*RosterServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "CreateSession",
			Handler:    _RosterService_CreateSession_Handler,
		},
		{
			MethodName: "AddEntry",
			Handler:    _RosterService_AddEntry_Handler,
		},
		{
			MethodName: "RemoveEntry",
			Handler:    _RosterService_RemoveEntry_Handler,
		},
		{
			MethodName: "ClearRoster",
			Handler:    _RosterService_ClearRoster_Handler,
		},
		{
			MethodName: "SetPointsLimit",
			Handler:    _RosterService_SetPointsLimit_Handler,
		},
		{
			MethodName: "SetFaction",
			Handler:    _RosterService_SetFaction_Handler,
		},
		{
			MethodName: "GetRoster",
			Handler:    _RosterService_GetRoster_Handler,
		},
		{
			MethodName: "ExportRoster",
			Handler:    _RosterService_ExportRoster_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "roster/v1/roster.proto",
}
