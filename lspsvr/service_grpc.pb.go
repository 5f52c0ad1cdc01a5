package lspsvr

import (
	context "context"

	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// AutoLangQueryClient is the client API for AutoLangQuery.
type AutoLangQueryClient interface {
	Completions(ctx context.Context, in *CompletionsRequest, opts ...grpc.CallOption) (*CompletionsResponse, error)
	FindReferences(ctx context.Context, in *FindReferencesRequest, opts ...grpc.CallOption) (*FindReferencesResponse, error)
	SymbolLocation(ctx context.Context, in *SymbolLocationRequest, opts ...grpc.CallOption) (*SymbolLocationResponse, error)
}

type autoLangQueryClient struct {
	cc grpc.ClientConnInterface
}

// NewAutoLangQueryClient returns a client bound to cc.
func NewAutoLangQueryClient(cc grpc.ClientConnInterface) AutoLangQueryClient {
	return &autoLangQueryClient{cc}
}

func (c *autoLangQueryClient) Completions(ctx context.Context, in *CompletionsRequest, opts ...grpc.CallOption) (*CompletionsResponse, error) {
	out := new(CompletionsResponse)
	if err := c.cc.Invoke(ctx, "/autolang.lspsvr.AutoLangQuery/Completions", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *autoLangQueryClient) FindReferences(ctx context.Context, in *FindReferencesRequest, opts ...grpc.CallOption) (*FindReferencesResponse, error) {
	out := new(FindReferencesResponse)
	if err := c.cc.Invoke(ctx, "/autolang.lspsvr.AutoLangQuery/FindReferences", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *autoLangQueryClient) SymbolLocation(ctx context.Context, in *SymbolLocationRequest, opts ...grpc.CallOption) (*SymbolLocationResponse, error) {
	out := new(SymbolLocationResponse)
	if err := c.cc.Invoke(ctx, "/autolang.lspsvr.AutoLangQuery/SymbolLocation", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// AutoLangQueryServer is the server API for AutoLangQuery.
type AutoLangQueryServer interface {
	Completions(context.Context, *CompletionsRequest) (*CompletionsResponse, error)
	FindReferences(context.Context, *FindReferencesRequest) (*FindReferencesResponse, error)
	SymbolLocation(context.Context, *SymbolLocationRequest) (*SymbolLocationResponse, error)
}

// UnimplementedAutoLangQueryServer can be embedded in a server
// implementation to satisfy forward-compatible method additions.
type UnimplementedAutoLangQueryServer struct{}

func (UnimplementedAutoLangQueryServer) Completions(context.Context, *CompletionsRequest) (*CompletionsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Completions not implemented")
}

func (UnimplementedAutoLangQueryServer) FindReferences(context.Context, *FindReferencesRequest) (*FindReferencesResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method FindReferences not implemented")
}

func (UnimplementedAutoLangQueryServer) SymbolLocation(context.Context, *SymbolLocationRequest) (*SymbolLocationResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SymbolLocation not implemented")
}

// RegisterAutoLangQueryServer registers srv with s.
func RegisterAutoLangQueryServer(s grpc.ServiceRegistrar, srv AutoLangQueryServer) {
	s.RegisterService(&autoLangQueryServiceDesc, srv)
}

func _AutoLangQuery_Completions_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CompletionsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AutoLangQueryServer).Completions(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/autolang.lspsvr.AutoLangQuery/Completions"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AutoLangQueryServer).Completions(ctx, req.(*CompletionsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _AutoLangQuery_FindReferences_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(FindReferencesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AutoLangQueryServer).FindReferences(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/autolang.lspsvr.AutoLangQuery/FindReferences"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AutoLangQueryServer).FindReferences(ctx, req.(*FindReferencesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _AutoLangQuery_SymbolLocation_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SymbolLocationRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AutoLangQueryServer).SymbolLocation(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/autolang.lspsvr.AutoLangQuery/SymbolLocation"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AutoLangQueryServer).SymbolLocation(ctx, req.(*SymbolLocationRequest))
	}
	return interceptor(ctx, in, info, handler)
}

var autoLangQueryServiceDesc = grpc.ServiceDesc{
	ServiceName: "autolang.lspsvr.AutoLangQuery",
	HandlerType: (*AutoLangQueryServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Completions", Handler: _AutoLangQuery_Completions_Handler},
		{MethodName: "FindReferences", Handler: _AutoLangQuery_FindReferences_Handler},
		{MethodName: "SymbolLocation", Handler: _AutoLangQuery_SymbolLocation_Handler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "lspsvr/service.proto",
}
