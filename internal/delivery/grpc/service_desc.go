package grpc

import (
	"context"

	gogrpc "google.golang.org/grpc"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// The catalog API is described entirely with protobuf well-known types, so
// the service descriptor is declared here rather than generated.
const ServiceName = "catalog.v1.CatalogService"

const (
	MethodListCategories = "ListCategories"
	MethodGetCategory    = "GetCategory"
	MethodSaveCategory   = "SaveCategory"
	MethodUpdateCategory = "UpdateCategory"
	MethodDeleteCategory = "DeleteCategory"
	MethodListProducts   = "ListProducts"
	MethodGetProduct     = "GetProduct"
	MethodSaveProduct    = "SaveProduct"
	MethodUpdateProduct  = "UpdateProduct"
	MethodDeleteProduct  = "DeleteProduct"
)

// FullMethod returns the wire name of a catalog RPC.
func FullMethod(method string) string {
	return "/" + ServiceName + "/" + method
}

type CatalogServiceServer interface {
	ListCategories(context.Context, *emptypb.Empty) (*structpb.ListValue, error)
	GetCategory(context.Context, *wrapperspb.Int64Value) (*structpb.Struct, error)
	SaveCategory(context.Context, *structpb.Struct) (*wrapperspb.Int64Value, error)
	UpdateCategory(context.Context, *structpb.Struct) (*emptypb.Empty, error)
	DeleteCategory(context.Context, *wrapperspb.Int64Value) (*emptypb.Empty, error)

	ListProducts(context.Context, *emptypb.Empty) (*structpb.ListValue, error)
	GetProduct(context.Context, *wrapperspb.Int64Value) (*structpb.Struct, error)
	SaveProduct(context.Context, *structpb.Struct) (*wrapperspb.Int64Value, error)
	UpdateProduct(context.Context, *structpb.Struct) (*emptypb.Empty, error)
	DeleteProduct(context.Context, *wrapperspb.Int64Value) (*emptypb.Empty, error)
}

var CatalogServiceDesc = gogrpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*CatalogServiceServer)(nil),
	Methods: []gogrpc.MethodDesc{
		unary(MethodListCategories, CatalogServiceServer.ListCategories),
		unary(MethodGetCategory, CatalogServiceServer.GetCategory),
		unary(MethodSaveCategory, CatalogServiceServer.SaveCategory),
		unary(MethodUpdateCategory, CatalogServiceServer.UpdateCategory),
		unary(MethodDeleteCategory, CatalogServiceServer.DeleteCategory),
		unary(MethodListProducts, CatalogServiceServer.ListProducts),
		unary(MethodGetProduct, CatalogServiceServer.GetProduct),
		unary(MethodSaveProduct, CatalogServiceServer.SaveProduct),
		unary(MethodUpdateProduct, CatalogServiceServer.UpdateProduct),
		unary(MethodDeleteProduct, CatalogServiceServer.DeleteProduct),
	},
	Streams: []gogrpc.StreamDesc{},
}

func RegisterCatalogServiceServer(s gogrpc.ServiceRegistrar, srv CatalogServiceServer) {
	s.RegisterService(&CatalogServiceDesc, srv)
}

// unary builds the method handler that generated code would otherwise emit.
func unary[Req any, PReq interface {
	*Req
	proto.Message
}, Resp proto.Message](
	name string,
	call func(CatalogServiceServer, context.Context, PReq) (Resp, error),
) gogrpc.MethodDesc {
	return gogrpc.MethodDesc{
		MethodName: name,
		Handler: func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor gogrpc.UnaryServerInterceptor) (interface{}, error) {
			in := PReq(new(Req))
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(CatalogServiceServer), ctx, in)
			}
			info := &gogrpc.UnaryServerInfo{
				Server:     srv,
				FullMethod: FullMethod(name),
			}
			handler := func(ctx context.Context, req interface{}) (interface{}, error) {
				return call(srv.(CatalogServiceServer), ctx, req.(PReq))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}
