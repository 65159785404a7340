package clients

import (
	"context"
	"fmt"

	catalogrpc "catalog_service/internal/delivery/grpc"
	"catalog_service/internal/domain"

	"github.com/sirupsen/logrus"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// CatalogClient talks to the catalog gRPC API and returns domain records.
// Errors carry the same domain classification the server used.
type CatalogClient interface {
	ListCategories(ctx context.Context) ([]domain.Category, error)
	GetCategory(ctx context.Context, id int) (*domain.Category, error)
	SaveCategory(ctx context.Context, category *domain.Category) error
	UpdateCategory(ctx context.Context, category *domain.Category, id int) error
	DeleteCategory(ctx context.Context, id int) error

	ListProducts(ctx context.Context) ([]domain.Product, error)
	GetProduct(ctx context.Context, id int) (*domain.Product, error)
	SaveProduct(ctx context.Context, product *domain.Product) error
	UpdateProduct(ctx context.Context, product *domain.Product, id *int) error
	DeleteProduct(ctx context.Context, id int) error

	Close() error
}

type catalogGRPCClient struct {
	conn *grpc.ClientConn
	log  *logrus.Logger
}

func NewCatalogGRPCClient(target string, logger *logrus.Logger, opts ...grpc.DialOption) (CatalogClient, error) {
	logger.Infof("CatalogClient: Creating gRPC client for target: %s", target)
	dialOpts := append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	}, opts...)

	conn, err := grpc.NewClient(target, dialOpts...)
	if err != nil {
		logger.Errorf("CatalogClient: Failed to create client for %s: %v", target, err)
		return nil, fmt.Errorf("failed to connect to catalog service at %s: %w", target, err)
	}

	return &catalogGRPCClient{
		conn: conn,
		log:  logger,
	}, nil
}

func (c *catalogGRPCClient) Close() error {
	if c.conn != nil {
		c.log.Info("CatalogClient: Closing gRPC connection")
		return c.conn.Close()
	}
	return nil
}

func (c *catalogGRPCClient) invoke(ctx context.Context, method string, in, out interface{}) error {
	if err := c.conn.Invoke(ctx, catalogrpc.FullMethod(method), in, out); err != nil {
		c.log.Warnf("CatalogClient: %s failed: %v", method, err)
		return mapGrpcError(err)
	}
	return nil
}

// mapGrpcError turns a gRPC status back into a classified domain error.
func mapGrpcError(err error) error {
	st, ok := status.FromError(err)
	if !ok {
		return err
	}
	switch st.Code() {
	case codes.NotFound:
		return domain.NotFound(st.Message())
	case codes.InvalidArgument:
		return domain.BadRequest(st.Message())
	case codes.AlreadyExists:
		return domain.Conflict(st.Message())
	default:
		return fmt.Errorf("catalog service error (%s): %s", st.Code(), st.Message())
	}
}

func (c *catalogGRPCClient) ListCategories(ctx context.Context) ([]domain.Category, error) {
	out := &structpb.ListValue{}
	if err := c.invoke(ctx, catalogrpc.MethodListCategories, &emptypb.Empty{}, out); err != nil {
		return nil, err
	}
	return catalogrpc.FromList[domain.Category](out)
}

func (c *catalogGRPCClient) GetCategory(ctx context.Context, id int) (*domain.Category, error) {
	out := &structpb.Struct{}
	if err := c.invoke(ctx, catalogrpc.MethodGetCategory, wrapperspb.Int64(int64(id)), out); err != nil {
		return nil, err
	}
	var category domain.Category
	if err := catalogrpc.FromStruct(out, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

func (c *catalogGRPCClient) SaveCategory(ctx context.Context, category *domain.Category) error {
	in, err := catalogrpc.ToStruct(category)
	if err != nil {
		return err
	}
	out := &wrapperspb.Int64Value{}
	if err := c.invoke(ctx, catalogrpc.MethodSaveCategory, in, out); err != nil {
		return err
	}
	category.CatID = domain.IntPtr(int(out.GetValue()))
	return nil
}

func (c *catalogGRPCClient) UpdateCategory(ctx context.Context, category *domain.Category, id int) error {
	payload := *category
	payload.CatID = domain.IntPtr(id)
	in, err := catalogrpc.ToStruct(&payload)
	if err != nil {
		return err
	}
	return c.invoke(ctx, catalogrpc.MethodUpdateCategory, in, &emptypb.Empty{})
}

func (c *catalogGRPCClient) DeleteCategory(ctx context.Context, id int) error {
	return c.invoke(ctx, catalogrpc.MethodDeleteCategory, wrapperspb.Int64(int64(id)), &emptypb.Empty{})
}

func (c *catalogGRPCClient) ListProducts(ctx context.Context) ([]domain.Product, error) {
	out := &structpb.ListValue{}
	if err := c.invoke(ctx, catalogrpc.MethodListProducts, &emptypb.Empty{}, out); err != nil {
		return nil, err
	}
	return catalogrpc.FromList[domain.Product](out)
}

func (c *catalogGRPCClient) GetProduct(ctx context.Context, id int) (*domain.Product, error) {
	out := &structpb.Struct{}
	if err := c.invoke(ctx, catalogrpc.MethodGetProduct, wrapperspb.Int64(int64(id)), out); err != nil {
		return nil, err
	}
	var product domain.Product
	if err := catalogrpc.FromStruct(out, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (c *catalogGRPCClient) SaveProduct(ctx context.Context, product *domain.Product) error {
	in, err := catalogrpc.ToStruct(product)
	if err != nil {
		return err
	}
	out := &wrapperspb.Int64Value{}
	if err := c.invoke(ctx, catalogrpc.MethodSaveProduct, in, out); err != nil {
		return err
	}
	product.PrdID = domain.IntPtr(int(out.GetValue()))
	return nil
}

// UpdateProduct sends a nil id through unchanged so the server can reject it.
func (c *catalogGRPCClient) UpdateProduct(ctx context.Context, product *domain.Product, id *int) error {
	payload := *product
	payload.PrdID = id
	in, err := catalogrpc.ToStruct(&payload)
	if err != nil {
		return err
	}
	return c.invoke(ctx, catalogrpc.MethodUpdateProduct, in, &emptypb.Empty{})
}

func (c *catalogGRPCClient) DeleteProduct(ctx context.Context, id int) error {
	return c.invoke(ctx, catalogrpc.MethodDeleteProduct, wrapperspb.Int64(int64(id)), &emptypb.Empty{})
}
