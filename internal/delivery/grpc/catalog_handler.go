package grpc

import (
	"context"

	"catalog_service/internal/domain"
	"catalog_service/internal/usecase"

	"github.com/sirupsen/logrus"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

type CatalogHandler struct {
	productUseCase  usecase.ProductUseCase
	categoryUseCase usecase.CategoryUseCase
	log             *logrus.Logger
}

var _ CatalogServiceServer = (*CatalogHandler)(nil)

func NewCatalogHandler(puc usecase.ProductUseCase, cuc usecase.CategoryUseCase, logger *logrus.Logger) *CatalogHandler {
	return &CatalogHandler{
		productUseCase:  puc,
		categoryUseCase: cuc,
		log:             logger,
	}
}

func idFrom(req *wrapperspb.Int64Value) *int {
	id := int(req.GetValue())
	return &id
}

func assignedID(id *int) *wrapperspb.Int64Value {
	if id == nil {
		return wrapperspb.Int64(0)
	}
	return wrapperspb.Int64(int64(*id))
}

func (h *CatalogHandler) ListCategories(ctx context.Context, _ *emptypb.Empty) (*structpb.ListValue, error) {
	categories, err := h.categoryUseCase.ListAll(ctx)
	if err != nil {
		h.log.Errorf("gRPC Handler: ListCategories use case error: %v", err)
		return nil, mapDomainErrorToGrpcStatus(err)
	}
	return h.encodeList(ToList(categories))
}

func (h *CatalogHandler) GetCategory(ctx context.Context, req *wrapperspb.Int64Value) (*structpb.Struct, error) {
	category, err := h.categoryUseCase.GetByID(ctx, idFrom(req))
	if err != nil {
		h.log.Warnf("gRPC Handler: GetCategory use case error for ID %d: %v", req.GetValue(), err)
		return nil, mapDomainErrorToGrpcStatus(err)
	}
	return h.encode(ToStruct(category))
}

func (h *CatalogHandler) SaveCategory(ctx context.Context, req *structpb.Struct) (*wrapperspb.Int64Value, error) {
	var category domain.Category
	if err := FromStruct(req, &category); err != nil {
		return nil, status.Error(codes.InvalidArgument, "Invalid category payload: "+err.Error())
	}
	if err := h.categoryUseCase.Save(ctx, &category); err != nil {
		h.log.Errorf("gRPC Handler: SaveCategory use case error: %v", err)
		return nil, mapDomainErrorToGrpcStatus(err)
	}
	h.log.Infof("gRPC Handler: Category created successfully: ID=%s", domain.FormatID(category.CatID))
	return assignedID(category.CatID), nil
}

// UpdateCategory takes the target id from the record's catId field.
func (h *CatalogHandler) UpdateCategory(ctx context.Context, req *structpb.Struct) (*emptypb.Empty, error) {
	var category domain.Category
	if err := FromStruct(req, &category); err != nil {
		return nil, status.Error(codes.InvalidArgument, "Invalid category payload: "+err.Error())
	}
	if err := h.categoryUseCase.Update(ctx, &category, category.CatID); err != nil {
		h.log.Errorf("gRPC Handler: UpdateCategory use case error: %v", err)
		return nil, mapDomainErrorToGrpcStatus(err)
	}
	return &emptypb.Empty{}, nil
}

func (h *CatalogHandler) DeleteCategory(ctx context.Context, req *wrapperspb.Int64Value) (*emptypb.Empty, error) {
	if err := h.categoryUseCase.Delete(ctx, idFrom(req)); err != nil {
		h.log.Warnf("gRPC Handler: DeleteCategory use case error for ID %d: %v", req.GetValue(), err)
		return nil, mapDomainErrorToGrpcStatus(err)
	}
	return &emptypb.Empty{}, nil
}

func (h *CatalogHandler) ListProducts(ctx context.Context, _ *emptypb.Empty) (*structpb.ListValue, error) {
	products, err := h.productUseCase.ListAll(ctx)
	if err != nil {
		h.log.Errorf("gRPC Handler: ListProducts use case error: %v", err)
		return nil, mapDomainErrorToGrpcStatus(err)
	}
	return h.encodeList(ToList(products))
}

func (h *CatalogHandler) GetProduct(ctx context.Context, req *wrapperspb.Int64Value) (*structpb.Struct, error) {
	product, err := h.productUseCase.GetByID(ctx, idFrom(req))
	if err != nil {
		h.log.Warnf("gRPC Handler: GetProduct use case error for ID %d: %v", req.GetValue(), err)
		return nil, mapDomainErrorToGrpcStatus(err)
	}
	return h.encode(ToStruct(product))
}

func (h *CatalogHandler) SaveProduct(ctx context.Context, req *structpb.Struct) (*wrapperspb.Int64Value, error) {
	var product domain.Product
	if err := FromStruct(req, &product); err != nil {
		return nil, status.Error(codes.InvalidArgument, "Invalid product payload: "+err.Error())
	}
	if err := h.productUseCase.Save(ctx, &product); err != nil {
		h.log.Warnf("gRPC Handler: SaveProduct use case error: %v", err)
		return nil, mapDomainErrorToGrpcStatus(err)
	}
	h.log.Infof("gRPC Handler: Product created successfully: ID=%s", domain.FormatID(product.PrdID))
	return assignedID(product.PrdID), nil
}

// UpdateProduct takes the target id from the record's prdId field; a record
// without one is rejected by validation.
func (h *CatalogHandler) UpdateProduct(ctx context.Context, req *structpb.Struct) (*emptypb.Empty, error) {
	var product domain.Product
	if err := FromStruct(req, &product); err != nil {
		return nil, status.Error(codes.InvalidArgument, "Invalid product payload: "+err.Error())
	}
	if err := h.productUseCase.Update(ctx, &product, product.PrdID); err != nil {
		h.log.Warnf("gRPC Handler: UpdateProduct use case error: %v", err)
		return nil, mapDomainErrorToGrpcStatus(err)
	}
	return &emptypb.Empty{}, nil
}

func (h *CatalogHandler) DeleteProduct(ctx context.Context, req *wrapperspb.Int64Value) (*emptypb.Empty, error) {
	if err := h.productUseCase.Delete(ctx, idFrom(req)); err != nil {
		h.log.Warnf("gRPC Handler: DeleteProduct use case error for ID %d: %v", req.GetValue(), err)
		return nil, mapDomainErrorToGrpcStatus(err)
	}
	return &emptypb.Empty{}, nil
}

func (h *CatalogHandler) encode(s *structpb.Struct, err error) (*structpb.Struct, error) {
	if err != nil {
		h.log.Errorf("gRPC Handler: failed to encode record: %v", err)
		return nil, status.Error(codes.Internal, "Internal server error")
	}
	return s, nil
}

func (h *CatalogHandler) encodeList(list *structpb.ListValue, err error) (*structpb.ListValue, error) {
	if err != nil {
		h.log.Errorf("gRPC Handler: failed to encode records: %v", err)
		return nil, status.Error(codes.Internal, "Internal server error")
	}
	return list, nil
}
