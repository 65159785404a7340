package grpc

import (
	"errors"
	"testing"

	"catalog_service/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

func TestStructRoundTrip(t *testing.T) {
	product := domain.Product{
		PrdID:       domain.IntPtr(3),
		Name:        "Shirt",
		Description: "Cotton",
		Category:    &domain.Category{CatID: domain.IntPtr(1), Name: "Clothes"},
	}

	s, err := ToStruct(&product)
	require.NoError(t, err)
	assert.Equal(t, "Shirt", s.GetFields()["name"].GetStringValue())
	assert.Equal(t, float64(3), s.GetFields()["prdId"].GetNumberValue())

	var decoded domain.Product
	require.NoError(t, FromStruct(s, &decoded))
	assert.Equal(t, product, decoded)
}

func TestFromStruct_MissingFieldsStayNil(t *testing.T) {
	s, err := ToStruct(map[string]interface{}{"name": "Shirt"})
	require.NoError(t, err)

	var decoded domain.Product
	require.NoError(t, FromStruct(s, &decoded))
	assert.Nil(t, decoded.PrdID)
	assert.Nil(t, decoded.Category)
	assert.Nil(t, decoded.CategoryID())
}

func TestListRoundTrip(t *testing.T) {
	categories := []domain.Category{
		{CatID: domain.IntPtr(1), Name: "Clothes"},
		{CatID: domain.IntPtr(2), Name: "Shoes"},
	}

	list, err := ToList(categories)
	require.NoError(t, err)
	assert.Len(t, list.GetValues(), 2)

	decoded, err := FromList[domain.Category](list)
	require.NoError(t, err)
	assert.Equal(t, categories, decoded)
}

func TestToStruct_RejectsInexactInteger(t *testing.T) {
	_, err := ToStruct(&domain.Category{CatID: domain.IntPtr(1<<53 + 1), Name: "Clothes"})
	assert.ErrorIs(t, err, errNumberOutOfRange)

	_, err = ToStruct(&domain.Category{CatID: domain.IntPtr(1 << 53), Name: "Clothes"})
	assert.NoError(t, err)
}

func TestFromStruct_RejectsInexactInteger(t *testing.T) {
	s := &structpb.Struct{Fields: map[string]*structpb.Value{
		"catId": structpb.NewNumberValue(1 << 60),
		"name":  structpb.NewStringValue("Clothes"),
	}}

	var decoded domain.Category
	assert.ErrorIs(t, FromStruct(s, &decoded), errNumberOutOfRange)
}

func TestFromStruct_Nil(t *testing.T) {
	var decoded domain.Category
	assert.Error(t, FromStruct(nil, &decoded))
}

func TestFromList_RejectsNonStructEntry(t *testing.T) {
	list := &structpb.ListValue{Values: []*structpb.Value{
		structpb.NewStringValue("Clothes"),
	}}

	decoded, err := FromList[domain.Category](list)
	assert.ErrorContains(t, err, "list entry 0")
	assert.Nil(t, decoded)
}

func TestMapDomainErrorToGrpcStatus(t *testing.T) {
	tests := []struct {
		err  error
		want codes.Code
	}{
		{domain.NotFound("Product not found!"), codes.NotFound},
		{domain.BadRequest("Error when saving: The name field was not inserted!"), codes.InvalidArgument},
		{domain.Conflict("category 'x' already exists"), codes.AlreadyExists},
		{errors.New("pq: connection refused"), codes.Internal},
	}

	for _, tt := range tests {
		st, ok := status.FromError(mapDomainErrorToGrpcStatus(tt.err))
		require.True(t, ok)
		assert.Equal(t, tt.want, st.Code())
	}
	assert.NoError(t, mapDomainErrorToGrpcStatus(nil))
}
