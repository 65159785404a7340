package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorKinds(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", NotFound("Product not found!"))

	assert.True(t, errors.Is(err, ErrNotFound))
	assert.False(t, errors.Is(err, ErrBadRequest))

	var domainErr *Error
	assert.True(t, errors.As(err, &domainErr))
	assert.Equal(t, "Product not found!", domainErr.Message)

	assert.True(t, errors.Is(BadRequest("x"), ErrBadRequest))
	assert.True(t, errors.Is(Conflict("x"), ErrConflict))
}

func TestProductCategoryID(t *testing.T) {
	assert.Nil(t, (&Product{}).CategoryID())
	assert.Nil(t, (&Product{Category: &Category{Name: "Clothes"}}).CategoryID())
	assert.Equal(t, 4, *(&Product{Category: &Category{CatID: IntPtr(4)}}).CategoryID())
}

func TestFormatID(t *testing.T) {
	assert.Equal(t, "<nil>", FormatID(nil))
	assert.Equal(t, "12", FormatID(IntPtr(12)))
}
