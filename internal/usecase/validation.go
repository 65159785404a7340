package usecase

import (
	"errors"
	"fmt"
	"reflect"

	"catalog_service/internal/domain"

	"github.com/go-playground/validator/v10"
)

// Field order below is the order rules are reported in; only the first
// violation is surfaced.
type productFields struct {
	Name        string `validate:"required" label:"name"`
	Description string `validate:"required" label:"description"`
	CategoryID  *int   `validate:"required" label:"category Id"`
}

type productUpdateFields struct {
	Name        string `validate:"required" label:"name"`
	Description string `validate:"required" label:"description"`
	CategoryID  *int   `validate:"required" label:"category Id"`
	ProductID   *int   `validate:"required" label:"product Id"`
}

const (
	actionSaving   = "saving"
	actionUpdating = "updating"
)

// ProductValidator checks required product fields before writes.
type ProductValidator struct {
	validate *validator.Validate
}

func NewProductValidator() *ProductValidator {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		return field.Tag.Get("label")
	})
	return &ProductValidator{validate: v}
}

// ValidateSave checks name, description and category id, in that order.
func (pv *ProductValidator) ValidateSave(product *domain.Product) error {
	if product == nil {
		return domain.BadRequest("Error when saving: The product body was not inserted!")
	}
	return pv.check(actionSaving, fieldsOf(product))
}

// ValidateUpdate runs the save rules and then requires the product id.
func (pv *ProductValidator) ValidateUpdate(product *domain.Product, id *int) error {
	if product == nil {
		return domain.BadRequest("Error when updating: The product body was not inserted!")
	}
	return pv.check(actionUpdating, productUpdateFields{
		Name:        product.Name,
		Description: product.Description,
		CategoryID:  product.CategoryID(),
		ProductID:   id,
	})
}

func fieldsOf(product *domain.Product) productFields {
	return productFields{
		Name:        product.Name,
		Description: product.Description,
		CategoryID:  product.CategoryID(),
	}
}

func (pv *ProductValidator) check(action string, fields interface{}) error {
	err := pv.validate.Struct(fields)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return fmt.Errorf("product validation failed: %w", err)
	}
	return domain.BadRequest(fmt.Sprintf("Error when %s: The %s field was not inserted!", action, validationErrors[0].Field()))
}
