package usecase

import (
	"context"
	"errors"
	"fmt"

	"catalog_service/internal/domain"

	"github.com/sirupsen/logrus"
)

type ProductUseCase interface {
	domain.CrudService[domain.Product]
}

type productUseCase struct {
	productRepo domain.ProductRepository
	validator   *ProductValidator
	log         *logrus.Logger
}

func NewProductUseCase(repo domain.ProductRepository, logger *logrus.Logger) ProductUseCase {
	return &productUseCase{
		productRepo: repo,
		validator:   NewProductValidator(),
		log:         logger,
	}
}

// ListAll returns every product; the result is never nil.
func (uc *productUseCase) ListAll(ctx context.Context) ([]domain.Product, error) {
	products, err := uc.productRepo.ListAll(ctx)
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to list products: %v", err)
		return nil, fmt.Errorf("could not retrieve products: %w", err)
	}
	if products == nil {
		products = []domain.Product{}
	}

	uc.log.Infof("Use Case: Retrieved %d products", len(products))
	return products, nil
}

// GetByID returns the matching product or a not-found error, never a nil
// product with a nil error. A nil id is passed through and simply misses.
func (uc *productUseCase) GetByID(ctx context.Context, id *int) (*domain.Product, error) {
	product, err := uc.productRepo.GetByID(ctx, id)
	if errors.Is(err, domain.ErrNotFound) || (err == nil && product == nil) {
		uc.log.Warnf("Use Case: Product ID %s not found", domain.FormatID(id))
		return nil, domain.NotFound("Product not found!")
	}
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to get product ID %s: %v", domain.FormatID(id), err)
		return nil, err
	}
	return product, nil
}

// Save validates the product and inserts it. On success product.PrdID holds
// the assigned id.
func (uc *productUseCase) Save(ctx context.Context, product *domain.Product) error {
	if err := uc.validator.ValidateSave(product); err != nil {
		uc.log.Warnf("Use Case: Rejected product save: %v", err)
		return err
	}

	uc.log.Infof("Use Case: Attempting to create product with name '%s'", product.Name)
	if err := uc.productRepo.Save(ctx, product); err != nil {
		uc.log.Errorf("Use Case: Repository failed to create product '%s': %v", product.Name, err)
		return err
	}
	return nil
}

func (uc *productUseCase) Update(ctx context.Context, product *domain.Product, id *int) error {
	if err := uc.validator.ValidateUpdate(product, id); err != nil {
		uc.log.Warnf("Use Case: Rejected product update for ID %s: %v", domain.FormatID(id), err)
		return err
	}

	uc.log.Infof("Use Case: Attempting to update product ID %d", *id)
	if err := uc.productRepo.Update(ctx, product, id); err != nil {
		uc.log.Errorf("Use Case: Repository failed to update product ID %d: %v", *id, err)
		return err
	}
	return nil
}

// Delete removes the product without checking it exists first.
func (uc *productUseCase) Delete(ctx context.Context, id *int) error {
	uc.log.Infof("Use Case: Attempting to delete product ID %s", domain.FormatID(id))
	if err := uc.productRepo.Delete(ctx, id); err != nil {
		uc.log.Warnf("Use Case: Repository failed to delete product ID %s: %v", domain.FormatID(id), err)
		return err
	}
	return nil
}
