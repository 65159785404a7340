package repository

import (
	"context"
	"errors"
	"fmt"

	"catalog_service/internal/domain"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type gormProductRepository struct {
	db  *gorm.DB
	log *logrus.Logger
}

func NewGormProductRepository(db *gorm.DB, logger *logrus.Logger) domain.ProductRepository {
	return &gormProductRepository{
		db:  db,
		log: logger,
	}
}

func (r *gormProductRepository) ListAll(ctx context.Context) ([]domain.Product, error) {
	var records []productRecord
	if err := r.db.WithContext(ctx).Preload("Category").Order("id ASC").Find(&records).Error; err != nil {
		r.log.Errorf("Failed to list products: %v", err)
		return nil, fmt.Errorf("could not list products: %w", err)
	}

	products := make([]domain.Product, 0, len(records))
	for i := range records {
		products = append(products, records[i].toDomain())
	}
	r.log.Debugf("Retrieved %d products", len(products))
	return products, nil
}

func (r *gormProductRepository) GetByID(ctx context.Context, id *int) (*domain.Product, error) {
	var record productRecord
	if err := r.db.WithContext(ctx).Preload("Category").Where("id = ?", id).First(&record).Error; err != nil {
		if isRecordNotFound(err) {
			r.log.Warnf("Product with ID %s not found", domain.FormatID(id))
			return nil, fmt.Errorf("product with id %s: %w", domain.FormatID(id), domain.ErrNotFound)
		}
		r.log.Errorf("Failed to get product by ID %s: %v", domain.FormatID(id), err)
		return nil, fmt.Errorf("could not get product by id: %w", err)
	}
	product := record.toDomain()
	return &product, nil
}

func (r *gormProductRepository) Save(ctx context.Context, product *domain.Product) error {
	record := productRecord{
		Name:        product.Name,
		Description: product.Description,
		CategoryID:  product.CategoryID(),
	}
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			r.log.Warnf("Attempted to create product with non-existent category ID: %s", domain.FormatID(product.CategoryID()))
			return domain.BadRequest(fmt.Sprintf("category with id %s does not exist", domain.FormatID(product.CategoryID())))
		}
		r.log.Errorf("Failed to create product '%s': %v", product.Name, err)
		return fmt.Errorf("could not create product: %w", err)
	}
	product.PrdID = domain.IntPtr(record.ID)
	r.log.Infof("Product created successfully with ID: %d, Name: %s", record.ID, product.Name)
	return nil
}

func (r *gormProductRepository) Update(ctx context.Context, product *domain.Product, id *int) error {
	result := r.db.WithContext(ctx).
		Model(&productRecord{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"name":        product.Name,
			"description": product.Description,
			"category_id": product.CategoryID(),
		})
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrForeignKeyViolated) {
			return domain.BadRequest(fmt.Sprintf("category with id %s does not exist", domain.FormatID(product.CategoryID())))
		}
		r.log.Errorf("Failed to update product ID %s: %v", domain.FormatID(id), result.Error)
		return fmt.Errorf("could not update product: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		r.log.Warnf("Update matched no product with ID %s", domain.FormatID(id))
		return nil
	}
	r.log.Infof("Product updated successfully with ID: %s", domain.FormatID(id))
	return nil
}

func (r *gormProductRepository) Delete(ctx context.Context, id *int) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&productRecord{})
	if result.Error != nil {
		r.log.Errorf("Failed to delete product ID %s: %v", domain.FormatID(id), result.Error)
		return fmt.Errorf("could not delete product: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		r.log.Warnf("Delete matched no product with ID %s", domain.FormatID(id))
		return nil
	}
	r.log.Infof("Product deleted successfully with ID: %s", domain.FormatID(id))
	return nil
}
