package repository

import (
	"context"
	"errors"
	"fmt"

	"catalog_service/internal/domain"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type gormCategoryRepository struct {
	db  *gorm.DB
	log *logrus.Logger
}

func NewGormCategoryRepository(db *gorm.DB, logger *logrus.Logger) domain.CategoryRepository {
	return &gormCategoryRepository{
		db:  db,
		log: logger,
	}
}

func (r *gormCategoryRepository) ListAll(ctx context.Context) ([]domain.Category, error) {
	var records []categoryRecord
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&records).Error; err != nil {
		r.log.Errorf("Failed to list categories: %v", err)
		return nil, fmt.Errorf("could not list categories: %w", err)
	}

	categories := make([]domain.Category, 0, len(records))
	for i := range records {
		categories = append(categories, records[i].toDomain())
	}
	r.log.Debugf("Retrieved %d categories", len(categories))
	return categories, nil
}

func (r *gormCategoryRepository) GetByID(ctx context.Context, id *int) (*domain.Category, error) {
	var record categoryRecord
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&record).Error; err != nil {
		if isRecordNotFound(err) {
			r.log.Warnf("Category with ID %s not found", domain.FormatID(id))
			return nil, fmt.Errorf("category with id %s: %w", domain.FormatID(id), domain.ErrNotFound)
		}
		r.log.Errorf("Failed to get category by ID %s: %v", domain.FormatID(id), err)
		return nil, fmt.Errorf("could not get category by id: %w", err)
	}
	category := record.toDomain()
	return &category, nil
}

func (r *gormCategoryRepository) Save(ctx context.Context, category *domain.Category) error {
	record := categoryRecord{Name: category.Name}
	if err := r.db.WithContext(ctx).Create(&record).Error; err != nil {
		r.log.Errorf("Failed to create category '%s': %v", category.Name, err)
		return fmt.Errorf("could not create category: %w", err)
	}
	category.CatID = domain.IntPtr(record.ID)
	r.log.Infof("Category created successfully with ID: %d, Name: %s", record.ID, category.Name)
	return nil
}

func (r *gormCategoryRepository) Update(ctx context.Context, category *domain.Category, id *int) error {
	result := r.db.WithContext(ctx).
		Model(&categoryRecord{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"name": category.Name})
	if result.Error != nil {
		r.log.Errorf("Failed to update category ID %s: %v", domain.FormatID(id), result.Error)
		return fmt.Errorf("could not update category: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		r.log.Warnf("Update matched no category with ID %s", domain.FormatID(id))
		return nil
	}
	r.log.Infof("Category updated successfully with ID: %s", domain.FormatID(id))
	return nil
}

func (r *gormCategoryRepository) Delete(ctx context.Context, id *int) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&categoryRecord{})
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrForeignKeyViolated) {
			return domain.Conflict(fmt.Sprintf("category with id %s is still referenced by products", domain.FormatID(id)))
		}
		r.log.Errorf("Failed to delete category ID %s: %v", domain.FormatID(id), result.Error)
		return fmt.Errorf("could not delete category: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		r.log.Warnf("Delete matched no category with ID %s", domain.FormatID(id))
		return nil
	}
	r.log.Infof("Category deleted successfully with ID: %s", domain.FormatID(id))
	return nil
}
