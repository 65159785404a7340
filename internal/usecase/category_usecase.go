package usecase

import (
	"context"
	"errors"
	"fmt"

	"catalog_service/internal/domain"

	"github.com/sirupsen/logrus"
)

// CategoryUseCase applies no write-time validation; the store enforces the
// only category invariant (unique id).
type CategoryUseCase interface {
	domain.CrudService[domain.Category]
}

type categoryUseCase struct {
	categoryRepo domain.CategoryRepository
	log          *logrus.Logger
}

func NewCategoryUseCase(repo domain.CategoryRepository, logger *logrus.Logger) CategoryUseCase {
	return &categoryUseCase{
		categoryRepo: repo,
		log:          logger,
	}
}

func (uc *categoryUseCase) ListAll(ctx context.Context) ([]domain.Category, error) {
	uc.log.Debug("Use Case: Attempting to list all categories")

	categories, err := uc.categoryRepo.ListAll(ctx)
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to list categories: %v", err)
		return nil, fmt.Errorf("could not retrieve categories: %w", err)
	}
	if categories == nil {
		categories = []domain.Category{}
	}

	uc.log.Infof("Use Case: Retrieved %d categories", len(categories))
	return categories, nil
}

func (uc *categoryUseCase) GetByID(ctx context.Context, id *int) (*domain.Category, error) {
	category, err := uc.categoryRepo.GetByID(ctx, id)
	if errors.Is(err, domain.ErrNotFound) || (err == nil && category == nil) {
		uc.log.Warnf("Use Case: Category ID %s not found", domain.FormatID(id))
		return nil, domain.NotFound("Category not found!")
	}
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to get category ID %s: %v", domain.FormatID(id), err)
		return nil, err
	}
	return category, nil
}

func (uc *categoryUseCase) Save(ctx context.Context, category *domain.Category) error {
	if category == nil {
		return domain.BadRequest("Error when saving: The category body was not inserted!")
	}

	uc.log.Infof("Use Case: Attempting to create category with name '%s'", category.Name)
	if err := uc.categoryRepo.Save(ctx, category); err != nil {
		uc.log.Errorf("Use Case: Repository failed to create category '%s': %v", category.Name, err)
		return err
	}
	return nil
}

func (uc *categoryUseCase) Update(ctx context.Context, category *domain.Category, id *int) error {
	if category == nil {
		return domain.BadRequest("Error when updating: The category body was not inserted!")
	}

	uc.log.Infof("Use Case: Attempting to update category ID %s", domain.FormatID(id))
	if err := uc.categoryRepo.Update(ctx, category, id); err != nil {
		uc.log.Errorf("Use Case: Repository failed to update category ID %s: %v", domain.FormatID(id), err)
		return err
	}
	return nil
}

func (uc *categoryUseCase) Delete(ctx context.Context, id *int) error {
	uc.log.Infof("Use Case: Attempting to delete category ID %s", domain.FormatID(id))
	if err := uc.categoryRepo.Delete(ctx, id); err != nil {
		uc.log.Warnf("Use Case: Repository failed to delete category ID %s: %v", domain.FormatID(id), err)
		return err
	}
	return nil
}
