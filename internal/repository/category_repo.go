package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"catalog_service/internal/domain"

	"github.com/sirupsen/logrus"
)

type postgresCategoryRepository struct {
	db  *sql.DB
	log *logrus.Logger
}

func NewPostgresCategoryRepository(db *sql.DB, logger *logrus.Logger) domain.CategoryRepository {
	return &postgresCategoryRepository{
		db:  db,
		log: logger,
	}
}

func (r *postgresCategoryRepository) ListAll(ctx context.Context) ([]domain.Category, error) {
	query := `SELECT id, name FROM categories ORDER BY id ASC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.log.Errorf("Failed to list categories: %v", err)
		return nil, fmt.Errorf("could not list categories: %w", err)
	}
	defer rows.Close()

	categories := []domain.Category{}
	for rows.Next() {
		var id int
		var category domain.Category
		if err := rows.Scan(&id, &category.Name); err != nil {
			r.log.Errorf("Failed to scan category row: %v", err)
			return nil, fmt.Errorf("could not scan category: %w", err)
		}
		category.CatID = domain.IntPtr(id)
		categories = append(categories, category)
	}

	if err = rows.Err(); err != nil {
		r.log.Errorf("Error during categories list iteration: %v", err)
		return nil, fmt.Errorf("error iterating categories: %w", err)
	}

	r.log.Debugf("Retrieved %d categories", len(categories))
	return categories, nil
}

func (r *postgresCategoryRepository) GetByID(ctx context.Context, id *int) (*domain.Category, error) {
	query := `SELECT id, name FROM categories WHERE id = $1`
	var catID int
	category := &domain.Category{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(&catID, &category.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.Warnf("Category with ID %s not found", domain.FormatID(id))
			return nil, fmt.Errorf("category with id %s: %w", domain.FormatID(id), domain.ErrNotFound)
		}
		r.log.Errorf("Failed to get category by ID %s: %v", domain.FormatID(id), err)
		return nil, fmt.Errorf("could not get category by id: %w", err)
	}
	category.CatID = domain.IntPtr(catID)
	return category, nil
}

func (r *postgresCategoryRepository) Save(ctx context.Context, category *domain.Category) error {
	query := `INSERT INTO categories (name) VALUES ($1) RETURNING id`
	var id int
	if err := r.db.QueryRowContext(ctx, query, category.Name).Scan(&id); err != nil {
		r.log.Errorf("Failed to create category '%s': %v", category.Name, err)
		return fmt.Errorf("could not create category: %w", err)
	}
	category.CatID = domain.IntPtr(id)
	r.log.Infof("Category created successfully with ID: %d, Name: %s", id, category.Name)
	return nil
}

func (r *postgresCategoryRepository) Update(ctx context.Context, category *domain.Category, id *int) error {
	query := `UPDATE categories SET name = $1 WHERE id = $2`
	result, err := r.db.ExecContext(ctx, query, category.Name, id)
	if err != nil {
		r.log.Errorf("Failed to update category ID %s: %v", domain.FormatID(id), err)
		return fmt.Errorf("could not update category: %w", err)
	}

	if rowsAffected, err := result.RowsAffected(); err == nil && rowsAffected == 0 {
		r.log.Warnf("Update matched no category with ID %s", domain.FormatID(id))
		return nil
	}

	r.log.Infof("Category updated successfully with ID: %s", domain.FormatID(id))
	return nil
}

func (r *postgresCategoryRepository) Delete(ctx context.Context, id *int) error {
	query := `DELETE FROM categories WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		if pqErrorCode(err) == pqForeignKeyViolation {
			r.log.Warnf("Attempted to delete category ID %s still referenced by products", domain.FormatID(id))
			return domain.Conflict(fmt.Sprintf("category with id %s is still referenced by products", domain.FormatID(id)))
		}
		r.log.Errorf("Failed to delete category ID %s: %v", domain.FormatID(id), err)
		return fmt.Errorf("could not delete category: %w", err)
	}

	if rowsAffected, err := result.RowsAffected(); err == nil && rowsAffected == 0 {
		r.log.Warnf("Delete matched no category with ID %s", domain.FormatID(id))
		return nil
	}

	r.log.Infof("Category deleted successfully with ID: %s", domain.FormatID(id))
	return nil
}
