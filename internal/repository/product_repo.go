package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"catalog_service/internal/domain"

	"github.com/sirupsen/logrus"
)

type postgresProductRepository struct {
	db  *sql.DB
	log *logrus.Logger
}

func NewPostgresProductRepository(db *sql.DB, logger *logrus.Logger) domain.ProductRepository {
	return &postgresProductRepository{
		db:  db,
		log: logger,
	}
}

const productColumns = `
        SELECT p.id, p.name, p.description, p.category_id, c.name
        FROM products p
        LEFT JOIN categories c ON c.id = p.category_id`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (*domain.Product, error) {
	var (
		id           int
		categoryID   sql.NullInt64
		categoryName sql.NullString
	)
	product := &domain.Product{}
	if err := row.Scan(&id, &product.Name, &product.Description, &categoryID, &categoryName); err != nil {
		return nil, err
	}
	product.PrdID = domain.IntPtr(id)
	if categoryID.Valid {
		product.Category = &domain.Category{
			CatID: domain.IntPtr(int(categoryID.Int64)),
			Name:  categoryName.String,
		}
	}
	return product, nil
}

func (r *postgresProductRepository) ListAll(ctx context.Context) ([]domain.Product, error) {
	query := productColumns + ` ORDER BY p.id ASC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.log.Errorf("Failed to list products: %v", err)
		return nil, fmt.Errorf("could not list products: %w", err)
	}
	defer rows.Close()

	products := []domain.Product{}
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			r.log.Errorf("Failed to scan product row: %v", err)
			return nil, fmt.Errorf("could not scan product: %w", err)
		}
		products = append(products, *product)
	}

	if err = rows.Err(); err != nil {
		r.log.Errorf("Error during products list iteration: %v", err)
		return nil, fmt.Errorf("error iterating products: %w", err)
	}

	r.log.Debugf("Retrieved %d products", len(products))
	return products, nil
}

func (r *postgresProductRepository) GetByID(ctx context.Context, id *int) (*domain.Product, error) {
	query := productColumns + ` WHERE p.id = $1`
	product, err := scanProduct(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.Warnf("Product with ID %s not found", domain.FormatID(id))
			return nil, fmt.Errorf("product with id %s: %w", domain.FormatID(id), domain.ErrNotFound)
		}
		r.log.Errorf("Failed to get product by ID %s: %v", domain.FormatID(id), err)
		return nil, fmt.Errorf("could not get product by id: %w", err)
	}
	return product, nil
}

func (r *postgresProductRepository) Save(ctx context.Context, product *domain.Product) error {
	query := `
        INSERT INTO products (name, description, category_id)
        VALUES ($1, $2, $3)
        RETURNING id`
	var id int
	err := r.db.QueryRowContext(ctx, query, product.Name, product.Description, product.CategoryID()).Scan(&id)
	if err != nil {
		if pqErrorCode(err) == pqForeignKeyViolation {
			r.log.Warnf("Attempted to create product with non-existent category ID: %s", domain.FormatID(product.CategoryID()))
			return domain.BadRequest(fmt.Sprintf("category with id %s does not exist", domain.FormatID(product.CategoryID())))
		}
		r.log.Errorf("Failed to create product '%s': %v", product.Name, err)
		return fmt.Errorf("could not create product: %w", err)
	}
	product.PrdID = domain.IntPtr(id)
	r.log.Infof("Product created successfully with ID: %d, Name: %s", id, product.Name)
	return nil
}

func (r *postgresProductRepository) Update(ctx context.Context, product *domain.Product, id *int) error {
	query := `
        UPDATE products
        SET name = $1, description = $2, category_id = $3
        WHERE id = $4`
	result, err := r.db.ExecContext(ctx, query, product.Name, product.Description, product.CategoryID(), id)
	if err != nil {
		if pqErrorCode(err) == pqForeignKeyViolation {
			r.log.Warnf("Attempted to update product ID %s with non-existent category ID: %s",
				domain.FormatID(id), domain.FormatID(product.CategoryID()))
			return domain.BadRequest(fmt.Sprintf("category with id %s does not exist", domain.FormatID(product.CategoryID())))
		}
		r.log.Errorf("Failed to update product ID %s: %v", domain.FormatID(id), err)
		return fmt.Errorf("could not update product: %w", err)
	}

	if rowsAffected, err := result.RowsAffected(); err == nil && rowsAffected == 0 {
		r.log.Warnf("Update matched no product with ID %s", domain.FormatID(id))
		return nil
	}

	r.log.Infof("Product updated successfully with ID: %s", domain.FormatID(id))
	return nil
}

func (r *postgresProductRepository) Delete(ctx context.Context, id *int) error {
	query := `DELETE FROM products WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		r.log.Errorf("Failed to delete product ID %s: %v", domain.FormatID(id), err)
		return fmt.Errorf("could not delete product: %w", err)
	}

	if rowsAffected, err := result.RowsAffected(); err == nil && rowsAffected == 0 {
		r.log.Warnf("Delete matched no product with ID %s", domain.FormatID(id))
		return nil
	}

	r.log.Infof("Product deleted successfully with ID: %s", domain.FormatID(id))
	return nil
}
