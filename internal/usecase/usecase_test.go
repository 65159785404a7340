package usecase

import (
	"context"
	"errors"
	"io"
	"testing"

	"catalog_service/internal/domain"
	"catalog_service/internal/repository"
	catalogdb "catalog_service/pkg/db"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

type testCatalog struct {
	categories CategoryUseCase
	products   ProductUseCase
}

func newTestCatalog(t *testing.T) testCatalog {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(catalogdb.SQLiteDSN(":memory:")), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Discard,
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })
	require.NoError(t, repository.AutoMigrate(db))

	logger := quietLogger()
	return testCatalog{
		categories: NewCategoryUseCase(repository.NewGormCategoryRepository(db, logger), logger),
		products:   NewProductUseCase(repository.NewGormProductRepository(db, logger), logger),
	}
}

// failingProductRepository fails every call with err.
type failingProductRepository struct {
	err error
}

func (f *failingProductRepository) ListAll(context.Context) ([]domain.Product, error) {
	return nil, f.err
}

func (f *failingProductRepository) GetByID(context.Context, *int) (*domain.Product, error) {
	return nil, f.err
}

func (f *failingProductRepository) Save(context.Context, *domain.Product) error {
	return f.err
}

func (f *failingProductRepository) Update(context.Context, *domain.Product, *int) error {
	return f.err
}

func (f *failingProductRepository) Delete(context.Context, *int) error {
	return f.err
}

func TestProductUseCase_SaveThenGet(t *testing.T) {
	ctx := context.Background()
	c := newTestCatalog(t)

	category := &domain.Category{Name: "Clothes"}
	require.NoError(t, c.categories.Save(ctx, category))

	product := &domain.Product{
		Name:        "Shirt",
		Description: "Cotton",
		Category:    &domain.Category{CatID: category.CatID},
	}
	require.NoError(t, c.products.Save(ctx, product))
	require.NotNil(t, product.PrdID)

	found, err := c.products.GetByID(ctx, product.PrdID)
	require.NoError(t, err)
	assert.Equal(t, product.PrdID, found.PrdID)
	assert.Equal(t, "Shirt", found.Name)
	assert.Equal(t, "Cotton", found.Description)
	assert.Equal(t, *category.CatID, *found.Category.CatID)
}

func TestProductUseCase_SaveRejectsEmptyName(t *testing.T) {
	c := newTestCatalog(t)

	err := c.products.Save(context.Background(), &domain.Product{
		Name:        "",
		Description: "Cotton",
		Category:    &domain.Category{CatID: domain.IntPtr(1)},
	})
	assert.True(t, errors.Is(err, domain.ErrBadRequest))
	assert.Contains(t, err.Error(), "name field was not inserted")

	all, err := c.products.ListAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestProductUseCase_UpdateRequiresID(t *testing.T) {
	c := newTestCatalog(t)

	err := c.products.Update(context.Background(), validProduct(), nil)
	assert.True(t, errors.Is(err, domain.ErrBadRequest))
	assert.Contains(t, err.Error(), "product Id")
}

func TestProductUseCase_Update(t *testing.T) {
	ctx := context.Background()
	c := newTestCatalog(t)

	category := &domain.Category{Name: "Clothes"}
	require.NoError(t, c.categories.Save(ctx, category))
	product := &domain.Product{Name: "Shirt", Description: "Cotton", Category: &domain.Category{CatID: category.CatID}}
	require.NoError(t, c.products.Save(ctx, product))

	changed := &domain.Product{Name: "Shirt", Description: "Linen", Category: &domain.Category{CatID: category.CatID}}
	require.NoError(t, c.products.Update(ctx, changed, product.PrdID))

	found, err := c.products.GetByID(ctx, product.PrdID)
	require.NoError(t, err)
	assert.Equal(t, "Linen", found.Description)
}

func TestProductUseCase_GetByIDNotFound(t *testing.T) {
	c := newTestCatalog(t)

	product, err := c.products.GetByID(context.Background(), domain.IntPtr(404))
	assert.Nil(t, product)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
	assert.EqualError(t, err, "Product not found!")

	product, err = c.products.GetByID(context.Background(), nil)
	assert.Nil(t, product)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestProductUseCase_ListAllEmpty(t *testing.T) {
	c := newTestCatalog(t)

	products, err := c.products.ListAll(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, products)
	assert.Len(t, products, 0)
}

func TestProductUseCase_DeleteMissingSucceeds(t *testing.T) {
	c := newTestCatalog(t)

	assert.NoError(t, c.products.Delete(context.Background(), domain.IntPtr(77)))
}

func TestProductUseCase_RepositoryFailure(t *testing.T) {
	ctx := context.Background()
	uc := NewProductUseCase(&failingProductRepository{err: errors.New("connection refused")}, quietLogger())

	_, err := uc.ListAll(ctx)
	assert.ErrorContains(t, err, "could not retrieve products")

	_, err = uc.GetByID(ctx, domain.IntPtr(1))
	assert.ErrorContains(t, err, "connection refused")
	assert.False(t, errors.Is(err, domain.ErrNotFound))

	assert.Error(t, uc.Save(ctx, validProduct()))
	assert.Error(t, uc.Update(ctx, validProduct(), domain.IntPtr(1)))
	assert.Error(t, uc.Delete(ctx, domain.IntPtr(1)))
}

func TestCategoryUseCase_CRUD(t *testing.T) {
	ctx := context.Background()
	c := newTestCatalog(t)

	empty, err := c.categories.ListAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, empty)

	category := &domain.Category{Name: "Clothes"}
	require.NoError(t, c.categories.Save(ctx, category))

	require.NoError(t, c.categories.Update(ctx, &domain.Category{Name: "Apparel"}, category.CatID))
	found, err := c.categories.GetByID(ctx, category.CatID)
	require.NoError(t, err)
	assert.Equal(t, "Apparel", found.Name)

	require.NoError(t, c.categories.Delete(ctx, category.CatID))
	_, err = c.categories.GetByID(ctx, category.CatID)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
	assert.EqualError(t, err, "Category not found!")
}

func TestCategoryUseCase_SaveAcceptsEmptyName(t *testing.T) {
	c := newTestCatalog(t)

	assert.NoError(t, c.categories.Save(context.Background(), &domain.Category{}))
}
