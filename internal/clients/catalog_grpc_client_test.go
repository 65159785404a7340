package clients

import (
	"context"
	"errors"
	"io"
	"net"
	"testing"

	catalogrpc "catalog_service/internal/delivery/grpc"
	"catalog_service/internal/domain"
	"catalog_service/internal/repository"
	"catalog_service/internal/usecase"
	catalogdb "catalog_service/pkg/db"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/test/bufconn"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func newTestClient(t *testing.T) CatalogClient {
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
	handler := catalogrpc.NewCatalogHandler(
		usecase.NewProductUseCase(repository.NewGormProductRepository(db, logger), logger),
		usecase.NewCategoryUseCase(repository.NewGormCategoryRepository(db, logger), logger),
		logger,
	)

	lis := bufconn.Listen(1024 * 1024)
	server := catalogrpc.NewServer(handler, logger)
	go func() {
		_ = server.Serve(lis)
	}()
	t.Cleanup(server.Stop)

	client, err := NewCatalogGRPCClient("passthrough:///bufnet", logger,
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
	)
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })
	return client
}

func TestCatalogClient_CategoryRoundTrip(t *testing.T) {
	ctx := context.Background()
	client := newTestClient(t)

	categories, err := client.ListCategories(ctx)
	require.NoError(t, err)
	assert.Empty(t, categories)

	category := &domain.Category{Name: "Clothes"}
	require.NoError(t, client.SaveCategory(ctx, category))
	require.NotNil(t, category.CatID)

	require.NoError(t, client.UpdateCategory(ctx, &domain.Category{Name: "Apparel"}, *category.CatID))

	found, err := client.GetCategory(ctx, *category.CatID)
	require.NoError(t, err)
	assert.Equal(t, "Apparel", found.Name)

	require.NoError(t, client.DeleteCategory(ctx, *category.CatID))
	_, err = client.GetCategory(ctx, *category.CatID)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
	assert.EqualError(t, err, "Category not found!")
}

func TestCatalogClient_ProductRoundTrip(t *testing.T) {
	ctx := context.Background()
	client := newTestClient(t)

	category := &domain.Category{Name: "Clothes"}
	require.NoError(t, client.SaveCategory(ctx, category))

	product := &domain.Product{
		Name:        "Shirt",
		Description: "Cotton",
		Category:    &domain.Category{CatID: category.CatID},
	}
	require.NoError(t, client.SaveProduct(ctx, product))
	require.NotNil(t, product.PrdID)

	found, err := client.GetProduct(ctx, *product.PrdID)
	require.NoError(t, err)
	assert.Equal(t, "Shirt", found.Name)
	assert.Equal(t, "Cotton", found.Description)
	require.NotNil(t, found.Category)
	assert.Equal(t, "Clothes", found.Category.Name)

	product.Description = "Linen"
	require.NoError(t, client.UpdateProduct(ctx, product, product.PrdID))

	products, err := client.ListProducts(ctx)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Linen", products[0].Description)

	require.NoError(t, client.DeleteProduct(ctx, *product.PrdID))
	_, err = client.GetProduct(ctx, *product.PrdID)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestCatalogClient_ValidationErrors(t *testing.T) {
	ctx := context.Background()
	client := newTestClient(t)

	err := client.SaveProduct(ctx, &domain.Product{Description: "Cotton", Category: &domain.Category{CatID: domain.IntPtr(1)}})
	assert.True(t, errors.Is(err, domain.ErrBadRequest))
	assert.EqualError(t, err, "Error when saving: The name field was not inserted!")

	err = client.UpdateProduct(ctx, &domain.Product{
		Name:        "Shirt",
		Description: "Cotton",
		Category:    &domain.Category{CatID: domain.IntPtr(1)},
	}, nil)
	assert.True(t, errors.Is(err, domain.ErrBadRequest))
	assert.EqualError(t, err, "Error when updating: The product Id field was not inserted!")
}
