package main

import (
	"context"
	"fmt"

	"catalog_service/config"
	"catalog_service/internal/delivery"
	"catalog_service/internal/domain"
	"catalog_service/internal/repository"
	"catalog_service/pkg/db"

	"github.com/sirupsen/logrus"
)

// store bundles the repositories of one storage driver with its pool.
type store struct {
	categories domain.CategoryRepository
	products   domain.ProductRepository
	pinger     delivery.Pinger
	close      func() error
}

func openStore(cfg *config.Config, logger *logrus.Logger) (*store, error) {
	switch cfg.DBDriver {
	case config.DriverPostgres:
		database, err := db.Connect(cfg.DatabaseURL, cfg.DBMaxOpenConns)
		if err != nil {
			return nil, err
		}
		if err := db.Migrate(context.Background(), database); err != nil {
			_ = database.Close()
			return nil, err
		}
		logger.Info("Database connection established (database/sql, lib/pq).")
		return &store{
			categories: repository.NewPostgresCategoryRepository(database, logger),
			products:   repository.NewPostgresProductRepository(database, logger),
			pinger:     database,
			close:      database.Close,
		}, nil

	case config.DriverGorm, config.DriverSQLite:
		gdb, err := db.OpenGorm(cfg.DBDriver, cfg.DatabaseURL, cfg.DBMaxOpenConns, logger)
		if err != nil {
			return nil, err
		}
		sqlDB, err := gdb.DB()
		if err != nil {
			return nil, err
		}
		if err := repository.AutoMigrate(gdb); err != nil {
			_ = sqlDB.Close()
			return nil, fmt.Errorf("failed to migrate schema: %w", err)
		}
		logger.Infof("Database connection established (gorm, %s).", cfg.DBDriver)
		return &store{
			categories: repository.NewGormCategoryRepository(gdb, logger),
			products:   repository.NewGormProductRepository(gdb, logger),
			pinger:     sqlDB,
			close:      sqlDB.Close,
		}, nil

	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}
}
