package repository

import (
	"errors"

	"catalog_service/internal/domain"

	"gorm.io/gorm"
)

type categoryRecord struct {
	ID   int    `gorm:"primaryKey;autoIncrement"`
	Name string `gorm:"not null"`
}

func (categoryRecord) TableName() string { return "categories" }

type productRecord struct {
	ID          int    `gorm:"primaryKey;autoIncrement"`
	Name        string `gorm:"not null"`
	Description string `gorm:"not null"`
	CategoryID  *int
	Category    *categoryRecord `gorm:"foreignKey:CategoryID"`
}

func (productRecord) TableName() string { return "products" }

// AutoMigrate creates or alters the catalog tables for the gorm drivers.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&categoryRecord{}, &productRecord{})
}

func (rec *categoryRecord) toDomain() domain.Category {
	return domain.Category{CatID: domain.IntPtr(rec.ID), Name: rec.Name}
}

func (rec *productRecord) toDomain() domain.Product {
	product := domain.Product{
		PrdID:       domain.IntPtr(rec.ID),
		Name:        rec.Name,
		Description: rec.Description,
	}
	if rec.CategoryID != nil {
		product.Category = &domain.Category{CatID: domain.IntPtr(*rec.CategoryID)}
		if rec.Category != nil {
			product.Category.Name = rec.Category.Name
		}
	}
	return product
}

func isRecordNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
