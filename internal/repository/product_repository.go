package repository

import (
	"fmt"

	"storefront-catalog/internal/models"

	"gorm.io/gorm"
)

type ProductRepository interface {
	// SearchByCategory returns one page of active products for a category.
	// sortField and sortOrder must already be whitelisted by the caller.
	SearchByCategory(categoryID uint, sortField, sortOrder string, page, limit int) ([]models.Product, int64, error)
}

type productRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) SearchByCategory(categoryID uint, sortField, sortOrder string, page, limit int) ([]models.Product, int64, error) {
	query := r.db.Model(&models.Product{}).
		Where("category_id = ? AND active = ?", categoryID, true)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}

	var products []models.Product
	err := query.
		Order(fmt.Sprintf("%s %s", sortField, sortOrder)).
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&products).Error
	if err != nil {
		return nil, 0, err
	}

	return products, total, nil
}
