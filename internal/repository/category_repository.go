package repository

import (
	"storefront-catalog/internal/models"

	"gorm.io/gorm"
)

type CategoryRepository interface {
	GetByID(id uint) (*models.Category, error)
	SubCategories(categoryID uint) ([]models.Category, error)
	// CheckAccess reports whether a viewer holding the given groups may see
	// the category. A category without group restrictions is public.
	CheckAccess(categoryID uint, groupIDs []uint) (bool, error)
}

type categoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) GetByID(id uint) (*models.Category, error) {
	var category models.Category
	err := r.db.
		Preload("Translations").
		First(&category, id).Error
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) SubCategories(categoryID uint) ([]models.Category, error) {
	var categories []models.Category
	err := r.db.
		Preload("Translations").
		Where("parent_id = ? AND active = ?", categoryID, true).
		Order("position ASC, id ASC").
		Find(&categories).Error
	return categories, err
}

func (r *categoryRepository) CheckAccess(categoryID uint, groupIDs []uint) (bool, error) {
	var restricted int64
	err := r.db.Table("category_groups").
		Where("category_id = ?", categoryID).
		Count(&restricted).Error
	if err != nil {
		return false, err
	}
	if restricted == 0 {
		return true, nil
	}

	if len(groupIDs) == 0 {
		return false, nil
	}

	var allowed int64
	err = r.db.Table("category_groups").
		Where("category_id = ? AND customer_group_id IN ?", categoryID, groupIDs).
		Count(&allowed).Error
	if err != nil {
		return false, err
	}
	return allowed > 0, nil
}
