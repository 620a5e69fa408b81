package seed

import (
	"errors"
	"fmt"

	"storefront-catalog/internal/models"
	"storefront-catalog/pkg/logger"

	"gorm.io/gorm"
)

// EnsureShopRoot guarantees the synthetic shop-root node exists. Every real
// category tree hangs off it; the node itself never shows up in navigation.
func EnsureShopRoot(db *gorm.DB) error {
	var root models.Category
	err := db.Where("is_root_category = ? AND parent_id = 0", true).First(&root).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to verify shop root: %w", err)
	}

	root = models.Category{
		ParentID:       0,
		IsRootCategory: true,
		Active:         true,
		DepthLevel:     0,
		Name:           "Root",
		Slug:           "root",
	}
	if err := db.Create(&root).Error; err != nil {
		return fmt.Errorf("failed to create shop root: %w", err)
	}

	logger.Info("Shop root created", map[string]interface{}{"id": root.ID})
	return nil
}

// EnsureDemoCatalog seeds a small category tree with a handful of products so
// a development instance renders something out of the box.
func EnsureDemoCatalog(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Category{}).Where("is_root_category = ?", false).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	var root models.Category
	if err := db.Where("is_root_category = ? AND parent_id = 0", true).First(&root).Error; err != nil {
		return fmt.Errorf("shop root missing: %w", err)
	}

	home := models.Category{
		ParentID:   root.ID,
		Active:     true,
		DepthLevel: 1,
		Name:       "Home",
		Slug:       "home",
	}
	if err := db.Create(&home).Error; err != nil {
		return err
	}

	clothes := models.Category{
		ParentID:    home.ID,
		Active:      true,
		DepthLevel:  2,
		Name:        "Clothes",
		Slug:        "clothes",
		Description: "Everything to dress the family.",
	}
	if err := db.Create(&clothes).Error; err != nil {
		return err
	}

	dresses := models.Category{
		ParentID:   clothes.ID,
		Active:     true,
		DepthLevel: 3,
		Name:       "Dresses",
		Slug:       "dresses",
	}
	if err := db.Create(&dresses).Error; err != nil {
		return err
	}

	products := []models.Product{
		{Name: "Summer Dress", Slug: "summer-dress", Price: 28.90, Active: true, Position: 1, CategoryID: dresses.ID},
		{Name: "Evening Dress", Slug: "evening-dress", Price: 54.50, Active: true, Position: 2, CategoryID: dresses.ID},
		{Name: "Plain Shirt", Slug: "plain-shirt", Price: 19.90, Active: true, Position: 1, CategoryID: clothes.ID},
	}
	for i := range products {
		if err := db.Create(&products[i]).Error; err != nil {
			return err
		}
	}

	logger.Info("Demo catalog seeded", map[string]interface{}{
		"categories": 3,
		"products":   len(products),
	})
	return nil
}
