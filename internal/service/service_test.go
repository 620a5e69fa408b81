package service

import (
	"sort"

	"storefront-catalog/internal/models"

	"gorm.io/gorm"
)

// In-memory repository fakes shared by the service tests.

type fakeCategoryRepo struct {
	categories  map[uint]*models.Category
	accessFn    func(categoryID uint, groupIDs []uint) (bool, error)
	accessCalls int
}

func (f *fakeCategoryRepo) GetByID(id uint) (*models.Category, error) {
	if category, ok := f.categories[id]; ok {
		clone := *category
		return &clone, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeCategoryRepo) SubCategories(categoryID uint) ([]models.Category, error) {
	var children []models.Category
	for _, category := range f.categories {
		if category.ParentID == categoryID && category.Active {
			children = append(children, *category)
		}
	}
	sort.Slice(children, func(i, j int) bool {
		if children[i].Position != children[j].Position {
			return children[i].Position < children[j].Position
		}
		return children[i].ID < children[j].ID
	})
	return children, nil
}

func (f *fakeCategoryRepo) CheckAccess(categoryID uint, groupIDs []uint) (bool, error) {
	f.accessCalls++
	if f.accessFn != nil {
		return f.accessFn(categoryID, groupIDs)
	}
	return true, nil
}

type fakeProductRepo struct {
	products    []models.Product
	searchCalls int
	err         error
}

func (f *fakeProductRepo) SearchByCategory(categoryID uint, sortField, sortOrder string, page, limit int) ([]models.Product, int64, error) {
	f.searchCalls++
	if f.err != nil {
		return nil, 0, f.err
	}

	var matched []models.Product
	for _, product := range f.products {
		if product.CategoryID == categoryID && product.Active {
			matched = append(matched, product)
		}
	}
	return matched, int64(len(matched)), nil
}

func testCategory(id, parentID uint, name string, active, isRoot bool) *models.Category {
	return &models.Category{
		ID:             id,
		ParentID:       parentID,
		Name:           name,
		Slug:           name,
		Active:         active,
		IsRootCategory: isRoot,
	}
}
