package service

import (
	"errors"
	"fmt"

	"storefront-catalog/internal/models"
	"storefront-catalog/internal/repository"
	"storefront-catalog/pkg/cache"

	"gorm.io/gorm"
)

// CategoryService resolves catalog categories for the storefront. Lookups are
// read-only and cached per category and language.
type CategoryService struct {
	categoryRepo repository.CategoryRepository
	cache        *cache.Cache
	maxTreeDepth int
}

func NewCategoryService(categoryRepo repository.CategoryRepository, cacheService *cache.Cache, maxTreeDepth int) *CategoryService {
	if maxTreeDepth <= 0 {
		maxTreeDepth = 64
	}
	return &CategoryService{
		categoryRepo: categoryRepo,
		cache:        cacheService,
		maxTreeDepth: maxTreeDepth,
	}
}

// Resolve loads the category with the given id localized for the given
// language. A zero id or a missing record yields ErrCategoryNotLoaded; any
// other storage failure propagates unchanged.
func (s *CategoryService) Resolve(id uint, languageID uint) (*models.Category, error) {
	if id == 0 {
		return nil, ErrCategoryNotLoaded
	}

	if s.cache != nil {
		var category models.Category
		if err := s.cache.GetCachedCategory(id, languageID, &category); err == nil {
			return &category, nil
		}
	}

	category, err := s.categoryRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotLoaded
		}
		return nil, fmt.Errorf("failed to load category %d: %w", id, err)
	}

	localized := category.Localized(languageID)

	if s.cache != nil {
		s.cache.CacheCategory(id, languageID, &localized)
	}

	return &localized, nil
}

// Ancestors returns the parent chain of a category ordered from the immediate
// parent up to the absolute root, localized for the given language. The walk
// is capped at the configured tree depth and keeps a visited set, so a
// malformed chain with a cycle terminates with whatever was collected.
func (s *CategoryService) Ancestors(category *models.Category, languageID uint) ([]models.Category, error) {
	if category == nil {
		return nil, nil
	}

	var chain []models.Category
	seen := map[uint]bool{category.ID: true}
	parentID := category.ParentID

	for depth := 0; parentID != 0; depth++ {
		if depth >= s.maxTreeDepth {
			return chain, fmt.Errorf("category %d parent chain exceeds depth %d", category.ID, s.maxTreeDepth)
		}
		if seen[parentID] {
			return chain, fmt.Errorf("category %d has a cyclic parent chain", category.ID)
		}
		seen[parentID] = true

		parent, err := s.categoryRepo.GetByID(parentID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				// Dangling parent reference; the chain just ends here.
				return chain, nil
			}
			return chain, fmt.Errorf("failed to load ancestor %d: %w", parentID, err)
		}

		chain = append(chain, parent.Localized(languageID))
		parentID = parent.ParentID
	}

	return chain, nil
}

// Subcategories returns the active children of a category, localized, in the
// configured catalog order.
func (s *CategoryService) Subcategories(category *models.Category, languageID uint) ([]models.Category, error) {
	if category == nil {
		return nil, nil
	}

	children, err := s.categoryRepo.SubCategories(category.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load subcategories of %d: %w", category.ID, err)
	}

	for i := range children {
		children[i] = children[i].Localized(languageID)
	}
	return children, nil
}

// CheckAccess runs the group-intersection predicate for the viewer. It is
// intentionally not cached: the layout decision re-runs it independently of
// the initial access evaluation.
func (s *CategoryService) CheckAccess(category *models.Category, viewer Viewer) (bool, error) {
	if category == nil {
		return false, nil
	}
	return s.categoryRepo.CheckAccess(category.ID, viewer.GroupIDs)
}
