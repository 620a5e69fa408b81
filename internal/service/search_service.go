package service

import (
	"fmt"

	"storefront-catalog/internal/models"
	"storefront-catalog/internal/repository"
	"storefront-catalog/pkg/cache"
	"storefront-catalog/pkg/lang"
)

const defaultPageSize = 20

// ProductSearchService runs the product listing query for a category page.
// The category id and sort order key the search; everything else about the
// products is consumed opaquely by the caller.
type ProductSearchService struct {
	productRepo repository.ProductRepository
	cache       *cache.Cache
	links       *LinkService
	images      *ImageService
}

func NewProductSearchService(productRepo repository.ProductRepository, cacheService *cache.Cache, links *LinkService, images *ImageService) *ProductSearchService {
	return &ProductSearchService{
		productRepo: productRepo,
		cache:       cacheService,
		links:       links,
		images:      images,
	}
}

// listingCacheKey includes the language because the cached view carries the
// localized listing label.
func listingCacheKey(categoryID uint, sort SortOrder, page int, language string) string {
	return fmt.Sprintf("listing:cat:%d:lang:%s:%s.%s:page:%d", categoryID, language, sort.Field, sort.Direction, page)
}

// Search builds the listing block for a category. Results are cached for a
// short window keyed by category, language, sort order and page.
func (s *ProductSearchService) Search(category *models.Category, sort SortOrder, page int, language string) (*models.ListingView, error) {
	if category == nil {
		return nil, ErrCategoryNotLoaded
	}
	if page < 1 {
		page = 1
	}

	cacheKey := listingCacheKey(category.ID, sort, page, language)
	if s.cache != nil {
		var cached models.ListingView
		if err := s.cache.GetCachedListing(cacheKey, &cached); err == nil {
			return &cached, nil
		}
	}

	products, total, err := s.productRepo.SearchByCategory(category.ID, sort.Field, sort.Direction, page, defaultPageSize)
	if err != nil {
		return nil, fmt.Errorf("product search for category %d failed: %w", category.ID, err)
	}

	views := make([]models.ProductView, 0, len(products))
	for i := range products {
		product := &products[i]
		views = append(views, models.ProductView{
			ID:    product.ID,
			Name:  product.Name,
			Slug:  product.Slug,
			Price: product.Price,
			URL:   s.links.ProductLink(product),
			Image: s.images.ProductImage(product),
		})
	}

	listing := &models.ListingView{
		Label:          lang.T(language, lang.MsgCategoryLabel, category.Name),
		Products:       views,
		Total:          total,
		Page:           page,
		SortField:      sort.Field,
		SortOrder:      sort.Direction,
		RenderedHeader: fmt.Sprintf("category-header-%d", category.ID),
	}

	if s.cache != nil {
		s.cache.CacheListing(cacheKey, listing)
	}

	return listing, nil
}
