package service

import (
	"errors"
	"fmt"

	"storefront-catalog/internal/hooks"
	"storefront-catalog/internal/models"
	"storefront-catalog/pkg/lang"
	"storefront-catalog/pkg/logger"
	"storefront-catalog/pkg/navigation"
)

const (
	templateListing   = "catalog/listing/category"
	templateNotFound  = "errors/404"
	templateForbidden = "errors/forbidden"

	layoutListing   = "layouts/layout-left-column"
	layoutFullWidth = "layouts/layout-full-width"
)

// PageRequest carries the request-derived inputs of a category page.
type PageRequest struct {
	CategoryID uint
	LanguageID uint
	Page       int
	Sort       SortOrder
}

// ListingService assembles the category page view model. It owns no logic of
// its own beyond composing category resolution, access evaluation, breadcrumb
// and canonical construction, and the product search pipeline.
type ListingService struct {
	categories *CategoryService
	search     *ProductSearchService
	presenter  *CategoryPresenter
	links      *LinkService
	filters    *hooks.Registry
	viewers    *ViewerService

	siteName string
	siteURL  string
}

func NewListingService(
	categories *CategoryService,
	search *ProductSearchService,
	presenter *CategoryPresenter,
	links *LinkService,
	filters *hooks.Registry,
	viewers *ViewerService,
	siteName, siteURL string,
) *ListingService {
	return &ListingService{
		categories: categories,
		search:     search,
		presenter:  presenter,
		links:      links,
		filters:    filters,
		viewers:    viewers,
		siteName:   siteName,
		siteURL:    siteURL,
	}
}

// BuildCategoryPage resolves the category and produces the page view model
// together with the access decision that drives the HTTP status. Only hard
// storage faults surface as errors; not-found and forbidden outcomes are
// regular pages.
func (s *ListingService) BuildCategoryPage(req PageRequest, viewer Viewer) (*models.CategoryPage, AccessDecision, error) {
	if s.viewers != nil {
		viewer = s.viewers.WithStoredGroups(viewer)
	}

	category, err := s.categories.Resolve(req.CategoryID, req.LanguageID)
	if err != nil && !errors.Is(err, ErrCategoryNotLoaded) {
		return nil, AccessNotFound, err
	}

	decision, err := s.categories.EvaluateAccess(category, viewer)
	if err != nil {
		return nil, AccessNotFound, err
	}

	switch decision {
	case AccessNotFound:
		return s.notFoundPage(viewer), decision, nil
	case AccessForbidden:
		return s.forbiddenPage(category, viewer), decision, nil
	}

	page, err := s.listingPage(category, req, viewer)
	if err != nil {
		return nil, decision, err
	}
	return page, decision, nil
}

func (s *ListingService) notFoundPage(viewer Viewer) *models.CategoryPage {
	return &models.CategoryPage{
		Page: models.PageView{
			Name:        "pagenotfound",
			Title:       lang.T(viewer.Language, lang.MsgPageNotFound),
			Template:    templateNotFound,
			Layout:      layoutFullWidth,
			BodyClasses: map[string]bool{"pagenotfound": true},
		},
	}
}

func (s *ListingService) forbiddenPage(category *models.Category, viewer Viewer) *models.CategoryPage {
	return &models.CategoryPage{
		Page: models.PageView{
			Name:        "category",
			Title:       category.Name,
			Template:    templateForbidden,
			Layout:      layoutFullWidth,
			BodyClasses: bodyClasses(category),
		},
		Error: lang.T(viewer.Language, lang.MsgCategoryForbidden),
	}
}

func (s *ListingService) listingPage(category *models.Category, req PageRequest, viewer Viewer) (*models.CategoryPage, error) {
	categoryView := s.presenter.Present(category)
	if s.filters != nil {
		filtered := s.filters.FilterCategoryContent(*categoryView)
		categoryView = &filtered
	}

	subcategories, err := s.categories.Subcategories(category, req.LanguageID)
	if err != nil {
		return nil, err
	}

	ancestors, err := s.categories.Ancestors(category, req.LanguageID)
	if err != nil {
		// A broken parent chain degrades the trail, never the page.
		logger.Warn("Breadcrumb chain incomplete", map[string]interface{}{
			"category_id": category.ID,
			"reason":      err.Error(),
		})
	}
	breadcrumb := BuildBreadcrumb(
		navigation.Home(s.siteName, s.siteURL),
		ancestors,
		category,
		s.links,
	)

	canonical, err := BuildCanonicalURL(s.links.CategoryLink(category), req.Page)
	if err != nil {
		// Canonical is omitted rather than failing the page.
		logger.Warn("Canonical URL omitted", map[string]interface{}{
			"category_id": category.ID,
			"reason":      err.Error(),
		})
		canonical = ""
	}

	listing, err := s.search.Search(category, req.Sort, req.Page, viewer.Language)
	if err != nil {
		return nil, err
	}

	// Independent re-check of the access predicate for layout selection; the
	// initial evaluation is deliberately not reused here.
	layout := layoutListing
	if allowed, err := s.categories.CheckAccess(category, viewer); err != nil || !allowed {
		layout = layoutFullWidth
	}

	return &models.CategoryPage{
		Page: models.PageView{
			Name:        "category",
			Title:       category.Name,
			Template:    templateListing,
			Layout:      layout,
			BodyClasses: bodyClasses(category),
		},
		Category:      categoryView,
		Subcategories: s.presenter.PresentAll(subcategories),
		Breadcrumb:    breadcrumb,
		CanonicalURL:  canonical,
		Listing:       listing,
	}, nil
}

func bodyClasses(category *models.Category) map[string]bool {
	classes := map[string]bool{}
	if category == nil {
		return classes
	}
	classes[fmt.Sprintf("category-id-%d", category.ID)] = true
	classes[fmt.Sprintf("category-%s", category.Name)] = true
	classes[fmt.Sprintf("category-id-parent-%d", category.ParentID)] = true
	classes[fmt.Sprintf("category-depth-level-%d", category.DepthLevel)] = true
	return classes
}
