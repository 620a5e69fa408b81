package service

import (
	"storefront-catalog/internal/models"
	"storefront-catalog/pkg/navigation"
)

// breadcrumbVisible decides whether a category may appear as a crumb. The
// synthetic shop-root node (IsRootCategory), anything hanging directly off the
// absolute root sentinel (ParentID == 0) and inactive nodes are suppressed.
// Each node is judged on its own: an inactive ancestor between two active ones
// hides only itself, never the rest of the chain.
func breadcrumbVisible(category models.Category) bool {
	return category.ParentID != 0 && !category.IsRootCategory && category.Active
}

// BuildBreadcrumb assembles the trail for a category page. The prefix (site
// home and friends) is passed through untouched; ancestors are appended from
// the one closest to the absolute root down to the category's parent, and the
// category itself comes last, all under the same visibility rule.
func BuildBreadcrumb(prefix []navigation.Breadcrumb, ancestors []models.Category, category *models.Category, links *LinkService) []navigation.Breadcrumb {
	trail := make([]navigation.Breadcrumb, 0, len(prefix)+len(ancestors)+1)
	trail = append(trail, prefix...)

	// Ancestors arrive parent-first; the trail wants root-first.
	for i := len(ancestors) - 1; i >= 0; i-- {
		ancestor := ancestors[i]
		if !breadcrumbVisible(ancestor) {
			continue
		}
		trail = append(trail, navigation.Breadcrumb{
			Title: ancestor.Name,
			URL:   links.CategoryLink(&ancestor),
		})
	}

	if category != nil && breadcrumbVisible(*category) {
		trail = append(trail, navigation.Breadcrumb{
			Title: category.Name,
			URL:   links.CategoryLink(category),
		})
	}

	return trail
}
