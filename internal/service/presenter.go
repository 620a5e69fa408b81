package service

import (
	"storefront-catalog/internal/models"

	"github.com/microcosm-cc/bluemonday"
)

// CategoryPresenter turns category entities into view models. Descriptions are
// merchant-edited HTML, so they pass through a sanitization policy before
// reaching any template.
type CategoryPresenter struct {
	policy *bluemonday.Policy
	links  *LinkService
	images *ImageService
}

func NewCategoryPresenter(links *LinkService, images *ImageService) *CategoryPresenter {
	return &CategoryPresenter{
		policy: bluemonday.UGCPolicy(),
		links:  links,
		images: images,
	}
}

func (p *CategoryPresenter) Present(category *models.Category) *models.CategoryView {
	if category == nil {
		return nil
	}
	return &models.CategoryView{
		ID:          category.ID,
		ParentID:    category.ParentID,
		DepthLevel:  category.DepthLevel,
		Name:        category.Name,
		Slug:        category.Slug,
		Description: p.policy.Sanitize(category.Description),
		URL:         p.links.CategoryLink(category),
		Image:       p.images.CategoryImage(category),
	}
}

func (p *CategoryPresenter) PresentAll(categories []models.Category) []models.CategoryView {
	views := make([]models.CategoryView, 0, len(categories))
	for i := range categories {
		if view := p.Present(&categories[i]); view != nil {
			views = append(views, *view)
		}
	}
	return views
}
