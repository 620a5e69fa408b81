package service

import (
	"fmt"
	"strings"

	"storefront-catalog/internal/models"
)

// LinkService builds public storefront URLs. Category links follow the
// `/category/{id}-{slug}` convention; pagination is never part of the base
// link and is appended by the canonical builder only.
type LinkService struct {
	siteURL string
}

func NewLinkService(siteURL string) *LinkService {
	return &LinkService{siteURL: strings.TrimRight(siteURL, "/")}
}

func (l *LinkService) CategoryLink(category *models.Category) string {
	if category == nil {
		return ""
	}
	return l.CategoryLinkFor(category.ID, category.Slug)
}

func (l *LinkService) CategoryLinkFor(id uint, slug string) string {
	if slug == "" {
		return fmt.Sprintf("%s/category/%d", l.siteURL, id)
	}
	return fmt.Sprintf("%s/category/%d-%s", l.siteURL, id, slug)
}

func (l *LinkService) ProductLink(product *models.Product) string {
	if product == nil {
		return ""
	}
	if product.Slug == "" {
		return fmt.Sprintf("%s/product/%d", l.siteURL, product.ID)
	}
	return fmt.Sprintf("%s/product/%d-%s", l.siteURL, product.ID, product.Slug)
}
