package models

import "storefront-catalog/pkg/navigation"

// View models assembled per request for the category page. They carry only
// presentation data and are safe to serialize as-is.

type ImageView struct {
	ID     uint   `json:"id"`
	URL    string `json:"url"`
	Legend string `json:"legend,omitempty"`
}

type CategoryView struct {
	ID          uint       `json:"id"`
	ParentID    uint       `json:"parent_id"`
	DepthLevel  int        `json:"depth_level"`
	Name        string     `json:"name"`
	Slug        string     `json:"slug"`
	Description string     `json:"description"`
	URL         string     `json:"url"`
	Image       *ImageView `json:"image,omitempty"`
}

type ProductView struct {
	ID    uint       `json:"id"`
	Name  string     `json:"name"`
	Slug  string     `json:"slug"`
	Price float64    `json:"price"`
	URL   string     `json:"url"`
	Image *ImageView `json:"image,omitempty"`
}

// ListingView is the product listing block of the category page.
type ListingView struct {
	Label          string        `json:"label"`
	Products       []ProductView `json:"products"`
	Total          int64         `json:"total"`
	Page           int           `json:"page"`
	SortField      string        `json:"sort_field"`
	SortOrder      string        `json:"sort_order"`
	RenderedHeader string        `json:"rendered_products_header,omitempty"`
}

// PageView carries template metadata for the rendering layer.
type PageView struct {
	Name        string          `json:"page_name"`
	Title       string          `json:"title"`
	Template    string          `json:"template"`
	Layout      string          `json:"layout"`
	BodyClasses map[string]bool `json:"body_classes"`
}

// CategoryPage is the full view model returned for a category request.
type CategoryPage struct {
	Page          PageView                `json:"page"`
	Category      *CategoryView           `json:"category,omitempty"`
	Subcategories []CategoryView          `json:"subcategories,omitempty"`
	Breadcrumb    []navigation.Breadcrumb `json:"breadcrumb,omitempty"`
	CanonicalURL  string                  `json:"canonical_url,omitempty"`
	Listing       *ListingView            `json:"listing,omitempty"`
	Error         string                  `json:"error,omitempty"`
}
