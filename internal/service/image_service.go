package service

import (
	"fmt"
	"strings"

	"storefront-catalog/internal/models"
)

// ImageService resolves media URLs for catalog imagery. It never touches the
// filesystem; image storage and resizing belong to the media pipeline.
type ImageService struct {
	mediaBaseURL string
}

func NewImageService(mediaBaseURL string) *ImageService {
	return &ImageService{mediaBaseURL: strings.TrimRight(mediaBaseURL, "/")}
}

// CategoryImage returns the image view for a category, or nil when the
// category carries no imagery.
func (s *ImageService) CategoryImage(category *models.Category) *models.ImageView {
	if category == nil || category.ImageID == 0 {
		return nil
	}
	return &models.ImageView{
		ID:     category.ImageID,
		URL:    fmt.Sprintf("%s/%d/category_default.jpg", s.mediaBaseURL, category.ImageID),
		Legend: category.Name,
	}
}

func (s *ImageService) ProductImage(product *models.Product) *models.ImageView {
	if product == nil || product.ImageID == 0 {
		return nil
	}
	return &models.ImageView{
		ID:     product.ImageID,
		URL:    fmt.Sprintf("%s/%d/home_default.jpg", s.mediaBaseURL, product.ImageID),
		Legend: product.Name,
	}
}
