package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"storefront-catalog/internal/config"
	"storefront-catalog/internal/middleware"
	"storefront-catalog/internal/service"
	"storefront-catalog/pkg/logger"

	"github.com/gin-gonic/gin"
)

// CategoryHandler serves the storefront category listing page.
type CategoryHandler struct {
	listingService *service.ListingService
	cfg            *config.Config
}

func NewCategoryHandler(listingService *service.ListingService, cfg *config.Config) *CategoryHandler {
	return &CategoryHandler{listingService: listingService, cfg: cfg}
}

// Show resolves a category page. The category id comes from the `:id` path
// segment (which may carry a `{id}-{slug}` tail) or the `id_category` query
// parameter; anything non-numeric coerces to 0 and lands on the 404 branch.
func (h *CategoryHandler) Show(c *gin.Context) {
	req := service.PageRequest{
		CategoryID: h.categoryID(c),
		LanguageID: h.languageID(c),
		Page:       middleware.PageFromContext(c),
		Sort:       service.ParseSortOrder(c.Query("order")),
	}
	viewer := middleware.ViewerFromContext(c, h.cfg)

	page, decision, err := h.listingService.BuildCategoryPage(req, viewer)
	if err != nil {
		logger.Error(err, "Failed to build category page", map[string]interface{}{
			"category_id": req.CategoryID,
		})
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build category page"})
		return
	}

	status := http.StatusOK
	switch decision {
	case service.AccessNotFound:
		status = http.StatusNotFound
	case service.AccessForbidden:
		status = http.StatusForbidden
	}

	if status != http.StatusOK {
		c.Header("X-Robots-Tag", "noindex")
	} else if page.CanonicalURL != "" {
		c.Header("Link", `<`+page.CanonicalURL+`>; rel="canonical"`)
	}

	c.JSON(status, page)
}

func (h *CategoryHandler) categoryID(c *gin.Context) uint {
	raw := c.Param("id")
	if raw == "" {
		raw = c.Query("id_category")
	}

	// Friendly URLs look like `12-summer-dresses`; only the id prefix counts.
	if idx := strings.IndexByte(raw, '-'); idx > 0 {
		raw = raw[:idx]
	}

	id, err := strconv.Atoi(raw)
	if err != nil || id < 0 {
		return 0
	}
	return uint(id)
}

func (h *CategoryHandler) languageID(c *gin.Context) uint {
	raw := c.Query("lang")
	if raw == "" {
		return h.cfg.DefaultLanguageID
	}

	id, err := strconv.Atoi(raw)
	if err != nil || id < 1 {
		return h.cfg.DefaultLanguageID
	}
	return uint(id)
}
