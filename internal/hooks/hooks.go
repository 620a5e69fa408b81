package hooks

import (
	"fmt"
	"sync"

	"storefront-catalog/internal/models"
	"storefront-catalog/pkg/logger"
)

// CategoryContentFilter can substitute the category view model before it is
// rendered. Returning nil means "no replacement"; returning an error is
// equivalent.
type CategoryContentFilter func(models.CategoryView) (*models.CategoryView, error)

// Registry holds the content filters registered by extensions. It is a single
// narrow extension point, not a general event bus.
type Registry struct {
	mu      sync.RWMutex
	filters []CategoryContentFilter
}

func NewRegistry() *Registry {
	return &Registry{}
}

func (r *Registry) Register(filter CategoryContentFilter) {
	if filter == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.filters = append(r.filters, filter)
}

// FilterCategoryContent runs the registered filters against the view model.
// The first filter that returns a replacement wins; a failing or panicking
// filter is logged and skipped, and the original content is retained when no
// filter produces anything.
func (r *Registry) FilterCategoryContent(view models.CategoryView) models.CategoryView {
	r.mu.RLock()
	filters := make([]CategoryContentFilter, len(r.filters))
	copy(filters, r.filters)
	r.mu.RUnlock()

	for _, filter := range filters {
		replacement, err := runFilter(filter, view)
		if err != nil {
			logger.Error(err, "Category content filter failed", map[string]interface{}{
				"category_id": view.ID,
			})
			continue
		}
		if replacement != nil {
			return *replacement
		}
	}

	return view
}

func runFilter(filter CategoryContentFilter, view models.CategoryView) (replacement *models.CategoryView, err error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			replacement = nil
			err = fmt.Errorf("filter panicked: %v", recovered)
		}
	}()
	return filter(view)
}
