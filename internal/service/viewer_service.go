package service

import (
	"storefront-catalog/internal/repository"
	"storefront-catalog/pkg/logger"
)

// ViewerService enriches the request viewer with the group memberships stored
// for the customer. Tokens may carry group claims already; the stored groups
// are merged in so a stale token cannot drop a membership.
type ViewerService struct {
	customerRepo repository.CustomerRepository
}

func NewViewerService(customerRepo repository.CustomerRepository) *ViewerService {
	return &ViewerService{customerRepo: customerRepo}
}

func (s *ViewerService) WithStoredGroups(viewer Viewer) Viewer {
	if viewer.CustomerID == 0 {
		return viewer
	}

	stored, err := s.customerRepo.GroupIDs(viewer.CustomerID)
	if err != nil {
		logger.Warn("Failed to load customer groups", map[string]interface{}{
			"customer_id": viewer.CustomerID,
			"reason":      err.Error(),
		})
		return viewer
	}

	known := make(map[uint]bool, len(viewer.GroupIDs))
	for _, id := range viewer.GroupIDs {
		known[id] = true
	}
	for _, id := range stored {
		if !known[id] {
			viewer.GroupIDs = append(viewer.GroupIDs, id)
		}
	}
	return viewer
}
