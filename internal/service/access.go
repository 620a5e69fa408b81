package service

import "storefront-catalog/internal/models"

// AccessDecision is the outcome of evaluating whether a viewer may see a
// category page.
type AccessDecision int

const (
	AccessNotFound AccessDecision = iota
	AccessForbidden
	AccessAllowed
)

func (d AccessDecision) String() string {
	switch d {
	case AccessNotFound:
		return "not_found"
	case AccessForbidden:
		return "forbidden"
	case AccessAllowed:
		return "allowed"
	default:
		return "unknown"
	}
}

// EvaluateAccess decides the fate of a category request. The ordering is
// strict: a missing or inactive category is reported as not found before any
// access check runs, so hidden categories are indistinguishable from absent
// ones.
func (s *CategoryService) EvaluateAccess(category *models.Category, viewer Viewer) (AccessDecision, error) {
	if category == nil || !category.Active {
		return AccessNotFound, nil
	}

	allowed, err := s.CheckAccess(category, viewer)
	if err != nil {
		return AccessNotFound, err
	}
	if !allowed {
		return AccessForbidden, nil
	}

	return AccessAllowed, nil
}
