package service

import (
	"errors"
	"testing"
)

func newTestCategoryService(repo *fakeCategoryRepo) *CategoryService {
	return NewCategoryService(repo, nil, 64)
}

func TestEvaluateAccessNilCategoryIsNotFound(t *testing.T) {
	repo := &fakeCategoryRepo{}
	svc := newTestCategoryService(repo)

	decision, err := svc.EvaluateAccess(nil, Anonymous(1, "en"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if decision != AccessNotFound {
		t.Fatalf("expected not found, got %s", decision)
	}
	if repo.accessCalls != 0 {
		t.Fatalf("access predicate must not run for a missing category, ran %d times", repo.accessCalls)
	}
}

func TestEvaluateAccessInactiveBeatsForbidden(t *testing.T) {
	repo := &fakeCategoryRepo{
		accessFn: func(uint, []uint) (bool, error) { return false, nil },
	}
	svc := newTestCategoryService(repo)

	inactive := testCategory(3, 2, "hidden", false, false)
	decision, err := svc.EvaluateAccess(inactive, Anonymous(1, "en"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if decision != AccessNotFound {
		t.Fatalf("inactive category must be not found before the access check, got %s", decision)
	}
	if repo.accessCalls != 0 {
		t.Fatalf("access predicate must not run for an inactive category")
	}
}

func TestEvaluateAccessDeniedIsForbidden(t *testing.T) {
	repo := &fakeCategoryRepo{
		accessFn: func(uint, []uint) (bool, error) { return false, nil },
	}
	svc := newTestCategoryService(repo)

	decision, err := svc.EvaluateAccess(testCategory(3, 2, "vip", true, false), Anonymous(1, "en"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if decision != AccessForbidden {
		t.Fatalf("expected forbidden, got %s", decision)
	}
}

func TestEvaluateAccessPropagatesPredicateError(t *testing.T) {
	storeErr := errors.New("connection reset")
	repo := &fakeCategoryRepo{
		accessFn: func(uint, []uint) (bool, error) { return false, storeErr },
	}
	svc := newTestCategoryService(repo)

	_, err := svc.EvaluateAccess(testCategory(3, 2, "vip", true, false), Anonymous(1, "en"))
	if !errors.Is(err, storeErr) {
		t.Fatalf("expected the predicate error to surface, got %v", err)
	}
}

func TestEvaluateAccessAllowed(t *testing.T) {
	repo := &fakeCategoryRepo{}
	svc := newTestCategoryService(repo)

	decision, err := svc.EvaluateAccess(testCategory(3, 2, "public", true, false), Anonymous(1, "en"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if decision != AccessAllowed {
		t.Fatalf("expected allowed, got %s", decision)
	}
}
