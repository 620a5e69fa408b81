package service

import (
	"errors"
	"testing"

	"storefront-catalog/internal/models"
)

func TestResolveZeroIDIsNotLoaded(t *testing.T) {
	svc := newTestCategoryService(&fakeCategoryRepo{})

	if _, err := svc.Resolve(0, 1); !errors.Is(err, ErrCategoryNotLoaded) {
		t.Fatalf("expected ErrCategoryNotLoaded for id 0, got %v", err)
	}
}

func TestResolveMissingRecordIsNotLoaded(t *testing.T) {
	svc := newTestCategoryService(&fakeCategoryRepo{categories: map[uint]*models.Category{}})

	if _, err := svc.Resolve(99, 1); !errors.Is(err, ErrCategoryNotLoaded) {
		t.Fatalf("expected ErrCategoryNotLoaded for missing record, got %v", err)
	}
}

func TestResolveAppliesTranslation(t *testing.T) {
	category := testCategory(7, 3, "Dresses", true, false)
	category.Translations = []models.CategoryTranslation{
		{CategoryID: 7, LanguageID: 2, Name: "Robes", Slug: "robes"},
	}
	svc := newTestCategoryService(&fakeCategoryRepo{
		categories: map[uint]*models.Category{7: category},
	})

	resolved, err := svc.Resolve(7, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resolved.Name != "Robes" || resolved.Slug != "robes" {
		t.Fatalf("expected translated fields, got name=%q slug=%q", resolved.Name, resolved.Slug)
	}

	// The default language stays untouched for other requests.
	fallback, err := svc.Resolve(7, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fallback.Name != "Dresses" {
		t.Fatalf("expected default-language name, got %q", fallback.Name)
	}
}

func TestAncestorsWalksParentFirst(t *testing.T) {
	repo := &fakeCategoryRepo{categories: map[uint]*models.Category{
		1: testCategory(1, 0, "root", true, false),
		2: testCategory(2, 1, "shop", true, true),
		3: testCategory(3, 2, "clothes", true, false),
		4: testCategory(4, 3, "dresses", true, false),
	}}
	svc := newTestCategoryService(repo)

	leaf, _ := svc.Resolve(4, 1)
	chain, err := svc.Ancestors(leaf, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(chain) != 3 {
		t.Fatalf("expected 3 ancestors, got %d", len(chain))
	}
	if chain[0].ID != 3 || chain[1].ID != 2 || chain[2].ID != 1 {
		t.Fatalf("expected parent-first order [3 2 1], got [%d %d %d]", chain[0].ID, chain[1].ID, chain[2].ID)
	}
}

func TestAncestorsStopsOnCycle(t *testing.T) {
	a := testCategory(10, 11, "a", true, false)
	b := testCategory(11, 10, "b", true, false)
	svc := newTestCategoryService(&fakeCategoryRepo{
		categories: map[uint]*models.Category{10: a, 11: b},
	})

	chain, err := svc.Ancestors(a, 1)
	if err == nil {
		t.Fatalf("expected an error for a cyclic parent chain")
	}
	if len(chain) != 1 || chain[0].ID != 11 {
		t.Fatalf("expected the partial chain collected before the cycle, got %d entries", len(chain))
	}
}

func TestAncestorsRespectsDepthCap(t *testing.T) {
	categories := map[uint]*models.Category{}
	// Chain 1←2←3←4←5, deeper than the cap below.
	for id := uint(1); id <= 5; id++ {
		categories[id] = testCategory(id, id-1, "node", true, false)
	}
	svc := NewCategoryService(&fakeCategoryRepo{categories: categories}, nil, 2)

	chain, err := svc.Ancestors(categories[5], 1)
	if err == nil {
		t.Fatalf("expected an error when the chain exceeds the depth cap")
	}
	if len(chain) != 2 {
		t.Fatalf("expected 2 collected ancestors, got %d", len(chain))
	}
}

func TestAncestorsToleratesDanglingParent(t *testing.T) {
	leaf := testCategory(4, 3, "leaf", true, false)
	svc := newTestCategoryService(&fakeCategoryRepo{
		categories: map[uint]*models.Category{4: leaf},
	})

	chain, err := svc.Ancestors(leaf, 1)
	if err != nil {
		t.Fatalf("a dangling parent reference must end the chain quietly, got %v", err)
	}
	if len(chain) != 0 {
		t.Fatalf("expected empty chain, got %d entries", len(chain))
	}
}
