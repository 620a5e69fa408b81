package service

import (
	"testing"

	"storefront-catalog/internal/models"
	"storefront-catalog/pkg/navigation"
)

func trailTitles(trail []navigation.Breadcrumb) []string {
	titles := make([]string, 0, len(trail))
	for _, crumb := range trail {
		titles = append(titles, crumb.Title)
	}
	return titles
}

func TestBreadcrumbSkipsShopRootAndAbsoluteRoot(t *testing.T) {
	links := NewLinkService("https://shop.example")

	root := *testCategory(1, 0, "root", true, false)
	shopRoot := *testCategory(2, 1, "shop", true, true)
	clothes := *testCategory(3, 2, "clothes", true, false)
	dresses := testCategory(4, 3, "dresses", true, false)

	// Parent-first chain, as the ancestor walk produces it.
	ancestors := []models.Category{clothes, shopRoot, root}

	trail := BuildBreadcrumb(nil, ancestors, dresses, links)

	got := trailTitles(trail)
	want := []string{"clothes", "dresses"}
	if len(got) != len(want) {
		t.Fatalf("expected trail %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected trail %v, got %v", want, got)
		}
	}
}

func TestBreadcrumbExcludesCategoryHangingOffAbsoluteRoot(t *testing.T) {
	links := NewLinkService("https://shop.example")
	orphan := testCategory(9, 0, "orphan", true, false)

	trail := BuildBreadcrumb(nil, nil, orphan, links)
	if len(trail) != 0 {
		t.Fatalf("expected empty trail for category with parent 0, got %v", trailTitles(trail))
	}
}

func TestBreadcrumbHidesInactiveAncestorWithoutTruncating(t *testing.T) {
	links := NewLinkService("https://shop.example")

	root := *testCategory(1, 0, "root", true, false)
	active := *testCategory(2, 1, "active", true, false)
	hidden := *testCategory(3, 2, "hidden", false, false)
	leaf := testCategory(4, 3, "leaf", true, false)

	ancestors := []models.Category{hidden, active, root}

	got := trailTitles(BuildBreadcrumb(nil, ancestors, leaf, links))
	want := []string{"active", "leaf"}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestBreadcrumbPassesPrefixThrough(t *testing.T) {
	links := NewLinkService("https://shop.example")
	prefix := navigation.Home("My Shop", "https://shop.example")

	trail := BuildBreadcrumb(prefix, nil, nil, links)
	if len(trail) != 1 || trail[0].Title != "My Shop" || trail[0].URL != "https://shop.example" {
		t.Fatalf("expected prefix to pass through unchanged, got %+v", trail)
	}
}

func TestBreadcrumbLinksPointAtCategories(t *testing.T) {
	links := NewLinkService("https://shop.example")

	root := *testCategory(1, 0, "root", true, false)
	parent := *testCategory(5, 1, "men", true, false)
	leaf := testCategory(7, 5, "shirts", true, false)

	trail := BuildBreadcrumb(nil, []models.Category{parent, root}, leaf, links)
	if len(trail) != 2 {
		t.Fatalf("expected two crumbs, got %v", trailTitles(trail))
	}
	if trail[0].URL != "https://shop.example/category/5-men" {
		t.Fatalf("unexpected ancestor url %q", trail[0].URL)
	}
	if trail[1].URL != "https://shop.example/category/7-shirts" {
		t.Fatalf("unexpected leaf url %q", trail[1].URL)
	}
}
