package service

import "testing"

func TestListingCacheKeySeparatesLanguages(t *testing.T) {
	sort := SortOrder{Field: "position", Direction: "asc"}

	en := listingCacheKey(7, sort, 1, "en")
	es := listingCacheKey(7, sort, 1, "es")
	if en == es {
		t.Fatalf("listing cache key must differ per language, both were %q", en)
	}

	if en != "listing:cat:7:lang:en:position.asc:page:1" {
		t.Fatalf("unexpected key shape: %q", en)
	}
}

func TestListingCacheKeySeparatesSortAndPage(t *testing.T) {
	base := listingCacheKey(7, SortOrder{Field: "position", Direction: "asc"}, 1, "en")

	if key := listingCacheKey(7, SortOrder{Field: "price", Direction: "desc"}, 1, "en"); key == base {
		t.Fatalf("sort order must change the key, both were %q", key)
	}
	if key := listingCacheKey(7, SortOrder{Field: "position", Direction: "asc"}, 2, "en"); key == base {
		t.Fatalf("page must change the key, both were %q", key)
	}
}

func TestSearchLocalizesLabelPerLanguage(t *testing.T) {
	repo := &fakeProductRepo{}
	svc := NewProductSearchService(repo, nil, NewLinkService("https://shop.example"), NewImageService("https://shop.example/img/c"))
	category := testCategory(7, 2, "dresses", true, false)

	en, err := svc.Search(category, ParseSortOrder(""), 1, "en")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	es, err := svc.Search(category, ParseSortOrder(""), 1, "es")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if en.Label != "Category: dresses" {
		t.Fatalf("unexpected english label %q", en.Label)
	}
	if es.Label != "Categoría: dresses" {
		t.Fatalf("unexpected spanish label %q", es.Label)
	}
}
