package service

import (
	"errors"
	"net/url"
	"strings"
	"testing"
)

func TestCanonicalOmitsPageOnFirstPage(t *testing.T) {
	for _, page := range []int{0, 1} {
		canonical, err := BuildCanonicalURL("https://shop.example/category/3-women?page=4", page)
		if err != nil {
			t.Fatalf("unexpected error for page %d: %v", page, err)
		}
		if strings.Contains(canonical, "page=") {
			t.Fatalf("expected page parameter to be dropped for page %d, got %q", page, canonical)
		}
	}
}

func TestCanonicalOverwritesExistingPage(t *testing.T) {
	canonical, err := BuildCanonicalURL("https://shop.example/category/3-women?page=2&utm_source=mail", 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	parsed, err := url.Parse(canonical)
	if err != nil {
		t.Fatalf("canonical did not parse: %v", err)
	}
	values := parsed.Query()

	if got := values["page"]; len(got) != 1 || got[0] != "5" {
		t.Fatalf("expected exactly one page=5, got %v", got)
	}
	if got := values.Get("utm_source"); got != "mail" {
		t.Fatalf("expected unrelated parameter preserved, got %q", got)
	}
}

func TestCanonicalIsIdempotent(t *testing.T) {
	base := "https://shop.example/category/9-shoes?color=red&page=3"

	first, err := BuildCanonicalURL(base, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := BuildCanonicalURL(first, 3)
	if err != nil {
		t.Fatalf("unexpected error on second pass: %v", err)
	}

	if first != second {
		t.Fatalf("canonical not idempotent: %q vs %q", first, second)
	}
}

func TestCanonicalEmptyBaseYieldsEmptyCanonical(t *testing.T) {
	canonical, err := BuildCanonicalURL("", 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if canonical != "" {
		t.Fatalf("expected empty canonical for unloaded category, got %q", canonical)
	}
}

func TestCanonicalRejectsMalformedBase(t *testing.T) {
	cases := []string{
		"http://[::1",
		"https://shop.example/category?x=%zz",
	}
	for _, base := range cases {
		if _, err := BuildCanonicalURL(base, 2); !errors.Is(err, ErrMalformedURL) {
			t.Fatalf("expected ErrMalformedURL for %q, got %v", base, err)
		}
	}
}
