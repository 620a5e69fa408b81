package service

import "testing"

func TestParseSortOrderDefaults(t *testing.T) {
	order := ParseSortOrder("")
	if order.Field != "position" || order.Direction != "asc" {
		t.Fatalf("expected position.asc default, got %s.%s", order.Field, order.Direction)
	}
}

func TestParseSortOrderAcceptsWhitelistedTokens(t *testing.T) {
	order := ParseSortOrder("price.desc")
	if order.Field != "price" || order.Direction != "desc" {
		t.Fatalf("expected price.desc, got %s.%s", order.Field, order.Direction)
	}
}

func TestParseSortOrderFieldOnly(t *testing.T) {
	order := ParseSortOrder("name")
	if order.Field != "name" || order.Direction != "asc" {
		t.Fatalf("expected name.asc, got %s.%s", order.Field, order.Direction)
	}
}

func TestParseSortOrderRejectsUnknownField(t *testing.T) {
	order := ParseSortOrder("1;DROP TABLE products.desc")
	if order.Field != "position" {
		t.Fatalf("unknown field must fall back to position, got %s", order.Field)
	}
	if order.Direction != "desc" {
		t.Fatalf("valid direction still applies, got %s", order.Direction)
	}
}

func TestParseSortOrderRejectsUnknownDirection(t *testing.T) {
	order := ParseSortOrder("price.sideways")
	if order.Field != "price" || order.Direction != "asc" {
		t.Fatalf("expected price.asc, got %s.%s", order.Field, order.Direction)
	}
}
