package service

import "strings"

// SortOrder is the request-derived product ordering token pair.
type SortOrder struct {
	Field     string
	Direction string
}

const (
	defaultSortField     = "position"
	defaultSortDirection = "asc"
)

var allowedSortFields = map[string]bool{
	"position":   true,
	"name":       true,
	"price":      true,
	"created_at": true,
}

// ParseSortOrder parses a `field.direction` request token (e.g. "price.desc")
// into a whitelisted sort order. Anything unrecognized falls back to the
// catalog default so request input never reaches the SQL ORDER BY unchecked.
func ParseSortOrder(raw string) SortOrder {
	order := SortOrder{Field: defaultSortField, Direction: defaultSortDirection}

	raw = strings.TrimSpace(strings.ToLower(raw))
	if raw == "" {
		return order
	}

	parts := strings.SplitN(raw, ".", 2)
	if allowedSortFields[parts[0]] {
		order.Field = parts[0]
	}
	if len(parts) == 2 && (parts[1] == "asc" || parts[1] == "desc") {
		order.Direction = parts[1]
	}

	return order
}
