package lang

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// Default is the fallback language code used when no explicit language is
// configured. The value follows BCP 47 conventions.
const Default = "en"

var errEmptyCode = errors.New("language code cannot be empty")

// Normalize validates the provided language code and returns it in a
// canonicalised form (lowercase language, uppercase region). Supported formats
// follow the common `ll` or `ll-RR` pattern.
func Normalize(code string) (string, error) {
	trimmed := strings.TrimSpace(code)
	if trimmed == "" {
		return "", errEmptyCode
	}

	parts := strings.Split(trimmed, "-")
	if len(parts) > 2 {
		return "", fmt.Errorf("invalid language code %q", code)
	}

	language := strings.ToLower(parts[0])
	if len(language) < 2 || len(language) > 8 {
		return "", fmt.Errorf("invalid language code %q", code)
	}
	for _, r := range language {
		if !unicode.IsLetter(r) {
			return "", fmt.Errorf("invalid language code %q", code)
		}
	}

	if len(parts) == 1 {
		return language, nil
	}

	region := parts[1]
	if len(region) < 2 || len(region) > 3 {
		return "", fmt.Errorf("invalid language region in %q", code)
	}
	for _, r := range region {
		if !unicode.IsLetter(r) {
			return "", fmt.Errorf("invalid language region in %q", code)
		}
	}

	return language + "-" + strings.ToUpper(region), nil
}

// Message keys used by the storefront.
const (
	MsgCategoryForbidden = "category.forbidden"
	MsgPageNotFound      = "page.not_found"
	MsgCategoryLabel     = "category.listing_label"
)

var catalog = map[string]map[string]string{
	"en": {
		MsgCategoryForbidden: "You do not have access to this category.",
		MsgPageNotFound:      "The page you are looking for was not found.",
		MsgCategoryLabel:     "Category: %s",
	},
	"es": {
		MsgCategoryForbidden: "No tienes acceso a esta categoría.",
		MsgPageNotFound:      "La página que buscas no fue encontrada.",
		MsgCategoryLabel:     "Categoría: %s",
	},
	"ru": {
		MsgCategoryForbidden: "У вас нет доступа к этой категории.",
		MsgPageNotFound:      "Запрашиваемая страница не найдена.",
		MsgCategoryLabel:     "Категория: %s",
	},
}

// T resolves a message key for the given language code, falling back to the
// default language and finally to the key itself when no translation exists.
func T(code, key string, args ...interface{}) string {
	normalized, err := Normalize(code)
	if err != nil {
		normalized = Default
	}

	// Region-specific codes fall back to their base language.
	if _, ok := catalog[normalized]; !ok {
		if idx := strings.Index(normalized, "-"); idx > 0 {
			normalized = normalized[:idx]
		}
	}

	messages, ok := catalog[normalized]
	if !ok {
		messages = catalog[Default]
	}

	format, ok := messages[key]
	if !ok {
		format = catalog[Default][key]
	}
	if format == "" {
		return key
	}

	if len(args) == 0 {
		return format
	}
	return fmt.Sprintf(format, args...)
}
