package service

import "errors"

var (
	// ErrCategoryNotLoaded marks a category id that resolved to nothing: a
	// zero/invalid id or a record that does not exist. Callers must treat it
	// as "not found", never as a category with zeroed fields.
	ErrCategoryNotLoaded = errors.New("category not loaded")

	// ErrMalformedURL is returned when a canonical URL cannot be built from
	// an unparsable base link.
	ErrMalformedURL = errors.New("malformed base url")
)
