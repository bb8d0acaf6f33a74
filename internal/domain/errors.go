package domain

import "errors"

var (
	// ErrNotFound is returned when an id or filename matches no catalog entry
	ErrNotFound = errors.New("cheat sheet not found")

	// ErrInvalidCatalog is returned when catalog data breaks an invariant
	ErrInvalidCatalog = errors.New("invalid catalog")

	// ErrUnsupportedLanguage is returned when a locale outside en/ar is requested
	ErrUnsupportedLanguage = errors.New("unsupported language")
)
