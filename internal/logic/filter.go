package logic

import (
	"strings"

	"knighty/internal/domain"
)

// DropdownLimit is how many live suggestions the search dropdown shows
const DropdownLimit = 8

// Matches reports whether the sheet matches the query: the lower-cased query
// is a substring of the title, the description, or at least one tag.
// An empty query matches everything.
func Matches(sheet *domain.Cheatsheet, query string) bool {
	q := strings.ToLower(query)
	if q == "" {
		return true
	}
	if strings.Contains(strings.ToLower(sheet.Title), q) ||
		strings.Contains(strings.ToLower(sheet.Description), q) {
		return true
	}
	for _, tag := range sheet.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}

// Search returns the sheets matching query in their original order.
// A blank query means no text filter and returns the input unchanged.
func Search(sheets []domain.Cheatsheet, query string) []domain.Cheatsheet {
	if strings.TrimSpace(query) == "" {
		return sheets
	}
	results := make([]domain.Cheatsheet, 0, len(sheets))
	for i := range sheets {
		if Matches(&sheets[i], query) {
			results = append(results, sheets[i])
		}
	}
	return results
}

// ByCategory keeps sheets in the given category; All is the identity
func ByCategory(sheets []domain.Cheatsheet, category domain.Category) []domain.Cheatsheet {
	if category == domain.CategoryAll {
		return sheets
	}
	results := make([]domain.Cheatsheet, 0, len(sheets))
	for _, s := range sheets {
		if s.Category == category {
			results = append(results, s)
		}
	}
	return results
}

// FilterFeatured keeps only featured sheets
func FilterFeatured(sheets []domain.Cheatsheet) []domain.Cheatsheet {
	results := make([]domain.Cheatsheet, 0, len(sheets))
	for _, s := range sheets {
		if s.Featured {
			results = append(results, s)
		}
	}
	return results
}

// TopResults returns the first limit matches for the dropdown. Blank
// queries produce no suggestions since the dropdown only exists for
// non-empty text.
func TopResults(sheets []domain.Cheatsheet, query string, limit int) []domain.Cheatsheet {
	if strings.TrimSpace(query) == "" || limit <= 0 {
		return nil
	}
	results := make([]domain.Cheatsheet, 0, limit)
	for i := range sheets {
		if Matches(&sheets[i], query) {
			results = append(results, sheets[i])
			if len(results) == limit {
				break
			}
		}
	}
	return results
}

// Apply derives the filtered view: text search, then category, then
// featured. Each stage narrows the previous one.
func Apply(sheets []domain.Cheatsheet, q QueryState) []domain.Cheatsheet {
	filtered := Search(sheets, q.SearchText)
	filtered = ByCategory(filtered, q.SelectedCategory)
	if q.FeaturedOnly {
		filtered = FilterFeatured(filtered)
	}
	return filtered
}
