package domain

import "strings"

// Category is the fixed set of catalog groupings
type Category string

// CategoryAll is the sentinel meaning "no category filter"
const CategoryAll Category = "All"

const (
	CategorySystem      Category = "System"
	CategoryDevelopment Category = "Development"
	CategoryNetwork     Category = "Network"
	CategoryDatabase    Category = "Database"
	CategoryDevOps      Category = "DevOps"
	CategoryEditor      Category = "Editor"
	CategoryData        Category = "Data"
	CategoryMedia       Category = "Media"
	CategoryAI          Category = "AI"
	CategoryAutomation  Category = "Automation"
)

var categories = []Category{
	CategoryAll,
	CategorySystem,
	CategoryDevelopment,
	CategoryNetwork,
	CategoryDatabase,
	CategoryDevOps,
	CategoryEditor,
	CategoryData,
	CategoryMedia,
	CategoryAI,
	CategoryAutomation,
}

// Categories returns the ordered category list, starting with All
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// IsValid reports whether c is a real category (All excluded)
func (c Category) IsValid() bool {
	if c == CategoryAll {
		return false
	}
	for _, known := range categories {
		if known == c {
			return true
		}
	}
	return false
}

// Key returns the lower-cased form used for translation lookups
func (c Category) Key() string {
	return strings.ToLower(string(c))
}

// ParseCategory matches a category name case-insensitively.
// Empty input maps to All.
func ParseCategory(s string) (Category, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return CategoryAll, true
	}
	for _, known := range categories {
		if strings.EqualFold(string(known), s) {
			return known, true
		}
	}
	return Category(s), false
}

// Cheatsheet is one catalog entry pointing at a static document
type Cheatsheet struct {
	ID          string   `yaml:"id" json:"id"`
	Title       string   `yaml:"title" json:"title"`
	Description string   `yaml:"description" json:"description"`
	Category    Category `yaml:"category" json:"category"`
	Icon        string   `yaml:"icon" json:"icon"`
	Color       string   `yaml:"color" json:"color"`
	Tags        []string `yaml:"tags" json:"tags"`
	File        string   `yaml:"file" json:"file"`
	Featured    bool     `yaml:"featured" json:"featured"`
}

// DeepLink is the shareable detail-view path for the sheet
func (c *Cheatsheet) DeepLink() string {
	return "/cheatsheet/" + c.ID
}

// DocumentPath is the URL path of the static document
func (c *Cheatsheet) DocumentPath() string {
	return "/htmls/" + c.File
}

// ShortTags returns the first n tags and how many were left out
func (c *Cheatsheet) ShortTags(n int) ([]string, int) {
	if n < 0 {
		n = 0
	}
	if len(c.Tags) <= n {
		return c.Tags, 0
	}
	return c.Tags[:n], len(c.Tags) - n
}

// Stats summarizes the catalog for the landing header
type Stats struct {
	Cheatsheets int `json:"cheatsheets"`
	Categories  int `json:"categories"`
	Languages   int `json:"languages"`
	Featured    int `json:"featured"`
}
