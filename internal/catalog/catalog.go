// Package catalog holds the compiled-in list of cheat sheets and the
// invariants every catalog must satisfy.
package catalog

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"knighty/internal/domain"
)

//go:embed cheatsheets.yaml
var defaultCatalog []byte

// Catalog is an immutable, ordered set of cheat sheets
type Catalog struct {
	sheets []domain.Cheatsheet
	byID   map[string]int
	byFile map[string]int
}

// Default returns the compiled-in catalog. It panics if the embedded data is
// broken, which is a build defect rather than a runtime condition.
func Default() *Catalog {
	c, err := Parse(defaultCatalog)
	if err != nil {
		panic(fmt.Sprintf("embedded catalog: %v", err))
	}
	return c
}

// LoadFile reads an alternative catalog from a YAML file
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return c, nil
}

// Parse decodes YAML catalog data and validates it
func Parse(data []byte) (*Catalog, error) {
	var sheets []domain.Cheatsheet
	if err := yaml.Unmarshal(data, &sheets); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	return New(sheets)
}

// New builds a catalog from entries in display order
func New(sheets []domain.Cheatsheet) (*Catalog, error) {
	if err := Validate(sheets); err != nil {
		return nil, err
	}

	c := &Catalog{
		sheets: make([]domain.Cheatsheet, len(sheets)),
		byID:   make(map[string]int, len(sheets)),
		byFile: make(map[string]int, len(sheets)),
	}
	for i, s := range sheets {
		s.Tags = append([]string(nil), s.Tags...)
		c.sheets[i] = s
		c.byID[s.ID] = i
		// First entry wins when two sheets share a document
		if _, ok := c.byFile[s.File]; !ok {
			c.byFile[s.File] = i
		}
	}
	return c, nil
}

// Validate checks id uniqueness, category membership and non-empty file
func Validate(sheets []domain.Cheatsheet) error {
	seen := make(map[string]bool, len(sheets))
	for i, s := range sheets {
		if strings.TrimSpace(s.ID) == "" {
			return fmt.Errorf("%w: entry %d has an empty id", domain.ErrInvalidCatalog, i)
		}
		if seen[s.ID] {
			return fmt.Errorf("%w: duplicate id %q", domain.ErrInvalidCatalog, s.ID)
		}
		seen[s.ID] = true
		if !s.Category.IsValid() {
			return fmt.Errorf("%w: entry %q has unknown category %q", domain.ErrInvalidCatalog, s.ID, s.Category)
		}
		if strings.TrimSpace(s.File) == "" {
			return fmt.Errorf("%w: entry %q has no file", domain.ErrInvalidCatalog, s.ID)
		}
	}
	return nil
}

// All returns a copy of the entries in catalog order
func (c *Catalog) All() []domain.Cheatsheet {
	out := make([]domain.Cheatsheet, len(c.sheets))
	copy(out, c.sheets)
	return out
}

// Len returns the number of entries
func (c *Catalog) Len() int {
	return len(c.sheets)
}

// Get looks a sheet up by id
func (c *Catalog) Get(id string) (domain.Cheatsheet, bool) {
	i, ok := c.byID[id]
	if !ok {
		return domain.Cheatsheet{}, false
	}
	return c.sheets[i], true
}

// Resolve finds a sheet by id, falling back to its document filename.
// Unknown references return domain.ErrNotFound.
func (c *Catalog) Resolve(ref string) (domain.Cheatsheet, error) {
	ref = strings.TrimSpace(ref)
	if i, ok := c.byID[ref]; ok {
		return c.sheets[i], nil
	}
	if i, ok := c.byFile[ref]; ok {
		return c.sheets[i], nil
	}
	return domain.Cheatsheet{}, fmt.Errorf("resolve %q: %w", ref, domain.ErrNotFound)
}

// Featured returns featured sheets in catalog order
func (c *Catalog) Featured() []domain.Cheatsheet {
	var out []domain.Cheatsheet
	for _, s := range c.sheets {
		if s.Featured {
			out = append(out, s)
		}
	}
	return out
}

// Stats counts sheets and categories. languages is supplied by the caller
// since the catalog knows nothing about locales.
func (c *Catalog) Stats(languages int) domain.Stats {
	return domain.Stats{
		Cheatsheets: len(c.sheets),
		Categories:  len(domain.Categories()) - 1,
		Languages:   languages,
		Featured:    len(c.Featured()),
	}
}
