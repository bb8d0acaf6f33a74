package logic

import (
	"sync"

	"knighty/internal/catalog"
	"knighty/internal/domain"
)

// MemorySheetStore is an in-memory, read-only SheetStore backed by a catalog
type MemorySheetStore struct {
	mu      sync.RWMutex
	catalog *catalog.Catalog
	sheets  []domain.Cheatsheet
}

// NewMemorySheetStore creates a store over the given catalog
func NewMemorySheetStore(c *catalog.Catalog) *MemorySheetStore {
	return &MemorySheetStore{
		catalog: c,
		sheets:  c.All(),
	}
}

func (s *MemorySheetStore) GetSheet(id string) *domain.Cheatsheet {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sheet, ok := s.catalog.Get(id)
	if !ok {
		return nil
	}
	return &sheet
}

func (s *MemorySheetStore) GetAllSheets() []domain.Cheatsheet {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.Cheatsheet, len(s.sheets))
	for i, sheet := range s.sheets {
		sheet.Tags = append([]string(nil), sheet.Tags...)
		result[i] = sheet
	}
	return result
}

func (s *MemorySheetStore) Resolve(ref string) (domain.Cheatsheet, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.catalog.Resolve(ref)
}

func (s *MemorySheetStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sheets)
}

// Catalog returns the underlying catalog
func (s *MemorySheetStore) Catalog() *catalog.Catalog {
	return s.catalog
}
