package search

import (
	"log"
	"strings"

	"knighty/internal/domain"
	"knighty/internal/ui/services/events"
)

// Service is the result dropdown shown under the search field. It is Closed
// or Open(selectedIndex) and only opens over non-empty text with matches.
type Service struct {
	state  *State
	bus    events.EventBus
	finder Finder
	limit  int
}

// NewService creates a closed dropdown
func NewService(bus events.EventBus, finder Finder, limit int) *Service {
	if bus == nil {
		bus = &events.NullBus{}
	}
	return &Service{
		state: &State{
			SelectedIndex: NoSelection,
		},
		bus:    bus,
		finder: finder,
		limit:  limit,
	}
}

// SetQuery refreshes the suggestions for new text. Any highlighted row is
// dropped since it may no longer exist.
func (s *Service) SetQuery(query string) {
	s.state.Query = query
	s.state.SelectedIndex = NoSelection

	if strings.TrimSpace(query) == "" || s.finder == nil {
		s.state.Results = nil
		s.close()
		return
	}

	s.state.Results = s.finder(query, s.limit)
	if len(s.state.Results) == 0 {
		s.close()
		return
	}
	s.open()
}

// Reopen shows the dropdown again for the current text, as when the search
// field regains focus
func (s *Service) Reopen() {
	if len(s.state.Results) > 0 {
		s.open()
	}
}

// Next highlights the following row, wrapping from the last to the first
func (s *Service) Next() {
	if !s.state.Open {
		return
	}
	n := len(s.state.Results)
	i := s.state.SelectedIndex
	if i < n-1 {
		s.setSelected(i + 1)
	} else {
		s.setSelected(0)
	}
}

// Prev highlights the preceding row, wrapping from the first to the last.
// With nothing highlighted it goes to the last row.
func (s *Service) Prev() {
	if !s.state.Open {
		return
	}
	n := len(s.state.Results)
	i := s.state.SelectedIndex
	if i > 0 {
		s.setSelected(i - 1)
	} else {
		s.setSelected(n - 1)
	}
}

// Hover highlights the row under the pointer
func (s *Service) Hover(index int) {
	if !s.state.Open || index < 0 || index >= len(s.state.Results) {
		return
	}
	s.setSelected(index)
}

// Confirm chooses the highlighted row, or the first row when none is
// highlighted, and closes the dropdown
func (s *Service) Confirm() (domain.Cheatsheet, bool) {
	if !s.state.Open || len(s.state.Results) == 0 {
		return domain.Cheatsheet{}, false
	}
	i := s.state.SelectedIndex
	if i < 0 || i >= len(s.state.Results) {
		i = 0
	}
	return s.choose(i), true
}

// Choose picks a row directly, as a pointer click does
func (s *Service) Choose(index int) (domain.Cheatsheet, bool) {
	if !s.state.Open || index < 0 || index >= len(s.state.Results) {
		return domain.Cheatsheet{}, false
	}
	return s.choose(index), true
}

// Close hides the dropdown and clears the highlight
func (s *Service) Close() {
	s.close()
}

// IsOpen reports whether the dropdown is showing
func (s *Service) IsOpen() bool {
	return s.state.Open
}

// SelectedIndex returns the highlighted row or NoSelection
func (s *Service) SelectedIndex() int {
	if !s.state.Open {
		return NoSelection
	}
	return s.state.SelectedIndex
}

// Results returns the current suggestions
func (s *Service) Results() []domain.Cheatsheet {
	return s.state.Results
}

// Query returns the text the suggestions were computed for
func (s *Service) Query() string {
	return s.state.Query
}

func (s *Service) choose(i int) domain.Cheatsheet {
	sheet := s.state.Results[i]
	log.Printf("Dropdown: chose %s (row %d of %d)", sheet.ID, i, len(s.state.Results))
	s.close()
	s.bus.Publish(ResultChosenEvent{ID: sheet.ID, File: sheet.File})
	return sheet
}

func (s *Service) setSelected(i int) {
	old := s.state.SelectedIndex
	if old == i {
		return
	}
	s.state.SelectedIndex = i
	s.bus.Publish(SelectionChangedEvent{OldIndex: old, NewIndex: i})
}

func (s *Service) open() {
	wasOpen := s.state.Open
	s.state.Open = true
	if !wasOpen {
		s.bus.Publish(DropdownOpenedEvent{Query: s.state.Query, Count: len(s.state.Results)})
	}
}

func (s *Service) close() {
	wasOpen := s.state.Open
	s.state.Open = false
	s.state.SelectedIndex = NoSelection
	if wasOpen {
		s.bus.Publish(DropdownClosedEvent{})
	}
}
