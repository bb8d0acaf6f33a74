package navigation

import (
	"log"

	"knighty/internal/ui/services/events"
)

// chromeLines is the space taken by the header, filter bar, status and help
const chromeLines = 9

// Service handles focus transitions and the cursor over the filtered list
type Service struct {
	state   *State
	bus     events.EventBus
	countFn func() int // number of rows in the current view
}

// NewService creates a new navigation service
func NewService(bus events.EventBus) *Service {
	if bus == nil {
		bus = &events.NullBus{}
	}
	return &Service{
		state: &State{
			Focus:          FocusBrowsing,
			ViewportHeight: 20, // Default, will be updated
		},
		bus: bus,
	}
}

// SetCountFunction sets the function reporting how many rows are listed
func (s *Service) SetCountFunction(fn func() int) {
	s.countFn = fn
}

// Focus returns the current focus state
func (s *Service) Focus() Focus {
	return s.state.Focus
}

// EnterSearch moves Browsing to SearchFocused. The listing scrolls to the
// top and the caller focuses the input after its settle delay. Entering
// again while already focused only refocuses the input.
func (s *Service) EnterSearch() Transition {
	t := Transition{From: s.state.Focus, To: FocusSearch, FocusInput: true}
	if s.state.Focus == FocusSearch {
		return t
	}

	s.moveToStart()
	t.ScrollToTop = true
	s.setFocus(FocusSearch)
	return t
}

// CancelSearch moves SearchFocused back to Browsing. Non-empty text is
// cleared along with the dropdown selection.
func (s *Service) CancelSearch(hasText bool) Transition {
	t := Transition{From: s.state.Focus, To: FocusBrowsing, ClearSearch: hasText}
	s.setFocus(FocusBrowsing)
	return t
}

// LeaveSearch returns to Browsing without touching the text, as happens when
// the text is cleared by editing
func (s *Service) LeaveSearch() Transition {
	t := Transition{From: s.state.Focus, To: FocusBrowsing}
	s.setFocus(FocusBrowsing)
	return t
}

// GetCursor returns current cursor position
func (s *Service) GetCursor() int {
	return s.state.Cursor
}

// GetViewportOffset returns current viewport offset
func (s *Service) GetViewportOffset() int {
	return s.state.ViewportOffset
}

// GetViewportHeight returns current viewport height in rows
func (s *Service) GetViewportHeight() int {
	return s.state.ViewportHeight
}

// SetViewportHeight updates the viewport from the terminal height. Each row
// takes linesPerRow terminal lines.
func (s *Service) SetViewportHeight(height, linesPerRow int) {
	if linesPerRow < 1 {
		linesPerRow = 1
	}
	rows := (height - chromeLines) / linesPerRow
	if rows < 1 {
		rows = 1
	}
	s.state.ViewportHeight = rows
	s.ensureVisible()
}

// Navigate handles navigation in a direction
func (s *Service) Navigate(direction Direction) {
	oldCursor := s.state.Cursor

	switch direction {
	case DirectionUp:
		s.moveUp()
	case DirectionDown:
		s.moveDown()
	case DirectionPageUp:
		s.pageUp()
	case DirectionPageDown:
		s.pageDown()
	case DirectionHome:
		s.moveToStart()
	case DirectionEnd:
		s.moveToEnd()
	}

	s.publishMove(oldCursor)
}

// MoveToIndex moves cursor to specific index
func (s *Service) MoveToIndex(index int) {
	oldCursor := s.state.Cursor
	s.state.Cursor = s.clampIndex(index)
	s.ensureVisible()
	s.publishMove(oldCursor)
}

// Clamp pulls the cursor back inside the list after the view shrank
func (s *Service) Clamp() {
	s.MoveToIndex(s.state.Cursor)
}

func (s *Service) setFocus(f Focus) {
	if s.state.Focus == f {
		return
	}
	old := s.state.Focus
	s.state.Focus = f
	log.Printf("Focus: %s -> %s", old, f)
	s.bus.Publish(FocusChangedEvent{From: old, To: f})
}

func (s *Service) publishMove(oldCursor int) {
	if oldCursor != s.state.Cursor {
		s.bus.Publish(CursorMovedEvent{
			OldIndex: oldCursor,
			NewIndex: s.state.Cursor,
		})
	}
}

// Internal navigation methods
func (s *Service) moveUp() {
	if s.state.Cursor > 0 {
		s.state.Cursor--
		s.ensureVisible()
	}
}

func (s *Service) moveDown() {
	s.refreshMax()
	if s.state.Cursor < s.state.MaxIndex {
		s.state.Cursor++
		s.ensureVisible()
	}
}

func (s *Service) pageUp() {
	pageSize := s.pageSize()
	s.state.Cursor = s.clampIndex(s.state.Cursor - pageSize)

	s.state.ViewportOffset -= pageSize
	if s.state.ViewportOffset < 0 {
		s.state.ViewportOffset = 0
	}
	s.ensureVisible()
}

func (s *Service) pageDown() {
	s.state.Cursor = s.clampIndex(s.state.Cursor + s.pageSize())
	s.ensureVisible()
}

func (s *Service) moveToStart() {
	s.state.Cursor = 0
	s.state.ViewportOffset = 0
}

func (s *Service) moveToEnd() {
	s.refreshMax()
	s.state.Cursor = s.state.MaxIndex
	s.ensureVisible()
}

func (s *Service) pageSize() int {
	if s.state.ViewportHeight > 1 {
		return s.state.ViewportHeight - 1
	}
	return 1
}

func (s *Service) refreshMax() {
	if s.countFn == nil {
		return
	}
	s.state.MaxIndex = s.countFn() - 1
	if s.state.MaxIndex < 0 {
		s.state.MaxIndex = 0
	}
}

func (s *Service) clampIndex(index int) int {
	if index < 0 {
		return 0
	}
	s.refreshMax()
	if index > s.state.MaxIndex {
		return s.state.MaxIndex
	}
	return index
}

func (s *Service) ensureVisible() {
	offset := s.state.ViewportOffset
	if s.state.Cursor < s.state.ViewportOffset {
		s.state.ViewportOffset = s.state.Cursor
	} else if s.state.Cursor >= s.state.ViewportOffset+s.state.ViewportHeight {
		s.state.ViewportOffset = s.state.Cursor - s.state.ViewportHeight + 1
	}
	if offset != s.state.ViewportOffset {
		s.bus.Publish(ViewportChangedEvent{
			Offset: s.state.ViewportOffset,
			Height: s.state.ViewportHeight,
		})
	}
}
