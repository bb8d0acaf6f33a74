package navigation

// State holds all navigation-related state
type State struct {
	Focus          Focus
	Cursor         int
	ViewportOffset int
	ViewportHeight int
	MaxIndex       int
}

// Focus is the top-level keyboard state
type Focus int

const (
	// FocusBrowsing is the normal listing
	FocusBrowsing Focus = iota
	// FocusSearch replaces the listing with the full-screen search overlay
	FocusSearch
)

func (f Focus) String() string {
	if f == FocusSearch {
		return "search-focused"
	}
	return "browsing"
}

// Transition describes the side effects of a focus change that the caller
// must carry out
type Transition struct {
	From Focus
	To   Focus
	// ScrollToTop is already applied to the cursor when set
	ScrollToTop bool
	// FocusInput asks for the search field to take input once scrolling
	// has settled
	FocusInput bool
	// ClearSearch asks for the search text and dropdown to be reset
	ClearSearch bool
}

// Changed reports whether the focus state moved
func (t Transition) Changed() bool {
	return t.From != t.To
}

// Direction represents movement directions
type Direction string

const (
	DirectionUp       Direction = "up"
	DirectionDown     Direction = "down"
	DirectionPageUp   Direction = "pageup"
	DirectionPageDown Direction = "pagedown"
	DirectionHome     Direction = "home"
	DirectionEnd      Direction = "end"
)

// Event types for navigation changes
type CursorMovedEvent struct {
	OldIndex int
	NewIndex int
}

type ViewportChangedEvent struct {
	Offset int
	Height int
}

type FocusChangedEvent struct {
	From Focus
	To   Focus
}
