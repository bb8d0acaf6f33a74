package ui

import (
	"time"

	"knighty/internal/eventbus"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// focusInputMsg fires once the scroll to top has settled after entering
// search focus mode
type focusInputMsg struct {
	seq int
}

// sheetPagerMsg contains the result of viewing a document in the pager
type sheetPagerMsg struct {
	sheetID string
	err     error
}

// clearStatusMsg clears the status bar
type clearStatusMsg struct {
	seq int
}

// pauseRenderingMsg signals to pause Bubble Tea rendering
type pauseRenderingMsg struct{}

// resumeRenderingMsg signals to resume Bubble Tea rendering
type resumeRenderingMsg struct{}

// statusTimeout is how long a status message stays up
const statusTimeout = 3 * time.Second
