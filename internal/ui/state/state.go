package state

import (
	"knighty/internal/domain"
	"knighty/internal/i18n"
)

// AppState contains the UI state that is not owned by a service
type AppState struct {
	SessionID string
	Language  string

	// Detail view
	DetailRef   string             // id or file the detail view was opened with
	DetailSheet *domain.Cheatsheet // nil when DetailRef did not resolve

	// UI state
	ShowHelp      bool
	StatusMessage string
	StatusIsError bool
	InPager       bool // an external pager owns the terminal
}

// NewAppState creates a new application state
func NewAppState(sessionID, language string) *AppState {
	return &AppState{
		SessionID: sessionID,
		Language:  i18n.Normalize(language),
	}
}

// OpenDetail records the result of resolving a deep link. A nil sheet is
// the not-found state.
func (s *AppState) OpenDetail(ref string, sheet *domain.Cheatsheet) {
	s.DetailRef = ref
	s.DetailSheet = sheet
}

// CloseDetail leaves the detail view
func (s *AppState) CloseDetail() {
	s.DetailRef = ""
	s.DetailSheet = nil
}

// DetailFound reports whether the open detail view has a sheet
func (s *AppState) DetailFound() bool {
	return s.DetailSheet != nil
}

// SetStatus shows a message in the status bar
func (s *AppState) SetStatus(msg string, isError bool) {
	s.StatusMessage = msg
	s.StatusIsError = isError
}

// ClearStatus removes the status bar message
func (s *AppState) ClearStatus() {
	s.StatusMessage = ""
	s.StatusIsError = false
}
