package types

// Navigation actions
type NavigateAction struct {
	Direction string // "up", "down", "pageup", "pagedown", "home", "end"
}

func (a NavigateAction) Type() string { return "navigate" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
	Data interface{} // Optional data for the mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Search focus actions
type EnterSearchAction struct{}

func (a EnterSearchAction) Type() string { return "enter_search" }

type CancelSearchAction struct{}

func (a CancelSearchAction) Type() string { return "cancel_search" }

// Text input actions
type UpdateTextAction struct {
	Text string
}

func (a UpdateTextAction) Type() string { return "update_text" }

type SubmitTextAction struct {
	Text string
	Mode Mode // Which mode submitted the text
}

func (a SubmitTextAction) Type() string { return "submit_text" }

// Dropdown actions
type DropdownNavigateAction struct {
	Direction string // "next" or "prev"
}

func (a DropdownNavigateAction) Type() string { return "dropdown_navigate" }

type DropdownConfirmAction struct{}

func (a DropdownConfirmAction) Type() string { return "dropdown_confirm" }

// Sheet actions
type OpenDetailAction struct {
	ID string
}

func (a OpenDetailAction) Type() string { return "open_detail" }

type CloseDetailAction struct{}

func (a CloseDetailAction) Type() string { return "close_detail" }

type OpenBrowserAction struct{}

func (a OpenBrowserAction) Type() string { return "open_browser" }

type ViewEmbeddedAction struct{}

func (a ViewEmbeddedAction) Type() string { return "view_embedded" }

// Filter actions
type CycleCategoryAction struct {
	Forward bool
}

func (a CycleCategoryAction) Type() string { return "cycle_category" }

type ToggleFeaturedAction struct{}

func (a ToggleFeaturedAction) Type() string { return "toggle_featured" }

type ResetFiltersAction struct{}

func (a ResetFiltersAction) Type() string { return "reset_filters" }

// Misc actions
type ToggleLanguageAction struct{}

func (a ToggleLanguageAction) Type() string { return "toggle_language" }

type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }
