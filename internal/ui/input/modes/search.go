package modes

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"knighty/internal/ui/input/types"
)

// SearchMode is the full-screen search overlay with its result dropdown
type SearchMode struct {
	TextInputMode
}

func NewSearchMode(ti *textinput.Model) *SearchMode {
	return &SearchMode{
		TextInputMode: NewTextInputMode(types.ModeSearch, "search", ti),
	}
}

func (m *SearchMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "down", "ctrl+n":
		return []types.Action{types.DropdownNavigateAction{Direction: "next"}}, true

	case "up", "ctrl+p":
		return []types.Action{types.DropdownNavigateAction{Direction: "prev"}}, true

	case "enter":
		if ctx.DropdownOpen() {
			return []types.Action{types.DropdownConfirmAction{}}, true
		}
		// Nothing to pick: browse the filtered list instead
		return m.TextInputMode.HandleKey(msg, ctx)

	case "esc":
		return []types.Action{
			types.CancelSearchAction{},
			types.ChangeModeAction{Mode: types.ModeNormal},
		}, true

	case "ctrl+k":
		// Already focused; refocus the field
		return []types.Action{types.EnterSearchAction{}}, true
	}

	return m.TextInputMode.HandleKey(msg, ctx)
}
