package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"knighty/internal/ui/input/types"
)

// DetailMode shows a single sheet, or the not-found state for a bad link
type DetailMode struct{}

func NewDetailMode() *DetailMode {
	return &DetailMode{}
}

func (m *DetailMode) Name() string {
	return "detail"
}

func (m *DetailMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *DetailMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *DetailMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true

	case "esc", "backspace", "h", "left", "b":
		return []types.Action{
			types.CloseDetailAction{},
			types.ChangeModeAction{Mode: types.ModeNormal},
		}, true

	case "q":
		return []types.Action{types.QuitAction{Force: false}}, true

	case "?":
		return []types.Action{types.ToggleHelpAction{}}, true

	case "L":
		return []types.Action{types.ToggleLanguageAction{}}, true
	}

	// The remaining keys act on the sheet, which a not-found page lacks
	if !ctx.DetailFound() {
		return nil, true
	}

	switch msg.String() {
	case "o", "enter":
		return []types.Action{types.OpenBrowserAction{}}, true
	case "v":
		return []types.Action{types.ViewEmbeddedAction{}}, true
	}
	return nil, true
}
