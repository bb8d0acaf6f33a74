package modes

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"knighty/internal/ui/input/types"
)

// gTimeout is how long the first g of gg waits for the second
const gTimeout = 500 * time.Millisecond

type NormalMode struct {
	lastKeyWasG bool
	lastGTime   time.Time
	now         func() time.Time
}

func NewNormalMode() *NormalMode {
	return &NormalMode{now: time.Now}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	m.lastKeyWasG = false
	return nil
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	key := msg.String()
	if key != "g" {
		m.lastKeyWasG = false
	}

	switch key {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true

	case "q":
		return []types.Action{types.QuitAction{Force: false}}, true

	case "up", "k":
		return []types.Action{types.NavigateAction{Direction: "up"}}, true

	case "down", "j":
		return []types.Action{types.NavigateAction{Direction: "down"}}, true

	case "pgup", "ctrl+u":
		return []types.Action{types.NavigateAction{Direction: "pageup"}}, true

	case "pgdown", "ctrl+d":
		return []types.Action{types.NavigateAction{Direction: "pagedown"}}, true

	case "home":
		return []types.Action{types.NavigateAction{Direction: "home"}}, true

	case "end", "G":
		return []types.Action{types.NavigateAction{Direction: "end"}}, true

	case "g":
		if m.lastKeyWasG && m.now().Sub(m.lastGTime) < gTimeout {
			// gg - go to top
			m.lastKeyWasG = false
			return []types.Action{types.NavigateAction{Direction: "home"}}, true
		}
		m.lastKeyWasG = true
		m.lastGTime = m.now()
		return nil, true

	case "ctrl+k", "/":
		return []types.Action{
			types.EnterSearchAction{},
			types.ChangeModeAction{Mode: types.ModeSearch},
		}, true

	case "enter":
		if id := ctx.CurrentSheetID(); id != "" {
			return []types.Action{
				types.OpenDetailAction{ID: id},
				types.ChangeModeAction{Mode: types.ModeDetail},
			}, true
		}
		return nil, true

	case "o":
		if ctx.CurrentSheetID() != "" {
			return []types.Action{types.OpenBrowserAction{}}, true
		}
		return nil, true

	case "v":
		if ctx.CurrentSheetID() != "" {
			return []types.Action{types.ViewEmbeddedAction{}}, true
		}
		return nil, true

	case "c", "tab":
		return []types.Action{types.CycleCategoryAction{Forward: true}}, true

	case "C", "shift+tab":
		return []types.Action{types.CycleCategoryAction{Forward: false}}, true

	case "f":
		return []types.Action{types.ToggleFeaturedAction{}}, true

	case "r":
		return []types.Action{types.ResetFiltersAction{}}, true

	case "L":
		return []types.Action{types.ToggleLanguageAction{}}, true

	case "?":
		return []types.Action{types.ToggleHelpAction{}}, true

	case "esc":
		// Clearing leftover text from a previous search
		if ctx.SearchText() != "" {
			return []types.Action{types.CancelSearchAction{}}, true
		}
		return nil, true
	}

	return nil, false
}
