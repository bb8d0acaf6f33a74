package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"knighty/internal/ui/input/modes"
	"knighty/internal/ui/input/types"
)

type Handler struct {
	currentMode types.Mode
	modes       map[types.Mode]types.ModeHandler
	textInput   *textinput.Model // Shared text input for text modes
}

func New() *Handler {
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 100

	h := &Handler{
		currentMode: types.ModeNormal,
		textInput:   &ti,
		modes:       make(map[types.Mode]types.ModeHandler),
	}

	h.modes[types.ModeNormal] = modes.NewNormalMode()
	h.modes[types.ModeSearch] = modes.NewSearchMode(h.textInput)
	h.modes[types.ModeDetail] = modes.NewDetailMode()

	return h
}

// HandleKey routes a key to the current mode and applies any mode change it
// asks for. Mode changes are not returned to the caller.
func (h *Handler) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, tea.Cmd) {
	handler := h.modes[h.currentMode]
	if handler == nil {
		return nil, nil
	}

	actions, consumed := handler.HandleKey(msg, ctx)

	if !consumed && !h.isTextMode(h.currentMode) {
		return nil, nil
	}

	var allActions []types.Action
	for _, action := range actions {
		if changeMode, ok := action.(types.ChangeModeAction); ok {
			allActions = append(allActions, h.switchMode(changeMode.Mode, ctx)...)
		} else {
			allActions = append(allActions, action)
		}
	}

	var cmd tea.Cmd
	if h.isTextMode(h.currentMode) && !consumed {
		*h.textInput, cmd = h.textInput.Update(msg)
		// Always report the text so the view stays in sync
		allActions = append(allActions, types.UpdateTextAction{Text: h.textInput.Value()})
	}

	return allActions, cmd
}

func (h *Handler) switchMode(mode types.Mode, ctx types.Context) []types.Action {
	var out []types.Action
	if cur := h.modes[h.currentMode]; cur != nil {
		out = append(out, cur.Exit(ctx)...)
	}
	h.currentMode = mode
	if next := h.modes[h.currentMode]; next != nil {
		out = append(out, next.Enter(ctx)...)
	}
	return out
}

// FocusInput gives the search field keyboard focus
func (h *Handler) FocusInput() tea.Cmd {
	if !h.isTextMode(h.currentMode) {
		return nil
	}
	return h.textInput.Focus()
}

// InputFocused reports whether typed keys reach the text field
func (h *Handler) InputFocused() bool {
	return h.textInput.Focused()
}

// SetText replaces the field contents without emitting an action
func (h *Handler) SetText(text string) {
	h.textInput.SetValue(text)
	h.textInput.CursorEnd()
}

func (h *Handler) CurrentMode() types.Mode {
	return h.currentMode
}

func (h *Handler) isTextMode(mode types.Mode) bool {
	return mode == types.ModeSearch
}

// Update handles non-keyboard messages for text input
func (h *Handler) Update(msg tea.Msg) tea.Cmd {
	if h.isTextMode(h.currentMode) {
		var cmd tea.Cmd
		*h.textInput, cmd = h.textInput.Update(msg)
		return cmd
	}
	return nil
}

// ChangeMode switches mode outside of key handling, as deep links do
func (h *Handler) ChangeMode(mode types.Mode, ctx types.Context) []types.Action {
	return h.switchMode(mode, ctx)
}

// GetTextInput returns the text input model
func (h *Handler) GetTextInput() *textinput.Model {
	if h == nil {
		return nil
	}
	return h.textInput
}
