package ui

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"knighty/internal/config"
	"knighty/internal/domain"
	"knighty/internal/eventbus"
	"knighty/internal/i18n"
	"knighty/internal/logic"
	"knighty/internal/ui/input"
	inputtypes "knighty/internal/ui/input/types"
	"knighty/internal/ui/services/events"
	"knighty/internal/ui/services/navigation"
	"knighty/internal/ui/services/search"
	"knighty/internal/ui/state"
	"knighty/internal/ui/views"
)

// Model represents the UI state
type Model struct {
	bus    eventbus.EventBus
	config *config.Config
	state  *state.AppState
	bundle *i18n.Bundle
	store  logic.SheetStore
	stats  domain.Stats

	width  int
	height int

	// Services
	uiBus        *events.Bus
	query        *logic.QueryController
	dropdown     *search.Service
	nav          *navigation.Service
	renderer     *views.Renderer
	help         *HelpRenderer
	inputHandler *input.Handler
	sheetOps     *SheetOps

	focusSeq  int // invalidates stale focus ticks
	statusSeq int // invalidates stale status clears

	// Program reference for terminal management
	program *tea.Program

	readyMarker bool // e2e runs wait for the marker
}

// ReadyEnv, when set, appends a marker to every frame for the e2e driver
const ReadyEnv = "KNIGHTY_E2E_TEST"

// NewModel creates a new UI model
func NewModel(bus eventbus.EventBus, cfg *config.Config, store logic.SheetStore, bundle *i18n.Bundle, sessionID string) *Model {
	m := &Model{
		bus:          bus,
		config:       cfg,
		state:        state.NewAppState(sessionID, cfg.Language()),
		bundle:       bundle,
		store:        store,
		uiBus:        events.NewBus(),
		renderer:     views.NewRenderer(bundle),
		help:         NewHelpRenderer(),
		inputHandler: input.New(),
		sheetOps:     NewSheetOps(cfg.DocsDir, cfg.BaseURL),
		readyMarker:  os.Getenv(ReadyEnv) != "",
	}

	m.stats = domain.Stats{
		Cheatsheets: store.Count(),
		Categories:  len(domain.Categories()) - 1,
		Languages:   len(i18n.Supported()),
	}
	for _, s := range store.GetAllSheets() {
		if s.Featured {
			m.stats.Featured++
		}
	}

	m.query = logic.NewQueryController(store, cfg.ResetPolicy())
	m.dropdown = search.NewService(m.uiBus, func(q string, limit int) []domain.Cheatsheet {
		return logic.TopResults(store.GetAllSheets(), q, limit)
	}, cfg.DropdownLimit())
	m.nav = navigation.NewService(m.uiBus)
	m.nav.SetCountFunction(func() int { return len(m.query.View()) })

	m.uiBus.Subscribe(events.Name(search.ResultChosenEvent{}), func(e interface{}) {
		log.Printf("Suggestion chosen: %s", e.(search.ResultChosenEvent).ID)
	})
	m.uiBus.Subscribe(events.Name(navigation.FocusChangedEvent{}), func(e interface{}) {
		m.query.SetSearchFocus(e.(navigation.FocusChangedEvent).To == navigation.FocusSearch)
	})

	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.sheetOps.SetProgram(p)
}

// SheetOps exposes the document operations, mainly so tests can stub the
// browser
func (m *Model) SheetOps() *SheetOps {
	return m.sheetOps
}

// OpenLink resolves a deep link (sheet id or document file) and shows its
// detail view. Unknown links show the not-found state.
func (m *Model) OpenLink(ref string) {
	m.openDetail(ref)
	m.inputHandler.ChangeMode(inputtypes.ModeDetail, m)
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	if m.bus != nil {
		m.bus.Publish(eventbus.AppReadyEvent{SessionID: m.state.SessionID, Cheatsheets: m.store.Count()})
	}
	return nil
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.nav.SetViewportHeight(msg.Height, views.LinesPerSheet)
		if msg.Width > 20 {
			m.inputHandler.GetTextInput().Width = msg.Width - 16
		}
		return m, nil

	case tea.KeyMsg:
		if m.state.ShowHelp {
			switch msg.String() {
			case "esc", "?", "q":
				m.state.ShowHelp = false
			case "ctrl+c":
				return m, tea.Quit
			}
			return m, nil
		}

		actions, cmd := m.inputHandler.HandleKey(msg, m)
		cmds := []tea.Cmd{cmd}
		for _, action := range actions {
			cmds = append(cmds, m.processAction(action))
		}
		return m, tea.Batch(cmds...)

	case tea.MouseMsg:
		return m, m.handleMouse(msg)

	default:
		return m.handleNonKeyboardMsg(msg)
	}
}

// View renders the UI
func (m *Model) View() string {
	if m.state.InPager {
		return ""
	}

	st := m.query.State()
	vs := views.ViewState{
		Width:          m.width,
		Height:         m.height,
		Language:       m.state.Language,
		Stats:          m.stats,
		Query:          st,
		Sheets:         m.query.View(),
		Cursor:         m.nav.GetCursor(),
		ViewportOffset: m.nav.GetViewportOffset(),
		ViewportHeight: m.nav.GetViewportHeight(),
		SearchFocused:  m.nav.Focus() == navigation.FocusSearch,
		InputActive:    m.inputHandler.CurrentMode() == inputtypes.ModeSearch,
		SearchInput:    m.inputHandler.GetTextInput().View(),
		Dropdown:       m.dropdown.Results(),
		DropdownOpen:   m.dropdown.IsOpen(),
		DropdownIndex:  m.dropdown.SelectedIndex(),
		InDetail:       m.inputHandler.CurrentMode() == inputtypes.ModeDetail,
		DetailRef:      m.state.DetailRef,
		DetailSheet:    m.state.DetailSheet,
		StatusMessage:  m.state.StatusMessage,
		StatusIsError:  m.state.StatusIsError,
		ShowHelp:       m.state.ShowHelp,
	}
	if m.state.ShowHelp {
		vs.HelpContent = m.help.RenderHelpContent()
	}
	out := m.renderer.Render(vs)
	if m.readyMarker && m.width > 0 {
		out += "\n__READY__"
	}
	return out
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	log.Printf("processAction: %T", action)
	switch a := action.(type) {
	case inputtypes.NavigateAction:
		m.nav.Navigate(navigation.Direction(a.Direction))

	case inputtypes.EnterSearchAction:
		return m.enterSearch()

	case inputtypes.CancelSearchAction:
		m.cancelSearch()

	case inputtypes.UpdateTextAction:
		if a.Text != m.query.State().SearchText {
			m.setSearchText(a.Text)
		}

	case inputtypes.SubmitTextAction:
		// Keep the text as a filter and browse the results
		m.dropdown.Close()
		m.nav.LeaveSearch()

	case inputtypes.DropdownNavigateAction:
		if a.Direction == "prev" {
			m.dropdown.Prev()
		} else {
			m.dropdown.Next()
		}

	case inputtypes.DropdownConfirmAction:
		if sheet, ok := m.dropdown.Confirm(); ok {
			m.openChosen(sheet)
		}

	case inputtypes.OpenDetailAction:
		m.openDetail(a.ID)

	case inputtypes.CloseDetailAction:
		m.state.CloseDetail()

	case inputtypes.OpenBrowserAction:
		if sheet, ok := m.actionSheet(); ok {
			return m.openInBrowser(sheet)
		}

	case inputtypes.ViewEmbeddedAction:
		if sheet, ok := m.actionSheet(); ok {
			return m.viewEmbedded(sheet)
		}

	case inputtypes.CycleCategoryAction:
		m.query.NextCategory(a.Forward)
		m.afterFilterChange()

	case inputtypes.ToggleFeaturedAction:
		m.query.ToggleFeatured()
		m.syncSearchField()
		m.afterFilterChange()

	case inputtypes.ResetFiltersAction:
		m.query.ResetFilters()
		m.syncSearchField()
		m.afterFilterChange()

	case inputtypes.ToggleLanguageAction:
		m.state.Language = i18n.Toggle(m.state.Language)
		log.Printf("Language switched to %s", m.state.Language)
		if m.bus != nil {
			m.bus.Publish(eventbus.LanguageChangedEvent{Language: m.state.Language})
		}

	case inputtypes.ToggleHelpAction:
		m.state.ShowHelp = !m.state.ShowHelp

	case inputtypes.QuitAction:
		return tea.Quit
	}

	return nil
}

func (m *Model) handleNonKeyboardMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case EventMsg:
		log.Printf("UI received event %s", msg.Event.Type())
		switch ev := msg.Event.(type) {
		case eventbus.ErrorEvent:
			return m, m.setStatus(ev.Message, true)
		case eventbus.ConfigSavedEvent:
			return m, m.setStatus("Preferences saved to "+ev.Path, false)
		}
		return m, nil

	case focusInputMsg:
		if msg.seq != m.focusSeq || m.inputHandler.CurrentMode() != inputtypes.ModeSearch {
			return m, nil
		}
		m.dropdown.Reopen()
		return m, m.inputHandler.FocusInput()

	case sheetPagerMsg:
		if msg.err != nil {
			log.Printf("Pager failed for %s: %v", msg.sheetID, msg.err)
			return m, m.setStatus(fmt.Sprintf("Cannot view %s: %v", msg.sheetID, msg.err), true)
		}
		return m, nil

	case clearStatusMsg:
		if msg.seq == m.statusSeq {
			m.state.ClearStatus()
		}
		return m, nil

	case pauseRenderingMsg:
		m.state.InPager = true
		return m, nil

	case resumeRenderingMsg:
		m.state.InPager = false
		return m, nil

	default:
		// Cursor blink and other text input messages
		return m, m.inputHandler.Update(msg)
	}
}

// handleMouse maps pointer events onto the dropdown rows
func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if m.nav.Focus() != navigation.FocusSearch || !m.dropdown.IsOpen() {
		return nil
	}
	row := msg.Y - views.DropdownFirstLine
	inside := row >= 0 && row < len(m.dropdown.Results())

	switch msg.Action {
	case tea.MouseActionMotion:
		if inside {
			m.dropdown.Hover(row)
		}
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return nil
		}
		if !inside {
			m.dropdown.Close()
			return nil
		}
		if sheet, ok := m.dropdown.Choose(row); ok {
			m.openChosen(sheet)
		}
	}
	return nil
}

// enterSearch runs the Browsing to SearchFocused transition
func (m *Model) enterSearch() tea.Cmd {
	t := m.nav.EnterSearch()
	m.focusSeq++

	delay := m.config.FocusDelay()
	if !t.ScrollToTop || delay <= 0 {
		m.dropdown.Reopen()
		return m.inputHandler.FocusInput()
	}
	seq := m.focusSeq
	return tea.Tick(delay, func(time.Time) tea.Msg { return focusInputMsg{seq: seq} })
}

// cancelSearch runs the SearchFocused to Browsing transition
func (m *Model) cancelSearch() {
	m.focusSeq++
	t := m.nav.CancelSearch(m.query.State().SearchText != "")
	m.dropdown.Close()
	if t.ClearSearch {
		m.setSearchText("")
	}
}

// setSearchText applies new text to the query, the dropdown and the field
func (m *Model) setSearchText(text string) {
	m.query.SetSearchText(text)
	m.dropdown.SetQuery(text)
	m.inputHandler.SetText(text)
	if !m.query.State().HasSearch() && m.nav.Focus() == navigation.FocusSearch {
		// Clearing the text leaves the overlay; the field keeps focus
		m.nav.LeaveSearch()
	}
	m.afterFilterChange()
}

// syncSearchField mirrors text cleared by a reset policy into the field
func (m *Model) syncSearchField() {
	text := m.query.State().SearchText
	if m.inputHandler.GetTextInput().Value() != text {
		m.inputHandler.SetText(text)
		m.dropdown.SetQuery(text)
	}
}

func (m *Model) afterFilterChange() {
	m.nav.MoveToIndex(0)
	if m.bus != nil {
		st := m.query.State()
		m.bus.Publish(eventbus.QueryChangedEvent{
			SessionID:    m.state.SessionID,
			SearchText:   st.SearchText,
			Category:     st.SelectedCategory,
			FeaturedOnly: st.FeaturedOnly,
			ResultCount:  len(m.query.View()),
		})
	}
}

// openChosen shows the detail view for a dropdown pick
func (m *Model) openChosen(sheet domain.Cheatsheet) {
	m.focusSeq++
	m.nav.LeaveSearch()
	m.openDetail(sheet.ID)
	m.inputHandler.ChangeMode(inputtypes.ModeDetail, m)
}

// openDetail resolves ref into the detail state
func (m *Model) openDetail(ref string) {
	sheet, err := m.store.Resolve(ref)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			log.Printf("Resolve %q failed: %v", ref, err)
		}
		m.state.OpenDetail(ref, nil)
		if m.bus != nil {
			m.bus.Publish(eventbus.SheetNotFoundEvent{Ref: ref})
		}
		return
	}
	m.state.OpenDetail(ref, &sheet)
	if m.bus != nil {
		m.bus.Publish(eventbus.SheetOpenedEvent{SessionID: m.state.SessionID, SheetID: sheet.ID, Target: domain.OpenDetail})
	}
}

// actionSheet is the sheet that o and v act on: the detail sheet when one
// is open, otherwise the listing row under the cursor
func (m *Model) actionSheet() (domain.Cheatsheet, bool) {
	if m.inputHandler.CurrentMode() == inputtypes.ModeDetail {
		if m.state.DetailSheet == nil {
			return domain.Cheatsheet{}, false
		}
		return *m.state.DetailSheet, true
	}
	view := m.query.View()
	i := m.nav.GetCursor()
	if i < 0 || i >= len(view) {
		return domain.Cheatsheet{}, false
	}
	return view[i], true
}

func (m *Model) openInBrowser(sheet domain.Cheatsheet) tea.Cmd {
	target, err := m.sheetOps.OpenInBrowser(sheet)
	if err != nil {
		log.Printf("Open in browser failed: %v", err)
		return m.setStatus(err.Error(), true)
	}
	if m.bus != nil {
		m.bus.Publish(eventbus.SheetOpenedEvent{SessionID: m.state.SessionID, SheetID: sheet.ID, Target: domain.OpenInBrowser})
	}
	return m.setStatus("Opened "+target, false)
}

// viewEmbedded shows the document in the ov pager
func (m *Model) viewEmbedded(sheet domain.Cheatsheet) tea.Cmd {
	if m.bus != nil {
		m.bus.Publish(eventbus.SheetOpenedEvent{SessionID: m.state.SessionID, SheetID: sheet.ID, Target: domain.OpenEmbedded})
	}
	if m.program == nil {
		// No terminal to hand over; fail the same way the pager would
		_, err := m.sheetOps.ReadDocument(sheet)
		if err == nil {
			err = fmt.Errorf("program not set")
		}
		return func() tea.Msg { return sheetPagerMsg{sheetID: sheet.ID, err: err} }
	}
	return func() tea.Msg {
		m.program.Send(pauseRenderingMsg{})
		err := m.sheetOps.ShowDocumentInPager(sheet)
		m.program.Send(resumeRenderingMsg{})
		return sheetPagerMsg{sheetID: sheet.ID, err: err}
	}
}

func (m *Model) setStatus(msg string, isError bool) tea.Cmd {
	m.state.SetStatus(msg, isError)
	m.statusSeq++
	seq := m.statusSeq
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg { return clearStatusMsg{seq: seq} })
}

// Context implementation for the input handler

func (m *Model) CurrentIndex() int {
	return m.nav.GetCursor()
}

func (m *Model) TotalItems() int {
	return len(m.query.View())
}

func (m *Model) CurrentSheetID() string {
	view := m.query.View()
	i := m.nav.GetCursor()
	if i < 0 || i >= len(view) {
		return ""
	}
	return view[i].ID
}

func (m *Model) SearchText() string {
	return m.query.State().SearchText
}

func (m *Model) DropdownOpen() bool {
	return m.dropdown.IsOpen()
}

func (m *Model) DetailFound() bool {
	return m.state.DetailFound()
}

// Accessors used by tests and the CLI

// Language returns the active locale
func (m *Model) Language() string {
	return m.state.Language
}

// QueryState returns the current query state
func (m *Model) QueryState() logic.QueryState {
	return m.query.State()
}

// Focus returns the keyboard focus state
func (m *Model) Focus() navigation.Focus {
	return m.nav.Focus()
}

// Mode returns the input mode
func (m *Model) Mode() inputtypes.Mode {
	return m.inputHandler.CurrentMode()
}
