package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"knighty/internal/domain"
	"knighty/internal/i18n"
	"knighty/internal/logic"
)

// DropdownFirstLine is the screen line of the first dropdown row in the
// search overlay: top padding, title, hint, a gap, the bordered search box
// and the dropdown's own top border come before it.
const DropdownFirstLine = 8

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width    int
	Height   int
	Language string
	Stats    domain.Stats
	Query    logic.QueryState
	Sheets   []domain.Cheatsheet

	Cursor         int
	ViewportOffset int
	ViewportHeight int

	SearchFocused bool
	InputActive   bool   // the text field takes keys
	SearchInput   string // rendered text field
	Dropdown      []domain.Cheatsheet
	DropdownOpen  bool
	DropdownIndex int

	InDetail    bool
	DetailRef   string
	DetailSheet *domain.Cheatsheet

	StatusMessage string
	StatusIsError bool
	ShowHelp      bool
	HelpContent   string
}

// Renderer handles all view rendering
type Renderer struct {
	styles      *Styles
	bundle      *i18n.Bundle
	sheetRender *SheetRenderer
	popupRender *PopupRenderer
}

// NewRenderer creates a new renderer
func NewRenderer(bundle *i18n.Bundle) *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:      styles,
		bundle:      bundle,
		sheetRender: NewSheetRenderer(styles, bundle),
		popupRender: NewPopupRenderer(styles),
	}
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	if state.ShowHelp && state.HelpContent != "" {
		return r.popupRender.RenderPopupOverlay(state.HelpContent, state.Height, state.Width, r.styles.HelpBox)
	}

	var body string
	switch {
	case state.InDetail:
		body = r.renderDetail(state)
	case state.SearchFocused:
		body = r.renderSearchOverlay(state)
	default:
		body = r.renderLanding(state)
	}

	body = r.withFooter(body, state)
	if i18n.IsRTL(state.Language) {
		body = alignRight(body, contentWidth(state.Width))
	}
	return r.styles.Main.MaxHeight(maxHeight(state.Height)).Render(body)
}

// renderLanding renders the header, filter bar and the sheet listing
func (r *Renderer) renderLanding(state ViewState) string {
	lang := state.Language
	t := func(key string) string { return r.bundle.T(lang, key) }

	var b strings.Builder

	b.WriteString(r.styles.Title.Render("⚔ " + t("title")))
	b.WriteString("  ")
	b.WriteString(r.styles.Subtitle.Render(t("subtitle")))
	b.WriteString("\n")
	b.WriteString(r.renderStats(state))
	b.WriteString("\n")

	// Search field, collapsed to a single line outside focus mode
	text := state.Query.SearchText
	if state.InputActive {
		b.WriteString("🔍 " + state.SearchInput)
	} else if text == "" {
		b.WriteString(r.styles.Dim.Render("🔍 " + t("search.placeholder")))
	} else {
		b.WriteString("🔍 " + text)
	}
	b.WriteString("\n")
	b.WriteString(r.renderFilterBar(state))
	b.WriteString("\n\n")

	b.WriteString(r.styles.Section.Render(r.sectionTitle(state)))
	b.WriteString("  ")
	b.WriteString(r.styles.Dim.Render(r.bundle.Count(lang, len(state.Sheets), state.Query.SearchText)))
	b.WriteString("\n")

	if len(state.Sheets) == 0 {
		b.WriteString(r.renderEmpty(state))
	} else {
		b.WriteString(r.renderSheetList(state))
	}
	return b.String()
}

func (r *Renderer) renderStats(state ViewState) string {
	lang := state.Language
	s := state.Stats
	parts := []string{
		fmt.Sprintf("%d+ %s", s.Cheatsheets, r.bundle.T(lang, "stats.cheatsheets")),
		fmt.Sprintf("%d %s", s.Categories, r.bundle.T(lang, "stats.categories")),
		fmt.Sprintf("%d %s", s.Languages, r.bundle.T(lang, "stats.languages")),
	}
	return r.styles.Stats.Render(strings.Join(parts, " · "))
}

// renderFilterBar renders the category chips and the featured toggle
func (r *Renderer) renderFilterBar(state ViewState) string {
	lang := state.Language
	var chips []string
	for _, c := range domain.Categories() {
		label := r.bundle.Category(lang, c)
		if c == state.Query.SelectedCategory {
			chips = append(chips, r.styles.ChipActive.Render(label))
		} else {
			chips = append(chips, r.styles.Chip.Render(label))
		}
	}

	featured := "☆ " + r.bundle.T(lang, "search.featuredOnly")
	if state.Query.FeaturedOnly {
		featured = r.styles.ChipActive.Render("★ " + r.bundle.T(lang, "search.featuredOnly"))
	} else {
		featured = r.styles.Chip.Render(featured)
	}

	bar := strings.Join(chips, "") + "  " + featured
	return truncate(bar, contentWidth(state.Width))
}

func (r *Renderer) sectionTitle(state ViewState) string {
	lang := state.Language
	switch {
	case state.Query.HasSearch():
		return r.bundle.T(lang, "sections.searchResults")
	case state.Query.FeaturedOnly:
		return r.bundle.T(lang, "sections.featured")
	case state.Query.SelectedCategory != domain.CategoryAll:
		return r.bundle.Category(lang, state.Query.SelectedCategory)
	default:
		return r.bundle.T(lang, "sections.allSheets")
	}
}

func (r *Renderer) renderEmpty(state ViewState) string {
	lang := state.Language
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(r.styles.Title.Render(r.bundle.T(lang, "sections.noResults")))
	b.WriteString("\n")
	b.WriteString(r.styles.Dim.Render(r.bundle.NoResults(lang, state.Query.SearchText)))
	b.WriteString("\n\n")
	b.WriteString(r.styles.Help.Render("r: " + r.bundle.T(lang, "sections.resetFilters")))
	return b.String()
}

// renderSheetList renders the visible window of the filtered listing
func (r *Renderer) renderSheetList(state ViewState) string {
	height := state.ViewportHeight
	if height < 1 {
		height = 1
	}
	start := state.ViewportOffset
	if start < 0 || start >= len(state.Sheets) {
		start = 0
	}
	end := start + height
	if end > len(state.Sheets) {
		end = len(state.Sheets)
	}

	width := contentWidth(state.Width)
	var lines []string
	if start > 0 {
		lines = append(lines, r.styles.Scroll.Render(fmt.Sprintf("↑ %d more above ↑", start)))
	}
	for i := start; i < end; i++ {
		lines = append(lines, r.sheetRender.RenderRow(state.Sheets[i], state.Language, i == state.Cursor, state.Query.SearchText, width))
	}
	if below := len(state.Sheets) - end; below > 0 {
		lines = append(lines, r.styles.Scroll.Render(fmt.Sprintf("↓ %d more below ↓", below)))
	}
	return strings.Join(lines, "\n")
}

// renderSearchOverlay renders the full-screen search with its dropdown
func (r *Renderer) renderSearchOverlay(state ViewState) string {
	lang := state.Language
	width := contentWidth(state.Width)
	boxWidth := width - 4
	if boxWidth > 70 {
		boxWidth = 70
	}
	if boxWidth < 20 {
		boxWidth = 20
	}

	var b strings.Builder
	b.WriteString(r.styles.Title.Render(r.bundle.T(lang, "search.focusedTitle")))
	b.WriteString("\n")
	b.WriteString(r.styles.Dim.Render(r.bundle.T(lang, "search.focusedHint")))
	b.WriteString("\n\n")

	input := state.SearchInput
	if state.Query.SearchText == "" && strings.TrimSpace(input) == "" {
		input = r.styles.Dim.Render(r.bundle.T(lang, "search.placeholder"))
	}
	b.WriteString(r.styles.SearchBox.Width(boxWidth).Render("🔍 " + input))
	b.WriteString("\n")

	switch {
	case state.DropdownOpen && len(state.Dropdown) > 0:
		rows := make([]string, 0, len(state.Dropdown))
		for i, sheet := range state.Dropdown {
			rows = append(rows, r.sheetRender.RenderSuggestion(sheet, lang, i == state.DropdownIndex, boxWidth))
		}
		b.WriteString(r.styles.Dropdown.Render(strings.Join(rows, "\n")))
		b.WriteString("\n")
		b.WriteString(r.styles.Dim.Render(r.bundle.Count(lang, len(state.Sheets), state.Query.SearchText)))
	case state.Query.HasSearch():
		b.WriteString("\n")
		b.WriteString(r.styles.Dim.Render(r.bundle.NoResults(lang, state.Query.SearchText)))
	}
	return b.String()
}

// renderDetail renders a single sheet or the not-found state
func (r *Renderer) renderDetail(state ViewState) string {
	lang := state.Language
	t := func(key string) string { return r.bundle.T(lang, key) }

	if state.DetailSheet == nil {
		var b strings.Builder
		b.WriteString(r.styles.StatusError.Render(t("viewer.notFound")))
		b.WriteString("\n")
		b.WriteString(r.styles.Dim.Render(t("viewer.notFoundDesc")))
		if state.DetailRef != "" {
			b.WriteString("\n")
			b.WriteString(r.styles.Dim.Render(fmt.Sprintf("(%s)", state.DetailRef)))
		}
		b.WriteString("\n\n")
		b.WriteString(r.styles.Help.Render("esc: " + t("viewer.back")))
		return b.String()
	}

	sheet := *state.DetailSheet
	accent := lipgloss.Color(CategoryColor(sheet.Category))
	if sheet.Color != "" {
		accent = lipgloss.Color(sheet.Color)
	}

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(accent).Render(sheet.Icon + " " + sheet.Title))
	if sheet.Featured {
		b.WriteString(" ")
		b.WriteString(r.styles.Featured.Render("★"))
	}
	b.WriteString("\n")
	b.WriteString(sheet.Description)
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(CategoryColor(sheet.Category))).Render(r.bundle.Category(lang, sheet.Category)))
	if tags := r.sheetRender.RenderTags(sheet); tags != "" {
		b.WriteString("  ")
		b.WriteString(tags)
	}
	b.WriteString("\n")
	b.WriteString(r.styles.Dim.Render(sheet.DocumentPath()))
	b.WriteString("\n")
	b.WriteString(r.styles.Dim.Render(sheet.DeepLink()))

	box := r.styles.DetailBox.BorderForeground(accent).Render(b.String())

	actions := strings.Join([]string{
		"o: " + t("viewer.openTab"),
		"v: " + t("viewer.embedded"),
		"esc: " + t("viewer.back"),
	}, "  ")
	return box + "\n\n" + r.styles.Help.Render(actions)
}

// withFooter adds the status line and pushes the help hint to the bottom
func (r *Renderer) withFooter(body string, state ViewState) string {
	var footer []string
	if state.StatusMessage != "" {
		style := r.styles.StatusSuccess
		if state.StatusIsError {
			style = r.styles.StatusError
		}
		footer = append(footer, style.Render(state.StatusMessage))
	}
	footer = append(footer, r.styles.Help.Render(fmt.Sprintf("Press ? for help · L: %s", r.bundle.T(state.Language, "language.toggle"))))

	// Account for container padding (1 top, 1 bottom)
	available := state.Height - 2
	if available <= 0 {
		available = 22
	}
	used := strings.Count(body, "\n") + 1 + len(footer)
	if pad := available - used; pad > 0 {
		body += strings.Repeat("\n", pad)
	}
	return body + "\n" + strings.Join(footer, "\n")
}

// alignRight right-aligns every line for right-to-left locales
func alignRight(s string, width int) string {
	style := lipgloss.NewStyle().Width(width).Align(lipgloss.Right)
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = style.Render(l)
	}
	return strings.Join(lines, "\n")
}

func contentWidth(width int) int {
	if width <= 0 {
		width = 80 // Default terminal width
	}
	// Main container padding
	if width > 4 {
		return width - 4
	}
	return width
}

func maxHeight(height int) int {
	if height <= 0 {
		return 24
	}
	return height
}
