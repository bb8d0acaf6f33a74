package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"knighty/internal/domain"
	"knighty/internal/i18n"
)

// LinesPerSheet is how many terminal lines one listing row takes
const LinesPerSheet = 2

// VisibleTags is how many tags a row shows before collapsing into +N
const VisibleTags = 3

// SheetRenderer renders cheat sheet rows and cards
type SheetRenderer struct {
	styles *Styles
	bundle *i18n.Bundle
}

// NewSheetRenderer creates a new sheet renderer
func NewSheetRenderer(styles *Styles, bundle *i18n.Bundle) *SheetRenderer {
	return &SheetRenderer{styles: styles, bundle: bundle}
}

// RenderRow renders a listing row: title line then description and tags
func (r *SheetRenderer) RenderRow(sheet domain.Cheatsheet, lang string, isSelected bool, searchQuery string, width int) string {
	cursor := "  "
	if isSelected {
		cursor = "▸ "
	}

	titleStyle := lipgloss.NewStyle().Bold(true)
	if sheet.Color != "" {
		titleStyle = titleStyle.Foreground(lipgloss.Color(sheet.Color))
	}
	title := highlightMatch(sheet.Title, searchQuery, titleStyle, r.styles.Highlight)

	catStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(CategoryColor(sheet.Category)))
	parts := []string{cursor + sheet.Icon, title, catStyle.Render("[" + r.bundle.Category(lang, sheet.Category) + "]")}
	if sheet.Featured {
		parts = append(parts, r.styles.Featured.Render("★"))
	}
	line1 := strings.Join(parts, " ")

	line2 := "    " + r.styles.Subtitle.Render(sheet.Description)
	if tags := r.RenderTags(sheet); tags != "" {
		line2 += "  " + tags
	}

	if width > 0 {
		line1 = truncate(line1, width)
		line2 = truncate(line2, width)
	}
	if isSelected {
		line1 = r.styles.SelectionBg.Render(line1)
		line2 = r.styles.SelectionBg.Render(line2)
	}
	return line1 + "\n" + line2
}

// RenderTags shows the first tags and a +N count for the rest
func (r *SheetRenderer) RenderTags(sheet domain.Cheatsheet) string {
	shown, hidden := sheet.ShortTags(VisibleTags)
	if len(shown) == 0 {
		return ""
	}
	out := make([]string, 0, len(shown)+1)
	for _, t := range shown {
		out = append(out, "#"+t)
	}
	if hidden > 0 {
		out = append(out, fmt.Sprintf("+%d", hidden))
	}
	return r.styles.Tag.Render(strings.Join(out, " "))
}

// RenderSuggestion renders one dropdown row
func (r *SheetRenderer) RenderSuggestion(sheet domain.Cheatsheet, lang string, isSelected bool, width int) string {
	line := fmt.Sprintf(" %s %s  %s ", sheet.Icon, sheet.Title, r.styles.Dim.Render(r.bundle.Category(lang, sheet.Category)))
	if width > 0 {
		line = truncate(line, width)
		line = lipgloss.NewStyle().Width(width).Render(line)
	}
	if isSelected {
		return r.styles.DropdownSelected.Render(line)
	}
	return line
}

// highlightMatch styles the first case-insensitive occurrence of query
func highlightMatch(text, query string, base, hl lipgloss.Style) string {
	q := strings.TrimSpace(query)
	if q == "" {
		return base.Render(text)
	}
	idx := strings.Index(strings.ToLower(text), strings.ToLower(q))
	if idx < 0 || idx+len(q) > len(text) {
		return base.Render(text)
	}
	return base.Render(text[:idx]) + hl.Render(text[idx:idx+len(q)]) + base.Render(text[idx+len(q):])
}

// truncate cuts s to width visible cells, keeping ANSI styling intact
func truncate(s string, width int) string {
	if lipgloss.Width(s) <= width {
		return s
	}
	return lipgloss.NewStyle().MaxWidth(width).Render(s)
}
