package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// HelpRenderer handles help content rendering
type HelpRenderer struct{}

// NewHelpRenderer creates a new help renderer
func NewHelpRenderer() *HelpRenderer {
	return &HelpRenderer{}
}

type helpSection struct {
	title string
	keys  [][2]string
}

var helpSections = []helpSection{
	{"Navigation", [][2]string{
		{"↑/↓, j/k", "Move up/down"},
		{"PgUp/PgDn", "Page up/down"},
		{"gg/G", "Go to top/bottom"},
	}},
	{"Search", [][2]string{
		{"Ctrl+K, /", "Focus search"},
		{"↑/↓, Ctrl+P/N", "Move through suggestions"},
		{"Enter", "Open suggestion (first if none picked)"},
		{"Esc", "Clear search and return"},
	}},
	{"Filters", [][2]string{
		{"c/C, Tab", "Next/previous category"},
		{"f", "Toggle featured only"},
		{"r", "Reset filters"},
	}},
	{"Cheat Sheets", [][2]string{
		{"Enter", "Show details"},
		{"o", "Open in browser"},
		{"v", "View in pager"},
		{"Esc", "Back from details"},
	}},
	{"Other", [][2]string{
		{"L", "Switch language"},
		{"?", "Toggle this help"},
		{"q", "Quit"},
	}},
}

// RenderHelpContent generates help content with colors
func (r *HelpRenderer) RenderHelpContent() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39"))

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220")).
		Width(16)

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	var help strings.Builder
	help.WriteString(titleStyle.Render("Knighty Help"))
	help.WriteString("\n")

	for i, s := range helpSections {
		if i > 0 {
			help.WriteString("\n")
		}
		help.WriteString(sectionStyle.Render(s.title))
		help.WriteString("\n")
		for j, kv := range s.keys {
			help.WriteString(fmt.Sprintf("  %s%s", keyStyle.Render(kv[0]), descStyle.Render(kv[1])))
			if i < len(helpSections)-1 || j < len(s.keys)-1 {
				help.WriteString("\n")
			}
		}
	}

	return help.String()
}
