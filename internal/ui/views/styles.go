package views

import (
	"github.com/charmbracelet/lipgloss"

	"knighty/internal/domain"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title            lipgloss.Style
	Subtitle         lipgloss.Style
	Dim              lipgloss.Style
	Stats            lipgloss.Style
	Status           lipgloss.Style
	StatusError      lipgloss.Style
	StatusSuccess    lipgloss.Style
	Help             lipgloss.Style
	Main             lipgloss.Style
	Scroll           lipgloss.Style
	Section          lipgloss.Style
	Chip             lipgloss.Style
	ChipActive       lipgloss.Style
	Featured         lipgloss.Style
	Tag              lipgloss.Style
	SelectionBg      lipgloss.Style
	SearchBox        lipgloss.Style
	Dropdown         lipgloss.Style
	DropdownSelected lipgloss.Style
	DetailBox        lipgloss.Style
	HelpBox          lipgloss.Style
	Highlight        lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Subtitle:      lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Dim:           lipgloss.NewStyle().Faint(true),
		Stats:         lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		Status:        lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		StatusError:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		StatusSuccess: lipgloss.NewStyle().Foreground(lipgloss.Color("78")),  // green
		Help:          lipgloss.NewStyle().Faint(true),
		Main: lipgloss.NewStyle().
			Padding(1, 2),
		Scroll:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		Section:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		Chip:       lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Padding(0, 1),
		ChipActive: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("230")).Background(lipgloss.Color("99")).Padding(0, 1),
		Featured:   lipgloss.NewStyle().Foreground(lipgloss.Color("220")), // yellow
		Tag:        lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		SelectionBg: lipgloss.NewStyle().
			Background(lipgloss.Color("238")),
		SearchBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("99")).
			Padding(0, 1),
		Dropdown: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("241")),
		DropdownSelected: lipgloss.NewStyle().
			Background(lipgloss.Color("99")).
			Foreground(lipgloss.Color("230")),
		DetailBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(1, 2),
		HelpBox: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			Padding(1).
			BorderForeground(lipgloss.Color("241")),
		Highlight: lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
	}
}

// CategoryColor returns the accent color for a category
func CategoryColor(c domain.Category) string {
	switch c {
	case domain.CategorySystem:
		return "63" // indigo
	case domain.CategoryDevelopment:
		return "38" // cyan
	case domain.CategoryDatabase:
		return "36" // teal
	case domain.CategoryNetwork:
		return "203" // red
	case domain.CategoryDevOps:
		return "33" // blue
	case domain.CategoryEditor:
		return "78" // green
	case domain.CategoryData:
		return "214" // yellow
	case domain.CategoryMedia:
		return "170" // magenta
	case domain.CategoryAI:
		return "141" // violet
	case domain.CategoryAutomation:
		return "208" // orange
	default:
		return "245"
	}
}
