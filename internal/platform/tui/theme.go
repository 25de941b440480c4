package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

// Theme contains the visual styles of the editor screens.
type Theme struct {
	Title    lipgloss.Style
	Label    lipgloss.Style
	Value    lipgloss.Style
	Muted    lipgloss.Style
	Status   lipgloss.Style
	Error    lipgloss.Style
	Help     lipgloss.Style
	Active   lipgloss.Style
	Border   lipgloss.Style
	Empty    lipgloss.Style
	Renderer *lipgloss.Renderer
}

// NewTheme builds the theme for r. SSH sessions pass their own renderer so
// colours follow the client terminal.
func NewTheme(r *lipgloss.Renderer) Theme {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return Theme{
		Title:  r.NewStyle().Foreground(lipgloss.Color("229")).Bold(true),
		Label:  r.NewStyle().Foreground(lipgloss.Color("245")),
		Value:  r.NewStyle().Foreground(lipgloss.Color("255")),
		Muted:  r.NewStyle().Foreground(lipgloss.Color("241")),
		Status: r.NewStyle().Foreground(lipgloss.Color("51")),
		Error:  r.NewStyle().Foreground(lipgloss.Color("203")),
		Help:   r.NewStyle().Foreground(lipgloss.Color("241")),
		Active: r.NewStyle().Foreground(lipgloss.Color("229")).Bold(true),
		Border: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1),
		Empty: r.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4),
		Renderer: r,
	}
}

// Swatch renders a block of the given hex colour.
func (t Theme) Swatch(hex string, width int) string {
	return t.Renderer.NewStyle().Foreground(lipgloss.Color(hex)).Render(strings.Repeat("█", width))
}

// TableStyles returns the exports table styles.
func (t Theme) TableStyles() table.Styles {
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	return s
}
