package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title         lipgloss.Style
	Count         lipgloss.Style
	Confirm       lipgloss.Style
	Prompt        lipgloss.Style
	Dim           lipgloss.Style
	Help          lipgloss.Style
	Main          lipgloss.Style
	Scroll        lipgloss.Style
	Highlight     lipgloss.Style
	SelectionBg   lipgloss.Style
	Rank          lipgloss.Style
	Brand         lipgloss.Style
	Price         lipgloss.Style
	Card          lipgloss.Style
	ErrorCard     lipgloss.Style
	InfoBox       lipgloss.Style
	StatusError   lipgloss.Style
	StatusLoading lipgloss.Style
	StatusSuccess lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Count:   lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		Confirm: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		Prompt:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214")),
		Dim:     lipgloss.NewStyle().Faint(true),
		Help:    lipgloss.NewStyle().Faint(true),
		Main: lipgloss.NewStyle().
			Padding(1, 2),
		Scroll:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		Highlight:   lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		SelectionBg: lipgloss.NewStyle().Background(lipgloss.Color("238")),
		Rank:        lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Brand:       lipgloss.NewStyle().Bold(true),
		Price:       lipgloss.NewStyle().Foreground(lipgloss.Color("78")),
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(1, 2).
			BorderForeground(lipgloss.Color("241")),
		ErrorCard: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(1, 2).
			BorderForeground(lipgloss.Color("203")),
		InfoBox: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			Padding(1).
			BorderForeground(lipgloss.Color("241")),
		StatusError:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		StatusLoading: lipgloss.NewStyle().Foreground(lipgloss.Color("241")), // gray
		StatusSuccess: lipgloss.NewStyle().Foreground(lipgloss.Color("78")),  // green
	}
}

// ScoreColor returns the color for a relevance percentage
func ScoreColor(percent int) string {
	switch {
	case percent >= 80:
		return "78" // green
	case percent >= 50:
		return "214" // yellow
	default:
		return "241" // gray
	}
}
