package tui

import "github.com/charmbracelet/lipgloss"

// Brand palette of the website: near-black slate with a concrete-orange accent.
var (
	Slate  = lipgloss.Color("#1c1f24")
	Stone  = lipgloss.Color("#8a8f98")
	Chalk  = lipgloss.Color("#f2f2f0")
	Accent = lipgloss.Color("#e07a2f")
)

// Styles holds the lipgloss styles used by the gallery view.
type Styles struct {
	Title     lipgloss.Style
	Tab       lipgloss.Style
	ActiveTab lipgloss.Style
	Card      lipgloss.Style
	Cursor    lipgloss.Style
	Category  lipgloss.Style
	Location  lipgloss.Style
	Lightbox  lipgloss.Style
	Counter   lipgloss.Style
	Help      lipgloss.Style
}

// DefaultStyles returns the styles for a dark terminal.
func DefaultStyles() Styles {
	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Stone).
		Padding(0, 1).
		Width(34)

	return Styles{
		Title:     lipgloss.NewStyle().Bold(true).Foreground(Accent).MarginBottom(1),
		Tab:       lipgloss.NewStyle().Foreground(Stone).Padding(0, 1),
		ActiveTab: lipgloss.NewStyle().Foreground(Slate).Background(Accent).Bold(true).Padding(0, 1),
		Card:      card,
		Cursor:    card.BorderForeground(Accent),
		Category:  lipgloss.NewStyle().Foreground(Accent).Bold(true),
		Location:  lipgloss.NewStyle().Foreground(Stone),
		Lightbox: lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(Accent).
			Foreground(Chalk).
			Padding(1, 4).
			Width(60),
		Counter: lipgloss.NewStyle().Foreground(Stone).Italic(true),
		Help:    lipgloss.NewStyle().Foreground(Stone).MarginTop(1),
	}
}
