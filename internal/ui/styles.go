package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/JaskiratSingh1/Verto/internal/theme"
)

type styles struct {
	title     lipgloss.Style
	tab       lipgloss.Style
	activeTab lipgloss.Style
	heading   lipgloss.Style
	cursor    lipgloss.Style
	done      lipgloss.Style
	muted     lipgloss.Style
	warn      lipgloss.Style
	err       lipgloss.Style
	heat      [theme.HeatLevels]lipgloss.Style
}

func newStyles(t theme.Theme) styles {
	accent := t.Accent()
	s := styles{
		title:     lipgloss.NewStyle().Bold(true).Foreground(accent),
		tab:       lipgloss.NewStyle().Padding(0, 1).Faint(true),
		activeTab: lipgloss.NewStyle().Padding(0, 1).Bold(true).Underline(true).Foreground(accent),
		heading:   lipgloss.NewStyle().Bold(true),
		cursor:    lipgloss.NewStyle().Bold(true).Foreground(accent),
		done:      lipgloss.NewStyle().Strikethrough(true).Faint(true),
		muted:     lipgloss.NewStyle().Faint(true),
		warn:      lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#B45309", Dark: "#FBBF24"}),
		err:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "#B91C1C", Dark: "#F87171"}),
	}
	for i := range s.heat {
		s.heat[i] = lipgloss.NewStyle().Foreground(t.Heat(i))
	}
	return s
}

// applyScheme forces the light or dark variant of adaptive colors for
// themes that pin one, and restores the detected terminal background for
// themes that do not.
func applyScheme(t theme.Theme, detectedDark bool) {
	switch t.Scheme() {
	case theme.SchemeDark:
		lipgloss.SetHasDarkBackground(true)
	case theme.SchemeLight:
		lipgloss.SetHasDarkBackground(false)
	default:
		lipgloss.SetHasDarkBackground(detectedDark)
	}
}
