package bubbletea

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"github.com/solventhq/solvent"
)

// Styles maps a Theme to lipgloss styles for TUI rendering.
type Styles struct {
	Problem     lipgloss.Style
	KeyLine     lipgloss.Style
	HighlightBg lipgloss.Style
	Error       lipgloss.Style
	Success     lipgloss.Style
	Muted       lipgloss.Style
	Accent      lipgloss.Style
	ErrorBanner lipgloss.Style
}

// NewStyles creates Styles from a Theme.
func NewStyles(t solvent.Theme) Styles {
	return Styles{
		Problem:     lipgloss.NewStyle().Foreground(ansiColor(t.Problem)).Bold(true),
		KeyLine:     lipgloss.NewStyle().Foreground(ansiColor(t.KeyLine)),
		HighlightBg: lipgloss.NewStyle().Background(ansiColor(t.Highlight)),
		Error:       lipgloss.NewStyle().Foreground(ansiColor(t.Error)),
		Success:     lipgloss.NewStyle().Foreground(ansiColor(t.Success)),
		Muted:       lipgloss.NewStyle().Foreground(ansiColor(t.Muted)).Faint(true),
		Accent:      lipgloss.NewStyle().Foreground(ansiColor(t.Accent)).Bold(true),
		ErrorBanner: lipgloss.NewStyle().Foreground(ansiColor(t.Error)).Bold(true).PaddingLeft(1),
	}
}

func ansiColor(index int) lipgloss.TerminalColor {
	if index < 0 {
		return lipgloss.NoColor{}
	}
	return lipgloss.Color(strconv.Itoa(index))
}
