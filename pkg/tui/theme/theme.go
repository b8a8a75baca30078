package theme

import (
	"github.com/charmbracelet/lipgloss"

	"tableflip.dev/datepick/pkg/render"
)

// Theme centralizes Lip Gloss styles for the Bubble Tea UI.
type Theme struct {
	Header HeaderTheme
	Grid   render.Styles
}

// HeaderTheme styles the line above the months.
type HeaderTheme struct {
	Arrow         lipgloss.Style
	ArrowDisabled lipgloss.Style
	Mode          lipgloss.Style
	Status        lipgloss.Style
}

// Default returns the built-in theme used across the UI.
func Default() Theme {
	return Theme{
		Header: HeaderTheme{
			Arrow:         lipgloss.NewStyle().Bold(true),
			ArrowDisabled: lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
			Mode:          lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
			Status:        lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		},
		Grid: render.DefaultStyles(),
	}
}
