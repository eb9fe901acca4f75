package tui

import "github.com/charmbracelet/lipgloss"

// Timeline palette mirrors the desktop colour scheme: a dark navy canvas
// with a lighter navy grid.
const (
	colourCanvas = "#0f1425"
	colourGrid   = "#222b4e"
)

var (
	appStyle        = lipgloss.NewStyle().Padding(1, 2)
	titleStyle      = lipgloss.NewStyle().Bold(true)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	offlineStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#e0a458"))
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)

	gridCellStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color(colourGrid)).Background(lipgloss.Color(colourCanvas))
	doneCellStyle  = lipgloss.NewStyle().Faint(true)
	weekLabelStyle = lipgloss.NewStyle().Faint(true)
)

func barStyle(colour string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(colour))
}
