package ui

import "github.com/charmbracelet/lipgloss"

// Palette used across all output.
var (
	ColorPrimary = lipgloss.Color("#00ffff") // Cyan
	ColorSuccess = lipgloss.Color("#00ff00") // Green
	ColorWarning = lipgloss.Color("#ffaa00") // Orange
	ColorError   = lipgloss.Color("#ff0000") // Red
	ColorInfo    = lipgloss.Color("#0099ff") // Blue
	ColorMuted   = lipgloss.Color("#666666") // Gray
)

// Styles groups the styles a Printer renders with.
type Styles struct {
	Banner   lipgloss.Style
	Section  lipgloss.Style
	Panel    lipgloss.Style
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Repo     lipgloss.Style
	Success  lipgloss.Style
	Warning  lipgloss.Style
	Error    lipgloss.Style
	Muted    lipgloss.Style
}

// NewStyles builds the styles on the given renderer.
func NewStyles(r *lipgloss.Renderer) Styles {
	return Styles{
		Banner: r.NewStyle().
			Bold(true).
			Foreground(ColorSuccess).
			MarginTop(1),

		Section: r.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(ColorPrimary).
			Foreground(ColorSuccess).
			Bold(true).
			Padding(0, 1),

		Panel: r.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(ColorPrimary).
			Padding(0, 1),

		Title: r.NewStyle().
			Foreground(ColorSuccess).
			Bold(true),

		Subtitle: r.NewStyle().
			Foreground(ColorInfo).
			Bold(true),

		Repo: r.NewStyle().
			Foreground(ColorWarning).
			Bold(true),

		Success: r.NewStyle().
			Foreground(ColorSuccess),

		Warning: r.NewStyle().
			Foreground(ColorWarning),

		Error: r.NewStyle().
			Foreground(ColorError).
			Bold(true),

		Muted: r.NewStyle().
			Foreground(ColorMuted),
	}
}
