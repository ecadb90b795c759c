package report

import "github.com/charmbracelet/lipgloss"

// Styles
var (
	baseDimFg = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#9CA3AF"}
	accentFg  = lipgloss.Color("#7C3AED")
)

type styles struct {
	label lipgloss.Style
	value lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		label: r.NewStyle().Foreground(baseDimFg),
		value: r.NewStyle().Foreground(accentFg).Bold(true),
	}
}
