package tui

import (
	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"

	"emblem/internal/canvas"
	"emblem/internal/config"
)

// Styles
var (
	baseFg    = lipgloss.Color("#E6E6E6")
	baseDimFg = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#6B7280"}
	accentFg  = lipgloss.Color("#7C3AED")
	borderCol = lipgloss.Color("#243141")

	appStyle   = lipgloss.NewStyle().Foreground(baseFg)
	boxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(borderCol).Padding(0, 1)
	titleStyle = lipgloss.NewStyle().Foreground(accentFg).Bold(true)
	dimStyle   = lipgloss.NewStyle().Foreground(baseDimFg)
)

// palette holds the configurable colours of the emblem area.
type palette struct {
	label     lipgloss.Style
	hover     lipgloss.Style
	highlight colorful.Color
}

func newPalette(c config.Colors) palette {
	hl, err := colorful.Hex(c.Highlight)
	if err != nil {
		hl, _ = colorful.Hex(string(accentFg))
	}
	label, err := colorful.Hex(c.Label)
	if err != nil {
		label, _ = colorful.Hex(string(baseFg))
	}
	// hovered labels lean toward the highlight but stay readable
	hover, _ := colorful.MakeColor(canvas.Blend(label, hl, 0.6))
	return palette{
		label:     lipgloss.NewStyle().Foreground(lipgloss.Color(label.Hex())),
		hover:     lipgloss.NewStyle().Foreground(lipgloss.Color(hover.Hex())).Bold(true).Underline(true),
		highlight: hl,
	}
}
