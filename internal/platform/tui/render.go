package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/blockfall/internal/core"
)

// palette maps core.Color to terminal colors.
var palette = map[core.Color]lipgloss.Color{
	core.ColorRed:     lipgloss.Color("1"),
	core.ColorGreen:   lipgloss.Color("2"),
	core.ColorYellow:  lipgloss.Color("3"),
	core.ColorBlue:    lipgloss.Color("4"),
	core.ColorMagenta: lipgloss.Color("5"),
	core.ColorCyan:    lipgloss.Color("6"),
	core.ColorWhite:   lipgloss.Color("7"),
	core.ColorOrange:  lipgloss.Color("208"),
	core.ColorGray:    lipgloss.Color("245"),
	core.ColorBlack:   lipgloss.Color("0"),
}

// pixelPair is one terminal cell: two vertically stacked canvas pixels.
type pixelPair struct {
	top, bottom core.Color
}

// glyph returns the character and style that draw a pixel pair.
func (p pixelPair) glyph(r *lipgloss.Renderer) (string, lipgloss.Style) {
	style := r.NewStyle()
	switch {
	case p.top == core.ColorNone && p.bottom == core.ColorNone:
		return " ", style
	case p.top == p.bottom:
		return "█", style.Foreground(palette[p.top])
	case p.bottom == core.ColorNone:
		return "▀", style.Foreground(palette[p.top])
	case p.top == core.ColorNone:
		return "▄", style.Foreground(palette[p.bottom])
	default:
		return "▀", style.Foreground(palette[p.top]).Background(palette[p.bottom])
	}
}

// RenderCanvas converts a canvas to a styled string, two pixel rows per
// text line. Adjacent cells with the same colors share one style run.
func RenderCanvas(c *core.Canvas, r *lipgloss.Renderer) string {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}

	var sb strings.Builder
	sb.Grow(c.Width()*(c.Height()+1)/2*2 + c.Height())

	for y := 0; y < c.Height(); y += 2 {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < c.Width() {
			start := pixelPair{c.Get(x, y), c.Get(x, y+1)}

			var run strings.Builder
			glyph, style := start.glyph(r)
			for x < c.Width() && (pixelPair{c.Get(x, y), c.Get(x, y+1)}) == start {
				run.WriteString(glyph)
				x++
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
