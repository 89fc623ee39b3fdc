package colour

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

const (
	defaultWidth = 8

	// Backgrounds brighter than this get dark text.
	luminanceTextThreshold = 0.179
)

// Previewer renders terminal colour swatches.
type Previewer struct {
	renderer *lipgloss.Renderer
	width    int
}

// NewPreviewer creates a previewer writing for w. When force is set the
// renderer emits true colour sequences even if w is not a terminal.
func NewPreviewer(w io.Writer, force bool) *Previewer {
	r := lipgloss.NewRenderer(w)
	if force {
		r.SetColorProfile(termenv.TrueColor)
	}
	return &Previewer{renderer: r, width: defaultWidth}
}

// WithWidth sets the swatch width in cells. Non-positive widths reset to the default.
func (p *Previewer) WithWidth(width int) *Previewer {
	if width <= 0 {
		width = defaultWidth
	}
	p.width = width
	return p
}

// Swatch returns a solid block of the given colour.
func (p *Previewer) Swatch(c RGB) string {
	return p.renderer.NewStyle().
		Background(lipgloss.Color(c.Hex())).
		Render(strings.Repeat(" ", p.width))
}

// SwatchWithText returns a swatch with centred text in a contrasting colour.
func (p *Previewer) SwatchWithText(c RGB, text string) string {
	fg := "#ffffff"
	if Luminance(c) > luminanceTextThreshold {
		fg = "#000000"
	}

	if len(text) > p.width {
		text = text[:p.width]
	}

	return p.renderer.NewStyle().
		Background(lipgloss.Color(c.Hex())).
		Foreground(lipgloss.Color(fg)).
		Width(p.width).
		Align(lipgloss.Center).
		Render(text)
}
