package colour

import (
	"fmt"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Colorful converts the colour to a go-colorful value for colour-space maths.
func (rgb RGB) Colorful() colorful.Color {
	return colorful.Color{
		R: float64(rgb.R) / ChannelMax,
		G: float64(rgb.G) / ChannelMax,
		B: float64(rgb.B) / ChannelMax,
	}
}

// HSL returns hue (0-360), saturation (0-1) and lightness (0-1).
func (rgb RGB) HSL() (h, s, l float64) {
	return rgb.Colorful().Hsl()
}

// HSLString formats the colour as "hsl(h, s%, l%)" with whole-number components.
func (rgb RGB) HSLString() string {
	h, s, l := rgb.HSL()
	return fmt.Sprintf("hsl(%.0f, %.0f%%, %.0f%%)", h, s*100, l*100)
}

// Luminance calculates the relative luminance of a colour according to WCAG 2.0.
// Returns a value between 0 (darkest) and 1 (lightest).
// https://www.w3.org/TR/WCAG20/#relativeluminancedef.
func Luminance(rgb RGB) float64 {
	r := gammaCorrect(float64(rgb.R) / ChannelMax)
	g := gammaCorrect(float64(rgb.G) / ChannelMax)
	b := gammaCorrect(float64(rgb.B) / ChannelMax)

	return 0.2126*r + 0.7152*g + 0.0722*b
}

// gammaCorrect applies gamma correction to a colour component.
func gammaCorrect(v float64) float64 {
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}
