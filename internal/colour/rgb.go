// Package colour provides the RGB colour type and the channel arithmetic
// shared by the combination generator and the theory evaluators.
package colour

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

const (
	// ChannelMax is the largest value of a single 8-bit channel.
	ChannelMax = 255
)

// MaxDistance is the largest possible Euclidean distance between two RGB colours
// (black to white).
var MaxDistance = math.Sqrt(ChannelMax * ChannelMax * 3)

// ErrInvalidHex is returned when a string is not a six digit hex colour.
var ErrInvalidHex = errors.New("invalid hex colour")

// hexPattern is the strict form accepted on the command line.
var hexPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// RGB represents a colour in RGB format.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// String returns the RGB colour as a string in the format "rgb(r, g, b)".
func (rgb RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", rgb.R, rgb.G, rgb.B)
}

// Hex returns the RGB colour as a hex string (e.g., "#1a2b3c").
func (rgb RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", rgb.R, rgb.G, rgb.B)
}

// Clamp limits an integer channel value to [0, 255].
func Clamp(v int) uint8 {
	switch {
	case v < 0:
		return 0
	case v > ChannelMax:
		return ChannelMax
	default:
		return uint8(v)
	}
}

// FromInts builds an RGB value from unbounded integer channels, clamping each one.
func FromInts(r, g, b int) RGB {
	return RGB{R: Clamp(r), G: Clamp(g), B: Clamp(b)}
}

// Offset adds a delta to each channel and clamps the result.
func Offset(c RGB, dr, dg, db int) RGB {
	return FromInts(int(c.R)+dr, int(c.G)+dg, int(c.B)+db)
}

// Invert returns the channel-wise inverse (255 - v) of c.
func Invert(c RGB) RGB {
	return RGB{R: ChannelMax - c.R, G: ChannelMax - c.G, B: ChannelMax - c.B}
}

// Distance calculates the Euclidean distance between two colours in RGB space.
func Distance(a, b RGB) float64 {
	dr := float64(a.R) - float64(b.R)
	dg := float64(a.G) - float64(b.G)
	db := float64(a.B) - float64(b.B)
	return math.Sqrt(dr*dr + dg*dg + db*db)
}

// ValidateHex checks s against the strict "#rrggbb" form.
func ValidateHex(s string) error {
	if !hexPattern.MatchString(s) {
		return fmt.Errorf("%w: %q", ErrInvalidHex, s)
	}
	return nil
}

// ParseHex parses a hex colour string. The leading '#' is optional and the
// digits are case-insensitive; anything other than six hex digits is rejected.
func ParseHex(s string) (RGB, error) {
	digits := strings.TrimPrefix(s, "#")
	if len(digits) != 6 {
		return RGB{}, fmt.Errorf("%w: %q must have 6 hex digits", ErrInvalidHex, s)
	}

	v, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidHex, s)
	}

	return RGB{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
	}, nil
}

// MustParseHex is like ParseHex but panics on malformed input.
// Intended for package-level constants only.
func MustParseHex(s string) RGB {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}
