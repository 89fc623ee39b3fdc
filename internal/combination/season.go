package combination

import (
	"time"

	"github.com/jmylchreest/colourtheory/internal/colour"
)

// Season is one of the four seasons used for seasonal colour analysis.
type Season int

const (
	Spring Season = iota
	Summer
	Autumn
	Winter
)

var seasonNames = [...]string{
	Spring: "Spring",
	Summer: "Summer",
	Autumn: "Autumn",
	Winter: "Winter",
}

// Fixed recommended colour per season.
var seasonColours = [...]colour.RGB{
	Spring: colour.MustParseHex("#00ff7f"), // spring green
	Summer: colour.MustParseHex("#1e90ff"), // dodger blue
	Autumn: colour.MustParseHex("#ffa500"), // orange
	Winter: colour.MustParseHex("#4682b4"), // steel blue
}

// String returns the season name.
func (s Season) String() string {
	if s < Spring || s > Winter {
		return "Unknown"
	}
	return seasonNames[s]
}

// Colour returns the season's recommended colour.
func (s Season) Colour() colour.RGB {
	if s < Spring || s > Winter {
		return seasonColours[Winter]
	}
	return seasonColours[s]
}

// SeasonForMonth maps a calendar month to its season.
// March-May is Spring, June-August Summer, September-November Autumn,
// and every other value (including out of range months) Winter.
func SeasonForMonth(m time.Month) Season {
	switch {
	case m >= time.March && m <= time.May:
		return Spring
	case m >= time.June && m <= time.August:
		return Summer
	case m >= time.September && m <= time.November:
		return Autumn
	default:
		return Winter
	}
}
