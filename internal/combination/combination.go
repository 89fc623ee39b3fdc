// Package combination derives colour combinations from a base colour using
// fixed channel offsets in RGB space.
//
// The offsets are an approximation of colour wheel rotation: they operate on
// raw RGB channels rather than rotating hue in HSL or HSV.
package combination

import (
	"time"

	"github.com/jmylchreest/colourtheory/internal/colour"
)

// Family identifies a kind of colour combination.
type Family string

const (
	FamilyComplementary      Family = "complementary"
	FamilyAnalogous          Family = "analogous"
	FamilyMonochromatic      Family = "monochromatic"
	FamilyTriadic            Family = "triadic"
	FamilySeasonal           Family = "seasonal"
	FamilyTetradic           Family = "tetradic"
	FamilySplitComplementary Family = "split-complementary"
)

var familyLabels = map[Family]string{
	FamilyComplementary:      "Complementary Colors",
	FamilyAnalogous:          "Analogous Colors",
	FamilyMonochromatic:      "Monochromatic Colors",
	FamilyTriadic:            "Triadic Colors",
	FamilySeasonal:           "Seasonal Colors",
	FamilyTetradic:           "Tetradic Colors",
	FamilySplitComplementary: "Split-Complementary Colors",
}

// Label returns the human-readable label used when printing the family.
func (f Family) Label() string {
	if label, ok := familyLabels[f]; ok {
		return label
	}
	return string(f)
}

// Channel offsets.
const (
	analogousStep     = 30
	monochromaticStep = 50
	tetradicStep      = 60
	triadicStep       = 120
	splitRedStep      = 150
	splitGreenStep    = 60
)

// Combination is an ordered set of colours: the base colour first, then the
// derived variants.
type Combination struct {
	Family  Family       `json:"family"`
	Colours []colour.RGB `json:"colours"`
}

// Base returns the first colour of the combination.
func (c Combination) Base() colour.RGB {
	if len(c.Colours) == 0 {
		return colour.RGB{}
	}
	return c.Colours[0]
}

// Hex returns the combination's colours as hex strings, in order.
func (c Combination) Hex() []string {
	out := make([]string, len(c.Colours))
	for i, rgb := range c.Colours {
		out[i] = rgb.Hex()
	}
	return out
}

// Generator derives combinations from a single base colour.
type Generator struct {
	base colour.RGB
}

// NewGenerator creates a generator for the given base colour.
func NewGenerator(base colour.RGB) *Generator {
	return &Generator{base: base}
}

// Base returns the generator's base colour.
func (g *Generator) Base() colour.RGB {
	return g.base
}

func (g *Generator) combine(family Family, variants ...colour.RGB) Combination {
	return Combination{
		Family:  family,
		Colours: append([]colour.RGB{g.base}, variants...),
	}
}

// Complementary returns the base colour and its channel-wise inverse.
func (g *Generator) Complementary() Combination {
	return g.combine(FamilyComplementary, colour.Invert(g.base))
}

// Analogous returns the base colour with green shifted up and down.
func (g *Generator) Analogous() Combination {
	return g.combine(FamilyAnalogous,
		colour.Offset(g.base, 0, analogousStep, 0),
		colour.Offset(g.base, 0, -analogousStep, 0),
	)
}

// Monochromatic returns the base colour, a lighter shade and a darker shade.
func (g *Generator) Monochromatic() Combination {
	return g.combine(FamilyMonochromatic,
		colour.Offset(g.base, monochromaticStep, monochromaticStep, monochromaticStep),
		colour.Offset(g.base, -monochromaticStep, -monochromaticStep, -monochromaticStep),
	)
}

// Triadic returns the base colour with green shifted by a third of the range each way.
func (g *Generator) Triadic() Combination {
	return g.combine(FamilyTriadic,
		colour.Offset(g.base, 0, triadicStep, 0),
		colour.Offset(g.base, 0, -triadicStep, 0),
	)
}

// Tetradic returns the base colour and three double-complementary variants.
func (g *Generator) Tetradic() Combination {
	return g.combine(FamilyTetradic,
		colour.Offset(g.base, 0, tetradicStep, 0),
		colour.Offset(g.base, -tetradicStep, 0, 0),
		colour.Offset(g.base, tetradicStep, 0, 0),
	)
}

// SplitComplementary returns the base colour and two split-complementary variants.
func (g *Generator) SplitComplementary() Combination {
	return g.combine(FamilySplitComplementary,
		colour.Offset(g.base, splitRedStep, splitGreenStep, 0),
		colour.Offset(g.base, -splitRedStep, splitGreenStep, 0),
	)
}

// Seasonal returns the complementary pair of the colour recommended for the
// season containing month. It does not depend on the base colour.
func (g *Generator) Seasonal(month time.Month) Combination {
	c := SeasonForMonth(month).Colour()
	return Combination{
		Family:  FamilySeasonal,
		Colours: []colour.RGB{c, colour.Invert(c)},
	}
}

// All returns every combination family in print order.
func (g *Generator) All(month time.Month) []Combination {
	return []Combination{
		g.Complementary(),
		g.Analogous(),
		g.Monochromatic(),
		g.Triadic(),
		g.Seasonal(month),
		g.Tetradic(),
		g.SplitComplementary(),
	}
}
