package theory

import (
	"github.com/jmylchreest/colourtheory/internal/colour"
)

// Theory identifiers.
const (
	IDComplementary      = "complementary"
	IDAnalogous          = "analogous"
	IDSplitComplementary = "split-complementary"
	IDTetradic           = "tetradic"
)

// Complementary scores how close the secondary colour is to the inverse of the primary.
type Complementary struct{}

func (Complementary) ID() string   { return IDComplementary }
func (Complementary) Name() string { return "Complementary Color Theory" }

// Evaluate returns 1 - Distance(invert(primary), secondary) / MaxDistance.
func (Complementary) Evaluate(primary, secondary colour.RGB) float64 {
	return clampQuality(1 - colour.Distance(colour.Invert(primary), secondary)/colour.MaxDistance)
}

// Analogous scores how close the two colours are in RGB space.
type Analogous struct{}

func (Analogous) ID() string   { return IDAnalogous }
func (Analogous) Name() string { return "Analogous Colors Theory" }

// Evaluate returns 1 - Distance(primary, secondary) / MaxDistance.
func (Analogous) Evaluate(primary, secondary colour.RGB) float64 {
	return clampQuality(1 - colour.Distance(primary, secondary)/colour.MaxDistance)
}

// SplitComplementary scores the primary against its two split-complementary targets.
// The secondary colour does not take part in the score.
type SplitComplementary struct{}

func (SplitComplementary) ID() string   { return IDSplitComplementary }
func (SplitComplementary) Name() string { return "Split-Complementary Colors Theory" }

// Evaluate returns 1 minus the mean normalised distance from primary to
// (r+150, g+60) and (r-150, g+60).
func (SplitComplementary) Evaluate(primary, _ colour.RGB) float64 {
	return clampQuality(1 - averageNormalisedDistance(primary,
		colour.Offset(primary, 150, 60, 0),
		colour.Offset(primary, -150, 60, 0),
	))
}

// Tetradic scores the primary against its three tetradic targets.
// The secondary colour does not take part in the score.
type Tetradic struct{}

func (Tetradic) ID() string   { return IDTetradic }
func (Tetradic) Name() string { return "Tetradic Colors Theory" }

// Evaluate returns 1 minus the mean normalised distance from primary to
// g+60, r-60 and r+180.
func (Tetradic) Evaluate(primary, _ colour.RGB) float64 {
	return clampQuality(1 - averageNormalisedDistance(primary,
		colour.Offset(primary, 0, 60, 0),
		colour.Offset(primary, -60, 0, 0),
		colour.Offset(primary, 180, 0, 0),
	))
}

// Builtin returns the built-in theories in evaluation order.
func Builtin() []Theory {
	return []Theory{
		Complementary{},
		Analogous{},
		SplitComplementary{},
		Tetradic{},
	}
}
