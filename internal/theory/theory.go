// Package theory scores a primary/secondary colour pair against classical
// colour harmony theories.
//
// Each theory is a pure function from a pair of colours to a quality score
// in [0, 1], where 1 means the pair matches the theory's ideal relationship.
package theory

import (
	"github.com/jmylchreest/colourtheory/internal/colour"
)

// Theory evaluates how well a colour pair matches a harmony theory.
type Theory interface {
	// ID returns the short identifier used in configuration (e.g., "analogous").
	ID() string

	// Name returns the display name (e.g., "Analogous Colors Theory").
	Name() string

	// Evaluate returns the quality of the combination in [0, 1].
	Evaluate(primary, secondary colour.RGB) float64
}

// Evaluation is the result of scoring one colour pair against one theory.
type Evaluation struct {
	Theory    Theory     `json:"-"`
	Primary   colour.RGB `json:"primary"`
	Secondary colour.RGB `json:"secondary"`
	Quality   float64    `json:"quality"`
}

// Name returns the evaluated theory's display name.
func (e Evaluation) Name() string {
	return e.Theory.Name()
}

// Evaluate scores primary and secondary against t.
func Evaluate(t Theory, primary, secondary colour.RGB) Evaluation {
	return Evaluation{
		Theory:    t,
		Primary:   primary,
		Secondary: secondary,
		Quality:   t.Evaluate(primary, secondary),
	}
}

// clampQuality limits q to [0, 1].
func clampQuality(q float64) float64 {
	return max(0, min(1, q))
}

// averageNormalisedDistance returns the mean of Distance(from, t)/255 over targets.
func averageNormalisedDistance(from colour.RGB, targets ...colour.RGB) float64 {
	if len(targets) == 0 {
		return 0
	}
	var sum float64
	for _, t := range targets {
		sum += colour.Distance(from, t) / colour.ChannelMax
	}
	return sum / float64(len(targets))
}
