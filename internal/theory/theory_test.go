package theory

import (
	"math"
	"testing"

	"github.com/jmylchreest/colourtheory/internal/colour"
)

const epsilon = 1e-9

var (
	black = colour.RGB{}
	white = colour.RGB{R: 255, G: 255, B: 255}
	red   = colour.RGB{R: 255}
	green = colour.RGB{G: 255}
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name      string
		theory    Theory
		primary   colour.RGB
		secondary colour.RGB
		want      float64
	}{
		{name: "analogous identical", theory: Analogous{}, primary: red, secondary: red, want: 1},
		{name: "analogous black white", theory: Analogous{}, primary: black, secondary: white, want: 0},
		{name: "analogous red green", theory: Analogous{}, primary: red, secondary: green, want: 0.18350341907227},
		{name: "complementary exact inverse", theory: Complementary{}, primary: black, secondary: white, want: 1},
		{name: "complementary identical", theory: Complementary{}, primary: black, secondary: black, want: 0},
		{name: "complementary red green", theory: Complementary{}, primary: red, secondary: green, want: 0.42264973081037},
		{name: "split black", theory: SplitComplementary{}, primary: black, secondary: white, want: 0.56557854075679},
		{name: "split white", theory: SplitComplementary{}, primary: white, secondary: black, want: 0.70588235294118},
		{name: "tetradic black", theory: Tetradic{}, primary: black, secondary: black, want: 525.0 / 765.0},
		{name: "tetradic white", theory: Tetradic{}, primary: white, secondary: white, want: 0.92156862745098},
		{name: "tetradic red", theory: Tetradic{}, primary: red, secondary: green, want: 0.84313725490196},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.theory.Evaluate(tt.primary, tt.secondary)
			if math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("%s.Evaluate(%s, %s) = %.14g, want %.14g",
					tt.theory.ID(), tt.primary.Hex(), tt.secondary.Hex(), got, tt.want)
			}
		})
	}
}

func TestSecondaryIgnoredByTargetTheories(t *testing.T) {
	primary := colour.MustParseHex("#336699")
	for _, th := range []Theory{SplitComplementary{}, Tetradic{}} {
		a := th.Evaluate(primary, black)
		b := th.Evaluate(primary, white)
		if math.Abs(a-b) > epsilon {
			t.Errorf("%s depends on secondary: %f vs %f", th.ID(), a, b)
		}
	}
}

// Step through the colour cube, so every theory sees extremes and midpoints.
func TestQualityInRange(t *testing.T) {
	steps := []int{0, 1, 60, 127, 128, 200, 254, 255}
	var samples []colour.RGB
	for _, r := range steps {
		for _, g := range steps {
			for _, b := range steps {
				samples = append(samples, colour.FromInts(r, g, b))
			}
		}
	}

	for _, th := range Builtin() {
		for i, p := range samples {
			// Pair each sample with a few others rather than the full cross product.
			for _, s := range []colour.RGB{samples[len(samples)-1-i], black, white, p} {
				q := th.Evaluate(p, s)
				if q < 0 || q > 1 || math.IsNaN(q) {
					t.Fatalf("%s.Evaluate(%s, %s) = %f, out of [0,1]", th.ID(), p.Hex(), s.Hex(), q)
				}
			}
		}
	}
}

func TestClampQuality(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{in: -0.5, want: 0},
		{in: 0, want: 0},
		{in: 0.25, want: 0.25},
		{in: 1, want: 1},
		{in: 1.5, want: 1},
	}
	for _, tt := range tests {
		if got := clampQuality(tt.in); got != tt.want {
			t.Errorf("clampQuality(%f) = %f, want %f", tt.in, got, tt.want)
		}
	}
}

func TestAverageNormalisedDistance(t *testing.T) {
	if got := averageNormalisedDistance(black); got != 0 {
		t.Errorf("no targets = %f, want 0", got)
	}
	got := averageNormalisedDistance(black, colour.RGB{R: 255}, colour.RGB{})
	if math.Abs(got-0.5) > epsilon {
		t.Errorf("averageNormalisedDistance = %f, want 0.5", got)
	}
}

func TestEvaluationCarriesInputs(t *testing.T) {
	e := Evaluate(Analogous{}, red, green)
	if e.Primary != red || e.Secondary != green {
		t.Errorf("Evaluation inputs = %+v / %+v", e.Primary, e.Secondary)
	}
	if e.Name() != "Analogous Colors Theory" {
		t.Errorf("Name() = %q", e.Name())
	}
}

func TestBuiltinNames(t *testing.T) {
	want := []string{
		"Complementary Color Theory",
		"Analogous Colors Theory",
		"Split-Complementary Colors Theory",
		"Tetradic Colors Theory",
	}
	builtin := Builtin()
	if len(builtin) != len(want) {
		t.Fatalf("Builtin() returned %d theories, want %d", len(builtin), len(want))
	}
	for i, th := range builtin {
		if th.Name() != want[i] {
			t.Errorf("Builtin()[%d].Name() = %q, want %q", i, th.Name(), want[i])
		}
	}
}
