package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/colourtheory/internal/colour"
	"github.com/jmylchreest/colourtheory/internal/combination"
	"github.com/jmylchreest/colourtheory/internal/version"
)

const (
	generatorName    = "colourgen"
	defaultBaseColor = "#ff0000"

	envBase  = "COLOURGEN_BASE"
	envMonth = "COLOURGEN_MONTH"
)

// Colour notations.
const (
	notationHex = "hex"
	notationRGB = "rgb"
	notationHSL = "hsl"
)

// generateOptions holds the generator's resolved flags.
type generateOptions struct {
	base     colour.RGB
	month    time.Month
	format   string
	notation string
	preview  string
	verbose  bool
}

// NewGeneratorCmd creates the colourgen root command. now supplies the
// current time for seasonal analysis when no month is configured; nil means time.Now.
func NewGeneratorCmd(now func() time.Time) *cobra.Command {
	if now == nil {
		now = time.Now
	}

	cmd := &cobra.Command{
		Use:   generatorName,
		Short: "Generate colour combinations from a base colour",
		Long: `Generate complementary, analogous, monochromatic, triadic, tetradic,
split-complementary and seasonal colour combinations from a base colour.

Variants are derived with fixed offsets on the RGB channels, clamped to
0-255. Each line lists the base colour first, followed by its variants.

Examples:
  # Combinations for the default base colour (#ff0000)
  colourgen

  # A different base colour, shown as HSL
  colourgen --base '#336699' --notation hsl

  # Seasonal analysis for April
  colourgen --month 4

Environment:
  COLOURGEN_BASE   base colour used when --base is not set
  COLOURGEN_MONTH  month (1-12) used when --month is not set`,
		Version:       version.Short(),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts, err := resolveGenerateOptions(cmd, now)
			if err != nil {
				return err
			}
			return runGenerate(cmd, opts)
		},
	}

	addCommonFlags(cmd)
	cmd.Flags().StringP("base", "b", defaultBaseColor, "base colour in #rrggbb form")
	cmd.Flags().String("month", "", "month (1-12) for seasonal analysis (default: current month)")
	cmd.Flags().StringP("notation", "n", notationHex, "colour notation (hex, rgb, hsl)")

	cmd.SetVersionTemplate(version.String(generatorName) + "\n")
	cmd.AddCommand(newVersionCmd(generatorName))

	return cmd
}

func resolveGenerateOptions(cmd *cobra.Command, now func() time.Time) (*generateOptions, error) {
	opts := &generateOptions{}
	opts.verbose, _ = cmd.Flags().GetBool("verbose")
	opts.format, _ = cmd.Flags().GetString("format")
	opts.notation, _ = cmd.Flags().GetString("notation")
	opts.preview, _ = cmd.Flags().GetString("preview")

	if err := validateFormat(opts.format); err != nil {
		return nil, err
	}
	switch opts.notation {
	case notationHex, notationRGB, notationHSL:
	default:
		return nil, fmt.Errorf("unsupported notation: %s (supported: hex, rgb, hsl)", opts.notation)
	}

	base := lookupString(cmd.Flags(), "base", envBase)
	if err := colour.ValidateHex(base); err != nil {
		return nil, fmt.Errorf("base colour: %w", err)
	}
	opts.base = colour.MustParseHex(base)

	month, err := parseMonth(lookupString(cmd.Flags(), "month", envMonth), now)
	if err != nil {
		return nil, err
	}
	opts.month = month

	return opts, nil
}

// parseMonth parses a month number; an empty string selects the current month.
func parseMonth(s string, now func() time.Time) (time.Month, error) {
	if s == "" {
		return now().Month(), nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 || n > 12 {
		return 0, fmt.Errorf("invalid month: %q (valid: 1-12)", s)
	}
	return time.Month(n), nil
}

func runGenerate(cmd *cobra.Command, opts *generateOptions) error {
	logger := newLogger(generatorName, opts.verbose, cmd.ErrOrStderr())
	logger.Debug("generating combinations", "base", opts.base.Hex(), "month", opts.month.String(),
		"season", combination.SeasonForMonth(opts.month).String())

	combos := combination.NewGenerator(opts.base).All(opts.month)
	for _, c := range combos {
		logger.Debug("derived", "family", string(c.Family), "colours", strings.Join(c.Hex(), ","))
	}

	showPreview, force, err := resolvePreview(opts.preview, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	var previewer *colour.Previewer
	if showPreview {
		previewer = colour.NewPreviewer(cmd.OutOrStdout(), force)
	}

	return writeCombinations(cmd.OutOrStdout(), combos, opts, previewer)
}

// formatNotation renders c in the requested notation.
func formatNotation(c colour.RGB, notation string) string {
	switch notation {
	case notationRGB:
		return c.String()
	case notationHSL:
		return c.HSLString()
	default:
		return c.Hex()
	}
}

// combinationJSON is one family in JSON output.
type combinationJSON struct {
	Family  string   `json:"family"`
	Label   string   `json:"label"`
	Colours []string `json:"colours"`
}

// combinationsJSON is the generator's JSON document.
type combinationsJSON struct {
	Base         string            `json:"base"`
	Season       string            `json:"season"`
	Combinations []combinationJSON `json:"combinations"`
}

func writeCombinations(w io.Writer, combos []combination.Combination, opts *generateOptions, previewer *colour.Previewer) error {
	render := func(c combination.Combination) []string {
		values := make([]string, len(c.Colours))
		for i, rgb := range c.Colours {
			values[i] = formatNotation(rgb, opts.notation)
			if previewer != nil && opts.format == formatText {
				values[i] = previewer.Swatch(rgb) + " " + values[i]
			}
		}
		return values
	}

	switch opts.format {
	case formatJSON:
		doc := combinationsJSON{
			Base:         opts.base.Hex(),
			Season:       combination.SeasonForMonth(opts.month).String(),
			Combinations: make([]combinationJSON, len(combos)),
		}
		for i, c := range combos {
			doc.Combinations[i] = combinationJSON{
				Family:  string(c.Family),
				Label:   c.Family.Label(),
				Colours: render(c),
			}
		}
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to convert to JSON: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err

	case formatTable:
		table := NewTable([]string{"FAMILY", "COLOURS"})
		for _, c := range combos {
			table.AddRow([]string{c.Family.Label(), strings.Join(render(c), ", ")})
		}
		_, err := io.WriteString(w, table.Render())
		return err

	default:
		for _, c := range combos {
			if _, err := fmt.Fprintf(w, "%s: %s\n", c.Family.Label(), strings.Join(render(c), ", ")); err != nil {
				return err
			}
		}
		return nil
	}
}
