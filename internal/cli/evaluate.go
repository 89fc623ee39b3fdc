package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/colourtheory/internal/colour"
	"github.com/jmylchreest/colourtheory/internal/theory"
	"github.com/jmylchreest/colourtheory/internal/version"
)

const (
	evaluatorName    = "colourtheory"
	defaultPrecision = 14
	maxPrecision     = 17
)

// evaluateOptions holds the evaluator's resolved flags.
type evaluateOptions struct {
	theories  string
	format    string
	precision int
	preview   string
	verbose   bool
}

// NewEvaluatorCmd creates the colourtheory root command.
func NewEvaluatorCmd() *cobra.Command {
	opts := &evaluateOptions{}

	cmd := &cobra.Command{
		Use:   evaluatorName + " <primary_color> <secondary_color>",
		Short: "Score a colour pair against colour harmony theories",
		Long: `Score how well a primary and a secondary colour match classical colour
harmony theories. Each theory yields a quality between 0 and 1, where 1 is
a perfect match for the theory's ideal relationship.

Colours must be given as #rrggbb hex values.

Examples:
  # Evaluate red against green with every theory
  colourtheory '#ff0000' '#00ff00'

  # Only the analogous and tetradic theories
  colourtheory --theories analogous,tetradic '#336699' '#996633'

  # JSON output
  colourtheory -f json '#336699' '#996633'

Environment:
  COLOURTHEORY_THEORIES           comma-separated theories to evaluate
  COLOURTHEORY_DISABLED_THEORIES  comma-separated theories to skip`,
		Version:       version.Short(),
		Args:          pairArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.verbose, _ = cmd.Flags().GetBool("verbose")
			opts.format, _ = cmd.Flags().GetString("format")
			opts.preview, _ = cmd.Flags().GetString("preview")
			return runEvaluate(cmd, args, opts)
		},
	}

	addCommonFlags(cmd)
	cmd.Flags().StringVar(&opts.theories, "theories", "", "comma-separated theories to evaluate (default: all)")
	cmd.Flags().IntVar(&opts.precision, "precision", defaultPrecision, "significant digits of the quality score")

	cmd.SetVersionTemplate(version.String(evaluatorName) + "\n")
	cmd.AddCommand(newVersionCmd(evaluatorName))

	return cmd
}

// pairArgs requires exactly two colour arguments in the strict #rrggbb form.
func pairArgs(_ *cobra.Command, args []string) error {
	if len(args) != 2 {
		return &usageError{usage: evaluatorName + " <primary_color> <secondary_color>"}
	}
	for _, arg := range args {
		if err := colour.ValidateHex(arg); err != nil {
			return err
		}
	}
	return nil
}

func runEvaluate(cmd *cobra.Command, args []string, opts *evaluateOptions) error {
	logger := newLogger(evaluatorName, opts.verbose, cmd.ErrOrStderr())

	if err := validateFormat(opts.format); err != nil {
		return err
	}
	if opts.precision < 1 || opts.precision > maxPrecision {
		return fmt.Errorf("invalid precision: %d (valid: 1-%d)", opts.precision, maxPrecision)
	}

	primary, err := colour.ParseHex(args[0])
	if err != nil {
		return fmt.Errorf("primary colour: %w", err)
	}
	secondary, err := colour.ParseHex(args[1])
	if err != nil {
		return fmt.Errorf("secondary colour: %w", err)
	}
	logger.Debug("parsed colours", "primary", primary.String(), "secondary", secondary.String())

	builder := theory.NewBuilder().WithEnvConfig()
	if cmd.Flags().Changed("theories") {
		builder = theory.NewBuilder().
			WithConfig(theory.Config{EnabledTheories: theory.ParseList(opts.theories)})
	}
	registry, err := builder.Build()
	if err != nil {
		return fmt.Errorf("invalid theory selection: %w", err)
	}
	logger.Debug("theories selected", "enabled", len(registry.Enabled()), "registered", strings.Join(registry.List(), ","))

	results := registry.EvaluateAll(primary, secondary)
	for _, r := range results {
		logger.Debug("evaluated", "theory", r.Theory.ID(), "quality", r.Quality)
	}

	showPreview, force, err := resolvePreview(opts.preview, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if showPreview && opts.format != formatJSON {
		p := colour.NewPreviewer(out, force)
		fmt.Fprintf(out, "%s %s\n", p.SwatchWithText(primary, primary.Hex()), p.SwatchWithText(secondary, secondary.Hex()))
	}

	return writeEvaluations(out, primary, secondary, results, opts)
}

// formatQuality renders q in the shortest form at the given number of significant digits.
func formatQuality(q float64, precision int) string {
	return strconv.FormatFloat(q, 'g', precision, 64)
}

// evaluationJSON is one theory's result in JSON output.
type evaluationJSON struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Quality float64 `json:"quality"`
}

// evaluationsJSON is the evaluator's JSON document.
type evaluationsJSON struct {
	Primary     string           `json:"primary"`
	Secondary   string           `json:"secondary"`
	Evaluations []evaluationJSON `json:"evaluations"`
}

func writeEvaluations(w io.Writer, primary, secondary colour.RGB, results []theory.Evaluation, opts *evaluateOptions) error {
	switch opts.format {
	case formatJSON:
		doc := evaluationsJSON{
			Primary:     primary.Hex(),
			Secondary:   secondary.Hex(),
			Evaluations: make([]evaluationJSON, len(results)),
		}
		for i, r := range results {
			doc.Evaluations[i] = evaluationJSON{ID: r.Theory.ID(), Name: r.Name(), Quality: r.Quality}
		}
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to convert to JSON: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err

	case formatTable:
		table := NewTable([]string{"THEORY", "QUALITY"})
		for _, r := range results {
			table.AddRow([]string{r.Name(), formatQuality(r.Quality, opts.precision)})
		}
		_, err := io.WriteString(w, table.Render())
		return err

	default:
		for _, r := range results {
			if _, err := fmt.Fprintf(w, "Combination Quality based on %s: %s\n", r.Name(), formatQuality(r.Quality, opts.precision)); err != nil {
				return err
			}
		}
		return nil
	}
}
