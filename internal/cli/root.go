// Package cli provides the command-line interfaces for colourtheory and colourgen.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/jmylchreest/colourtheory/internal/colour"
	"github.com/jmylchreest/colourtheory/internal/version"
)

// ErrUsage marks errors caused by missing or surplus arguments.
var ErrUsage = errors.New("usage")

const invalidColourMessage = "Invalid color format. Please provide colors in hexadecimal format (e.g., #ff0000)."

// Output formats.
const (
	formatText  = "text"
	formatJSON  = "json"
	formatTable = "table"
)

// Preview modes.
const (
	previewAuto   = "auto"
	previewAlways = "always"
	previewNever  = "never"
)

// usageError reports a usage line and matches ErrUsage.
type usageError struct {
	usage string
}

func (e *usageError) Error() string { return "Usage: " + e.usage }

func (e *usageError) Is(target error) bool { return target == ErrUsage }

// Message returns the single user-facing line printed for err.
func Message(err error) string {
	var ue *usageError
	switch {
	case errors.As(err, &ue):
		return ue.Error()
	case errors.Is(err, colour.ErrInvalidHex):
		return invalidColourMessage
	default:
		return "Error: " + err.Error()
	}
}

// Execute runs cmd and returns the process exit code. Failures are reported
// once on the command's standard output.
func Execute(cmd *cobra.Command) int {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(cmd.OutOrStdout(), Message(err))
		return 1
	}
	return 0
}

// newLogger creates the diagnostic logger. Verbose output goes to w at debug
// level; otherwise logging is switched off.
func newLogger(name string, verbose bool, w io.Writer) hclog.Logger {
	if verbose {
		return hclog.New(&hclog.LoggerOptions{
			Name:   name,
			Output: w,
			Level:  hclog.Debug,
		})
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   name,
		Output: io.Discard,
		Level:  hclog.Off,
	})
}

// newVersionCmd creates the version subcommand for the named program.
func newVersionCmd(program string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, commit hash, and Go version.`,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String(program))
		},
	}
}

// addCommonFlags registers flags shared by both programs.
func addCommonFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().BoolP("verbose", "v", false, "enable verbose output on stderr")
	cmd.Flags().StringP("format", "f", formatText, "output format (text, json, table)")
	cmd.Flags().String("preview", previewNever, "show colour swatches (auto, always, never)")
}

func validateFormat(format string) error {
	switch format {
	case formatText, formatJSON, formatTable:
		return nil
	default:
		return fmt.Errorf("unsupported format: %s (supported: text, json, table)", format)
	}
}

// resolvePreview decides whether swatches are shown and whether colour
// output must be forced regardless of terminal detection.
func resolvePreview(mode string, w io.Writer) (enabled, force bool, err error) {
	switch mode {
	case previewNever:
		return false, false, nil
	case previewAlways:
		return true, true, nil
	case previewAuto:
		return isTerminal(w), false, nil
	default:
		return false, false, fmt.Errorf("invalid preview mode: %s (valid: auto, always, never)", mode)
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// lookupString returns the flag value when it was set explicitly, then the
// environment variable, then the flag default.
func lookupString(flags *pflag.FlagSet, name, env string) string {
	value, _ := flags.GetString(name)
	if flags.Changed(name) {
		return value
	}
	if v, ok := os.LookupEnv(env); ok && v != "" {
		return v
	}
	return value
}
