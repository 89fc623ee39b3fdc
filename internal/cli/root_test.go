package cli

import (
	"bytes"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/spf13/pflag"

	"github.com/jmylchreest/colourtheory/internal/colour"
)

func TestMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "usage",
			err:  &usageError{usage: "prog <a> <b>"},
			want: "Usage: prog <a> <b>",
		},
		{
			name: "wrapped invalid hex",
			err:  fmt.Errorf("primary colour: %w", colour.ErrInvalidHex),
			want: invalidColourMessage,
		},
		{
			name: "other",
			err:  errors.New("boom"),
			want: "Error: boom",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Message(tt.err); got != tt.want {
				t.Errorf("Message() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestUsageErrorIs(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", &usageError{usage: "x"})
	if !errors.Is(err, ErrUsage) {
		t.Error("usage error does not match ErrUsage")
	}
}

func TestResolvePreview(t *testing.T) {
	var buf bytes.Buffer
	tests := []struct {
		mode        string
		wantEnabled bool
		wantForce   bool
		wantErr     bool
	}{
		{mode: previewNever},
		{mode: previewAlways, wantEnabled: true, wantForce: true},
		{mode: previewAuto},
		{mode: "sometimes", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.mode, func(t *testing.T) {
			enabled, force, err := resolvePreview(tt.mode, &buf)
			if (err != nil) != tt.wantErr {
				t.Fatalf("resolvePreview(%q) error = %v", tt.mode, err)
			}
			if enabled != tt.wantEnabled || force != tt.wantForce {
				t.Errorf("resolvePreview(%q) = %v, %v", tt.mode, enabled, force)
			}
		})
	}
}

func TestParseMonth(t *testing.T) {
	now := func() time.Time { return time.Date(2025, time.November, 1, 0, 0, 0, 0, time.UTC) }

	tests := []struct {
		in      string
		want    time.Month
		wantErr bool
	}{
		{in: "", want: time.November},
		{in: "1", want: time.January},
		{in: " 12 ", want: time.December},
		{in: "0", wantErr: true},
		{in: "13", wantErr: true},
		{in: "april", wantErr: true},
	}
	for _, tt := range tests {
		got, err := parseMonth(tt.in, now)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseMonth(%q) error = %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("parseMonth(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLookupString(t *testing.T) {
	const env = "COLOURTHEORY_TEST_LOOKUP"

	newFlags := func() *pflag.FlagSet {
		fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
		fs.String("base", "#ff0000", "")
		return fs
	}

	t.Setenv(env, "")
	if got := lookupString(newFlags(), "base", env); got != "#ff0000" {
		t.Errorf("default = %q", got)
	}

	t.Setenv(env, "#00ff00")
	if got := lookupString(newFlags(), "base", env); got != "#00ff00" {
		t.Errorf("env = %q", got)
	}

	fs := newFlags()
	if err := fs.Parse([]string{"--base", "#0000ff"}); err != nil {
		t.Fatal(err)
	}
	if got := lookupString(fs, "base", env); got != "#0000ff" {
		t.Errorf("flag = %q", got)
	}
}

func TestFormatQuality(t *testing.T) {
	tests := []struct {
		q         float64
		precision int
		want      string
	}{
		{q: 1, precision: 14, want: "1"},
		{q: 0, precision: 14, want: "0"},
		{q: 0.5, precision: 14, want: "0.5"},
		{q: 2.0 / 3.0, precision: 4, want: "0.6667"},
	}
	for _, tt := range tests {
		if got := formatQuality(tt.q, tt.precision); got != tt.want {
			t.Errorf("formatQuality(%v, %d) = %q, want %q", tt.q, tt.precision, got, tt.want)
		}
	}
}
