package theory

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/jmylchreest/colourtheory/internal/colour"
)

// Environment variables read by Builder.WithEnvConfig.
const (
	EnvEnabledTheories  = "COLOURTHEORY_THEORIES"
	EnvDisabledTheories = "COLOURTHEORY_DISABLED_THEORIES"
)

const allTheories = "all"

// Config selects which registered theories are evaluated.
type Config struct {
	// EnabledTheories restricts evaluation to the listed ids (whitelist mode).
	// Empty, or containing "all", enables every registered theory.
	EnabledTheories []string

	// DisabledTheories removes the listed ids. "all" disables everything.
	// Takes precedence over EnabledTheories.
	DisabledTheories []string
}

// Registry holds theories in registration order.
type Registry struct {
	config   Config
	order    []string
	theories map[string]Theory
}

// NewRegistry creates an empty registry with the given configuration.
func NewRegistry(config Config) *Registry {
	return &Registry{
		config:   config,
		theories: make(map[string]Theory),
	}
}

// Register adds a theory. Registering an id twice replaces the theory but keeps its position.
func (r *Registry) Register(t Theory) {
	if _, exists := r.theories[t.ID()]; !exists {
		r.order = append(r.order, t.ID())
	}
	r.theories[t.ID()] = t
}

// Get retrieves a theory by id.
func (r *Registry) Get(id string) (Theory, bool) {
	t, ok := r.theories[id]
	return t, ok
}

// List returns all registered ids in registration order.
func (r *Registry) List() []string {
	return slices.Clone(r.order)
}

// Config returns the registry's configuration.
func (r *Registry) Config() Config {
	return r.config
}

// IsEnabled reports whether the theory with the given id is selected by the configuration.
func (r *Registry) IsEnabled(id string) bool {
	if slices.Contains(r.config.DisabledTheories, allTheories) || slices.Contains(r.config.DisabledTheories, id) {
		return false
	}
	if len(r.config.EnabledTheories) == 0 || slices.Contains(r.config.EnabledTheories, allTheories) {
		return true
	}
	return slices.Contains(r.config.EnabledTheories, id)
}

// Enabled returns the enabled theories in registration order.
func (r *Registry) Enabled() []Theory {
	enabled := make([]Theory, 0, len(r.order))
	for _, id := range r.order {
		if r.IsEnabled(id) {
			enabled = append(enabled, r.theories[id])
		}
	}
	return enabled
}

// EvaluateAll scores the pair against every enabled theory.
func (r *Registry) EvaluateAll(primary, secondary colour.RGB) []Evaluation {
	enabled := r.Enabled()
	results := make([]Evaluation, len(enabled))
	for i, t := range enabled {
		results[i] = Evaluate(t, primary, secondary)
	}
	return results
}

// validate checks that every configured id names a registered theory.
func (r *Registry) validate() error {
	for _, list := range [][]string{r.config.EnabledTheories, r.config.DisabledTheories} {
		for _, id := range list {
			if id == allTheories {
				continue
			}
			if _, ok := r.theories[id]; !ok {
				return fmt.Errorf("unknown theory %q (available: %s)", id, strings.Join(r.order, ", "))
			}
		}
	}
	return nil
}

// Builder provides a fluent interface for constructing a Registry.
type Builder struct {
	config   Config
	theories []Theory
	useEnv   bool
}

// NewBuilder creates a builder that registers the built-in theories.
func NewBuilder() *Builder {
	return &Builder{
		theories: Builtin(),
	}
}

// WithConfig sets the base configuration.
func (b *Builder) WithConfig(config Config) *Builder {
	b.config = config
	return b
}

// WithEnvConfig loads configuration from environment variables.
// Reads COLOURTHEORY_THEORIES and COLOURTHEORY_DISABLED_THEORIES; a set
// variable replaces the corresponding list from WithConfig.
func (b *Builder) WithEnvConfig() *Builder {
	b.useEnv = true
	return b
}

// WithTheories replaces the set of theories to register (useful for testing).
func (b *Builder) WithTheories(theories ...Theory) *Builder {
	b.theories = theories
	return b
}

// Build constructs the Registry. It fails if the configuration names an unknown theory.
func (b *Builder) Build() (*Registry, error) {
	config := b.config

	if b.useEnv {
		if enabled := os.Getenv(EnvEnabledTheories); enabled != "" {
			config.EnabledTheories = ParseList(enabled)
		}
		if disabled := os.Getenv(EnvDisabledTheories); disabled != "" {
			config.DisabledTheories = ParseList(disabled)
		}
	}

	r := NewRegistry(config)
	for _, t := range b.theories {
		r.Register(t)
	}

	if err := r.validate(); err != nil {
		return nil, err
	}
	return r, nil
}

// ParseList splits a comma-separated list of ids, trimming blanks and lowercasing.
func ParseList(s string) []string {
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.ToLower(strings.TrimSpace(part))
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
