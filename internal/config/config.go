// Package config holds evaluator-wide tunables, replacing funvibe-funxy's
// internal/config (a table of language-extension constants, not
// applicable here) with the handful of knobs this narrower evaluator
// actually needs. Loaded from YAML the same way funvibe-funxy's own
// build tooling reads its configuration files.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config controls evaluator behavior that has no bearing on expression
// evaluation semantics but does affect observability and safety limits.
type Config struct {
	// MaxEvalDepth bounds Evaluator.Evaluate recursion to avoid a Go stack
	// overflow on pathologically deep (but legal) inlined call chains.
	// This is a Go-runtime safety net, not a user-function recursion
	// guard; recursion detection belongs in name resolution.
	MaxEvalDepth int `yaml:"max_eval_depth"`

	// TraceConstraints, when true, makes the Evaluator log each binary
	// operator dispatch and each inlined function call at debug level.
	// The gadget builder's own per-constraint trace is set separately,
	// through NewR1CSBuilder's trace argument.
	TraceConstraints bool `yaml:"trace_constraints"`
}

// Default returns the configuration used when no file is supplied.
func Default() Config {
	return Config{
		MaxEvalDepth:     10000,
		TraceConstraints: false,
	}
}

// Load reads a YAML configuration file, starting from Default() and
// overlaying whatever keys the file sets.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: reading %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	return cfg, nil
}
