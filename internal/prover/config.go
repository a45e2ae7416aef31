package prover

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the search parameters of the saturation loop.
type Config struct {
	// FunctionWeight is the per-function-symbol cost in the clause
	// evaluation heuristic.
	FunctionWeight int `yaml:"function_weight"`

	// VariableWeight is the per-variable-occurrence cost.
	VariableWeight int `yaml:"variable_weight"`

	// MaxIterations bounds the number of given-clause selections. Zero means
	// unbounded.
	MaxIterations int `yaml:"max_iterations"`
}

// DefaultConfig returns the standard symbol-counting heuristic with no
// iteration bound.
func DefaultConfig() Config {
	return Config{FunctionWeight: 2, VariableWeight: 1}
}

// LoadConfig reads a YAML config file over the defaults. Absent keys keep
// their default values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the config for values that would break the search.
func (c Config) Validate() error {
	if c.FunctionWeight <= 0 {
		return fmt.Errorf("function_weight must be positive, got %d", c.FunctionWeight)
	}
	if c.VariableWeight < 0 {
		return fmt.Errorf("variable_weight must be non-negative, got %d", c.VariableWeight)
	}
	if c.MaxIterations < 0 {
		return fmt.Errorf("max_iterations must be non-negative, got %d", c.MaxIterations)
	}
	return nil
}
