// Package config loads search profiles from YAML.
//
// A profile names one pair of run constraints (and optionally a target
// cell); a config file lists any number of profiles plus the strategy and
// worker count used to evaluate them.
//
//	strategy: lazy
//	workers: 2
//	profiles:
//	  - name: standard
//	    min_run: 0
//	    max_run: 3
//	  - name: ultra
//	    min_run: 3
//	    max_run: 10
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/crucible/dijkstra"
	"github.com/katalvlaran/crucible/statespace"
)

// ErrInvalidConfig wraps every validation failure of a config file.
var ErrInvalidConfig = errors.New("config: invalid")

// Config is the YAML document: a default strategy, the worker count for
// batch runs (0 runs every profile at once) and the profiles to evaluate.
type Config struct {
	Strategy string    `yaml:"strategy"`
	Workers  int       `yaml:"workers"`
	Profiles []Profile `yaml:"profiles"`
}

// Profile is one named pair of run constraints, optionally with its own
// target cell.
type Profile struct {
	Name   string  `yaml:"name"`
	MinRun int     `yaml:"min_run"`
	MaxRun int     `yaml:"max_run"`
	Target *Target `yaml:"target,omitempty"`
}

// Target overrides the default bottom-right destination.
type Target struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// Load reads and validates the config at path. An empty path yields Default().
func Load(path string) (Config, error) {
	if strings.TrimSpace(path) == "" {
		return Default(), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	cfg, err := Parse(b)
	if err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Parse decodes YAML, fills defaults for omitted fields and validates.
func Parse(b []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("config yaml: %w", err)
	}
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// Default is the standard/ultra pair evaluated lazily, one worker per profile.
func Default() Config {
	return Config{
		Strategy: dijkstra.Lazy.String(),
		Profiles: []Profile{
			{Name: "standard", MinRun: 0, MaxRun: 3},
			{Name: "ultra", MinRun: 3, MaxRun: 10},
		},
	}
}

// Normalize trims and lower-cases the strategy (empty becomes "lazy"),
// trims profile names and falls back to the default profiles when none are
// given. A nil receiver is a no-op.
func (c *Config) Normalize() {
	if c == nil {
		return
	}
	c.Strategy = strings.ToLower(strings.TrimSpace(c.Strategy))
	if c.Strategy == "" {
		c.Strategy = dijkstra.Lazy.String()
	}
	if len(c.Profiles) == 0 {
		c.Profiles = Default().Profiles
	}
	for i := range c.Profiles {
		c.Profiles[i].Name = strings.TrimSpace(c.Profiles[i].Name)
	}
}

// Validate checks the strategy, the worker count and every profile, and
// returns the first problem wrapped in ErrInvalidConfig.
func (c Config) Validate() error {
	if _, err := ParseStrategy(c.Strategy); err != nil {
		return err
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers %d is negative", ErrInvalidConfig, c.Workers)
	}
	seen := make(map[string]bool, len(c.Profiles))
	for i, p := range c.Profiles {
		if p.Name == "" {
			return fmt.Errorf("%w: profile %d has no name", ErrInvalidConfig, i)
		}
		if seen[p.Name] {
			return fmt.Errorf("%w: duplicate profile %q", ErrInvalidConfig, p.Name)
		}
		seen[p.Name] = true
		if err := p.Constraints().Validate(); err != nil {
			return fmt.Errorf("%w: profile %q: %w", ErrInvalidConfig, p.Name, err)
		}
	}

	return nil
}

// ParseStrategy maps "lazy" / "eager" to a dijkstra.Strategy.
func ParseStrategy(s string) (dijkstra.Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "lazy":
		return dijkstra.Lazy, nil
	case "eager":
		return dijkstra.Eager, nil
	}

	return dijkstra.Lazy, fmt.Errorf("%w: unknown strategy %q", ErrInvalidConfig, s)
}

// Constraints returns the profile's runs; it does not validate them.
func (p Profile) Constraints() statespace.Constraints {
	return statespace.Constraints{MinRun: p.MinRun, MaxRun: p.MaxRun}
}

// Options turns the profile into search options.
func (p Profile) Options(s dijkstra.Strategy) []dijkstra.Option {
	opts := []dijkstra.Option{
		dijkstra.WithConstraints(p.Constraints()),
		dijkstra.WithStrategy(s),
	}
	if p.Target != nil {
		opts = append(opts, dijkstra.WithTarget(p.Target.X, p.Target.Y))
	}

	return opts
}
