package main

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/jeffrey-newman/raster-tools/fuzzykappa"
)

// ErrMissingRunField indicates a required field was left empty in a run
// config file.
var ErrMissingRunField = errors.New("fuzzykappa: missing required config field")

// RunConfig describes a single fuzzykappa compare invocation. It is decoded
// from the yaml file that the compare command takes as its one argument;
// the map paths, similarity matrix and decay parameters are set only
// there, not by command-line flags.
type RunConfig struct {
	MapA string `yaml:"map_a"`
	MapB string `yaml:"map_b"`
	Mask string `yaml:"mask,omitempty"`

	// SimilarityMatrix is a row-major nCatsA x nCatsB table; row a, column
	// b is the categorical similarity between category a of MapA and
	// category b of MapB.
	SimilarityMatrix [][]float64 `yaml:"similarity_matrix"`

	// Decay selects ExponentialDecay ("exponential", with Halving) or
	// OneNeighbour ("one-neighbour", with NeighbourValue). Defaults to
	// exponential with Halving=1 when left empty.
	Decay          string  `yaml:"decay,omitempty"`
	Halving        float64 `yaml:"halving,omitempty"`
	NeighbourValue float64 `yaml:"neighbour_value,omitempty"`

	// LegacyCategoryCounting, when true, reproduces the original
	// implementation's category-counting statement verbatim. See
	// fuzzykappa.Options.
	LegacyCategoryCounting bool `yaml:"legacy_category_counting,omitempty"`

	// ComparisonOut, if set, writes the per-cell similarity grid here as
	// an ESRI ASCII grid.
	ComparisonOut string `yaml:"comparison_out,omitempty"`
}

// LoadRunConfig reads and validates a RunConfig from a yaml file.
func LoadRunConfig(path string) (*RunConfig, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("fuzzykappa: read config %s: %w", path, err)
	}

	var cfg RunConfig
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return nil, fmt.Errorf("fuzzykappa: parse config %s: %w", path, err)
	}

	if cfg.MapA == "" || cfg.MapB == "" {
		return nil, fmt.Errorf("fuzzykappa: %s: %w: map_a and map_b are required", path, ErrMissingRunField)
	}
	if len(cfg.SimilarityMatrix) == 0 {
		return nil, fmt.Errorf("fuzzykappa: %s: %w: similarity_matrix is required", path, ErrMissingRunField)
	}

	return &cfg, nil
}

// decayFn builds the fuzzykappa.DecayFn the config describes.
func (c *RunConfig) decayFn() fuzzykappa.DecayFn {
	switch c.Decay {
	case "one-neighbour":
		return fuzzykappa.OneNeighbour(c.NeighbourValue)
	default:
		halving := c.Halving
		if halving <= 0 {
			halving = 1
		}

		return fuzzykappa.ExponentialDecay(halving)
	}
}

// options builds the fuzzykappa.Options the config describes.
func (c *RunConfig) options() fuzzykappa.Options {
	return fuzzykappa.Options{LegacyCategoryCounting: c.LegacyCategoryCounting}
}
