package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempConfig(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	return path
}

func TestLoadRunConfig(t *testing.T) {
	path := writeTempConfig(t, `
map_a: a.asc
map_b: b.asc
similarity_matrix:
  - [1, 0]
  - [0, 1]
decay: exponential
halving: 2
`)

	cfg, err := LoadRunConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "a.asc", cfg.MapA)
	assert.Equal(t, 2, len(cfg.SimilarityMatrix))
	assert.Equal(t, 2.0, cfg.Halving)
}

func TestLoadRunConfig_MissingRequiredField(t *testing.T) {
	path := writeTempConfig(t, `
map_a: a.asc
similarity_matrix:
  - [1]
`)
	_, err := LoadRunConfig(path)
	assert.ErrorIs(t, err, ErrMissingRunField)
}

func TestLoadRunConfig_MissingSimilarityMatrix(t *testing.T) {
	path := writeTempConfig(t, `
map_a: a.asc
map_b: b.asc
`)
	_, err := LoadRunConfig(path)
	assert.ErrorIs(t, err, ErrMissingRunField)
}

func TestDecayFn_Defaults(t *testing.T) {
	cfg := &RunConfig{}
	fn := cfg.decayFn()
	assert.InDelta(t, 0.5, fn(1), 1e-12)
}

func TestDecayFn_OneNeighbour(t *testing.T) {
	cfg := &RunConfig{Decay: "one-neighbour", NeighbourValue: 0.4}
	fn := cfg.decayFn()
	assert.Equal(t, 0.4, fn(1.0))
}
