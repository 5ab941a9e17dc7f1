package core

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithDefaults(t *testing.T) {
	cfg := Config{}.WithDefaults()
	d := DefaultConfig()

	assert.Equal(t, d.TermMin, cfg.TermMin)
	assert.Equal(t, d.TermMax, cfg.TermMax)
	assert.Equal(t, d.DepthMin, cfg.DepthMin)
	assert.Equal(t, d.DepthMax, cfg.DepthMax)
	assert.Equal(t, d.MutationRate, cfg.MutationRate)
	assert.Equal(t, d.TournamentSize, cfg.TournamentSize)
	assert.Equal(t, d.ForestSize, cfg.ForestSize)
	assert.Equal(t, d.PopSize, cfg.PopSize)
	assert.Equal(t, d.Gens, cfg.Gens)
	assert.Equal(t, d.Cycles, cfg.Cycles)
	assert.Equal(t, d.RepRate, cfg.RepRate)
	assert.GreaterOrEqual(t, cfg.Concurrency, 1)
}

func TestWithDefaultsKeepsCallerValues(t *testing.T) {
	cfg := Config{
		TermMin:        -1,
		TermMax:        1,
		DepthMin:       3,
		DepthMax:       8,
		MutationRate:   0.25,
		TournamentSize: 7,
		ForestSize:     123,
		PopSize:        9,
		Gens:           11,
		Cycles:         13,
		RepRate:        17,
		Concurrency:    3,
	}.WithDefaults()

	assert.Equal(t, -1.0, cfg.TermMin)
	assert.Equal(t, 1.0, cfg.TermMax)
	assert.Equal(t, 3, cfg.DepthMin)
	assert.Equal(t, 8, cfg.DepthMax)
	assert.Equal(t, 0.25, cfg.MutationRate)
	assert.Equal(t, 7, cfg.TournamentSize)
	assert.Equal(t, 123, cfg.ForestSize)
	assert.Equal(t, 9, cfg.PopSize)
	assert.Equal(t, 11, cfg.Gens)
	assert.Equal(t, 13, cfg.Cycles)
	assert.Equal(t, 17, cfg.RepRate)
	assert.Equal(t, 3, cfg.Concurrency)
}

func TestApplyParams(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, cfg, cfg.ApplyParams(nil), "nil params change nothing")

	rate := 0.42
	gens := 99
	seed := int64(7)
	out := cfg.ApplyParams(&Params{MutationRate: &rate, Gens: &gens, Seed: &seed})

	assert.Equal(t, 0.42, out.MutationRate)
	assert.Equal(t, 99, out.Gens)
	assert.Equal(t, int64(7), out.Seed)
	// Absent params keep the config's values
	assert.Equal(t, cfg.ForestSize, out.ForestSize)
	assert.Equal(t, cfg.Cycles, out.Cycles)
}

func TestLoadParams(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "params.yaml")
	content := []byte(`
mutation_rate: 0.3
forest_size: 64
pop_size: 6
depth_max: 9
seed: 1234
`)
	require.NoError(t, os.WriteFile(path, content, 0o644))

	p, err := LoadParams(path)
	require.NoError(t, err)

	require.NotNil(t, p.MutationRate)
	assert.Equal(t, 0.3, *p.MutationRate)
	require.NotNil(t, p.ForestSize)
	assert.Equal(t, 64, *p.ForestSize)
	require.NotNil(t, p.PopSize)
	assert.Equal(t, 6, *p.PopSize)
	require.NotNil(t, p.DepthMax)
	assert.Equal(t, 9, *p.DepthMax)
	require.NotNil(t, p.Seed)
	assert.Equal(t, int64(1234), *p.Seed)

	assert.Nil(t, p.TermMin, "absent keys stay nil")
	assert.Nil(t, p.Gens)
}

func TestLoadParamsErrors(t *testing.T) {
	_, err := LoadParams(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("mutation_rate: [not a number"), 0o644))
	_, err = LoadParams(path)
	assert.Error(t, err)
}
