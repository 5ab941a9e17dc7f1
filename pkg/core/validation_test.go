package core

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() Config {
	return Config{
		Symbols: []string{"x"},
		Funcs:   []Function{add()},
		Tests:   [][]float64{{1}, {2}},
		Actual:  []float64{2, 4},
	}.WithDefaults()
}

func TestValidateAcceptsValidConfig(t *testing.T) {
	assert.NoError(t, validConfig().Validate())
}

func TestValidateRejections(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantMsg string
	}{
		{
			name:    "empty symbols",
			mutate:  func(c *Config) { c.Symbols = nil },
			wantMsg: "Symbols",
		},
		{
			name:    "empty funcs",
			mutate:  func(c *Config) { c.Funcs = nil },
			wantMsg: "Funcs",
		},
		{
			name:    "empty terminal range",
			mutate:  func(c *Config) { c.TermMin, c.TermMax = 2, 2 },
			wantMsg: "terminal range",
		},
		{
			name:    "depth max below depth min",
			mutate:  func(c *Config) { c.DepthMin, c.DepthMax = 5, 2 },
			wantMsg: "DepthMax",
		},
		{
			name:    "mutation rate above one",
			mutate:  func(c *Config) { c.MutationRate = 1.5 },
			wantMsg: "MutationRate",
		},
		{
			name:    "tournament larger than forest",
			mutate:  func(c *Config) { c.TournamentSize = c.ForestSize + 1 },
			wantMsg: "TournamentSize",
		},
		{
			name:    "tournament below two",
			mutate:  func(c *Config) { c.TournamentSize = 1 },
			wantMsg: "TournamentSize",
		},
		{
			name:    "zero forest",
			mutate:  func(c *Config) { c.ForestSize = -1; c.TournamentSize = 2 },
			wantMsg: "ForestSize",
		},
		{
			name:    "nil op",
			mutate:  func(c *Config) { c.Funcs = []Function{{Name: "broken", Arity: 2}} },
			wantMsg: "nil Op",
		},
		{
			name:    "zero arity",
			mutate:  func(c *Config) { c.Funcs[0].Arity = 0 },
			wantMsg: "arity",
		},
		{
			name:    "tests and actual length mismatch",
			mutate:  func(c *Config) { c.Actual = c.Actual[:1] },
			wantMsg: "expected outputs",
		},
		{
			name:    "test tuple width mismatch",
			mutate:  func(c *Config) { c.Tests[0] = []float64{1, 2} },
			wantMsg: "symbols",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestValidateAggregatesAllProblems(t *testing.T) {
	cfg := validConfig()
	cfg.Symbols = nil
	cfg.TermMin, cfg.TermMax = 1, 0
	cfg.MutationRate = 2

	err := cfg.Validate()
	require.Error(t, err)

	var verrs ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.GreaterOrEqual(t, len(verrs), 3)
	assert.True(t, strings.HasPrefix(err.Error(), "invalid config:"))
}
