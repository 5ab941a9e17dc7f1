package core

import (
	"os"
	"runtime"

	"gopkg.in/yaml.v3"

	"github.com/XiaoConstantine/treegp/pkg/errors"
)

// Config holds everything a search needs. Build it once per run and treat it
// as read-only; every component reads it concurrently without locking.
type Config struct {
	// Symbols are the input-variable names usable as terminals, in the order
	// test tuples and compiled programs bind them.
	Symbols []string `validate:"required,min=1"`

	// Funcs is the operator vocabulary.
	Funcs []Function `validate:"required,min=1"`

	// TermMin and TermMax bound constant terminals: values are drawn
	// uniformly from [TermMin, TermMax).
	TermMin float64
	TermMax float64

	// DepthMin and DepthMax bound freshly generated trees. Crossover and
	// mutation may push offspring past DepthMax; that is accepted behavior.
	DepthMin int `validate:"gte=0"`
	DepthMax int `validate:"gtefield=DepthMin"`

	// MutationRate is the per-individual probability of subtree mutation.
	// The zero value is replaced by the default; see WithDefaults.
	MutationRate float64 `validate:"gte=0,lte=1"`

	// TournamentSize individuals are sampled (with replacement) per
	// tournament. Must be at least 2 and at most ForestSize.
	TournamentSize int `validate:"gte=2,ltefield=ForestSize"`

	// ForestSize is the number of individuals per island.
	ForestSize int `validate:"gte=2"`

	// PopSize is the number of islands.
	PopSize int `validate:"gte=1"`

	// Gens is the generations run per island per coordinator cycle.
	Gens int `validate:"gte=0"`

	// Cycles is the number of coordinator cycles (migration rounds).
	Cycles int `validate:"gte=0"`

	// RepRate controls reporting: a report fires when the remaining
	// generation (or cycle) count has a non-zero remainder mod RepRate. Note
	// this is the observed behavior of the reporting condition, so RepRate=1
	// disables reporting entirely and larger values report on most steps.
	RepRate int `validate:"gte=1"`

	// RepFunc receives progress reports. May be nil.
	RepFunc ReportFunc

	// Tests holds one input tuple per test case, each with exactly one value
	// per symbol, in symbol order. Actual holds the expected outputs, same
	// length and order.
	Tests  [][]float64
	Actual []float64

	// Seed drives all randomness. 0 means derive one from the clock; any
	// fixed value makes runs reproducible.
	Seed int64

	// Concurrency caps the goroutines used per worker pool, for both island
	// dispatch and per-individual scoring. Defaults to GOMAXPROCS.
	Concurrency int `validate:"gte=1"`
}

// DefaultConfig returns the documented defaults for every tunable field.
// Vocabulary and test data have no defaults; they must come from the caller.
func DefaultConfig() Config {
	return Config{
		TermMin:        -5,
		TermMax:        5,
		DepthMin:       2,
		DepthMax:       6,
		MutationRate:   0.1,
		TournamentSize: 5,
		ForestSize:     50,
		PopSize:        4,
		Gens:           25,
		Cycles:         10,
		RepRate:        1,
		Concurrency:    runtime.GOMAXPROCS(0),
	}
}

// WithDefaults fills every zero-valued tunable from DefaultConfig. Zero is
// indistinguishable from unset here, so a caller who genuinely wants
// MutationRate 0 or a [0,0) terminal range sets the fields after merging.
func (c Config) WithDefaults() Config {
	d := DefaultConfig()
	if c.TermMin == 0 && c.TermMax == 0 {
		c.TermMin, c.TermMax = d.TermMin, d.TermMax
	}
	if c.DepthMin == 0 && c.DepthMax == 0 {
		c.DepthMin, c.DepthMax = d.DepthMin, d.DepthMax
	}
	if c.MutationRate == 0 {
		c.MutationRate = d.MutationRate
	}
	if c.TournamentSize == 0 {
		c.TournamentSize = d.TournamentSize
	}
	if c.ForestSize == 0 {
		c.ForestSize = d.ForestSize
	}
	if c.PopSize == 0 {
		c.PopSize = d.PopSize
	}
	if c.Gens == 0 {
		c.Gens = d.Gens
	}
	if c.Cycles == 0 {
		c.Cycles = d.Cycles
	}
	if c.RepRate == 0 {
		c.RepRate = d.RepRate
	}
	if c.Concurrency == 0 {
		c.Concurrency = d.Concurrency
	}
	return c
}

// Params is the YAML-representable subset of Config: the numeric tunables.
// Vocabulary, callbacks and test data cannot be serialized and stay in code.
// Pointer fields distinguish "absent" from an explicit zero.
type Params struct {
	TermMin        *float64 `yaml:"term_min"`
	TermMax        *float64 `yaml:"term_max"`
	DepthMin       *int     `yaml:"depth_min"`
	DepthMax       *int     `yaml:"depth_max"`
	MutationRate   *float64 `yaml:"mutation_rate"`
	TournamentSize *int     `yaml:"tournament_size"`
	ForestSize     *int     `yaml:"forest_size"`
	PopSize        *int     `yaml:"pop_size"`
	Gens           *int     `yaml:"gens"`
	Cycles         *int     `yaml:"cycles"`
	RepRate        *int     `yaml:"rep_rate"`
	Seed           *int64   `yaml:"seed"`
	Concurrency    *int     `yaml:"concurrency"`
}

// LoadParams reads tunables from a YAML file.
func LoadParams(path string) (*Params, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, errors.ResourceNotFound, "failed to read params file")
	}
	var p Params
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, errors.WithFields(
			errors.Wrap(err, errors.InvalidInput, "failed to parse params file"),
			errors.Fields{"path": path})
	}
	return &p, nil
}

// ApplyParams overlays every present param onto the config.
func (c Config) ApplyParams(p *Params) Config {
	if p == nil {
		return c
	}
	if p.TermMin != nil {
		c.TermMin = *p.TermMin
	}
	if p.TermMax != nil {
		c.TermMax = *p.TermMax
	}
	if p.DepthMin != nil {
		c.DepthMin = *p.DepthMin
	}
	if p.DepthMax != nil {
		c.DepthMax = *p.DepthMax
	}
	if p.MutationRate != nil {
		c.MutationRate = *p.MutationRate
	}
	if p.TournamentSize != nil {
		c.TournamentSize = *p.TournamentSize
	}
	if p.ForestSize != nil {
		c.ForestSize = *p.ForestSize
	}
	if p.PopSize != nil {
		c.PopSize = *p.PopSize
	}
	if p.Gens != nil {
		c.Gens = *p.Gens
	}
	if p.Cycles != nil {
		c.Cycles = *p.Cycles
	}
	if p.RepRate != nil {
		c.RepRate = *p.RepRate
	}
	if p.Seed != nil {
		c.Seed = *p.Seed
	}
	if p.Concurrency != nil {
		c.Concurrency = *p.Concurrency
	}
	return c
}
