package eval

import (
	"context"
	"runtime"

	"github.com/sourcegraph/conc/pool"

	"github.com/XiaoConstantine/treegp/pkg/cache"
	"github.com/XiaoConstantine/treegp/pkg/core"
	"github.com/XiaoConstantine/treegp/pkg/errors"
	"github.com/XiaoConstantine/treegp/pkg/logging"
	"github.com/XiaoConstantine/treegp/pkg/metrics"
)

// Scorer evaluates trees against the config's test cases. It is safe for
// concurrent use: scoring is pure given a config, and the optional fitness
// cache handles its own locking.
type Scorer struct {
	cfg   core.Config
	cache cache.Cache
}

// Option configures a Scorer.
type Option func(*Scorer)

// WithCache memoizes fitness by the canonical tree rendering. Sound because
// two trees with equal renderings score identically under the same config.
func WithCache(c cache.Cache) Option {
	return func(s *Scorer) {
		s.cache = c
	}
}

// NewScorer builds a Scorer for the given config.
func NewScorer(cfg core.Config, opts ...Option) *Scorer {
	if cfg.Concurrency < 1 {
		cfg.Concurrency = runtime.GOMAXPROCS(0)
	}
	s := &Scorer{cfg: cfg}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Score compiles the tree once and returns the sum of absolute errors over
// all test cases. Lower is better; 0 is an exact match on every case.
func (s *Scorer) Score(ctx context.Context, tree core.Node) (float64, error) {
	var key string
	if s.cache != nil {
		key = tree.String()
		if fitness, ok, err := s.cache.Get(ctx, key); err != nil {
			logging.GetLogger().Warn(ctx, "fitness cache read failed: %v", err)
		} else if ok {
			return fitness, nil
		}
	}

	prog, err := Compile(s.cfg, tree)
	if err != nil {
		return 0, err
	}

	predicted := make([]float64, len(s.cfg.Tests))
	for i, input := range s.cfg.Tests {
		out, err := prog(input...)
		if err != nil {
			return 0, errors.WithFields(err, errors.Fields{"test": i})
		}
		predicted[i] = out
	}
	fitness := metrics.SumAbsoluteError(predicted, s.cfg.Actual)

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, fitness); err != nil {
			logging.GetLogger().Warn(ctx, "fitness cache write failed: %v", err)
		}
	}
	return fitness, nil
}

// ScoreForest scores every individual concurrently through a bounded pool and
// gathers the results back in dispatch order, so downstream fitness sorting
// is deterministic. The first evaluation fault fails the whole call; no
// individual is silently dropped, which is what keeps the forest at its
// invariant size.
func (s *Scorer) ScoreForest(ctx context.Context, forest core.Forest) (core.Forest, error) {
	scored := make(core.Forest, len(forest))

	p := pool.New().WithErrors().WithMaxGoroutines(s.cfg.Concurrency)
	for i, ind := range forest {
		i, ind := i, ind
		p.Go(func() error {
			fitness, err := s.Score(ctx, ind.Tree)
			if err != nil {
				return errors.WithFields(err, errors.Fields{"individual": ind.ID})
			}
			scored[i] = ind.WithFitness(fitness)
			return nil
		})
	}
	if err := p.Wait(); err != nil {
		return nil, err
	}
	return scored, nil
}

// Config returns the scorer's config.
func (s *Scorer) Config() core.Config {
	return s.cfg
}
