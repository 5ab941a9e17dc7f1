package evolve

import (
	"context"
	"math/rand"
	"time"

	"github.com/sourcegraph/conc/pool"

	"github.com/XiaoConstantine/treegp/pkg/cache"
	"github.com/XiaoConstantine/treegp/pkg/core"
	"github.com/XiaoConstantine/treegp/pkg/errors"
	"github.com/XiaoConstantine/treegp/pkg/eval"
	"github.com/XiaoConstantine/treegp/pkg/expr"
	"github.com/XiaoConstantine/treegp/pkg/logging"
)

// Coordinator evolves PopSize islands in parallel, reshuffling each forest
// between cycles and carrying the global champion across the whole run.
//
// Randomness is split so runs are reproducible under a fixed Seed: the
// coordinator's own rng drives population building and migration, and island
// i owns an rng derived from Seed+i+1 that only that island's task touches.
type Coordinator struct {
	cfg        core.Config
	scorer     *eval.Scorer
	rng        *rand.Rand
	islandRngs []*rand.Rand
	engines    []*Engine
}

// Option configures a Coordinator.
type Option func(*coordinatorOptions)

type coordinatorOptions struct {
	fitnessCache cache.Cache
}

// WithFitnessCache plugs a fitness memoization store into every island's
// scorer.
func WithFitnessCache(c cache.Cache) Option {
	return func(o *coordinatorOptions) {
		o.fitnessCache = c
	}
}

// NewCoordinator merges the config with defaults, validates it eagerly, and
// wires up one engine per island. Validation failures surface here, before
// any generation runs.
func NewCoordinator(cfg core.Config, opts ...Option) (*Coordinator, error) {
	cfg = cfg.WithDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var options coordinatorOptions
	for _, opt := range opts {
		opt(&options)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	var scorerOpts []eval.Option
	if options.fitnessCache != nil {
		scorerOpts = append(scorerOpts, eval.WithCache(options.fitnessCache))
	}
	scorer := eval.NewScorer(cfg, scorerOpts...)

	c := &Coordinator{
		cfg:        cfg,
		scorer:     scorer,
		rng:        rand.New(rand.NewSource(seed)),
		islandRngs: make([]*rand.Rand, cfg.PopSize),
		engines:    make([]*Engine, cfg.PopSize),
	}
	for i := 0; i < cfg.PopSize; i++ {
		c.islandRngs[i] = rand.New(rand.NewSource(seed + int64(i) + 1))
		c.engines[i] = NewEngine(cfg, scorer, c.islandRngs[i])
	}
	return c, nil
}

// Config returns the merged, validated config the coordinator runs with.
func (c *Coordinator) Config() core.Config {
	return c.cfg
}

// BuildForest generates ForestSize fresh, unevaluated individuals.
func (c *Coordinator) BuildForest() core.Forest {
	forest := make(core.Forest, c.cfg.ForestSize)
	for i := range forest {
		forest[i] = core.NewIndividual(expr.BuildTree(c.cfg, c.rng))
	}
	return forest
}

// BuildPopulation generates PopSize fresh forests.
func (c *Coordinator) BuildPopulation() core.Population {
	pop := make(core.Population, c.cfg.PopSize)
	for i := range pop {
		pop[i] = c.BuildForest()
	}
	return pop
}

// Migrate rebuilds each forest for the next cycle: one member is drawn at
// random from the forest, the forest is shuffled, the first shuffled slot is
// dropped and the draw takes its place. The draw comes from the same forest it
// re-enters, so no individual crosses between islands and per-forest size is
// preserved.
func (c *Coordinator) Migrate(pop core.Population) core.Population {
	next := make(core.Population, len(pop))
	for i, forest := range pop {
		pick := forest[c.rng.Intn(len(forest))]
		shuffled := make(core.Forest, len(forest))
		copy(shuffled, forest)
		c.rng.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})
		out := make(core.Forest, 0, len(forest))
		out = append(out, pick)
		out = append(out, shuffled[1:]...)
		next[i] = out
	}
	return next
}

// Run builds a fresh population and evolves it from scratch.
func (c *Coordinator) Run(ctx context.Context) (*core.Result, error) {
	return c.run(ctx, nil, nil)
}

// Resume continues a search from a previously returned population and
// champion, e.g. after a caller decided the last run stopped too early.
func (c *Coordinator) Resume(ctx context.Context, pop core.Population, best *core.Individual) (*core.Result, error) {
	if len(pop) != c.cfg.PopSize {
		return nil, errors.WithFields(
			errors.New(errors.InvalidInput, "resumed population has wrong island count"),
			errors.Fields{"got": len(pop), "want": c.cfg.PopSize})
	}
	for i, forest := range pop {
		if len(forest) != c.cfg.ForestSize {
			return nil, errors.WithFields(
				errors.New(errors.InvalidInput, "resumed forest has wrong size"),
				errors.Fields{"island": i, "got": len(forest), "want": c.cfg.ForestSize})
		}
	}
	return c.run(ctx, pop, best)
}

func (c *Coordinator) run(ctx context.Context, pop core.Population, best *core.Individual) (*core.Result, error) {
	logger := logging.GetLogger()

	if pop == nil {
		logger.Info(ctx, "building population: islands=%d forest_size=%d", c.cfg.PopSize, c.cfg.ForestSize)
		pop = c.BuildPopulation()
	}

	type islandResult struct {
		forest core.Forest
		best   *core.Individual
	}

	for cycles := c.cfg.Cycles; ; cycles-- {
		if cycles == 0 || best.Perfect() {
			return &core.Result{Population: pop, Best: best}, nil
		}
		if err := errors.CheckContext(ctx, "island cycle"); err != nil {
			return nil, err
		}

		// Cycle-boundary report. Same remainder condition as the engine, and
		// only once a champion exists.
		if c.cfg.RepFunc != nil && best != nil && cycles%c.cfg.RepRate != 0 {
			c.cfg.RepFunc(best, true)
		}

		// One task per island, re-spawned fresh every cycle. Each engine is
		// seeded with the current global champion. Results land in index
		// order; nothing shares mutable state across tasks.
		results := make([]islandResult, len(pop))
		p := pool.New().WithErrors().WithMaxGoroutines(c.cfg.Concurrency)
		for i := range pop {
			i := i
			p.Go(func() error {
				forest, islandBest, err := c.engines[i].Run(ctx, pop[i], best, c.cfg.Gens)
				if err != nil {
					return errors.WithFields(err, errors.Fields{"island": i})
				}
				results[i] = islandResult{forest: forest, best: islandBest}
				return nil
			})
		}
		if err := p.Wait(); err != nil {
			return nil, err
		}

		forests := make(core.Population, len(results))
		for i, r := range results {
			forests[i] = r.forest
		}
		pop = c.Migrate(forests)

		for _, r := range results {
			if r.best != nil && (best == nil || r.best.Fitness < best.Fitness) {
				best = r.best
			}
		}

		if best != nil {
			logger.Info(ctx, "cycle complete: remaining=%d best_fitness=%.4f", cycles-1, best.Fitness)
		} else {
			logger.Info(ctx, "cycle complete: remaining=%d", cycles-1)
		}
	}
}
