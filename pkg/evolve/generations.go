package evolve

import (
	"context"
	"math/rand"

	"github.com/XiaoConstantine/treegp/pkg/core"
	"github.com/XiaoConstantine/treegp/pkg/errors"
	"github.com/XiaoConstantine/treegp/pkg/eval"
	"github.com/XiaoConstantine/treegp/pkg/expr"
	"github.com/XiaoConstantine/treegp/pkg/logging"
)

// Engine evolves a single island's forest through repeated
// select-crossover-mutate-evaluate cycles. An Engine owns its rng and must
// not be driven from two goroutines at once; the coordinator gives each
// island its own.
type Engine struct {
	cfg    core.Config
	scorer *eval.Scorer
	rng    *rand.Rand
}

// NewEngine builds an engine around a scorer and an rng the caller seeds.
func NewEngine(cfg core.Config, scorer *eval.Scorer, rng *rand.Rand) *Engine {
	return &Engine{cfg: cfg, scorer: scorer, rng: rng}
}

// Run evolves the forest for up to gens generations, stopping early when the
// best individual reaches fitness 0 or the context is canceled. The incoming
// best seeds champion tracking and wins fitness ties against every
// generation's best. The returned forest always has the input forest's size;
// its individuals are the unevaluated offspring of the last completed
// generation.
func (e *Engine) Run(ctx context.Context, forest core.Forest, best *core.Individual, gens int) (core.Forest, *core.Individual, error) {
	logger := logging.GetLogger()

	for n := gens; ; n-- {
		if n == 0 || best.Perfect() {
			return forest, best, nil
		}
		if err := errors.CheckContext(ctx, "generation run"); err != nil {
			return nil, nil, err
		}

		// In-cycle progress report. The condition fires on a non-zero
		// remainder, so RepRate 1 silences these entirely.
		if e.cfg.RepFunc != nil && n%e.cfg.RepRate != 0 {
			e.cfg.RepFunc(best, false)
		}

		scored, err := e.scorer.ScoreForest(ctx, forest)
		if err != nil {
			return nil, nil, err
		}

		genBest := BestOf(scored)
		updated := best
		if updated == nil || genBest.Fitness < updated.Fitness {
			updated = genBest
		}

		offspring := TournamentSelect(e.cfg, e.rng, scored)
		next := make(core.Forest, len(offspring))
		for i, tree := range offspring {
			next[i] = core.NewIndividual(expr.Mutate(e.cfg, e.rng, tree))
		}

		// Elitism: the champion's genome re-enters the gene pool at a fixed
		// slot, but only once a champion exists at all.
		if best != nil {
			next[0] = core.NewIndividual(updated.Tree)
		}

		logger.Debug(ctx, "generation done: remaining=%d gen_best=%.4f best=%.4f",
			n-1, genBest.Fitness, updated.Fitness)

		best = updated
		forest = next
	}
}
