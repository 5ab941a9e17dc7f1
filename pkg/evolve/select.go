// Package evolve runs the evolutionary search: tournament selection, the
// per-island generation engine, and the multi-island coordinator with
// migration and global champion tracking.
package evolve

import (
	"math/rand"
	"sort"

	"github.com/XiaoConstantine/treegp/pkg/core"
	"github.com/XiaoConstantine/treegp/pkg/expr"
)

// TournamentOnce samples TournamentSize individuals from the scored forest
// with replacement, ranks them ascending by fitness (stable, so ties keep
// sampling order), and returns the crossover of the two fittest.
func TournamentOnce(cfg core.Config, rng *rand.Rand, scored core.Forest) core.Node {
	sample := make(core.Forest, cfg.TournamentSize)
	for i := range sample {
		sample[i] = scored[rng.Intn(len(scored))]
	}
	sort.SliceStable(sample, func(i, j int) bool {
		return sample[i].Fitness < sample[j].Fitness
	})
	return expr.Crossover(rng, sample[0].Tree, sample[1].Tree)
}

// TournamentSelect runs exactly ForestSize tournaments, producing the next
// generation's trees, unevaluated.
func TournamentSelect(cfg core.Config, rng *rand.Rand, scored core.Forest) []core.Node {
	offspring := make([]core.Node, cfg.ForestSize)
	for i := range offspring {
		offspring[i] = TournamentOnce(cfg, rng, scored)
	}
	return offspring
}

// BestOf returns the minimum-fitness individual of a scored forest, first
// encounter winning ties. Returns nil for an empty forest.
func BestOf(scored core.Forest) *core.Individual {
	if len(scored) == 0 {
		return nil
	}
	best := scored[0]
	for _, ind := range scored[1:] {
		if ind.Fitness < best.Fitness {
			best = ind
		}
	}
	return best
}
