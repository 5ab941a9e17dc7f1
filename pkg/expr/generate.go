// Package expr builds and transforms expression trees. Every function here
// is pure apart from consuming randomness from the supplied rng: inputs are
// never modified, and returned trees share untouched subtrees with their
// sources. Callers own the rng; nothing in this package is safe to drive
// from two goroutines with the same rng at once.
package expr

import (
	"math/rand"

	"github.com/XiaoConstantine/treegp/pkg/core"
	"github.com/XiaoConstantine/treegp/pkg/utils"
)

// RandomTerminal returns a terminal node: a fair coin chooses between a
// randomly picked input symbol and a constant drawn uniformly from
// [TermMin, TermMax).
func RandomTerminal(cfg core.Config, rng *rand.Rand) core.Node {
	if utils.Flip(rng, 0.5) {
		return &core.SymbolNode{Name: cfg.Symbols[rng.Intn(len(cfg.Symbols))]}
	}
	return &core.ConstNode{Value: utils.UniformIn(rng, cfg.TermMin, cfg.TermMax)}
}

// BuildTreeDepth grows a tree ramped half-and-half: growth is forced until
// depthMin is exhausted, then continues on a fair coin, and always stops at
// depthMax. The result's height never exceeds depthMax.
func BuildTreeDepth(cfg core.Config, rng *rand.Rand, depthMax, depthMin int) core.Node {
	if depthMax == 0 || (depthMin <= 0 && utils.Flip(rng, 0.5)) {
		return RandomTerminal(cfg, rng)
	}
	fn := cfg.Funcs[rng.Intn(len(cfg.Funcs))]
	children := make([]core.Node, fn.Arity)
	for i := range children {
		children[i] = BuildTreeDepth(cfg, rng, depthMax-1, depthMin-1)
	}
	return &core.FuncNode{Fn: fn, Children: children}
}

// BuildTree grows a tree inside the configured depth bounds.
func BuildTree(cfg core.Config, rng *rand.Rand) core.Node {
	return BuildTreeDepth(cfg, rng, cfg.DepthMax, cfg.DepthMin)
}
