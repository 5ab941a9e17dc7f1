package expr

import (
	"math/rand"

	"github.com/XiaoConstantine/treegp/pkg/core"
	"github.com/XiaoConstantine/treegp/pkg/utils"
)

// RandomSubtree picks a subtree by descending from the root a uniformly
// random number of steps bounded by the tree's own height, taking a
// uniformly random child at each step and stopping early at a terminal.
func RandomSubtree(rng *rand.Rand, tree core.Node) core.Node {
	steps := rng.Intn(tree.Height() + 1)
	node := tree
	for i := 0; i < steps; i++ {
		fn, ok := node.(*core.FuncNode)
		if !ok {
			break
		}
		node = fn.Children[rng.Intn(len(fn.Children))]
	}
	return node
}

// ReplaceSubtree grafts replacement onto a randomly chosen insertion point,
// picked by the same height-bounded walk RandomSubtree uses. Only the path
// from the root to the insertion point is rebuilt; every sibling subtree is
// the original node, shared by reference.
func ReplaceSubtree(rng *rand.Rand, tree, replacement core.Node) core.Node {
	steps := rng.Intn(tree.Height() + 1)
	return replaceAt(rng, tree, replacement, steps)
}

func replaceAt(rng *rand.Rand, node, replacement core.Node, steps int) core.Node {
	fn, ok := node.(*core.FuncNode)
	if steps <= 0 || !ok {
		return replacement
	}
	idx := rng.Intn(len(fn.Children))
	children := make([]core.Node, len(fn.Children))
	copy(children, fn.Children)
	children[idx] = replaceAt(rng, fn.Children[idx], replacement, steps-1)
	return &core.FuncNode{Fn: fn.Fn, Children: children}
}

// Mutate replaces a random subtree with a freshly grown one, with probability
// MutationRate. Otherwise the tree comes back unchanged.
func Mutate(cfg core.Config, rng *rand.Rand, tree core.Node) core.Node {
	if utils.Flip(rng, cfg.MutationRate) {
		return ReplaceSubtree(rng, tree, BuildTree(cfg, rng))
	}
	return tree
}

// Crossover replaces a random subtree of a with a random subtree of b. The
// offspring is not depth-bounded and may exceed the configured DepthMax.
func Crossover(rng *rand.Rand, a, b core.Node) core.Node {
	return ReplaceSubtree(rng, a, RandomSubtree(rng, b))
}
