package expr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/XiaoConstantine/treegp/internal/testutil"
	"github.com/XiaoConstantine/treegp/pkg/core"
)

// collectNodes gathers every node of a tree, root included.
func collectNodes(n core.Node, out map[core.Node]bool) {
	out[n] = true
	if fn, ok := n.(*core.FuncNode); ok {
		for _, c := range fn.Children {
			collectNodes(c, out)
		}
	}
}

func containsNode(tree, target core.Node) bool {
	nodes := make(map[core.Node]bool)
	collectNodes(tree, nodes)
	return nodes[target]
}

// verifyPathRebuild checks persistent-tree semantics: result differs from
// orig only along a single root-to-insertion-point path ending at sentinel;
// every branch off that path is the original node, shared by reference.
func verifyPathRebuild(t *testing.T, orig, result, sentinel core.Node) {
	t.Helper()
	for {
		if result == sentinel {
			return
		}
		ro, ok := orig.(*core.FuncNode)
		require.True(t, ok, "only operator nodes can be rebuilt")
		rr, ok := result.(*core.FuncNode)
		require.True(t, ok)
		require.Equal(t, ro.Fn.Name, rr.Fn.Name)
		require.Len(t, rr.Children, len(ro.Children))

		changed := -1
		for i := range rr.Children {
			if rr.Children[i] != ro.Children[i] {
				require.Equal(t, -1, changed, "exactly one child per level may change")
				changed = i
			}
		}
		require.NotEqual(t, -1, changed, "some child must lead to the sentinel")
		orig, result = ro.Children[changed], rr.Children[changed]
	}
}

func TestRandomSubtreeReturnsOwnNode(t *testing.T) {
	cfg := vocabConfig()
	rng := testutil.NewRand(5)

	for i := 0; i < 200; i++ {
		tree := BuildTree(cfg, rng)
		sub := RandomSubtree(rng, tree)
		assert.True(t, containsNode(tree, sub))
	}
}

func TestRandomSubtreeOfTerminal(t *testing.T) {
	rng := testutil.NewRand(5)
	leaf := &core.SymbolNode{Name: "x"}
	assert.Same(t, core.Node(leaf), RandomSubtree(rng, leaf))
}

func TestReplaceSubtree(t *testing.T) {
	cfg := vocabConfig()
	rng := testutil.NewRand(13)
	sentinel := &core.SymbolNode{Name: "sentinel"}

	for i := 0; i < 200; i++ {
		tree := BuildTree(cfg, rng)
		result := ReplaceSubtree(rng, tree, sentinel)

		assert.True(t, containsNode(result, sentinel), "replacement must land somewhere")
		verifyPathRebuild(t, tree, result, sentinel)
		checkArity(t, result)
	}
}

func TestReplaceSubtreeOfTerminal(t *testing.T) {
	rng := testutil.NewRand(13)
	leaf := &core.ConstNode{Value: 1}
	sentinel := &core.SymbolNode{Name: "s"}
	assert.Same(t, core.Node(sentinel), ReplaceSubtree(rng, leaf, sentinel))
}

func TestMutateRateZeroReturnsSameTree(t *testing.T) {
	cfg := vocabConfig()
	cfg.MutationRate = 0
	rng := testutil.NewRand(17)

	for i := 0; i < 100; i++ {
		tree := BuildTree(cfg, rng)
		assert.Same(t, tree, Mutate(cfg, rng, tree))
	}
}

func TestMutateRateOneAlwaysReplaces(t *testing.T) {
	cfg := vocabConfig()
	cfg.MutationRate = 1
	rng := testutil.NewRand(19)

	for i := 0; i < 100; i++ {
		tree := BuildTree(cfg, rng)
		mutated := Mutate(cfg, rng, tree)
		assert.NotSame(t, tree, mutated)
		checkArity(t, mutated)
	}
}

func TestCrossover(t *testing.T) {
	cfg := vocabConfig()
	rng := testutil.NewRand(23)

	for i := 0; i < 200; i++ {
		a := BuildTree(cfg, rng)
		b := BuildTree(cfg, rng)
		child := Crossover(rng, a, b)
		require.NotNil(t, child)
		checkArity(t, child)
	}
}

func TestCrossoverOfTerminals(t *testing.T) {
	rng := testutil.NewRand(29)
	a := &core.SymbolNode{Name: "a"}
	b := &core.SymbolNode{Name: "b"}
	// Both walks stop immediately at height 0, so the offspring is b itself
	assert.Same(t, core.Node(b), Crossover(rng, a, b))
}
