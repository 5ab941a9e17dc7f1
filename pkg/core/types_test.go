package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func add() Function {
	return Function{Name: "+", Arity: 2, Op: func(a []float64) (float64, error) {
		return a[0] + a[1], nil
	}}
}

func TestNodeHeight(t *testing.T) {
	x := &SymbolNode{Name: "x"}
	c := &ConstNode{Value: 3}

	assert.Equal(t, 0, x.Height())
	assert.Equal(t, 0, c.Height())

	sum := &FuncNode{Fn: add(), Children: []Node{x, c}}
	assert.Equal(t, 1, sum.Height())

	nested := &FuncNode{Fn: add(), Children: []Node{sum, x}}
	assert.Equal(t, 2, nested.Height())

	// Height follows the tallest child, not the child count
	lopsided := &FuncNode{Fn: add(), Children: []Node{nested, c}}
	assert.Equal(t, 3, lopsided.Height())
}

func TestNodeString(t *testing.T) {
	x := &SymbolNode{Name: "x"}
	assert.Equal(t, "x", x.String())

	c := &ConstNode{Value: 2.5}
	assert.Equal(t, "2.5", c.String())

	sum := &FuncNode{Fn: add(), Children: []Node{x, c}}
	assert.Equal(t, "(+ x 2.5)", sum.String())

	nested := &FuncNode{Fn: add(), Children: []Node{sum, x}}
	assert.Equal(t, "(+ (+ x 2.5) x)", nested.String())
}

func TestIsTerminal(t *testing.T) {
	assert.True(t, IsTerminal(&SymbolNode{Name: "x"}))
	assert.True(t, IsTerminal(&ConstNode{Value: 1}))
	assert.False(t, IsTerminal(&FuncNode{Fn: add(), Children: []Node{&ConstNode{}, &ConstNode{}}}))
}

func TestNewIndividual(t *testing.T) {
	tree := &SymbolNode{Name: "x"}
	ind := NewIndividual(tree)

	assert.NotEmpty(t, ind.ID)
	assert.Same(t, Node(tree), ind.Tree)
	assert.False(t, ind.Scored)

	other := NewIndividual(tree)
	assert.NotEqual(t, ind.ID, other.ID)
}

func TestWithFitness(t *testing.T) {
	ind := NewIndividual(&SymbolNode{Name: "x"})
	scored := ind.WithFitness(3.5)

	assert.False(t, ind.Scored, "receiver must stay untouched")
	assert.True(t, scored.Scored)
	assert.Equal(t, 3.5, scored.Fitness)
	assert.Equal(t, ind.ID, scored.ID)
	assert.Same(t, ind.Tree, scored.Tree)
}

func TestPerfect(t *testing.T) {
	var nilInd *Individual
	assert.False(t, nilInd.Perfect())

	ind := NewIndividual(&SymbolNode{Name: "x"})
	assert.False(t, ind.Perfect(), "unscored individual is never perfect")

	assert.True(t, ind.WithFitness(0).Perfect())
	assert.False(t, ind.WithFitness(0.001).Perfect())
}
