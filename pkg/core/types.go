package core

import (
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// Function describes one operator in the program vocabulary. Operators are
// untyped: Op receives exactly Arity evaluated arguments, in child order.
// An error returned by Op is an evaluation fault and aborts the run that
// triggered it.
type Function struct {
	Name  string
	Arity int
	Op    func(args []float64) (float64, error)
}

// Node is an immutable expression tree. A node is either a terminal
// (SymbolNode or ConstNode) or a FuncNode with arity-many ordered children.
// Transformations never modify a node in place; they return a new root that
// shares untouched subtrees with the original.
type Node interface {
	// Height returns 0 for a terminal and 1+max(children) otherwise.
	Height() int

	// String renders the tree as an s-expression. The rendering is canonical:
	// two trees with equal renderings evaluate identically, which is what the
	// fitness cache keys on.
	String() string
}

// SymbolNode is a terminal referencing one of the configured input symbols.
type SymbolNode struct {
	Name string
}

func (n *SymbolNode) Height() int { return 0 }

func (n *SymbolNode) String() string { return n.Name }

// ConstNode is a terminal holding a numeric constant drawn from the
// configured terminal range.
type ConstNode struct {
	Value float64
}

func (n *ConstNode) Height() int { return 0 }

func (n *ConstNode) String() string { return strconv.FormatFloat(n.Value, 'g', -1, 64) }

// FuncNode applies a Function to its evaluated children. len(Children) equals
// Fn.Arity for every tree the library produces.
type FuncNode struct {
	Fn       Function
	Children []Node
}

func (n *FuncNode) Height() int {
	max := 0
	for _, c := range n.Children {
		if h := c.Height(); h > max {
			max = h
		}
	}
	return 1 + max
}

func (n *FuncNode) String() string {
	var b strings.Builder
	b.WriteByte('(')
	b.WriteString(n.Fn.Name)
	for _, c := range n.Children {
		b.WriteByte(' ')
		b.WriteString(c.String())
	}
	b.WriteByte(')')
	return b.String()
}

// IsTerminal reports whether n has no children.
func IsTerminal(n Node) bool {
	_, ok := n.(*FuncNode)
	return !ok
}

// Program is a compiled tree: one positional argument per configured symbol,
// in declared order.
type Program func(args ...float64) (float64, error)

// Individual pairs a tree with its fitness. Fitness is meaningful only once
// Scored is set; lower is better and exactly 0 means a perfect match, which
// is the global stopping signal. The ID identifies the individual in logs and
// progress reports and carries no algorithmic weight.
type Individual struct {
	ID      string
	Tree    Node
	Fitness float64
	Scored  bool
}

// NewIndividual wraps a freshly generated tree, not yet scored.
func NewIndividual(tree Node) *Individual {
	return &Individual{ID: uuid.NewString(), Tree: tree}
}

// WithFitness returns a scored copy. The receiver is left untouched so
// forests can be rebuilt without cross-goroutine writes.
func (ind *Individual) WithFitness(fitness float64) *Individual {
	return &Individual{ID: ind.ID, Tree: ind.Tree, Fitness: fitness, Scored: true}
}

// Perfect reports whether this individual hit fitness 0.
func (ind *Individual) Perfect() bool {
	return ind != nil && ind.Scored && ind.Fitness == 0
}

// Forest is one island's population for one generation. Its length stays
// constant across generations.
type Forest []*Individual

// Population is the set of forests evolved in parallel, one per island.
type Population []Forest

// ReportFunc receives progress reports: the best individual observed so far
// and whether the report marks a coordinator cycle boundary rather than an
// in-cycle generation. The engine may report before any individual has been
// scored, in which case best is nil. A panicking callback aborts the run; it
// is not recovered.
type ReportFunc func(best *Individual, cycleBoundary bool)

// Result is what a search returns. Callers read Best.Tree and Best.Fitness
// as the answer; Population can be fed back in to resume the search.
type Result struct {
	Population Population
	Best       *Individual
}
