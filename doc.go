// Package treegp is a parallel island-model genetic programming engine. It
// evolves symbolic expression trees toward minimizing error against a set of
// input/output examples: given a vocabulary of operators and terminals plus
// test inputs and expected outputs, it searches program space with randomized
// tree generation, subtree mutation and crossover, tournament selection and
// multi-island evolution, returning the best-scoring program found.
//
// Key Components:
//
//   - core: The data model (Function, Node expression trees, Individual,
//     Forest, Population) plus Config with defaults merging, YAML-loadable
//     tunables and eager validation.
//
//   - expr: Tree generation (ramped half-and-half under depth bounds) and the
//     genetic operators: random subtree selection, subtree replacement with
//     structural sharing, mutation and crossover.
//
//   - eval: An interpreter that compiles a tree into a callable program, and
//     a Scorer that measures sum-of-absolute-errors over the configured test
//     cases, scoring whole forests concurrently. An optional fitness cache
//     (in-memory or SQLite-backed) memoizes scores by canonical rendering.
//
//   - evolve: Tournament selection, the per-island generation engine with
//     elitism and early stop at fitness 0, and the island coordinator that
//     runs islands in parallel, reshuffles forests between cycles and tracks
//     the global champion.
//
//   - datasets: CSV and Parquet loaders for regression test cases.
//
// Simple Example:
//
//	import (
//	    "context"
//	    "fmt"
//	    "log"
//
//	    "github.com/XiaoConstantine/treegp/pkg/core"
//	    "github.com/XiaoConstantine/treegp/pkg/evolve"
//	)
//
//	func main() {
//	    cfg := core.Config{
//	        Symbols: []string{"x"},
//	        Funcs: []core.Function{
//	            {Name: "+", Arity: 2, Op: func(a []float64) (float64, error) { return a[0] + a[1], nil }},
//	            {Name: "*", Arity: 2, Op: func(a []float64) (float64, error) { return a[0] * a[1], nil }},
//	        },
//	        Tests:  [][]float64{{1}, {2}, {3}},
//	        Actual: []float64{2, 4, 6},
//	        Seed:   42,
//	    }
//
//	    result, err := evolve.Search(context.Background(), cfg)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Printf("best: %s (fitness %v)\n", result.Best.Tree, result.Best.Fitness)
//	}
//
// With a fixed Seed, runs are fully reproducible. Fitness is a sum of
// absolute errors, so 0 means an exact match on every test case and stops
// the search early; otherwise the search runs for the configured number of
// cycles and returns the best individual seen anywhere.
package treegp
