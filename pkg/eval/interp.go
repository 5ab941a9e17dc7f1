// Package eval turns expression trees into callable programs and scores them
// against a config's test cases. Compilation is a recursive interpreter over
// the node variants; no runtime code generation is involved.
package eval

import (
	"github.com/XiaoConstantine/treegp/pkg/core"
	"github.com/XiaoConstantine/treegp/pkg/errors"
)

// Compile turns a tree into a Program taking one positional argument per
// configured symbol, in declared order. Symbols the config does not declare
// are rejected here rather than at call time. Faults raised by operator
// capabilities during a call propagate to the caller untouched.
func Compile(cfg core.Config, tree core.Node) (core.Program, error) {
	index := make(map[string]int, len(cfg.Symbols))
	for i, s := range cfg.Symbols {
		index[s] = i
	}
	if err := checkSymbols(tree, index); err != nil {
		return nil, err
	}

	arity := len(cfg.Symbols)
	return func(args ...float64) (float64, error) {
		if len(args) != arity {
			return 0, errors.Newf(errors.EvaluationFailed,
				"program takes %d arguments, got %d", arity, len(args))
		}
		return evalNode(tree, index, args)
	}, nil
}

func checkSymbols(n core.Node, index map[string]int) error {
	switch n := n.(type) {
	case *core.SymbolNode:
		if _, ok := index[n.Name]; !ok {
			return errors.WithFields(
				errors.New(errors.CompilationFailed, "tree references undeclared symbol"),
				errors.Fields{"symbol": n.Name})
		}
	case *core.FuncNode:
		for _, c := range n.Children {
			if err := checkSymbols(c, index); err != nil {
				return err
			}
		}
	}
	return nil
}

func evalNode(n core.Node, index map[string]int, args []float64) (float64, error) {
	switch n := n.(type) {
	case *core.ConstNode:
		return n.Value, nil
	case *core.SymbolNode:
		return args[index[n.Name]], nil
	case *core.FuncNode:
		vals := make([]float64, len(n.Children))
		for i, c := range n.Children {
			v, err := evalNode(c, index, args)
			if err != nil {
				return 0, err
			}
			vals[i] = v
		}
		out, err := n.Fn.Op(vals)
		if err != nil {
			return 0, errors.WithFields(
				errors.Wrap(err, errors.EvaluationFailed, "operator failed"),
				errors.Fields{"operator": n.Fn.Name})
		}
		return out, nil
	default:
		return 0, errors.Newf(errors.EvaluationFailed, "unknown node type %T", n)
	}
}
