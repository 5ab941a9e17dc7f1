// Package testutil provides shared fixtures for package tests: a small arithmetic
// vocabulary, deterministic rngs and dataset builders.
package testutil

import (
	"math/rand"

	"github.com/XiaoConstantine/treegp/pkg/core"
	"github.com/XiaoConstantine/treegp/pkg/errors"
)

// NewRand returns a deterministic rng for tests.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// Add is a binary addition operator.
func Add() core.Function {
	return core.Function{Name: "+", Arity: 2, Op: func(a []float64) (float64, error) {
		return a[0] + a[1], nil
	}}
}

// Mul is a binary multiplication operator.
func Mul() core.Function {
	return core.Function{Name: "*", Arity: 2, Op: func(a []float64) (float64, error) {
		return a[0] * a[1], nil
	}}
}

// Sub is a binary subtraction operator.
func Sub() core.Function {
	return core.Function{Name: "-", Arity: 2, Op: func(a []float64) (float64, error) {
		return a[0] - a[1], nil
	}}
}

// Div is an unprotected division operator: it faults on a zero denominator,
// which is how tests exercise evaluation-fault propagation.
func Div() core.Function {
	return core.Function{Name: "/", Arity: 2, Op: func(a []float64) (float64, error) {
		if a[1] == 0 {
			return 0, errors.New(errors.EvaluationFailed, "division by zero")
		}
		return a[0] / a[1], nil
	}}
}

// Arithmetic returns the standard test vocabulary: +, -, *.
func Arithmetic() []core.Function {
	return []core.Function{Add(), Sub(), Mul()}
}

// LinearDataset builds n test cases for the target function slope*x.
func LinearDataset(slope float64, n int) (tests [][]float64, actual []float64) {
	for i := 1; i <= n; i++ {
		x := float64(i)
		tests = append(tests, []float64{x})
		actual = append(actual, slope*x)
	}
	return tests, actual
}

// BaseConfig returns a small, valid configuration for the target 2x over
// three test points. Tests override fields as needed.
func BaseConfig() core.Config {
	tests, actual := LinearDataset(2, 3)
	return core.Config{
		Symbols:        []string{"x"},
		Funcs:          Arithmetic(),
		TermMin:        -5,
		TermMax:        5,
		DepthMin:       1,
		DepthMax:       4,
		MutationRate:   0.1,
		TournamentSize: 3,
		ForestSize:     10,
		PopSize:        2,
		Gens:           5,
		Cycles:         3,
		RepRate:        1,
		Tests:          tests,
		Actual:         actual,
		Seed:           1,
		Concurrency:    2,
	}
}
