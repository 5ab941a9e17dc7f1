// Package metrics provides error metrics over paired prediction/expectation
// slices. SumAbsoluteError is the fitness signal the evaluator minimizes; the
// others exist for reporting and analysis of finished runs.
package metrics

import (
	"github.com/XiaoConstantine/treegp/pkg/utils"
)

// SumAbsoluteError returns the sum of |predicted - expected| over all pairs.
// Slices must be the same length; extra elements in either are ignored.
func SumAbsoluteError(predicted, expected []float64) float64 {
	n := len(predicted)
	if len(expected) < n {
		n = len(expected)
	}
	sum := 0.0
	for i := 0; i < n; i++ {
		sum += utils.OffBy(predicted[i], expected[i])
	}
	return sum
}

// MeanAbsoluteError returns SumAbsoluteError divided by the pair count, or 0
// for empty input.
func MeanAbsoluteError(predicted, expected []float64) float64 {
	n := len(predicted)
	if len(expected) < n {
		n = len(expected)
	}
	if n == 0 {
		return 0
	}
	return SumAbsoluteError(predicted, expected) / float64(n)
}

// MaxAbsoluteError returns the largest single |predicted - expected|, or 0
// for empty input.
func MaxAbsoluteError(predicted, expected []float64) float64 {
	n := len(predicted)
	if len(expected) < n {
		n = len(expected)
	}
	max := 0.0
	for i := 0; i < n; i++ {
		if d := utils.OffBy(predicted[i], expected[i]); d > max {
			max = d
		}
	}
	return max
}
