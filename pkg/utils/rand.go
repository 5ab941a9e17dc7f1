package utils

import (
	"math"
	"math/rand"
)

// Flip returns true with probability p. Each call is independent. p <= 0
// never flips true and p >= 1 always does.
func Flip(rng *rand.Rand, p float64) bool {
	return rng.Float64() < p
}

// OffBy returns the absolute difference between x and y.
func OffBy(x, y float64) float64 {
	return math.Abs(x - y)
}

// UniformIn draws a value uniformly from [min, max).
func UniformIn(rng *rand.Rand, min, max float64) float64 {
	return min + rng.Float64()*(max-min)
}
