package stats

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// CosineSimilarity returns the cosine of the angle between a and b.
//
// The ratio is undefined when either vector has zero norm, so those cases
// are fixed: two zero vectors are identical (1.0) and a zero vector against
// a non-zero one shares nothing (0.0). Vectors of different length score 0.
func CosineSimilarity(a, b []float64) float64 {
	if len(a) != len(b) {
		return 0.0
	}

	normA := floats.Dot(a, a)
	normB := floats.Dot(b, b)

	switch {
	case normA == 0 && normB == 0:
		return 1.0
	case normA == 0 || normB == 0:
		return 0.0
	}

	// sqrt of the product keeps identical vectors at exactly 1
	similarity := floats.Dot(a, b) / math.Sqrt(normA*normB)
	return math.Max(-1.0, math.Min(1.0, similarity))
}

// CosineDistance is 1 - CosineSimilarity, with the same zero-vector policy.
func CosineDistance(a, b []float64) float64 {
	return 1.0 - CosineSimilarity(a, b)
}

// ExponentialDecaySimilarity maps an absolute difference onto (0, 1]:
// exp(-rate * |a - b|).
func ExponentialDecaySimilarity(a, b, rate float64) float64 {
	return math.Exp(-rate * math.Abs(a-b))
}

// AbsoluteDifferenceSimilarity returns 1 - |a - b|.
func AbsoluteDifferenceSimilarity(a, b float64) float64 {
	return 1.0 - math.Abs(a-b)
}
