package scoring

import "math"

// CosineSimilarity returns dot(a,b) / (|a|·|b|). Vectors of different length
// and zero-magnitude vectors have similarity 0.
//
// Sums run left to right and products are rounded before accumulation, so the
// result is bit-identical across platforms for identical inputs.
func CosineSimilarity(a, b []float64) float64 {
	if len(a) != len(b) {
		return 0
	}

	var dot, sumA, sumB float64
	for i := range a {
		dot += float64(a[i] * b[i])
		sumA += float64(a[i] * a[i])
		sumB += float64(b[i] * b[i])
	}

	magA := math.Sqrt(sumA)
	magB := math.Sqrt(sumB)
	if magA == 0 || magB == 0 {
		return 0
	}

	return dot / float64(magA*magB)
}
