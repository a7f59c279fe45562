package scoring

import (
	"math"
	"testing"
)

func TestCosineSimilarity(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		a, b   []float64
		expect float64
	}{
		{name: "identical unit vectors", a: []float64{1, 0, 0}, b: []float64{1, 0, 0}, expect: 1},
		{name: "orthogonal", a: []float64{1, 0, 0}, b: []float64{0, 1, 0}, expect: 0},
		{name: "opposite", a: []float64{1, 2}, b: []float64{-1, -2}, expect: -1},
		{name: "different lengths", a: []float64{1, 0}, b: []float64{1, 0, 0}, expect: 0},
		{name: "different lengths regardless of content", a: []float64{3, 4, 5}, b: []float64{3, 4}, expect: 0},
		{name: "zero vector", a: []float64{0, 0, 0}, b: []float64{1, 2, 3}, expect: 0},
		{name: "both zero", a: []float64{0, 0}, b: []float64{0, 0}, expect: 0},
		{name: "empty", a: []float64{}, b: nil, expect: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := CosineSimilarity(tt.a, tt.b); math.Abs(got-tt.expect) > 1e-12 {
				t.Fatalf("expected %v, got %v", tt.expect, got)
			}
		})
	}
}

func TestCosineSimilaritySelfIsOne(t *testing.T) {
	vectors := [][]float64{
		{0.12, -0.53, 0.77, 0.01},
		{3, 4},
		{1e-3, 2e-3, 3e-3},
		{-7},
	}

	for _, v := range vectors {
		if got := CosineSimilarity(v, v); math.Abs(got-1) > 1e-12 {
			t.Fatalf("expected similarity of %v with itself to be 1, got %v", v, got)
		}
	}
}

func TestCosineSimilarityIsBitReproducible(t *testing.T) {
	a := []float64{0.1, 0.2, 0.3, 0.4, 0.5}
	b := []float64{0.5, 0.4, 0.3, 0.2, 0.1}

	first := math.Float64bits(CosineSimilarity(a, b))
	for i := 0; i < 100; i++ {
		if got := math.Float64bits(CosineSimilarity(a, b)); got != first {
			t.Fatalf("result changed between calls: %x != %x", got, first)
		}
	}
}
