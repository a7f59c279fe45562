package scoring

import (
	"math"
	"sync"
	"testing"
)

func TestCompositeScore(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name                          string
		keyword, semantic, formatting float64
		expect                        int
	}{
		{name: "all zeros", expect: 0},
		{name: "perfect scores", keyword: 100, semantic: 100, formatting: 100, expect: 100},
		{name: "weighted sum", keyword: 80, semantic: 90, formatting: 85, expect: 85},
		{name: "fractional inputs", keyword: 66.66666666666667, semantic: 73.2, formatting: 70, expect: 70},
		{name: "half rounds up", formatting: 5, expect: 1},
		{name: "just below half rounds down", formatting: 4, expect: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := CompositeScore(tt.keyword, tt.semantic, tt.formatting); got != tt.expect {
				t.Fatalf("expected %d, got %d", tt.expect, got)
			}
		})
	}
}

// The composite score is deliberately left unclamped; these cases pin the
// known gap so that a change in behaviour is noticed.
func TestCompositeScoreIsNotClamped(t *testing.T) {
	if got := CompositeScore(150, 150, 100); got != 145 {
		t.Fatalf("expected unclamped 145, got %d", got)
	}
	if got := CompositeScore(0, -50, 0); got != -22 {
		t.Fatalf("expected unclamped -22, got %d", got)
	}
}

func TestRound(t *testing.T) {
	cases := map[float64]float64{
		0.5:   1,
		1.49:  1,
		2.5:   3,
		-2.5:  -2,
		-2.51: -3,
		85:    85,
		-0.5:  0,

		0.49999999999999994: 0,
		4503599627370497:    4503599627370497,
	}
	for in, want := range cases {
		if got := Round(in); got != want {
			t.Fatalf("Round(%v): expected %v, got %v", in, want, got)
		}
	}
}

func TestScoringIsPureUnderConcurrency(t *testing.T) {
	resume := wellFormedResume
	job := "Go engineer with Kubernetes, PostgreSQL and Terraform experience"
	a := []float64{0.3, 0.1, 0.9}
	b := []float64{0.2, 0.4, 0.8}

	wantMatch := MatchKeywords(ExtractKeywords(resume), ExtractKeywords(job))
	wantSim := math.Float64bits(CosineSimilarity(a, b))
	wantFmt := GradeFormatting(resume)
	wantATA := CompositeScore(wantMatch.Score, CosineSimilarity(a, b)*100, float64(wantFmt))

	var wg sync.WaitGroup
	errs := make(chan string, 32)
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m := MatchKeywords(ExtractKeywords(resume), ExtractKeywords(job))
			if m.Score != wantMatch.Score || len(m.Matched) != len(wantMatch.Matched) {
				errs <- "keyword match differs"
				return
			}
			if math.Float64bits(CosineSimilarity(a, b)) != wantSim {
				errs <- "similarity differs"
				return
			}
			if GradeFormatting(resume) != wantFmt {
				errs <- "formatting differs"
				return
			}
			if CompositeScore(m.Score, CosineSimilarity(a, b)*100, float64(wantFmt)) != wantATA {
				errs <- "composite differs"
			}
		}()
	}
	wg.Wait()
	close(errs)

	for msg := range errs {
		t.Fatal(msg)
	}
}
