package scoring

import (
	"reflect"
	"testing"
)

func TestMatchKeywords(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		resume  []string
		job     []string
		score   float64
		matched []string
		missing []string
	}{
		{
			name:    "partial coverage",
			resume:  []string{"python", "react", "docker"},
			job:     []string{"python", "react", "kubernetes", "sql"},
			score:   50,
			matched: []string{"python", "react"},
			missing: []string{"kubernetes", "sql"},
		},
		{
			name:    "job order wins over resume order",
			resume:  []string{"postgres", "golang"},
			job:     []string{"golang", "terraform", "postgres", "ansible"},
			score:   50,
			matched: []string{"golang", "postgres"},
			missing: []string{"terraform", "ansible"},
		},
		{
			name:    "empty job keywords score zero",
			resume:  []string{"python"},
			job:     []string{},
			score:   0,
			matched: []string{},
			missing: []string{},
		},
		{
			name:    "nil inputs score zero",
			score:   0,
			matched: []string{},
			missing: []string{},
		},
		{
			name:    "empty resume misses everything",
			resume:  nil,
			job:     []string{"rust", "wasm"},
			score:   0,
			matched: []string{},
			missing: []string{"rust", "wasm"},
		},
		{
			name:    "full coverage",
			resume:  []string{"wasm", "rust", "extra"},
			job:     []string{"rust", "wasm"},
			score:   100,
			matched: []string{"rust", "wasm"},
			missing: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := MatchKeywords(tt.resume, tt.job)

			if got.Score != tt.score {
				t.Fatalf("expected score %v, got %v", tt.score, got.Score)
			}
			if !reflect.DeepEqual(got.Matched, tt.matched) {
				t.Fatalf("expected matched %#v, got %#v", tt.matched, got.Matched)
			}
			if !reflect.DeepEqual(got.Missing, tt.missing) {
				t.Fatalf("expected missing %#v, got %#v", tt.missing, got.Missing)
			}
		})
	}
}

func TestMatchKeywordsFromExtractedText(t *testing.T) {
	resume := ExtractKeywords("Built services in Python and React; shipped Docker images.")
	job := ExtractKeywords("Looking for Python, React, Kubernetes and SQL skills.")

	got := MatchKeywords(resume, job)

	if !reflect.DeepEqual(got.Matched, []string{"python", "react"}) {
		t.Fatalf("unexpected matched keywords: %v", got.Matched)
	}
	if !reflect.DeepEqual(got.Missing, []string{"looking", "kubernetes", "skills"}) {
		t.Fatalf("unexpected missing keywords: %v", got.Missing)
	}
	if got.Score != 40 {
		t.Fatalf("expected score 40, got %v", got.Score)
	}
}
