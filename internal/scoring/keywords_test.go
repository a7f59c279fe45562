package scoring

import (
	"reflect"
	"slices"
	"testing"
)

func TestExtractKeywordsFiltersStopWords(t *testing.T) {
	keywords := ExtractKeywords("The developer is working with React and TypeScript")

	for _, excluded := range []string{"the", "is", "with", "and"} {
		if slices.Contains(keywords, excluded) {
			t.Fatalf("expected %q to be filtered, got %v", excluded, keywords)
		}
	}

	for _, included := range []string{"developer", "working", "react", "typescript"} {
		if !slices.Contains(keywords, included) {
			t.Fatalf("expected %q in keywords, got %v", included, keywords)
		}
	}
}

func TestExtractKeywords(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  string
		expect []string
	}{
		{
			name:   "empty input",
			input:  "",
			expect: []string{},
		},
		{
			name:   "short words only",
			input:  "I am a web dev",
			expect: []string{},
		},
		{
			name:   "duplicates keep first occurrence",
			input:  "React React TypeScript TypeScript",
			expect: []string{"react", "typescript"},
		},
		{
			name:   "first seen order is preserved",
			input:  "Kubernetes docker KUBERNETES terraform Docker",
			expect: []string{"kubernetes", "docker", "terraform"},
		},
		{
			name:   "punctuation separates tokens",
			input:  "kubernetes,docker;terraform/ansible",
			expect: []string{"kubernetes", "docker", "terraform", "ansible"},
		},
		{
			name:   "punctuation is not merged across tokens",
			input:  "node.js C++ front-end",
			expect: []string{"node", "front"},
		},
		{
			name:   "long stop words are removed",
			input:  "they would have been there with those",
			expect: []string{"there"},
		},
		{
			name:   "digits and underscores are word characters",
			input:  "2024 snake_case http2",
			expect: []string{"2024", "snake_case", "http2"},
		},
		{
			name:   "non ascii letters act as separators",
			input:  "naïveté developer café",
			expect: []string{"developer"},
		},
		{
			name:   "any whitespace splits",
			input:  "golang\tpostgres\n\nredis\r\ngrpc",
			expect: []string{"golang", "postgres", "redis", "grpc"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := ExtractKeywords(tt.input)
			if !reflect.DeepEqual(got, tt.expect) {
				t.Fatalf("expected %#v, got %#v", tt.expect, got)
			}
		})
	}
}

func TestExtractKeywordsProperties(t *testing.T) {
	text := "Senior Backend Engineer: Go, Kubernetes, PostgreSQL. You will build APIs and the platform; " +
		"experience with Go and Kubernetes is a must. Their team, our team, your team."

	seen := make(map[string]bool)
	for _, kw := range ExtractKeywords(text) {
		if len(kw) <= 3 {
			t.Fatalf("keyword %q is too short", kw)
		}
		if IsStopWord(kw) {
			t.Fatalf("keyword %q is a stop word", kw)
		}
		if seen[kw] {
			t.Fatalf("keyword %q repeats", kw)
		}
		seen[kw] = true
	}
}

func TestIsStopWord(t *testing.T) {
	for _, w := range []string{"the", "would", "their", "our", "i"} {
		if !IsStopWord(w) {
			t.Fatalf("expected %q to be a stop word", w)
		}
	}
	for _, w := range []string{"golang", "The", ""} {
		if IsStopWord(w) {
			t.Fatalf("did not expect %q to be a stop word", w)
		}
	}
	if len(stopWords) != 49 {
		t.Fatalf("stop-word list changed size: %d", len(stopWords))
	}
}
