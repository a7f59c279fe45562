package util

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestTruncateForLog(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  string
		limit  int
		expect string
	}{
		{
			name:   "returns empty when limit non-positive",
			input:  "senior go engineer",
			limit:  0,
			expect: "",
		},
		{
			name:   "shorter than limit",
			input:  "resume",
			limit:  10,
			expect: "resume",
		},
		{
			name:   "truncates and adds ellipsis",
			input:  "kubernetes operator",
			limit:  10,
			expect: "kubernetes...",
		},
		{
			name:   "folds line breaks",
			input:  "  Skills:\n- Go\n- SQL  ",
			limit:  50,
			expect: "Skills: - Go - SQL",
		},
		{
			name:   "counts runes not bytes",
			input:  "•••••",
			limit:  3,
			expect: "•••...",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := TruncateForLog(tt.input, tt.limit); got != tt.expect {
				t.Fatalf("expected %q, got %q", tt.expect, got)
			}
		})
	}
}

func TestPrefix(t *testing.T) {
	if got := Prefix("résumé text", 6); got != "résumé" {
		t.Fatalf("unexpected prefix: %q", got)
	}
	if got := Prefix("short", 100); got != "short" {
		t.Fatalf("unexpected prefix: %q", got)
	}
	if got := Prefix("anything", 0); got != "" {
		t.Fatalf("expected empty prefix, got %q", got)
	}
}

func TestWaitForHonoursContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := WaitFor(ctx, time.Hour)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestWaitForElapses(t *testing.T) {
	if err := WaitFor(context.Background(), time.Millisecond); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := WaitFor(context.Background(), 0); err != nil {
		t.Fatalf("unexpected error for zero duration: %v", err)
	}
}
