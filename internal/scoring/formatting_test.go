package scoring

import (
	"strings"
	"testing"
)

const wellFormedResume = `Jane Doe
jane.doe@example.com | 555-123-4567

Experience
• Built payment services in Go handling 2k requests per second
• Migrated batch jobs to Kubernetes and cut infrastructure cost by 30%
• Led a team of four engineers through a zero-downtime database migration

Education
B.Sc. Computer Science, State University

Skills
Go, PostgreSQL, Kubernetes, Terraform, gRPC, observability tooling`

func TestGradeFormatting(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  string
		expect int
	}{
		{
			name:   "short plain text collects every penalty",
			input:  strings.Repeat("a", 250),
			expect: 20,
		},
		{
			name:   "well formed resume",
			input:  wellFormedResume,
			expect: 100,
		},
		{
			name:   "empty text",
			input:  "",
			expect: 20,
		},
		{
			name:   "exactly 300 characters is not short",
			input:  strings.Repeat("a", 300),
			expect: 40,
		},
		{
			name:   "exactly 2000 characters is not long",
			input:  strings.Repeat("a", 2000),
			expect: 40,
		},
		{
			name:   "over 2000 characters is long",
			input:  strings.Repeat("a", 2001),
			expect: 30,
		},
		{
			name:   "section headers are case insensitive",
			input:  strings.Repeat("a", 300) + " SKILLS",
			expect: 70,
		},
		{
			name:   "section word may be part of another word",
			input:  strings.Repeat("a", 300) + " sideprojects",
			expect: 70,
		},
		{
			name:   "hyphens and asterisks count as bullets",
			input:  strings.Repeat("a", 300) + " full-stack * front-end",
			expect: 50,
		},
		{
			name:   "two bullets are not enough",
			input:  strings.Repeat("a", 300) + " • one • two",
			expect: 40,
		},
		{
			name:   "email only",
			input:  strings.Repeat("a", 300) + " me@mail.io",
			expect: 50,
		},
		{
			name:   "phone with dots",
			input:  strings.Repeat("a", 300) + " 555.123.4567",
			expect: 50,
		},
		{
			name:   "phone with spaces",
			input:  strings.Repeat("a", 300) + " 555 123 4567",
			expect: 50,
		},
		{
			name:   "phone without separators",
			input:  strings.Repeat("a", 300) + " 5551234567",
			expect: 50,
		},
		{
			name:   "phone separated by no-break spaces",
			input:  strings.Repeat("a", 300) + " 555\u00a0123\u00a04567",
			expect: 50,
		},
		{
			name:   "phone separated by vertical tabs",
			input:  strings.Repeat("a", 300) + " 555\v123\v4567",
			expect: 50,
		},
		{
			name:   "no-break space ends an email",
			input:  strings.Repeat("a", 300) + " me@mail\u00a0.io",
			expect: 40,
		},
		{
			name:   "line separator ends an email",
			input:  strings.Repeat("a", 300) + " me@mail\u2028.io",
			expect: 40,
		},
		{
			name:   "too few digits is not a phone",
			input:  strings.Repeat("a", 300) + " 555-1234",
			expect: 40,
		},
		{
			name:   "length counts utf-16 units",
			input:  strings.Repeat("😀", 150),
			expect: 40,
		},
		{
			name:   "just under 300 utf-16 units",
			input:  strings.Repeat("😀", 149),
			expect: 20,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := GradeFormatting(tt.input); got != tt.expect {
				t.Fatalf("expected %d, got %d", tt.expect, got)
			}
		})
	}
}

func TestGradeFormattingStaysInRange(t *testing.T) {
	inputs := []string{"", "x", wellFormedResume, strings.Repeat("- ", 5000), strings.Repeat("é", 3000)}
	for _, in := range inputs {
		if got := GradeFormatting(in); got < 0 || got > 100 {
			t.Fatalf("score out of range: %d", got)
		}
	}
}

func TestClamp(t *testing.T) {
	if got := clamp(-5, 0, 100); got != 0 {
		t.Fatalf("expected floor at 0, got %d", got)
	}
	if got := clamp(120, 0, 100); got != 100 {
		t.Fatalf("expected ceiling at 100, got %d", got)
	}
	if got := clamp(42, 0, 100); got != 42 {
		t.Fatalf("expected value to pass through, got %d", got)
	}
}
