package ai

import "context"

// Embedder turns text into an embedding vector.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float64, error)
}

// SuggestionInput carries what the advisor needs to propose resume improvements.
type SuggestionInput struct {
	Resume         string
	JobDescription string
	// Missing holds the job keywords absent from the resume, in job order.
	Missing []string
}

// Advisor produces free-text improvement advice for a resume.
type Advisor interface {
	Suggestions(ctx context.Context, input SuggestionInput) ([]string, error)
	RevisedSummary(ctx context.Context, resume, jobDescription string) (string, error)
}

// FallbackSuggestions are returned when model output cannot be understood.
func FallbackSuggestions() []string {
	return []string{
		"Add more relevant keywords from the job description",
		"Quantify your achievements with specific metrics",
		"Tailor your experience section to match job requirements",
		"Include technical skills mentioned in the job posting",
		"Improve formatting with clear section headers and bullet points",
	}
}
