package scoring

// MatchResult is the keyword coverage of a job description by a resume.
type MatchResult struct {
	// Score is the percentage of job keywords found in the resume, 0..100.
	Score float64
	// Matched holds job keywords present in the resume, in job order.
	Matched []string
	// Missing holds job keywords absent from the resume, in job order.
	Missing []string
}

// MatchKeywords compares resume keywords against job keywords. An empty job
// keyword set scores 0.
func MatchKeywords(resumeKeywords, jobKeywords []string) MatchResult {
	inResume := make(map[string]struct{}, len(resumeKeywords))
	for _, kw := range resumeKeywords {
		inResume[kw] = struct{}{}
	}

	result := MatchResult{
		Matched: make([]string, 0),
		Missing: make([]string, 0),
	}
	for _, kw := range jobKeywords {
		if _, ok := inResume[kw]; ok {
			result.Matched = append(result.Matched, kw)
		} else {
			result.Missing = append(result.Missing, kw)
		}
	}

	if len(jobKeywords) > 0 {
		result.Score = float64(len(result.Matched)) / float64(len(jobKeywords)) * 100
	}

	return result
}
