package analysis

// Breakdown explains the keyword part of a report and carries the advice.
type Breakdown struct {
	MatchedKeywords []string `json:"matchedKeywords"`
	MissingKeywords []string `json:"missingKeywords"`
	Suggestions     []string `json:"suggestions"`
}

// Report is the outcome of one resume analysis.
type Report struct {
	ATAScore        int       `json:"ataScore"`
	KeywordScore    int       `json:"keywordScore"`
	SemanticScore   int       `json:"semanticScore"`
	FormattingScore int       `json:"formattingScore"`
	Breakdown       Breakdown `json:"breakdown"`
	RevisedSnippet  string    `json:"revisedSnippet"`
}

func firstN(items []string, n int) []string {
	if n >= 0 && len(items) > n {
		items = items[:n]
	}
	out := make([]string, len(items))
	copy(out, items)
	return out
}
