// Package scoring implements the resume-to-job-description match score: keyword
// coverage, embedding similarity, a formatting heuristic and the weighted ATA
// score that combines them.
//
// Every function in this package is pure and total. Degenerate input (empty
// text, mismatched or zero vectors, empty keyword sets) yields a defined
// number instead of an error, and all functions are safe for concurrent use.
package scoring

import (
	"regexp"
	"strings"
)

// minKeywordLength is exclusive: a keyword must be longer than this.
const minKeywordLength = 3

var nonWordRe = regexp.MustCompile(`[^\w\s]`)

var stopWords = map[string]struct{}{
	"the": {}, "a": {}, "an": {}, "and": {}, "or": {}, "but": {}, "in": {}, "on": {}, "at": {}, "to": {}, "for": {},
	"of": {}, "with": {}, "is": {}, "was": {}, "are": {}, "were": {}, "been": {}, "be": {}, "have": {}, "has": {},
	"had": {}, "do": {}, "does": {}, "did": {}, "will": {}, "would": {}, "should": {}, "could": {}, "may": {},
	"might": {}, "must": {}, "can": {}, "this": {}, "that": {}, "these": {}, "those": {}, "i": {}, "you": {},
	"he": {}, "she": {}, "it": {}, "we": {}, "they": {}, "them": {}, "their": {}, "my": {}, "your": {}, "our": {},
}

// IsStopWord reports whether w belongs to the fixed stop-word list.
func IsStopWord(w string) bool {
	_, ok := stopWords[w]
	return ok
}

// ExtractKeywords lower-cases text, turns punctuation into separators and
// returns the distinct tokens longer than three characters that are not stop
// words, in first-seen order.
func ExtractKeywords(text string) []string {
	cleaned := nonWordRe.ReplaceAllString(strings.ToLower(text), " ")

	keywords := make([]string, 0)
	seen := make(map[string]struct{})
	for _, token := range strings.Fields(cleaned) {
		if len(token) <= minKeywordLength || IsStopWord(token) {
			continue
		}
		if _, dup := seen[token]; dup {
			continue
		}
		seen[token] = struct{}{}
		keywords = append(keywords, token)
	}

	return keywords
}
