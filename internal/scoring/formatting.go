package scoring

import (
	"regexp"
	"unicode/utf16"
)

const (
	shortResumeLength = 300
	longResumeLength  = 2000
	minBulletMarks    = 3

	shortPenalty     = 20
	longPenalty      = 10
	structurePenalty = 30
	bulletPenalty    = 10
	emailPenalty     = 10
	phonePenalty     = 10
)

// spaceChars is the whitespace set of ECMAScript regular expressions, which
// is wider than RE2's \s: it also covers \v, Unicode space separators, the
// line and paragraph separators and the byte order mark.
const spaceChars = `\t\n\v\f\r\p{Zs}\x{2028}\x{2029}\x{FEFF}`

var (
	sectionRe = regexp.MustCompile(`(?i)Experience|Education|Skills|Projects`)
	emailRe   = regexp.MustCompile(`[^` + spaceChars + `]+@[^` + spaceChars + `]+\.[^` + spaceChars + `]+`)
	phoneRe   = regexp.MustCompile(`\d{3}[-.` + spaceChars + `]?\d{3}[-.` + spaceChars + `]?\d{4}`)
)

// GradeFormatting scores the layout of resume text from 0 to 100. It starts at
// 100 and subtracts independent penalties for length outside 300..2000
// characters, missing section headers, fewer than three bullet marks and
// missing email or phone contacts.
func GradeFormatting(text string) int {
	score := 100

	switch n := textLength(text); {
	case n < shortResumeLength:
		score -= shortPenalty
	case n > longResumeLength:
		score -= longPenalty
	}

	if !sectionRe.MatchString(text) {
		score -= structurePenalty
	}

	if countBulletMarks(text) < minBulletMarks {
		score -= bulletPenalty
	}

	if !emailRe.MatchString(text) {
		score -= emailPenalty
	}

	if !phoneRe.MatchString(text) {
		score -= phonePenalty
	}

	return clamp(score, 0, 100)
}

// textLength counts UTF-16 code units, the unit resume length thresholds were
// calibrated in.
func textLength(text string) int {
	n := 0
	for _, r := range text {
		if l := utf16.RuneLen(r); l > 0 {
			n += l
		} else {
			n++
		}
	}
	return n
}

func countBulletMarks(text string) int {
	n := 0
	for _, r := range text {
		switch r {
		case '•', '-', '*':
			n++
		}
	}
	return n
}

func clamp(v, lo, hi int) int {
	return max(lo, min(hi, v))
}
