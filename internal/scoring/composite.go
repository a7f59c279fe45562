package scoring

import "math"

const (
	keywordWeight    = 0.45
	semanticWeight   = 0.45
	formattingWeight = 0.1
)

// CompositeScore combines the component scores into the ATA score:
// round(keyword·0.45 + semantic·0.45 + formatting·0.1).
//
// The result is not clamped. Component scores outside 0..100 produce an ATA
// score outside 0..100; callers are trusted to pass in-range values.
func CompositeScore(keywordScore, semanticScore, formattingScore float64) int {
	weighted := float64(keywordScore*keywordWeight) +
		float64(semanticScore*semanticWeight) +
		float64(formattingScore*formattingWeight)

	return int(Round(weighted))
}

// Round rounds half up, toward positive infinity on ties. The tie check is
// made on the exact fractional part, never on x+0.5.
func Round(x float64) float64 {
	f := math.Floor(x)
	if x-f >= 0.5 {
		f++
	}
	return f
}
