package bias

import (
	"math"
	"strings"
)

// Direction labels for the detected bias level.
const (
	DirectionNeutral          = "neutral"
	DirectionSlightlyBiased   = "slightly-biased"
	DirectionModeratelyBiased = "moderately-biased"
	DirectionHighlyBiased     = "highly-biased"
)

// Result holds the outcome of a lexical bias scan.
type Result struct {
	Score        float64  `json:"score"`         // 0.0 to 1.0, higher means more biased
	Direction    string   `json:"direction"`     // neutral, slightly-biased, moderately-biased, highly-biased
	MatchedTerms []string `json:"matched_terms"` // terms that matched, in scan order
}

// Neutral returns the zero-bias result used whenever detection cannot run.
func Neutral() Result {
	return Result{
		Score:        0.0,
		Direction:    DirectionNeutral,
		MatchedTerms: []string{},
	}
}

// Detect scans text against the static term lexicon and returns a bias score,
// a direction label and the matched terms. Matching is a case-insensitive
// substring test; each term counts at most once per category, and a term that
// appears in more than one category is recorded for each. The raw weight sum
// can exceed 1.0 when several terms match, so the score is clamped, not
// rescaled. Detect never fails: any internal fault yields a neutral result.
func Detect(text string) (result Result) {
	defer func() {
		if r := recover(); r != nil {
			result = Neutral()
		}
	}()

	lower := strings.ToLower(text)

	score := 0.0
	matched := []string{}
	for _, cat := range lexicon {
		for _, term := range cat.terms {
			if strings.Contains(lower, term) {
				score += cat.weight
				matched = append(matched, term)
			}
		}
	}

	score = math.Min(score, 1.0)

	return Result{
		Score:        score,
		Direction:    direction(score),
		MatchedTerms: matched,
	}
}

// direction maps a clamped bias score to its label.
func direction(score float64) string {
	switch {
	case score > 0.7:
		return DirectionHighlyBiased
	case score > 0.5:
		return DirectionModeratelyBiased
	case score > 0.3:
		return DirectionSlightlyBiased
	default:
		return DirectionNeutral
	}
}
