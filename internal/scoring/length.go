// Package scoring turns the heterogeneous analyzer outputs into a single
// 0-100 rating: a length-conditioned weighted base score, an
// originality/authenticity penalty multiplier, and a blend with the external
// service's own assessment.
package scoring

import "math"

// Length curve parameters. The sigmoid gives a smooth ramp around the
// midpoint; the floor keeps any non-empty text above zero before the
// short-content penalty.
const (
	lengthSteepness = 0.15
	lengthMidpoint  = 50.0
	lengthMinScore  = 5.0
	lengthMaxScore  = 100.0

	// Below this word count an extra exponential decay kicks in.
	shortContentWords = 10
	shortContentDecay = 0.3
)

// LengthScore maps a word count to a 0-100 sufficiency score. Zero words
// score zero; trivially short posts are penalized steeply while long-form
// content approaches the ceiling smoothly.
func LengthScore(wordCount int) float64 {
	if wordCount == 0 {
		return 0.0
	}

	sigmoid := 1 / (1 + math.Exp(-lengthSteepness*(float64(wordCount)-lengthMidpoint)))
	score := lengthMinScore + (lengthMaxScore-lengthMinScore)*sigmoid

	if wordCount < shortContentWords {
		score *= math.Exp(-shortContentDecay * float64(wordCount))
	}

	return math.Max(0.0, math.Min(100.0, score))
}
