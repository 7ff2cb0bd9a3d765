package scoring

import (
	"math"

	"github.com/zombar/postscore/internal/bias"
	"github.com/zombar/postscore/internal/insight"
	"github.com/zombar/postscore/internal/models"
	"github.com/zombar/postscore/internal/readability"
)

// Blend ratio between our weighted calculation and the external service's
// own overall assessment. Tuned constants; reproduce exactly.
const (
	blendOurWeight      = 0.65
	blendExternalWeight = 0.35
)

// Aggregate combines the analyzer outputs into the final 0-100 rating and a
// full breakdown. The base score is a weighted blend of sentiment, bias,
// readability and length; originality and authenticity act as a
// multiplicative penalty on that base rather than additive terms, so copied
// or machine-written content drags the whole score down. Deterministic:
// identical inputs always produce identical output.
func Aggregate(b bias.Result, r readability.Result, ext insight.Analysis, wordCount int) (int, models.ScoreBreakdown) {
	if wordCount == 0 {
		return 0, emptyBreakdown()
	}

	// Normalize every raw input to a common 0-100 scale.
	sentimentNorm := ((ext.Sentiment + 1) / 2) * 100
	biasNorm := (1 - b.Score) * 100
	readabilityNorm := math.Min(r.FleschKincaid, 100)
	originalityNorm := (1 - ext.Plagiarism) * 100
	authenticityNorm := (1 - ext.AIDetection) * 100
	lengthScore := LengthScore(wordCount)

	weights := selectWeights(lengthScore)

	// Base score over sentiment, bias, readability and length only, their
	// weights renormalized among themselves. Originality and authenticity
	// are deliberately excluded here; they come back as the multiplier.
	baseTotal := weights.Sentiment + weights.Bias + weights.Readability + weights.Length
	baseScore := sentimentNorm*(weights.Sentiment/baseTotal) +
		biasNorm*(weights.Bias/baseTotal) +
		readabilityNorm*(weights.Readability/baseTotal) +
		lengthScore*(weights.Length/baseTotal)

	multiplier := (authenticityNorm/100 + originalityNorm/100) / 2
	ourScore := baseScore * multiplier

	blended := ourScore*blendOurWeight + ext.OverallScore*blendExternalWeight
	finalScore := int(math.Round(math.Max(0, math.Min(100, blended))))

	breakdown := models.ScoreBreakdown{
		Sentiment: models.DimensionScore{
			Score:        round1(sentimentNorm),
			Weight:       weights.Sentiment,
			Contribution: round1(sentimentNorm * weights.Sentiment),
		},
		Bias: models.DimensionScore{
			Score:        round1(biasNorm),
			Weight:       weights.Bias,
			Contribution: round1(biasNorm * weights.Bias),
		},
		Readability: models.DimensionScore{
			Score:        round1(readabilityNorm),
			Weight:       weights.Readability,
			Contribution: round1(readabilityNorm * weights.Readability),
		},
		Originality: models.DimensionScore{
			Score:        round1(originalityNorm),
			Weight:       weights.Originality,
			Contribution: round1(originalityNorm * weights.Originality),
		},
		Plagiarism: models.DimensionScore{
			Score:        round1(ext.Plagiarism * 100),
			Weight:       weights.Originality,
			Contribution: round1(ext.Plagiarism * 100 * weights.Originality),
		},
		Authenticity: models.DimensionScore{
			Score:            round1(authenticityNorm),
			Weight:           weights.Authenticity,
			Contribution:     round1(authenticityNorm * weights.Authenticity),
			AIDetectionScore: round1(ext.AIDetection * 100),
		},
		Length: models.DimensionScore{
			Score:        round1(lengthScore),
			Weight:       weights.Length,
			Contribution: round1(lengthScore * weights.Length),
			WordCount:    wordCount,
		},
		Overall: models.OverallScore{
			BaseScore:     round1(baseScore),
			Multiplier:    round3(multiplier),
			OurScore:      round1(ourScore),
			ExternalScore: round1(ext.OverallScore),
			FinalScore:    finalScore,
			Reasoning:     ext.Reasoning,
		},
	}

	return finalScore, breakdown
}

// emptyBreakdown is the all-zero breakdown returned for empty content.
func emptyBreakdown() models.ScoreBreakdown {
	return models.ScoreBreakdown{
		Overall: models.OverallScore{Reasoning: "empty content"},
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
