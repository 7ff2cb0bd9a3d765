// Package insight talks to a remote language-model service for the analysis
// dimensions that cannot be computed locally: sentiment, topics, plagiarism
// likelihood, AI-authorship likelihood and an overall quality estimate.
// The service is untrusted; everything it returns is clamped and
// post-processed before it reaches the scoring engine.
package insight

import (
	"math"
	"strings"
)

// Analysis is the normalized record returned for every analyzed text.
type Analysis struct {
	Sentiment       float64  `json:"sentiment"`        // -1.0 to 1.0
	MainTopic       string   `json:"main_topic"`       // primary subject matter
	SecondaryTopics []string `json:"secondary_topics"` // related topics
	Plagiarism      float64  `json:"plagiarism"`       // 0.0 original to 1.0 copied
	AIDetection     float64  `json:"ai_detection"`     // 0.0 human to 1.0 AI-generated
	OverallScore    float64  `json:"overall_score"`    // 0 to 100
	Reasoning       string   `json:"reasoning"`        // model's explanation of the overall score
}

// Default returns the fallback record used whenever the remote service cannot
// be reached or returns something unusable. The neutral plagiarism value of
// 0.5 keeps the originality multiplier from rewarding or punishing content
// the service never saw.
func Default(reason string) Analysis {
	return Analysis{
		Sentiment:       0.0,
		MainTopic:       "General",
		SecondaryTopics: []string{"AI", "Technology"},
		Plagiarism:      0.5,
		AIDetection:     0.0,
		OverallScore:    50.0,
		Reasoning:       reason,
	}
}

// sanitize clamps every numeric field to its documented range and applies the
// consistency rules: the overall score is capped by word count and reduced by
// AI-detection penalties, so identical conditions always produce identical
// scores no matter how generous the model felt.
func sanitize(text string, a Analysis) Analysis {
	a.Sentiment = clamp(a.Sentiment, -1.0, 1.0)
	a.Plagiarism = clamp(a.Plagiarism, 0.0, 1.0)
	a.AIDetection = clamp(a.AIDetection, 0.0, 1.0)
	a.OverallScore = clamp(a.OverallScore, 0.0, 100.0)

	if a.MainTopic == "" {
		a.MainTopic = "General"
	}
	if len(a.SecondaryTopics) == 0 {
		a.SecondaryTopics = []string{"AI", "Technology"}
	}
	if a.Reasoning == "" {
		a.Reasoning = "No reasoning provided"
	}

	wordCount := len(strings.Fields(text))
	maxScore := 100.0
	switch {
	case wordCount <= 5:
		maxScore = 20
	case wordCount <= 20:
		maxScore = 40
	case wordCount <= 50:
		maxScore = 70
	}

	penalty := 0.0
	switch {
	case a.AIDetection > 0.5:
		penalty = 40
	case a.AIDetection > 0.3:
		penalty = 20
	case a.AIDetection > 0.2:
		penalty = 10
	}

	a.OverallScore = math.Max(0, math.Min(maxScore, a.OverallScore-penalty))

	return a
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
