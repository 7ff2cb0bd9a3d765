package models

import (
	"github.com/zombar/postscore/internal/bias"
	"github.com/zombar/postscore/internal/insight"
	"github.com/zombar/postscore/internal/readability"
)

// AnalysisRequest is an inbound request to score a post.
type AnalysisRequest struct {
	Text     string `json:"text"`
	PostUUID string `json:"post_uuid,omitempty"` // generated when absent, immutable once assigned
}

// AnalysisResponse is the complete rating for a post.
type AnalysisResponse struct {
	Rating           int      `json:"rating"` // 0 to 100
	SentimentScore   float64  `json:"sentiment_score"`
	BiasScore        float64  `json:"bias_score"`
	BiasDirection    string   `json:"bias_direction"`
	MatchedTerms     []string `json:"matched_terms"`
	OriginalityScore float64  `json:"originality_score"`
	PlagiarismScore  float64  `json:"plagiarism_score"`
	AIDetectionScore float64  `json:"ai_detection_score"`
	FleschKincaid    float64  `json:"flesch_kincaid"`
	GunningFog       float64  `json:"gunning_fog"`
	ReadabilityScore float64  `json:"readability_score"`
	MainTopic        string   `json:"main_topic"`
	SecondaryTopics  []string `json:"secondary_topics"`
	Recommendations  []string `json:"recommendations"`

	Explanation Explanation `json:"explanation"`
	PostUUID    string      `json:"post_uuid"`
}

// Explanation carries the raw sub-analyzer results alongside the score
// breakdown so every rating can be audited.
type Explanation struct {
	Bias        bias.Result        `json:"bias"`
	Readability readability.Result `json:"readability"`
	External    insight.Analysis   `json:"external"`
	Breakdown   ScoreBreakdown     `json:"score_breakdown"`
}

// ScoreBreakdown records, per dimension, the normalized score that went into
// the aggregate, the weight it carried and its weighted contribution.
type ScoreBreakdown struct {
	Sentiment    DimensionScore `json:"sentiment"`
	Bias         DimensionScore `json:"bias"`
	Readability  DimensionScore `json:"readability"`
	Originality  DimensionScore `json:"originality"`
	Plagiarism   DimensionScore `json:"plagiarism"`
	Authenticity DimensionScore `json:"authenticity"`
	Length       DimensionScore `json:"length"`
	Overall      OverallScore   `json:"overall"`
}

// DimensionScore is one dimension's share of the aggregate.
type DimensionScore struct {
	Score        float64 `json:"score"`  // normalized to 0-100
	Weight       float64 `json:"weight"` // after profile renormalization
	Contribution float64 `json:"contribution"`

	// Extra context carried by individual dimensions.
	AIDetectionScore float64 `json:"ai_detection_score,omitempty"` // authenticity only
	WordCount        int     `json:"word_count,omitempty"`         // length only
}

// OverallScore shows how the final rating was assembled: the weighted base
// score, the originality/authenticity multiplier, the blend with the external
// service's own assessment, and that service's reasoning.
type OverallScore struct {
	BaseScore     float64 `json:"base_score"`
	Multiplier    float64 `json:"multiplier"`
	OurScore      float64 `json:"our_score"`
	ExternalScore float64 `json:"external_score"`
	FinalScore    int     `json:"final_score"`
	Reasoning     string  `json:"reasoning"`
}
