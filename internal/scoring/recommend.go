package scoring

import (
	"github.com/zombar/postscore/internal/bias"
	"github.com/zombar/postscore/internal/insight"
	"github.com/zombar/postscore/internal/readability"
)

// Recommendation messages, fixed per rule.
const (
	RecommendEmptyContent = "Empty content provided"
	recommendAIGenerated  = "Content appears to be AI-generated. Consider adding more human perspective and personal insights."
	recommendPlagiarism   = "High plagiarism detected. Ensure content is original and properly attributed."
	recommendBias         = "Content shows significant bias. Consider presenting multiple perspectives."
	recommendReadability  = "Content is difficult to read. Consider simplifying language and sentence structure."
	recommendTooShort     = "Content is too short. Expand with more details, examples, or explanations."
	recommendMeetsBar     = "Content meets quality standards across all metrics."
)

// Recommend derives actionable remarks from independent threshold rules,
// evaluated in declaration order. When nothing triggers, a single
// meets-the-bar message is returned.
func Recommend(b bias.Result, r readability.Result, ext insight.Analysis, wordCount int) []string {
	if wordCount == 0 {
		return []string{RecommendEmptyContent}
	}

	var recommendations []string

	if ext.AIDetection > 0.7 {
		recommendations = append(recommendations, recommendAIGenerated)
	}
	if ext.Plagiarism > 0.7 {
		recommendations = append(recommendations, recommendPlagiarism)
	}
	if b.Score > 0.7 {
		recommendations = append(recommendations, recommendBias)
	}
	if r.Score < 30 {
		recommendations = append(recommendations, recommendReadability)
	}
	if ext.Plagiarism < 0.3 && wordCount < 30 {
		recommendations = append(recommendations, recommendTooShort)
	}

	if len(recommendations) == 0 {
		recommendations = append(recommendations, recommendMeetsBar)
	}

	return recommendations
}
