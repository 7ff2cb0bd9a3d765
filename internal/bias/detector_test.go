package bias

import (
	"reflect"
	"testing"
)

func TestDetectCaseInsensitive(t *testing.T) {
	upper := Detect("AMAZING")
	lower := Detect("amazing")

	if upper.Score != lower.Score {
		t.Errorf("expected identical scores, got %v and %v", upper.Score, lower.Score)
	}
	if upper.Direction != lower.Direction {
		t.Errorf("expected identical directions, got %q and %q", upper.Direction, lower.Direction)
	}
	if !reflect.DeepEqual(upper.MatchedTerms, lower.MatchedTerms) {
		t.Errorf("expected identical matched terms, got %v and %v", upper.MatchedTerms, lower.MatchedTerms)
	}
}

func TestDetectSingleExtremeWord(t *testing.T) {
	result := Detect("amazing")

	if result.Score < 0.9 {
		t.Errorf("expected score >= 0.9 for extreme word, got %v", result.Score)
	}
	if result.Direction != DirectionHighlyBiased {
		t.Errorf("expected direction %q, got %q", DirectionHighlyBiased, result.Direction)
	}
	if len(result.MatchedTerms) != 1 || result.MatchedTerms[0] != "amazing" {
		t.Errorf("expected matched terms [amazing], got %v", result.MatchedTerms)
	}
}

func TestDetectClampsAtOne(t *testing.T) {
	// Several extreme words push the raw sum well past 1.0.
	result := Detect("This amazing, incredible and revolutionary nightmare was a disaster.")

	if result.Score != 1.0 {
		t.Errorf("expected score clamped to 1.0, got %v", result.Score)
	}
	if result.Direction != DirectionHighlyBiased {
		t.Errorf("expected direction %q, got %q", DirectionHighlyBiased, result.Direction)
	}
	if len(result.MatchedTerms) < 5 {
		t.Errorf("expected all matched terms recorded, got %v", result.MatchedTerms)
	}
}

func TestDetectNeutralText(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"empty string", ""},
		{"plain sentence", "The committee met on Tuesday to review the quarterly report."},
		{"whitespace only", "   \n\t  "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Detect(tt.text)
			if result.Score != 0.0 {
				t.Errorf("expected score 0.0, got %v", result.Score)
			}
			if result.Direction != DirectionNeutral {
				t.Errorf("expected direction %q, got %q", DirectionNeutral, result.Direction)
			}
			if len(result.MatchedTerms) != 0 {
				t.Errorf("expected no matched terms, got %v", result.MatchedTerms)
			}
		})
	}
}

func TestDetectDirectionThresholds(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected string
	}{
		// Single manipulation phrase: 0.6 -> moderately-biased (>0.5).
		{"manipulation phrase", "obviously this works", DirectionModeratelyBiased},
		// Single polarizing word: 0.7 is not > 0.7, so moderately-biased.
		{"polarizing word", "that take is divisive", DirectionModeratelyBiased},
		// Single absolute claim: 0.8 -> highly-biased.
		{"absolute claim", "results are guaranteed", DirectionHighlyBiased},
		{"no matches", "a calm factual statement", DirectionNeutral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Detect(tt.text)
			if result.Direction != tt.expected {
				t.Errorf("expected %q, got %q (score %v)", tt.expected, result.Direction, result.Score)
			}
		})
	}
}

func TestDetectCountsTermOncePerCategory(t *testing.T) {
	// "extreme" appears twice in the text but the category pass is a
	// containment test, so it contributes its weight once.
	result := Detect("an extreme position met an extreme response")

	if result.Score != 0.7 {
		t.Errorf("expected score 0.7, got %v", result.Score)
	}
	if !reflect.DeepEqual(result.MatchedTerms, []string{"extreme"}) {
		t.Errorf("expected [extreme], got %v", result.MatchedTerms)
	}
}

func TestDetectScanOrder(t *testing.T) {
	// Extreme category is scanned before manipulation, regardless of the
	// order the words appear in the text.
	result := Detect("clearly this was a disaster")

	expected := []string{"disaster", "clearly"}
	if !reflect.DeepEqual(result.MatchedTerms, expected) {
		t.Errorf("expected %v, got %v", expected, result.MatchedTerms)
	}
}
