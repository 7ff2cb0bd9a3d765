package scoring

import "testing"

func TestLengthScoreZeroWords(t *testing.T) {
	if got := LengthScore(0); got != 0.0 {
		t.Errorf("expected 0 for zero words, got %v", got)
	}
}

func TestLengthScoreBounds(t *testing.T) {
	for wc := 0; wc <= 2000; wc++ {
		score := LengthScore(wc)
		if score < 0 || score > 100 {
			t.Fatalf("score out of bounds for %d words: %v", wc, score)
		}
	}
}

func TestLengthScoreMonotonicAbovePenaltyZone(t *testing.T) {
	prev := LengthScore(shortContentWords)
	for wc := shortContentWords + 1; wc <= 1000; wc++ {
		score := LengthScore(wc)
		if score < prev {
			t.Fatalf("score decreased at %d words: %v -> %v", wc, prev, score)
		}
		prev = score
	}
}

func TestLengthScoreShortContentPenalty(t *testing.T) {
	// A single word lands deep inside the exponential penalty.
	single := LengthScore(1)
	if single >= 10 {
		t.Errorf("expected single-digit score for one word, got %v", single)
	}
	if single <= 0 {
		t.Errorf("expected non-zero score for one word, got %v", single)
	}

	// The penalty makes nine words score well below ten.
	if nine, ten := LengthScore(9), LengthScore(10); nine >= ten {
		t.Errorf("expected penalty zone score (%v) below unpenalized score (%v)", nine, ten)
	}
}

func TestLengthScoreLongFormCeiling(t *testing.T) {
	long := LengthScore(500)
	if long < 99 {
		t.Errorf("expected long-form content near the ceiling, got %v", long)
	}
}
