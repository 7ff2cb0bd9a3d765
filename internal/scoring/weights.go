package scoring

// WeightProfile assigns each scoring dimension its share of the aggregate.
// The four profiles below are product-tuned literals: length dominates for
// very short content, originality and authenticity take over as posts grow.
// Reproduce exactly; do not re-derive.
type WeightProfile struct {
	Sentiment    float64
	Bias         float64
	Readability  float64
	Originality  float64
	Authenticity float64
	Length       float64
}

// Length-score bucket boundaries for profile selection.
const (
	bucketVeryShort = 20.0
	bucketShort     = 40.0
	bucketMedium    = 60.0
)

var (
	weightsVeryShort = WeightProfile{
		Sentiment:    0.05,
		Bias:         0.10,
		Readability:  0.05,
		Originality:  0.10,
		Authenticity: 0.10,
		Length:       0.60,
	}
	weightsShort = WeightProfile{
		Sentiment:    0.10,
		Bias:         0.15,
		Readability:  0.05,
		Originality:  0.15,
		Authenticity: 0.15,
		Length:       0.40,
	}
	weightsMedium = WeightProfile{
		Sentiment:    0.12,
		Bias:         0.18,
		Readability:  0.08,
		Originality:  0.22,
		Authenticity: 0.20,
		Length:       0.20,
	}
	weightsNormal = WeightProfile{
		Sentiment:    0.15,
		Bias:         0.20,
		Readability:  0.10,
		Originality:  0.30,
		Authenticity: 0.15,
		Length:       0.10,
	}
)

// selectWeights picks the profile for a length score and renormalizes it so
// the weights sum to exactly 1.0, guarding against drift if a profile is
// ever edited.
func selectWeights(lengthScore float64) WeightProfile {
	var w WeightProfile
	switch {
	case lengthScore < bucketVeryShort:
		w = weightsVeryShort
	case lengthScore < bucketShort:
		w = weightsShort
	case lengthScore < bucketMedium:
		w = weightsMedium
	default:
		w = weightsNormal
	}
	return w.normalized()
}

// sum returns the total of all weights.
func (w WeightProfile) sum() float64 {
	return w.Sentiment + w.Bias + w.Readability + w.Originality + w.Authenticity + w.Length
}

// normalized rescales the profile so its weights sum to 1.0.
func (w WeightProfile) normalized() WeightProfile {
	total := w.sum()
	if total == 0 {
		return w
	}
	return WeightProfile{
		Sentiment:    w.Sentiment / total,
		Bias:         w.Bias / total,
		Readability:  w.Readability / total,
		Originality:  w.Originality / total,
		Authenticity: w.Authenticity / total,
		Length:       w.Length / total,
	}
}
