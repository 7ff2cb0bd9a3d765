package bias

// Term categories for lexical bias detection. Each category carries a fixed
// per-match weight; the lists are scanned in declaration order so matched
// terms come back in a stable order.

const (
	weightExtreme      = 0.9
	weightPolarizing   = 0.7
	weightProfanity    = 0.8
	weightManipulation = 0.6
	weightAbsolute     = 0.8
)

// category pairs a term list with its per-match weight.
type category struct {
	name   string
	weight float64
	terms  []string
}

func extremeWords() []string {
	return []string{
		"always", "never", "disaster", "catastrophic", "terrible", "amazing",
		"perfect", "awful", "incredible", "revolutionary", "unprecedented",
		"devastating", "outstanding", "horrible", "brilliant", "nightmare",
		"breakthrough", "crisis", "exceptional", "tragic", "phenomenal",
	}
}

func polarizingWords() []string {
	return []string{
		"woke", "snowflake", "boomer", "millennial", "gen-z", "cancel",
		"triggered", "offended", "privileged", "entitled", "toxic",
		"problematic", "controversial", "divisive", "extreme",
	}
}

func profanityWords() []string {
	return []string{
		"fuck", "shit", "damn", "hell", "bitch", "ass", "crap", "piss",
		"bastard", "dick", "cock", "pussy", "whore", "slut", "fag",
		"nigger", "faggot", "retard", "idiot", "moron", "stupid",
	}
}

func manipulationPhrases() []string {
	return []string{
		"you must", "everyone knows", "obviously", "clearly", "without a doubt",
	}
}

func absoluteClaims() []string {
	return []string{
		"100%", "guaranteed", "proven", "scientific fact", "definitely",
	}
}

// lexicon is the full set of categories in scan order. Initialized once at
// startup and never mutated.
var lexicon = []category{
	{name: "extreme", weight: weightExtreme, terms: extremeWords()},
	{name: "polarizing", weight: weightPolarizing, terms: polarizingWords()},
	{name: "profanity", weight: weightProfanity, terms: profanityWords()},
	{name: "manipulation", weight: weightManipulation, terms: manipulationPhrases()},
	{name: "absolute", weight: weightAbsolute, terms: absoluteClaims()},
}
