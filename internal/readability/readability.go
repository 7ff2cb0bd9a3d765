// Package readability computes classical readability formulas and folds them
// into a single normalized 0-100 ease score.
package readability

import (
	"math"
	"regexp"
	"strings"
	"unicode"
)

// Result holds the readability metrics for a piece of text.
type Result struct {
	FleschKincaid float64 `json:"flesch_kincaid"` // grade level
	GunningFog    float64 `json:"gunning_fog"`    // fog index
	Score         float64 `json:"score"`          // normalized 0-100, higher is easier
}

var sentenceEnd = regexp.MustCompile(`[.!?]+`)

// commonComplexWords are multi-syllable words that read easily and are
// excluded from the Gunning Fog complex-word count.
var commonComplexWords = map[string]bool{
	"beautiful": true, "wonderful": true, "terrible": true, "possible": true,
	"different": true, "important": true, "interesting": true, "necessary": true,
	"available": true, "comfortable": true, "responsible": true,
}

// Analyze computes Flesch-Kincaid, Gunning Fog, SMOG and Coleman-Liau indices
// from token and sentence counts, averages the four grade levels and maps the
// average onto a 0-100 ease score. Empty or whitespace-only text returns the
// zero result.
func Analyze(text string) Result {
	if strings.TrimSpace(text) == "" {
		return Result{}
	}

	words := strings.Fields(text)
	wordCount := len(words)
	if wordCount == 0 {
		return Result{}
	}

	sentences := len(sentenceEnd.FindAllString(text, -1))
	if sentences < 1 {
		sentences = 1
	}

	totalSyllables := 0
	complexWords := 0
	for _, word := range words {
		syllables := countSyllables(word)
		totalSyllables += syllables
		if syllables >= 3 && !isCapitalized(word) && !commonComplexWords[strings.ToLower(word)] {
			complexWords++
		}
	}

	avgWordsPerSentence := float64(wordCount) / float64(sentences)
	avgSyllablesPerWord := float64(totalSyllables) / float64(wordCount)
	complexRatio := float64(complexWords) / float64(wordCount)

	fk := 0.39*avgWordsPerSentence + 11.8*avgSyllablesPerWord - 15.59
	fog := 0.4 * (avgWordsPerSentence + 100*complexRatio)

	// SMOG is defined over 30-sentence samples; shorter texts fall back to a
	// word-count-scaled variant.
	var smog float64
	if sentences >= 30 {
		smog = 1.043*math.Sqrt(30*float64(complexWords)/float64(sentences)) + 3.1291
	} else {
		smog = 1.043*math.Sqrt(float64(wordCount)*complexRatio) + 3.1291
	}

	chars := countNonSpace(text)
	cl := 0.0588*(float64(chars)/float64(wordCount)*100) - 0.296*(float64(sentences)/float64(wordCount)*100) - 15.8

	avgGrade := (fk + fog + smog + cl) / 4

	return Result{
		FleschKincaid: math.Max(0, round2(fk)),
		GunningFog:    math.Max(0, round2(fog)),
		Score:         math.Max(0, round1(normalizeGrade(avgGrade))),
	}
}

// normalizeGrade maps an average grade level to a 0-100 ease score.
// Grade 0-6 reads as excellent, 7-9 good, 10-12 fair, 13+ poor.
func normalizeGrade(avg float64) float64 {
	switch {
	case avg <= 6:
		return 100
	case avg <= 9:
		return 90 - (avg-6)*3.33
	case avg <= 12:
		return 80 - (avg-9)*3.33
	default:
		return math.Max(0, 70-(avg-12)*5)
	}
}

// countSyllables estimates syllables in a word: strip the common suffixes
// that add no syllable, count vowel-cluster runs, adjust for a silent
// trailing 'e', floor at one.
func countSyllables(word string) int {
	word = strings.ToLower(strings.TrimSpace(word))
	if word == "" {
		return 0
	}

	if strings.HasSuffix(word, "ing") {
		word = word[:len(word)-3]
	} else if strings.HasSuffix(word, "es") || strings.HasSuffix(word, "ed") {
		word = word[:len(word)-2]
	}

	count := 0
	prevWasVowel := false
	for _, r := range word {
		isVowel := strings.ContainsRune("aeiouy", r)
		if isVowel && !prevWasVowel {
			count++
		}
		prevWasVowel = isVowel
	}

	if strings.HasSuffix(word, "e") && count > 1 {
		count--
	}
	if count < 1 {
		count = 1
	}
	return count
}

func isCapitalized(word string) bool {
	for _, r := range word {
		return unicode.IsUpper(r)
	}
	return false
}

func countNonSpace(text string) int {
	count := 0
	for _, r := range text {
		if !unicode.IsSpace(r) {
			count++
		}
	}
	return count
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
