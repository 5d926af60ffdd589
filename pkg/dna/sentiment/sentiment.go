// Package sentiment scores sentences against fixed polarity lexicons and
// aggregates them into a corpus-level result.
package sentiment

import (
	"math"

	"github.com/brandlens/dna/pkg/dna/config"
	"github.com/brandlens/dna/pkg/dna/match"
)

// Overall polarity labels.
const (
	Positive = "positive"
	Neutral  = "neutral"
	Negative = "negative"
)

// Classification thresholds on the aggregate score.
const (
	positiveThreshold = 0.1
	negativeThreshold = -0.1
)

const emotionalToneLimit = 10

// Distribution holds the share of positive, neutral and negative
// sentiment events.
type Distribution struct {
	Positive float64 `json:"positive"`
	Neutral  float64 `json:"neutral"`
	Negative float64 `json:"negative"`
}

// Result is the corpus-level sentiment summary.
type Result struct {
	Overall       string       `json:"overall"`
	Score         float64      `json:"score"`
	Distribution  Distribution `json:"distribution"`
	EmotionalTone []string     `json:"emotionalTone"`
}

// Analyzer scores sentences against its lexicons.
type Analyzer struct {
	lex     config.Sentiment
	matcher match.Matcher
}

// New creates an analyzer over the given sentiment lexicons.
func New(lex config.Sentiment, matcher match.Matcher) *Analyzer {
	return &Analyzer{lex: lex, matcher: matcher}
}

// Analyze counts lexicon matches per sentence. Every match is one
// sentiment event; a sentence whose positive and negative matches cancel
// out contributes one neutral event. The aggregate score is
// (positive − negative) / total events, classified with ±0.1 thresholds.
// No sentences is a valid input and yields a neutral result.
func (a *Analyzer) Analyze(sentences []string) Result {
	result := Result{Overall: Neutral, EmotionalTone: []string{}}

	var positive, negative, neutral int
	seenTone := make(map[string]struct{})

	for _, sentence := range sentences {
		net := 0
		for _, w := range a.lex.Positive {
			if a.matcher.Contains(sentence, w) {
				positive++
				net++
			}
		}
		for _, w := range a.lex.Negative {
			if a.matcher.Contains(sentence, w) {
				negative++
				net--
			}
		}
		if net == 0 {
			neutral++
		}
		for _, w := range a.lex.Emotional {
			if !a.matcher.Contains(sentence, w) {
				continue
			}
			if _, seen := seenTone[w]; seen {
				continue
			}
			seenTone[w] = struct{}{}
			if len(result.EmotionalTone) < emotionalToneLimit {
				result.EmotionalTone = append(result.EmotionalTone, w)
			}
		}
	}

	total := positive + negative + neutral
	if total == 0 {
		return result
	}

	result.Score = float64(positive-negative) / float64(total)
	switch {
	case result.Score > positiveThreshold:
		result.Overall = Positive
	case result.Score < negativeThreshold:
		result.Overall = Negative
	}
	result.Distribution = Distribution{
		Positive: round2(float64(positive) / float64(total)),
		Neutral:  round2(float64(neutral) / float64(total)),
		Negative: round2(float64(negative) / float64(total)),
	}
	return result
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
