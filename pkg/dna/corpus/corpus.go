// Package corpus normalizes raw website and social-media text fragments
// into the tokenized, sentence-split form the analyzers consume.
package corpus

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/brandlens/dna/pkg/dna/internalerr"
)

// Assumed syllables per word for the simplified readability estimate.
// Syllable counting proper would need a dictionary; 1.5 is a workable
// average for marketing copy.
const assumedSyllablesPerWord = 1.5

const minTokenLen = 3
const minSentenceLen = 11

var (
	nonWordRE  = regexp.MustCompile(`\W+`)
	sentenceRE = regexp.MustCompile(`[.!?]+`)
)

// Metadata holds corpus-level statistics.
type Metadata struct {
	TotalWords            int     `json:"totalWords"`
	UniqueWords           int     `json:"uniqueWords"`
	AverageSentenceLength float64 `json:"averageSentenceLength"`
	ReadabilityScore      float64 `json:"readabilityScore"`
}

// Corpus is the immutable input to the extraction pipeline. Build it once
// with New; the analyzers only ever read it.
type Corpus struct {
	Website     []string `json:"website"`
	SocialMedia []string `json:"socialMedia"`
	Combined    string   `json:"combined"`
	Words       []string `json:"-"`
	Sentences   []string `json:"-"`
	Metadata    Metadata `json:"metadata"`
}

// New combines the fragments, tokenizes, splits sentences and computes
// metadata. Empty input is valid and yields an empty corpus.
func New(website, socialMedia []string, stopwords []string) Corpus {
	fragments := make([]string, 0, len(website)+len(socialMedia))
	fragments = append(fragments, website...)
	fragments = append(fragments, socialMedia...)
	combined := strings.Join(fragments, " ")

	words := tokenize(combined, stopwords)
	sentences := splitSentences(combined)

	unique := make(map[string]struct{}, len(words))
	for _, w := range words {
		unique[w] = struct{}{}
	}

	var avgLen, readability float64
	if len(sentences) > 0 {
		avgLen = float64(len(words)) / float64(len(sentences))
		readability = fleschReadingEase(avgLen)
	}

	return Corpus{
		Website:     website,
		SocialMedia: socialMedia,
		Combined:    combined,
		Words:       words,
		Sentences:   sentences,
		Metadata: Metadata{
			TotalWords:            len(words),
			UniqueWords:           len(unique),
			AverageSentenceLength: avgLen,
			ReadabilityScore:      readability,
		},
	}
}

// Validate checks internal consistency for corpora not built through New.
// An empty corpus is valid; one whose metadata contradicts its token and
// sentence lists is not.
func (c Corpus) Validate() error {
	if c.Metadata.TotalWords != len(c.Words) {
		return fmt.Errorf("metadata total words %d != %d tokens: %w",
			c.Metadata.TotalWords, len(c.Words), internalerr.ErrInvalidInput)
	}
	if c.Metadata.UniqueWords > c.Metadata.TotalWords {
		return fmt.Errorf("metadata unique words %d > total %d: %w",
			c.Metadata.UniqueWords, c.Metadata.TotalWords, internalerr.ErrInvalidInput)
	}
	if c.Combined == "" && (len(c.Words) > 0 || len(c.Sentences) > 0) {
		return fmt.Errorf("tokens without combined text: %w", internalerr.ErrInvalidInput)
	}
	return nil
}

// tokenize lowercases, strips non-word characters, and drops short tokens
// and stopwords.
func tokenize(text string, stopwords []string) []string {
	stops := make(map[string]struct{}, len(stopwords))
	for _, s := range stopwords {
		stops[strings.ToLower(s)] = struct{}{}
	}

	cleaned := nonWordRE.ReplaceAllString(strings.ToLower(text), " ")

	var tokens []string
	for _, field := range strings.Fields(cleaned) {
		if len(field) < minTokenLen {
			continue
		}
		if _, stop := stops[field]; stop {
			continue
		}
		tokens = append(tokens, field)
	}
	return tokens
}

// splitSentences cuts the combined text on terminal punctuation runs and
// keeps trimmed pieces long enough to analyze.
func splitSentences(text string) []string {
	var sentences []string
	for _, part := range sentenceRE.Split(text, -1) {
		part = strings.TrimSpace(part)
		if len(part) >= minSentenceLen {
			sentences = append(sentences, part)
		}
	}
	return sentences
}

// fleschReadingEase is the simplified Flesch formula with a constant
// syllables-per-word assumption, clamped to [0, 100].
func fleschReadingEase(avgSentenceLen float64) float64 {
	score := 206.835 - 1.015*avgSentenceLen - 84.6*assumedSyllablesPerWord
	return math.Max(0, math.Min(100, score))
}
