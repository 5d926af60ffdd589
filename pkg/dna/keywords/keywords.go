// Package keywords ranks corpus terms by a tf-idf style salience score and
// pulls capitalized spans out as candidate brand names.
package keywords

import (
	"math"
	"regexp"
	"sort"
	"strings"

	"github.com/brandlens/dna/pkg/dna/match"
)

const (
	minFrequency    = 2
	primaryLimit    = 20
	secondaryLimit  = 30
	brandLimit      = 15
	minBrandRepeats = 2
	contextMaxLen   = 100
)

var capitalizedRE = regexp.MustCompile(`[A-Z][a-zA-Z]+`)

// Score is a ranked corpus term.
type Score struct {
	Word      string  `json:"word"`
	Score     float64 `json:"score"`
	Frequency int     `json:"frequency"`
}

// Ranked splits the scored terms into the primary and secondary tiers.
type Ranked struct {
	Primary   []Score `json:"primary"`
	Secondary []Score `json:"secondary"`
}

// BrandKeyword is a repeated capitalized span, a candidate brand or
// product name. Score is the occurrence count.
type BrandKeyword struct {
	Word    string `json:"word"`
	Score   int    `json:"score"`
	Context string `json:"context"`
}

// Extractor scores keywords. The zero value is not usable; construct with
// New so the capitalized-word denylist and matcher are set.
type Extractor struct {
	denylist map[string]struct{}
	matcher  match.Matcher
}

// New creates an extractor. denylist filters common capitalized words
// (sentence starters) out of the brand-specific pass.
func New(denylist []string, matcher match.Matcher) *Extractor {
	deny := make(map[string]struct{}, len(denylist))
	for _, w := range denylist {
		deny[strings.ToLower(w)] = struct{}{}
	}
	return &Extractor{denylist: deny, matcher: matcher}
}

// Extract scores every word with frequency >= 2 by tf * idf, where idf is
// log-scaled inverse sentence frequency: terms concentrated in few
// sentences outrank terms spread across all of them. Ties keep
// first-occurrence order, so output is deterministic.
func (e *Extractor) Extract(words, sentences []string) Ranked {
	ranked := Ranked{Primary: []Score{}, Secondary: []Score{}}
	if len(words) == 0 {
		return ranked
	}

	freq := make(map[string]int, len(words))
	order := make([]string, 0, len(words))
	for _, w := range words {
		if freq[w] == 0 {
			order = append(order, w)
		}
		freq[w]++
	}

	totalWords := float64(len(words))
	scored := make([]Score, 0, len(order))
	for _, w := range order {
		f := freq[w]
		if f < minFrequency {
			continue
		}
		tf := float64(f) / totalWords
		idf := 0.0
		if len(sentences) > 0 {
			withWord := 0
			for _, s := range sentences {
				if e.matcher.Contains(s, w) {
					withWord++
				}
			}
			idf = math.Log(float64(len(sentences)) / float64(withWord+1))
		}
		scored = append(scored, Score{Word: w, Score: tf * idf, Frequency: f})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if len(scored) > primaryLimit {
		ranked.Primary = scored[:primaryLimit]
		rest := scored[primaryLimit:]
		if len(rest) > secondaryLimit {
			rest = rest[:secondaryLimit]
		}
		ranked.Secondary = rest
	} else {
		ranked.Primary = scored
	}
	return ranked
}

// ExtractBrandSpecific scans sentences for repeated capitalized words that
// are not common English, keeping the original casing of the first
// occurrence and one example sentence as context.
func (e *Extractor) ExtractBrandSpecific(sentences []string) []BrandKeyword {
	type entry struct {
		word    string
		count   int
		context string
	}

	byLower := make(map[string]*entry)
	var order []string

	for _, sentence := range sentences {
		for _, m := range capitalizedRE.FindAllString(sentence, -1) {
			if len(m) <= 2 {
				continue
			}
			lower := strings.ToLower(m)
			if _, denied := e.denylist[lower]; denied {
				continue
			}
			if existing, ok := byLower[lower]; ok {
				existing.count++
				continue
			}
			byLower[lower] = &entry{
				word:    m,
				count:   1,
				context: truncate(sentence, contextMaxLen),
			}
			order = append(order, lower)
		}
	}

	kept := make([]BrandKeyword, 0, len(order))
	for _, lower := range order {
		en := byLower[lower]
		if en.count < minBrandRepeats {
			continue
		}
		kept = append(kept, BrandKeyword{Word: en.word, Score: en.count, Context: en.context})
	}

	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].Score > kept[j].Score
	})
	if len(kept) > brandLimit {
		kept = kept[:brandLimit]
	}
	return kept
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit] + "..."
}
