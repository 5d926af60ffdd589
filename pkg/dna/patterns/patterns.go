// Package patterns detects call-to-action usage, message structure and
// communication-style signals in the corpus.
package patterns

import (
	"math"
	"sort"
	"strings"

	"github.com/brandlens/dna/pkg/dna/config"
	"github.com/brandlens/dna/pkg/dna/match"
)

// Formality labels.
const (
	Formal = "formal"
	Casual = "casual"
	Mixed  = "mixed"
)

const (
	ctaLimit        = 10
	ctaExampleLimit = 2
	ngramLimit      = 5
	toneLimit       = 5
	personalityMax  = 4

	minNgramRepeats   = 2
	minToneScore      = 2 // aggregate occurrence must exceed 1
	minTraitScore     = 3 // occurrence score must exceed 2
	formalityRatio    = 2
	minWordsForNgrams = 3
)

// CTAPattern is one matched call-to-action term.
type CTAPattern struct {
	Pattern   string   `json:"pattern"`
	Frequency int      `json:"frequency"`
	Examples  []string `json:"examples"`
}

// MessageStructure summarizes sentence shape.
type MessageStructure struct {
	AverageLength  float64  `json:"averageLength"`
	CommonStarters []string `json:"commonStarters"`
	CommonEnders   []string `json:"commonEnders"`
}

// CommunicationStyle summarizes how the brand talks.
type CommunicationStyle struct {
	Formality   string   `json:"formality"`
	Tone        []string `json:"tone"`
	Personality []string `json:"personality"`
}

// Patterns is the assembled content-pattern report.
type Patterns struct {
	CTAPatterns        []CTAPattern       `json:"ctaPatterns"`
	MessageStructure   MessageStructure   `json:"messageStructure"`
	CommunicationStyle CommunicationStyle `json:"communicationStyle"`
}

// Analyzer detects content patterns using fixed vocabularies.
type Analyzer struct {
	ctaTerms []string
	formal   []string
	casual   []string
	tones    []config.Category
	traits   []config.Category
	matcher  match.Matcher
}

// New creates an analyzer. traits is the shared personality-trait
// taxonomy, reused here for the style personality signals.
func New(cfg config.Lexicons, matcher match.Matcher) *Analyzer {
	return &Analyzer{
		ctaTerms: cfg.CTATerms,
		formal:   cfg.FormalWords,
		casual:   cfg.CasualWords,
		tones:    cfg.Tones,
		traits:   cfg.Traits,
		matcher:  matcher,
	}
}

// Analyze runs all three pattern passes over the sentences and full text.
func (a *Analyzer) Analyze(sentences []string, text string) Patterns {
	return Patterns{
		CTAPatterns:        a.extractCTAs(sentences),
		MessageStructure:   a.messageStructure(sentences),
		CommunicationStyle: a.communicationStyle(text),
	}
}

func (a *Analyzer) extractCTAs(sentences []string) []CTAPattern {
	out := make([]CTAPattern, 0, len(a.ctaTerms))
	for _, term := range a.ctaTerms {
		freq := 0
		examples := []string{}
		for _, s := range sentences {
			if !a.matcher.Contains(s, term) {
				continue
			}
			freq++
			if len(examples) < ctaExampleLimit {
				examples = append(examples, s)
			}
		}
		if freq == 0 {
			continue
		}
		out = append(out, CTAPattern{Pattern: term, Frequency: freq, Examples: examples})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Frequency > out[j].Frequency
	})
	if len(out) > ctaLimit {
		out = out[:ctaLimit]
	}
	return out
}

func (a *Analyzer) messageStructure(sentences []string) MessageStructure {
	structure := MessageStructure{
		CommonStarters: []string{},
		CommonEnders:   []string{},
	}
	if len(sentences) == 0 {
		return structure
	}

	totalWords := 0
	starterCounts := make(map[string]int)
	enderCounts := make(map[string]int)
	var starterOrder, enderOrder []string

	for _, s := range sentences {
		words := strings.Fields(s)
		totalWords += len(words)
		if len(words) < minWordsForNgrams {
			continue
		}
		starter := strings.ToLower(words[0] + " " + words[1])
		ender := strings.ToLower(words[len(words)-2] + " " + words[len(words)-1])
		if starterCounts[starter] == 0 {
			starterOrder = append(starterOrder, starter)
		}
		starterCounts[starter]++
		if enderCounts[ender] == 0 {
			enderOrder = append(enderOrder, ender)
		}
		enderCounts[ender]++
	}

	structure.AverageLength = round1(float64(totalWords) / float64(len(sentences)))
	structure.CommonStarters = topNgrams(starterOrder, starterCounts)
	structure.CommonEnders = topNgrams(enderOrder, enderCounts)
	return structure
}

// topNgrams keeps n-grams seen more than once, ordered by count with
// first-seen order breaking ties.
func topNgrams(order []string, counts map[string]int) []string {
	kept := []string{}
	for _, ng := range order {
		if counts[ng] >= minNgramRepeats {
			kept = append(kept, ng)
		}
	}
	sort.SliceStable(kept, func(i, j int) bool {
		return counts[kept[i]] > counts[kept[j]]
	})
	if len(kept) > ngramLimit {
		kept = kept[:ngramLimit]
	}
	return kept
}

func (a *Analyzer) communicationStyle(text string) CommunicationStyle {
	style := CommunicationStyle{
		Formality:   Mixed,
		Tone:        []string{},
		Personality: []string{},
	}

	formalCount := 0
	for _, w := range a.formal {
		formalCount += a.matcher.Count(text, w)
	}
	casualCount := 0
	for _, w := range a.casual {
		casualCount += a.matcher.Count(text, w)
	}
	switch {
	case formalCount > formalityRatio*casualCount && formalCount > 0:
		style.Formality = Formal
	case casualCount > formalityRatio*formalCount && casualCount > 0:
		style.Formality = Casual
	}

	style.Tone = a.scoreCategories(text, a.tones, minToneScore, toneLimit, false)
	style.Personality = a.scoreCategories(text, a.traits, minTraitScore, personalityMax, true)
	return style
}

// scoreCategories sums keyword occurrences per category, keeps those past
// the threshold sorted by score (declared order breaking ties), and caps
// the result.
func (a *Analyzer) scoreCategories(text string, cats []config.Category, minScore, limit int, lowercase bool) []string {
	type scored struct {
		name  string
		score int
	}
	kept := []scored{}
	for _, cat := range cats {
		score := 0
		for _, kw := range cat.Keywords {
			score += a.matcher.Count(text, kw)
		}
		if score < minScore {
			continue
		}
		name := cat.Name
		if lowercase {
			name = strings.ToLower(name)
		}
		kept = append(kept, scored{name: name, score: score})
	}
	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].score > kept[j].score
	})
	if len(kept) > limit {
		kept = kept[:limit]
	}
	names := make([]string, 0, len(kept))
	for _, s := range kept {
		names = append(names, s.name)
	}
	return names
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
