// Package lexicon mines the corpus for named entities, descriptive
// adjectives, action verbs and inferred brand values, each with example
// contexts so every result is traceable to matched text.
package lexicon

import (
	"regexp"
	"sort"
	"strings"

	"github.com/brandlens/dna/pkg/dna/config"
	"github.com/brandlens/dna/pkg/dna/match"
)

// Entity type labels assigned by the shape heuristic.
const (
	TypeCompany = "company"
	TypeBrand   = "brand"
	TypeOther   = "other"
)

const (
	entityLimit     = 20
	adjectiveLimit  = 15
	actionWordLimit = 12
	contextLimit    = 3
	snippetMaxLen   = 80

	minEntityCount     = 2
	brandValueMinScore = 3 // occurrence sum must exceed 2
	maxBrandNameLen    = 14
)

var (
	entityRE   = regexp.MustCompile(`\b[A-Z][a-zA-Z]+(?:\s+[A-Z][a-zA-Z]+)*\b`)
	brandShape = regexp.MustCompile(`^[A-Z][a-z]+$`)
)

var companyMarkers = []string{"Inc", "LLC", "Corp"}

// Entity is a repeated capitalized span classified by shape.
type Entity struct {
	Entity    string `json:"entity"`
	Type      string `json:"type"`
	Frequency int    `json:"frequency"`
}

// Adjective is a matched descriptive word with example contexts.
type Adjective struct {
	Adjective string   `json:"adjective"`
	Frequency int      `json:"frequency"`
	Context   []string `json:"context"`
}

// ActionWord is a matched business verb with example contexts.
type ActionWord struct {
	Verb      string   `json:"verb"`
	Frequency int      `json:"frequency"`
	Context   []string `json:"context"`
}

// Lexicon is the assembled brand vocabulary.
type Lexicon struct {
	Entities    []Entity     `json:"entities"`
	Adjectives  []Adjective  `json:"adjectives"`
	ActionWords []ActionWord `json:"actionWords"`
	BrandValues []string     `json:"brandValues"`
}

// Extractor mines brand vocabulary from a corpus.
type Extractor struct {
	adjectives []string
	verbs      []string
	values     []config.Category
	matcher    match.Matcher
}

// New creates an extractor over the given vocabularies.
func New(adjectives, verbs []string, values []config.Category, matcher match.Matcher) *Extractor {
	return &Extractor{adjectives: adjectives, verbs: verbs, values: values, matcher: matcher}
}

// Extract assembles the full brand lexicon from the combined text and its
// sentences.
func (e *Extractor) Extract(text string, sentences []string) Lexicon {
	return Lexicon{
		Entities:    e.extractEntities(text),
		Adjectives:  e.extractAdjectives(sentences),
		ActionWords: e.extractActionWords(sentences),
		BrandValues: e.extractBrandValues(text),
	}
}

// extractEntities finds capitalized spans appearing more than once and
// classifies them: a corporate marker anywhere in the span marks a
// company, a single short capitalized word a brand, anything else other.
func (e *Extractor) extractEntities(text string) []Entity {
	counts := make(map[string]int)
	var order []string
	for _, span := range entityRE.FindAllString(text, -1) {
		if counts[span] == 0 {
			order = append(order, span)
		}
		counts[span]++
	}

	entities := make([]Entity, 0, len(order))
	for _, span := range order {
		if counts[span] < minEntityCount {
			continue
		}
		entities = append(entities, Entity{
			Entity:    span,
			Type:      classifyEntity(span),
			Frequency: counts[span],
		})
	}

	sort.SliceStable(entities, func(i, j int) bool {
		return entities[i].Frequency > entities[j].Frequency
	})
	if len(entities) > entityLimit {
		entities = entities[:entityLimit]
	}
	return entities
}

func classifyEntity(span string) string {
	switch {
	case containsCompanyMarker(span):
		return TypeCompany
	case brandShape.MatchString(span) && len(span) <= maxBrandNameLen:
		return TypeBrand
	default:
		return TypeOther
	}
}

func containsCompanyMarker(span string) bool {
	for _, marker := range companyMarkers {
		if strings.Contains(span, marker) {
			return true
		}
	}
	return false
}

func (e *Extractor) extractAdjectives(sentences []string) []Adjective {
	out := make([]Adjective, 0, len(e.adjectives))
	for _, adj := range e.adjectives {
		freq, contexts := e.countWithContexts(adj, sentences)
		if freq == 0 {
			continue
		}
		out = append(out, Adjective{Adjective: adj, Frequency: freq, Context: contexts})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Frequency > out[j].Frequency
	})
	if len(out) > adjectiveLimit {
		out = out[:adjectiveLimit]
	}
	return out
}

func (e *Extractor) extractActionWords(sentences []string) []ActionWord {
	out := make([]ActionWord, 0, len(e.verbs))
	for _, verb := range e.verbs {
		freq, contexts := e.countWithContexts(verb, sentences)
		if freq == 0 {
			continue
		}
		out = append(out, ActionWord{Verb: verb, Frequency: freq, Context: contexts})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Frequency > out[j].Frequency
	})
	if len(out) > actionWordLimit {
		out = out[:actionWordLimit]
	}
	return out
}

// countWithContexts counts sentences containing the term and collects up
// to three truncated example snippets.
func (e *Extractor) countWithContexts(term string, sentences []string) (int, []string) {
	freq := 0
	contexts := []string{}
	for _, s := range sentences {
		if !e.matcher.Contains(s, term) {
			continue
		}
		freq++
		if len(contexts) < contextLimit {
			contexts = append(contexts, snippet(s))
		}
	}
	return freq, contexts
}

// extractBrandValues includes a value when its keyword occurrences across
// the whole text sum past the threshold.
func (e *Extractor) extractBrandValues(text string) []string {
	values := []string{}
	for _, cat := range e.values {
		score := 0
		for _, kw := range cat.Keywords {
			score += e.matcher.Count(text, kw)
		}
		if score >= brandValueMinScore {
			values = append(values, cat.Name)
		}
	}
	return values
}

func snippet(s string) string {
	if len(s) <= snippetMaxLen {
		return s
	}
	return s[:snippetMaxLen] + "..."
}
