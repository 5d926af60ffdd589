// Package personality classifies the corpus against the twelve brand
// archetypes and the personality-trait taxonomy, with textual evidence
// for every trait it reports.
package personality

import (
	"math"
	"sort"

	"github.com/brandlens/dna/pkg/dna/config"
	"github.com/brandlens/dna/pkg/dna/keywords"
	"github.com/brandlens/dna/pkg/dna/match"
)

const (
	traitLimit    = 6
	evidenceLimit = 2
	voiceLimit    = 4

	minTraitScore      = 2 // raw score must exceed 1
	minVoiceScore      = 3 // aggregate occurrence must exceed 2
	confidenceDivisor  = 5.0
	primaryKeywordBias = 2 // bonus per seed found among primary keywords
)

// Trait is one matched personality trait with supporting sentences.
type Trait struct {
	Trait      string   `json:"trait"`
	Confidence float64  `json:"confidence"`
	Evidence   []string `json:"evidence"`
}

// Profile is the personality classification result.
type Profile struct {
	Traits               []Trait  `json:"traits"`
	Archetype            string   `json:"archetype"`
	VoiceCharacteristics []string `json:"voiceCharacteristics"`
}

// Classifier scores archetypes, traits and voice characteristics.
type Classifier struct {
	archetypes []config.Category
	traits     []config.Category
	voices     []config.Category
	matcher    match.Matcher
}

// New creates a classifier. The first declared archetype is the default:
// selection is strict-greater, so it wins all-zero and tied corpora.
func New(archetypes, traits, voices []config.Category, matcher match.Matcher) *Classifier {
	return &Classifier{archetypes: archetypes, traits: traits, voices: voices, matcher: matcher}
}

// Classify scores the full text against every archetype and trait.
// Archetype scores mix raw occurrence counts with a bias for seed
// keywords that also surfaced as primary keywords.
func (c *Classifier) Classify(text string, sentences []string, primary []keywords.Score) Profile {
	return Profile{
		Traits:               c.classifyTraits(text, sentences),
		Archetype:            c.classifyArchetype(text, primary),
		VoiceCharacteristics: c.voiceCharacteristics(text),
	}
}

func (c *Classifier) classifyArchetype(text string, primary []keywords.Score) string {
	primaryWords := make(map[string]struct{}, len(primary))
	for _, kw := range primary {
		primaryWords[kw.Word] = struct{}{}
	}

	best := ""
	bestScore := -1
	for _, arch := range c.archetypes {
		score := 0
		for _, seed := range arch.Keywords {
			score += c.matcher.Count(text, seed)
			if _, ok := primaryWords[seed]; ok {
				score += primaryKeywordBias
			}
		}
		if score > bestScore {
			best = arch.Name
			bestScore = score
		}
	}
	return best
}

func (c *Classifier) classifyTraits(text string, sentences []string) []Trait {
	traits := []Trait{}
	for _, trait := range c.traits {
		score := 0
		for _, kw := range trait.Keywords {
			score += c.matcher.Count(text, kw)
		}
		if score < minTraitScore {
			continue
		}
		traits = append(traits, Trait{
			Trait:      trait.Name,
			Confidence: math.Min(float64(score)/confidenceDivisor, 1),
			Evidence:   c.evidence(sentences, trait.Keywords),
		})
	}
	sort.SliceStable(traits, func(i, j int) bool {
		return traits[i].Confidence > traits[j].Confidence
	})
	if len(traits) > traitLimit {
		traits = traits[:traitLimit]
	}
	return traits
}

// evidence collects up to two sentences containing any trait keyword.
func (c *Classifier) evidence(sentences, terms []string) []string {
	out := []string{}
	for _, s := range sentences {
		if len(out) >= evidenceLimit {
			break
		}
		for _, term := range terms {
			if c.matcher.Contains(s, term) {
				out = append(out, s)
				break
			}
		}
	}
	return out
}

func (c *Classifier) voiceCharacteristics(text string) []string {
	type scored struct {
		name  string
		score int
	}
	kept := []scored{}
	for _, voice := range c.voices {
		score := 0
		for _, kw := range voice.Keywords {
			score += c.matcher.Count(text, kw)
		}
		if score < minVoiceScore {
			continue
		}
		kept = append(kept, scored{name: voice.Name, score: score})
	}
	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].score > kept[j].score
	})
	if len(kept) > voiceLimit {
		kept = kept[:voiceLimit]
	}
	names := make([]string, 0, len(kept))
	for _, s := range kept {
		names = append(names, s.name)
	}
	return names
}
