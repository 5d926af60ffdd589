// Package topics clusters sentences into a fixed business-topic taxonomy
// by seed-keyword co-occurrence.
package topics

import (
	"math"
	"sort"

	"github.com/brandlens/dna/pkg/dna/config"
	"github.com/brandlens/dna/pkg/dna/keywords"
	"github.com/brandlens/dna/pkg/dna/match"
)

const (
	mainLimit      = 3
	secondaryLimit = 3
	keywordLimit   = 8
)

// Topic is one weighted taxonomy category.
type Topic struct {
	Topic    string   `json:"topic"`
	Weight   float64  `json:"weight"`
	Keywords []string `json:"keywords"`
}

// Profile splits matched topics into main and secondary tiers.
type Profile struct {
	Main      []Topic `json:"main"`
	Secondary []Topic `json:"secondary"`
}

// Modeler assigns sentences to taxonomy categories.
type Modeler struct {
	taxonomy []config.Category
	matcher  match.Matcher
}

// New creates a modeler over the given taxonomy. Category order breaks
// weight ties deterministically.
func New(taxonomy []config.Category, matcher match.Matcher) *Modeler {
	return &Modeler{taxonomy: taxonomy, matcher: matcher}
}

// Extract weighs each category by the share of sentences containing at
// least one of its seed keywords. Categories with no matching sentence are
// dropped, not padded. Primary keywords overlapping a seed (substring in
// either direction) are attached, up to 8 per topic.
func (m *Modeler) Extract(sentences []string, primary []keywords.Score) Profile {
	profile := Profile{Main: []Topic{}, Secondary: []Topic{}}
	if len(sentences) == 0 {
		return profile
	}

	matched := []Topic{}
	for _, cat := range m.taxonomy {
		relevant := 0
		for _, s := range sentences {
			if m.sentenceMatches(s, cat.Keywords) {
				relevant++
			}
		}
		if relevant == 0 {
			continue
		}
		weight := round2(float64(relevant) / float64(len(sentences)))
		matched = append(matched, Topic{
			Topic:    cat.Name,
			Weight:   weight,
			Keywords: m.overlappingKeywords(cat.Keywords, primary),
		})
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Weight > matched[j].Weight
	})

	if len(matched) > mainLimit {
		profile.Main = matched[:mainLimit]
		rest := matched[mainLimit:]
		if len(rest) > secondaryLimit {
			rest = rest[:secondaryLimit]
		}
		profile.Secondary = rest
	} else {
		profile.Main = matched
	}
	return profile
}

func (m *Modeler) sentenceMatches(sentence string, seeds []string) bool {
	for _, seed := range seeds {
		if m.matcher.Contains(sentence, seed) {
			return true
		}
	}
	return false
}

// overlappingKeywords keeps primary keywords whose word contains a seed or
// is contained by one ("serve" ↔ "services").
func (m *Modeler) overlappingKeywords(seeds []string, primary []keywords.Score) []string {
	out := []string{}
	for _, kw := range primary {
		if len(out) >= keywordLimit {
			break
		}
		for _, seed := range seeds {
			if m.matcher.Contains(kw.Word, seed) || m.matcher.Contains(seed, kw.Word) {
				out = append(out, kw.Word)
				break
			}
		}
	}
	return out
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
