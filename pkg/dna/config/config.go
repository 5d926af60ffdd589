// Package config holds the fixed word lists the engine scores against.
//
// Every list is immutable configuration injected at construction time:
// the engine stays a pure function of (corpus, config) and can be tested
// with alternate lexicons. Lists are ordered slices, never maps, so that
// iteration order — and therefore tie-breaking — is deterministic.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/brandlens/dna/pkg/dna/internalerr"
)

// Category is a named group of keywords (a topic, an archetype, a tone...).
type Category struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
}

// Sentiment holds the polarity and emotion word lists.
type Sentiment struct {
	Positive  []string `yaml:"positive"`
	Negative  []string `yaml:"negative"`
	Emotional []string `yaml:"emotional"`
}

// Lexicons bundles every word list used by the analyzers.
type Lexicons struct {
	// Stopwords are dropped during tokenization.
	Stopwords []string `yaml:"stopwords"`

	// CapitalizedDenylist filters sentence-initial and other common
	// capitalized words out of the brand-specific keyword pass.
	CapitalizedDenylist []string `yaml:"capitalized_denylist"`

	// Topics is the fixed business-topic taxonomy.
	Topics []Category `yaml:"topics"`

	Sentiment Sentiment `yaml:"sentiment"`

	// Adjectives and ActionVerbs are the descriptive-word and
	// business-verb vocabularies mined for the brand lexicon.
	Adjectives  []string `yaml:"adjectives"`
	ActionVerbs []string `yaml:"action_verbs"`

	// BrandValues maps value names to indicator keywords.
	BrandValues []Category `yaml:"brand_values"`

	// CTATerms is the call-to-action vocabulary.
	CTATerms []string `yaml:"cta_terms"`

	// FormalWords and CasualWords drive the formality classification.
	FormalWords []string `yaml:"formal_words"`
	CasualWords []string `yaml:"casual_words"`

	// Tones, Traits, Archetypes and Voices drive the communication-style
	// and personality classifiers. Archetype order matters: selection is
	// strict-greater over declared order, so the first entry is the
	// default on an all-zero or tied score.
	Tones      []Category `yaml:"tones"`
	Traits     []Category `yaml:"traits"`
	Archetypes []Category `yaml:"archetypes"`
	Voices     []Category `yaml:"voices"`
}

// Load reads lexicon overrides from a YAML file. Sections absent from the
// file keep their built-in defaults, so a file can override just the
// stopwords or just the topic taxonomy.
func Load(path string) (Lexicons, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Lexicons{}, fmt.Errorf("load lexicons: %w", err)
	}

	var loaded Lexicons
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return Lexicons{}, fmt.Errorf("parse lexicons: %w", err)
	}

	merged := Default()
	merged.merge(loaded)

	if err := merged.Validate(); err != nil {
		return Lexicons{}, err
	}
	return merged, nil
}

func (l *Lexicons) merge(o Lexicons) {
	if len(o.Stopwords) > 0 {
		l.Stopwords = o.Stopwords
	}
	if len(o.CapitalizedDenylist) > 0 {
		l.CapitalizedDenylist = o.CapitalizedDenylist
	}
	if len(o.Topics) > 0 {
		l.Topics = o.Topics
	}
	if len(o.Sentiment.Positive) > 0 {
		l.Sentiment.Positive = o.Sentiment.Positive
	}
	if len(o.Sentiment.Negative) > 0 {
		l.Sentiment.Negative = o.Sentiment.Negative
	}
	if len(o.Sentiment.Emotional) > 0 {
		l.Sentiment.Emotional = o.Sentiment.Emotional
	}
	if len(o.Adjectives) > 0 {
		l.Adjectives = o.Adjectives
	}
	if len(o.ActionVerbs) > 0 {
		l.ActionVerbs = o.ActionVerbs
	}
	if len(o.BrandValues) > 0 {
		l.BrandValues = o.BrandValues
	}
	if len(o.CTATerms) > 0 {
		l.CTATerms = o.CTATerms
	}
	if len(o.FormalWords) > 0 {
		l.FormalWords = o.FormalWords
	}
	if len(o.CasualWords) > 0 {
		l.CasualWords = o.CasualWords
	}
	if len(o.Tones) > 0 {
		l.Tones = o.Tones
	}
	if len(o.Traits) > 0 {
		l.Traits = o.Traits
	}
	if len(o.Archetypes) > 0 {
		l.Archetypes = o.Archetypes
	}
	if len(o.Voices) > 0 {
		l.Voices = o.Voices
	}
}

// Validate checks that every category carries a name and at least one keyword.
func (l Lexicons) Validate() error {
	groups := map[string][]Category{
		"topics":       l.Topics,
		"brand_values": l.BrandValues,
		"tones":        l.Tones,
		"traits":       l.Traits,
		"archetypes":   l.Archetypes,
		"voices":       l.Voices,
	}
	for _, section := range []string{"topics", "brand_values", "tones", "traits", "archetypes", "voices"} {
		for _, cat := range groups[section] {
			if cat.Name == "" {
				return fmt.Errorf("%s: unnamed category: %w", section, internalerr.ErrInvalidConfig)
			}
			if len(cat.Keywords) == 0 {
				return fmt.Errorf("%s: category %q has no keywords: %w", section, cat.Name, internalerr.ErrInvalidConfig)
			}
		}
	}
	if len(l.Archetypes) == 0 {
		return fmt.Errorf("archetypes: empty: %w", internalerr.ErrInvalidConfig)
	}
	return nil
}
