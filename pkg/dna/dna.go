// Package dna extracts a structured Brand DNA profile — keyword salience,
// topics, sentiment, lexical signature, content patterns and a
// personality/archetype classification — from a normalized text corpus.
//
// The whole pipeline is a pure function of (corpus, lexicons): no I/O, no
// randomness, no shared state between calls. Identical input yields
// byte-identical JSON output.
package dna

import (
	"fmt"

	"github.com/brandlens/dna/pkg/dna/config"
	"github.com/brandlens/dna/pkg/dna/corpus"
	"github.com/brandlens/dna/pkg/dna/keywords"
	"github.com/brandlens/dna/pkg/dna/lexicon"
	"github.com/brandlens/dna/pkg/dna/match"
	"github.com/brandlens/dna/pkg/dna/patterns"
	"github.com/brandlens/dna/pkg/dna/personality"
	"github.com/brandlens/dna/pkg/dna/sentiment"
	"github.com/brandlens/dna/pkg/dna/topics"
)

// KeywordProfile groups the three keyword tiers.
type KeywordProfile struct {
	Primary       []keywords.Score        `json:"primary"`
	Secondary     []keywords.Score        `json:"secondary"`
	BrandSpecific []keywords.BrandKeyword `json:"brandSpecific"`
}

// BrandDNA is the root aggregate returned by Extract. Field names and
// nesting are the stable JSON contract consumed downstream.
type BrandDNA struct {
	Keywords         KeywordProfile      `json:"keywords"`
	Topics           topics.Profile      `json:"topics"`
	Sentiment        sentiment.Result    `json:"sentiment"`
	BrandLexicon     lexicon.Lexicon     `json:"brandLexicon"`
	ContentPatterns  patterns.Patterns   `json:"contentPatterns"`
	BrandPersonality personality.Profile `json:"brandPersonality"`
}

// Options configures an Engine.
type Options struct {
	// Lexicons supplies every word list. Zero value means config.Default().
	Lexicons *config.Lexicons

	// Matcher selects the term-matching strategy. The zero value is
	// case-insensitive substring matching, the documented behavior.
	Matcher match.Matcher
}

// Engine runs the extraction pipeline. Construct once with New and reuse;
// it is immutable after construction.
type Engine struct {
	lexicons    config.Lexicons
	keywords    *keywords.Extractor
	topics      *topics.Modeler
	sentiment   *sentiment.Analyzer
	lexicon     *lexicon.Extractor
	patterns    *patterns.Analyzer
	personality *personality.Classifier
}

// New wires the analyzers with the given options.
func New(opts Options) *Engine {
	lex := config.Default()
	if opts.Lexicons != nil {
		lex = *opts.Lexicons
	}
	m := opts.Matcher
	return &Engine{
		lexicons:    lex,
		keywords:    keywords.New(lex.CapitalizedDenylist, m),
		topics:      topics.New(lex.Topics, m),
		sentiment:   sentiment.New(lex.Sentiment, m),
		lexicon:     lexicon.New(lex.Adjectives, lex.ActionVerbs, lex.BrandValues, m),
		patterns:    patterns.New(lex, m),
		personality: personality.New(lex.Archetypes, lex.Traits, lex.Voices, m),
	}
}

// NewCorpus builds a corpus from raw fragments using the engine's
// stopword list.
func (e *Engine) NewCorpus(website, socialMedia []string) corpus.Corpus {
	return corpus.New(website, socialMedia, e.lexicons.Stopwords)
}

// Extract runs the full pipeline: keywords, sentiment, lexicon and
// content patterns read only the corpus; topics consume the primary
// keywords; the personality classifier consumes keywords and full text.
// A degenerate (empty) corpus is valid and produces neutral defaults;
// the only error is a corpus whose metadata contradicts its contents.
func (e *Engine) Extract(c corpus.Corpus) (BrandDNA, error) {
	if err := c.Validate(); err != nil {
		return BrandDNA{}, fmt.Errorf("extract brand dna: %w", err)
	}

	ranked := e.keywords.Extract(c.Words, c.Sentences)

	return BrandDNA{
		Keywords: KeywordProfile{
			Primary:       ranked.Primary,
			Secondary:     ranked.Secondary,
			BrandSpecific: e.keywords.ExtractBrandSpecific(c.Sentences),
		},
		Topics:           e.topics.Extract(c.Sentences, ranked.Primary),
		Sentiment:        e.sentiment.Analyze(c.Sentences),
		BrandLexicon:     e.lexicon.Extract(c.Combined, c.Sentences),
		ContentPatterns:  e.patterns.Analyze(c.Sentences, c.Combined),
		BrandPersonality: e.personality.Classify(c.Combined, c.Sentences, ranked.Primary),
	}, nil
}
