package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/brandlens/dna/pkg/dna/internalerr"
)

func TestDefaultValidates(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default lexicons invalid: %v", err)
	}
}

func TestDefaultShapes(t *testing.T) {
	lex := Default()

	if len(lex.Topics) != 6 {
		t.Errorf("topics = %d, want 6", len(lex.Topics))
	}
	if len(lex.Sentiment.Positive) != 20 {
		t.Errorf("positive words = %d, want 20", len(lex.Sentiment.Positive))
	}
	if len(lex.Sentiment.Negative) != 15 {
		t.Errorf("negative words = %d, want 15", len(lex.Sentiment.Negative))
	}
	if len(lex.Sentiment.Emotional) != 10 {
		t.Errorf("emotional words = %d, want 10", len(lex.Sentiment.Emotional))
	}
	if len(lex.Adjectives) != 20 {
		t.Errorf("adjectives = %d, want 20", len(lex.Adjectives))
	}
	if len(lex.ActionVerbs) != 20 {
		t.Errorf("action verbs = %d, want 20", len(lex.ActionVerbs))
	}
	if len(lex.BrandValues) != 8 {
		t.Errorf("brand values = %d, want 8", len(lex.BrandValues))
	}
	if len(lex.CTATerms) != 16 {
		t.Errorf("cta terms = %d, want 16", len(lex.CTATerms))
	}
	if len(lex.Traits) != 8 {
		t.Errorf("traits = %d, want 8", len(lex.Traits))
	}
	if len(lex.Archetypes) != 12 {
		t.Errorf("archetypes = %d, want 12", len(lex.Archetypes))
	}
	for _, arch := range lex.Archetypes {
		if len(arch.Keywords) != 7 {
			t.Errorf("archetype %q has %d seeds, want 7", arch.Name, len(arch.Keywords))
		}
	}
	if lex.Archetypes[0].Name != "The Regular Guy" {
		t.Errorf("first archetype = %q, want The Regular Guy (tie-break default)", lex.Archetypes[0].Name)
	}
}

func TestLoadOverridesSection(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lexicons.yaml")
	content := `
stopwords: [custom, words]
topics:
  - name: "Craft & Making"
    keywords: [craft, handmade, workshop]
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	lex, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if len(lex.Stopwords) != 2 || lex.Stopwords[0] != "custom" {
		t.Errorf("stopwords not overridden: %v", lex.Stopwords)
	}
	if len(lex.Topics) != 1 || lex.Topics[0].Name != "Craft & Making" {
		t.Errorf("topics not overridden: %+v", lex.Topics)
	}

	// Untouched sections keep their defaults.
	if len(lex.Archetypes) != 12 {
		t.Errorf("archetypes should keep defaults, got %d", len(lex.Archetypes))
	}
	if len(lex.Sentiment.Positive) != 20 {
		t.Errorf("sentiment should keep defaults, got %d", len(lex.Sentiment.Positive))
	}
}

func TestLoadRejectsInvalidCategories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lexicons.yaml")
	content := `
topics:
  - name: ""
    keywords: [orphan]
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := Load(path)
	if !errors.Is(err, internalerr.ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestValidateEmptyArchetypes(t *testing.T) {
	lex := Default()
	lex.Archetypes = nil
	if !errors.Is(lex.Validate(), internalerr.ErrInvalidConfig) {
		t.Error("empty archetypes should be invalid")
	}
}
