package corpus

import (
	"math"
	"testing"

	"github.com/brandlens/dna/pkg/dna/config"
)

func TestNewCombinesFragments(t *testing.T) {
	c := New(
		[]string{"We build quality software.", "Our team ships daily."},
		[]string{"Follow along for updates!"},
		config.Default().Stopwords,
	)

	want := "We build quality software. Our team ships daily. Follow along for updates!"
	if c.Combined != want {
		t.Errorf("Combined = %q, want %q", c.Combined, want)
	}
	if len(c.Sentences) != 3 {
		t.Errorf("expected 3 sentences, got %d: %v", len(c.Sentences), c.Sentences)
	}
}

func TestNewEmptyInput(t *testing.T) {
	c := New(nil, nil, config.Default().Stopwords)

	if c.Combined != "" {
		t.Errorf("Combined should be empty, got %q", c.Combined)
	}
	if len(c.Words) != 0 {
		t.Errorf("expected no words, got %v", c.Words)
	}
	if len(c.Sentences) != 0 {
		t.Errorf("expected no sentences, got %v", c.Sentences)
	}
	if c.Metadata.AverageSentenceLength != 0 {
		t.Errorf("AverageSentenceLength should be 0, got %f", c.Metadata.AverageSentenceLength)
	}
	if c.Metadata.ReadabilityScore != 0 {
		t.Errorf("ReadabilityScore should be 0, got %f", c.Metadata.ReadabilityScore)
	}
}

func TestTokenizeDropsShortAndStopwords(t *testing.T) {
	c := New([]string{"The cat sat on an excellent mat, obviously."}, nil, config.Default().Stopwords)

	for _, w := range c.Words {
		if len(w) <= 2 {
			t.Errorf("short token %q survived", w)
		}
		if w == "the" {
			t.Error("stopword 'the' survived")
		}
	}

	found := false
	for _, w := range c.Words {
		if w == "excellent" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected 'excellent' among tokens, got %v", c.Words)
	}
}

func TestTokenizeStripsPunctuation(t *testing.T) {
	c := New([]string{"quality, quality; quality! quality? it's quality."}, nil, nil)

	for _, w := range c.Words {
		if w != "quality" && w != "it" && w != "its" {
			// "it's" splits on the apostrophe into "it" and "s",
			// both dropped by the length filter.
			t.Errorf("unexpected token %q", w)
		}
	}
	count := 0
	for _, w := range c.Words {
		if w == "quality" {
			count++
		}
	}
	if count != 5 {
		t.Errorf("expected 5 quality tokens, got %d", count)
	}
}

func TestSentenceSplitDropsShortPieces(t *testing.T) {
	c := New([]string{"Yes. This sentence is long enough to keep! No?"}, nil, nil)

	if len(c.Sentences) != 1 {
		t.Fatalf("expected 1 sentence, got %d: %v", len(c.Sentences), c.Sentences)
	}
	if c.Sentences[0] != "This sentence is long enough to keep" {
		t.Errorf("unexpected sentence %q", c.Sentences[0])
	}
}

func TestMetadataCounts(t *testing.T) {
	c := New([]string{"Quality products and quality service matter greatly."}, nil, nil)

	if c.Metadata.TotalWords != len(c.Words) {
		t.Errorf("TotalWords %d != len(Words) %d", c.Metadata.TotalWords, len(c.Words))
	}
	if c.Metadata.UniqueWords >= c.Metadata.TotalWords && c.Metadata.TotalWords > 0 {
		// "quality" repeats, so unique must be strictly smaller
		t.Errorf("UniqueWords %d should be < TotalWords %d", c.Metadata.UniqueWords, c.Metadata.TotalWords)
	}
}

func TestReadabilityClamped(t *testing.T) {
	// A single extremely long sentence forces the raw Flesch score
	// below zero; the corpus must clamp it.
	long := ""
	for i := 0; i < 200; i++ {
		long += "word "
	}
	long += "end."
	c := New([]string{long}, nil, nil)

	if c.Metadata.ReadabilityScore < 0 || c.Metadata.ReadabilityScore > 100 {
		t.Errorf("readability %f outside [0,100]", c.Metadata.ReadabilityScore)
	}
}

func TestReadabilityFormula(t *testing.T) {
	c := New([]string{"Fresh authentic pasta arrives daily here."}, nil, nil)

	if len(c.Sentences) != 1 {
		t.Fatalf("expected 1 sentence, got %d", len(c.Sentences))
	}
	asl := float64(len(c.Words))
	want := 206.835 - 1.015*asl - 84.6*1.5
	if want < 0 {
		want = 0
	}
	if math.Abs(c.Metadata.ReadabilityScore-want) > 1e-9 {
		t.Errorf("readability = %f, want %f", c.Metadata.ReadabilityScore, want)
	}
}
