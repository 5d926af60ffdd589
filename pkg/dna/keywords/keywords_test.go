package keywords

import (
	"strings"
	"testing"

	"github.com/brandlens/dna/pkg/dna/config"
	"github.com/brandlens/dna/pkg/dna/match"
)

func newExtractor() *Extractor {
	return New(config.Default().CapitalizedDenylist, match.Matcher{})
}

func TestExtractRequiresMinFrequency(t *testing.T) {
	e := newExtractor()

	words := []string{"pizza", "pasta", "pizza", "wine"}
	sentences := []string{"pizza and pasta with wine", "pizza again tonight"}

	ranked := e.Extract(words, sentences)

	for _, s := range append(ranked.Primary, ranked.Secondary...) {
		if s.Word == "pasta" || s.Word == "wine" {
			t.Errorf("single-occurrence word %q should not be scored", s.Word)
		}
		if s.Frequency < 2 {
			t.Errorf("word %q scored with frequency %d", s.Word, s.Frequency)
		}
	}
	if len(ranked.Primary) != 1 || ranked.Primary[0].Word != "pizza" {
		t.Errorf("expected only pizza in primary, got %+v", ranked.Primary)
	}
}

func TestExtractIDFMonotonicity(t *testing.T) {
	e := newExtractor()

	// alpha and omega both occur three times; alpha is spread across
	// every sentence, omega is concentrated in one. The idf term must
	// rank omega higher.
	words := []string{"alpha", "alpha", "alpha", "omega", "omega", "omega"}
	sentences := []string{
		"alpha opens the first sentence",
		"alpha returns in the second sentence",
		"alpha closes while omega omega omega cluster here",
	}

	ranked := e.Extract(words, sentences)

	if len(ranked.Primary) != 2 {
		t.Fatalf("expected 2 scored words, got %d", len(ranked.Primary))
	}
	if ranked.Primary[0].Word != "omega" {
		t.Errorf("concentrated word should rank first, got %q", ranked.Primary[0].Word)
	}
	if ranked.Primary[0].Score <= ranked.Primary[1].Score {
		t.Errorf("omega score %f should exceed alpha score %f",
			ranked.Primary[0].Score, ranked.Primary[1].Score)
	}
}

func TestExtractTierLimits(t *testing.T) {
	e := newExtractor()

	// 60 distinct words, each twice, each concentrated in its own sentence.
	var words []string
	var sentences []string
	for i := 0; i < 60; i++ {
		w := "term" + string(rune('a'+i%26)) + string(rune('a'+i/26))
		words = append(words, w, w)
		sentences = append(sentences, w+" appears twice right here "+w)
	}

	ranked := e.Extract(words, sentences)

	if len(ranked.Primary) != 20 {
		t.Errorf("primary should cap at 20, got %d", len(ranked.Primary))
	}
	if len(ranked.Secondary) != 30 {
		t.Errorf("secondary should cap at 30, got %d", len(ranked.Secondary))
	}
}

func TestExtractTieBreakInsertionOrder(t *testing.T) {
	e := newExtractor()

	// Symmetric corpus: first and second have identical tf and sentence
	// spread, so the tie must resolve to first-seen order.
	words := []string{"zebra", "apple", "zebra", "apple"}
	sentences := []string{"zebra apple in one sentence", "zebra apple in another one"}

	ranked := e.Extract(words, sentences)

	if len(ranked.Primary) != 2 {
		t.Fatalf("expected 2 scored words, got %d", len(ranked.Primary))
	}
	if ranked.Primary[0].Word != "zebra" {
		t.Errorf("tie should keep insertion order, got %q first", ranked.Primary[0].Word)
	}
}

func TestExtractEmptyInput(t *testing.T) {
	e := newExtractor()

	ranked := e.Extract(nil, nil)

	if ranked.Primary == nil || ranked.Secondary == nil {
		t.Error("tiers should be empty slices, not nil")
	}
	if len(ranked.Primary) != 0 || len(ranked.Secondary) != 0 {
		t.Errorf("expected empty output, got %+v", ranked)
	}
}

func TestExtractNoSentences(t *testing.T) {
	e := newExtractor()

	// Words without any usable sentence: the idf term is skipped and
	// scores stay at zero, but nothing panics.
	ranked := e.Extract([]string{"solo", "solo"}, nil)

	if len(ranked.Primary) != 1 {
		t.Fatalf("expected 1 scored word, got %d", len(ranked.Primary))
	}
	if ranked.Primary[0].Score != 0 {
		t.Errorf("score without sentences should be 0, got %f", ranked.Primary[0].Score)
	}
}

func TestExtractBrandSpecific(t *testing.T) {
	e := newExtractor()

	sentences := []string{
		"Bella Cucina serves handmade pasta every evening",
		"Regulars know Bella is the warmest room in town",
		"The chefs at Bella source everything locally",
	}

	brands := e.ExtractBrandSpecific(sentences)

	var bella *BrandKeyword
	for i := range brands {
		if strings.EqualFold(brands[i].Word, "bella") {
			bella = &brands[i]
		}
		if strings.EqualFold(brands[i].Word, "the") {
			t.Error("denylisted word 'The' surfaced as brand keyword")
		}
	}
	if bella == nil {
		t.Fatalf("expected Bella among brand keywords, got %+v", brands)
	}
	if bella.Score != 3 {
		t.Errorf("Bella count = %d, want 3", bella.Score)
	}
	if bella.Word != "Bella" {
		t.Errorf("original casing lost: %q", bella.Word)
	}
	if bella.Context == "" {
		t.Error("brand keyword should carry a context sentence")
	}
}

func TestExtractBrandSpecificInteriorCapitals(t *testing.T) {
	e := newExtractor()

	// A capital run inside a word is still a candidate: "iPhone"
	// contributes "Phone".
	sentences := []string{
		"Everyone wants the new iPhone this season",
		"Critics say iPhone cameras impress",
	}

	brands := e.ExtractBrandSpecific(sentences)

	var phone *BrandKeyword
	for i := range brands {
		if brands[i].Word == "Phone" {
			phone = &brands[i]
		}
	}
	if phone == nil {
		t.Fatalf("expected Phone from interior capital run, got %+v", brands)
	}
	if phone.Score != 2 {
		t.Errorf("Phone count = %d, want 2", phone.Score)
	}
}

func TestExtractBrandSpecificDropsSingles(t *testing.T) {
	e := newExtractor()

	brands := e.ExtractBrandSpecific([]string{"Acme appears once in this text"})

	for _, b := range brands {
		if strings.EqualFold(b.Word, "acme") {
			t.Error("single-occurrence capitalized word should be dropped")
		}
	}
}

func TestExtractBrandSpecificContextTruncated(t *testing.T) {
	e := newExtractor()

	long := "Zenith " + strings.Repeat("filler ", 30) + "Zenith closes the sentence"
	brands := e.ExtractBrandSpecific([]string{long})

	if len(brands) == 0 {
		t.Fatal("expected Zenith to be extracted")
	}
	if len(brands[0].Context) > 103 {
		t.Errorf("context not truncated: %d chars", len(brands[0].Context))
	}
	if !strings.HasSuffix(brands[0].Context, "...") {
		t.Errorf("truncated context should end with ellipsis: %q", brands[0].Context)
	}
}
