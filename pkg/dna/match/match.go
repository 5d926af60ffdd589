package match

import "strings"

// Matcher decides whether a body of text contains a term, and how often.
//
// The zero value matches by case-insensitive substring, which is the
// documented engine behavior ("serve" matches inside "serves" but also
// inside "observer"). Setting Boundary switches every call site to strict
// word-boundary matching without touching the analyzers.
type Matcher struct {
	// Boundary requires the term to appear as a whole word rather than
	// anywhere inside the text.
	Boundary bool
}

// Contains reports whether text contains term, case-insensitively.
func (m Matcher) Contains(text, term string) bool {
	if term == "" {
		return false
	}
	text = strings.ToLower(text)
	term = strings.ToLower(term)
	if !m.Boundary {
		return strings.Contains(text, term)
	}
	for _, field := range splitWords(text) {
		if field == term {
			return true
		}
	}
	return false
}

// Count returns the number of occurrences of term in text,
// case-insensitively. Substring mode counts non-overlapping occurrences;
// boundary mode counts whole-word hits.
func (m Matcher) Count(text, term string) int {
	if term == "" {
		return 0
	}
	text = strings.ToLower(text)
	term = strings.ToLower(term)
	if !m.Boundary {
		return strings.Count(text, term)
	}
	n := 0
	for _, field := range splitWords(text) {
		if field == term {
			n++
		}
	}
	return n
}

// splitWords splits on any non-letter, non-digit rune so punctuation
// does not glue words together ("pizza," → "pizza").
func splitWords(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		return !isWordRune(r)
	})
}

func isWordRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	case r == '-' || r == '\'':
		// Keep hyphenated and possessive forms intact ("cutting-edge").
		return true
	}
	return false
}
