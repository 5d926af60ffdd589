package match

import "testing"

func TestSubstringContains(t *testing.T) {
	m := Matcher{}

	tests := []struct {
		text, term string
		want       bool
	}{
		{"We serve fresh pasta", "serve", true},
		{"We serve fresh pasta", "SERVE", true},
		{"Our services are great", "serve", true}, // substring inside "services"
		{"The observer watched", "serve", true},   // documented over-match
		{"nothing here", "pizza", false},
		{"anything", "", false},
	}
	for _, tt := range tests {
		if got := m.Contains(tt.text, tt.term); got != tt.want {
			t.Errorf("Contains(%q, %q) = %v, want %v", tt.text, tt.term, got, tt.want)
		}
	}
}

func TestWordBoundaryContains(t *testing.T) {
	m := Matcher{Boundary: true}

	tests := []struct {
		text, term string
		want       bool
	}{
		{"We serve fresh pasta", "serve", true},
		{"Our services are great", "serve", false},
		{"The observer watched", "serve", false},
		{"Fresh pizza, every day.", "pizza", true}, // punctuation stripped
		{"cutting-edge tools", "cutting-edge", true},
	}
	for _, tt := range tests {
		if got := m.Contains(tt.text, tt.term); got != tt.want {
			t.Errorf("Boundary Contains(%q, %q) = %v, want %v", tt.text, tt.term, got, tt.want)
		}
	}
}

func TestSubstringCount(t *testing.T) {
	m := Matcher{}

	if got := m.Count("quality Quality QUALITY", "quality"); got != 3 {
		t.Errorf("Count = %d, want 3", got)
	}
	if got := m.Count("professional professionals", "professional"); got != 2 {
		t.Errorf("Count = %d, want 2", got)
	}
	if got := m.Count("anything", ""); got != 0 {
		t.Errorf("Count of empty term = %d, want 0", got)
	}
}

func TestWordBoundaryCount(t *testing.T) {
	m := Matcher{Boundary: true}

	if got := m.Count("professional professionals professional", "professional"); got != 2 {
		t.Errorf("Count = %d, want 2", got)
	}
}
