package quiz

import (
	"math/rand/v2"
	"strconv"
	"testing"
)

func TestCheckAnswer(t *testing.T) {
	q := Question{Factor1: 6, Factor2: 7, Answer: 42}

	tests := []struct {
		raw  string
		want bool
	}{
		{"42", true},
		{" 42 ", true},
		{"042", true},
		{"41", false},
		{"", false},
		{"abc", false},
		{"4 2", false},
	}
	for _, tt := range tests {
		if got := CheckAnswer(q, tt.raw); got != tt.want {
			t.Errorf("CheckAnswer(%q) = %v, want %v", tt.raw, got, tt.want)
		}
	}
}

func TestCheckAnswer_RoundTrip(t *testing.T) {
	g := NewGenerator(rand.New(rand.NewPCG(7, 7)))
	for i := 0; i < 200; i++ {
		q := g.Generate(DefaultTables)
		if !CheckAnswer(q, strconv.Itoa(q.Answer)) {
			t.Fatalf("own answer rejected for %s", q.Equation())
		}
	}
}

func TestCheckNarrativeAnswer(t *testing.T) {
	// 3 × 8 = 24.
	q := Question{Factor1: 3, Factor2: 8, Answer: 24, Narrative: &NarrativeDetail{Text: "t", TemplateID: 1}}

	tests := []struct {
		name string
		raw  string
		want bool
	}{
		{"exact factors", "3824", true},
		{"swapped factors", "8324", true},
		{"other valid factorization", "4624", true},
		{"another valid factorization", "6424", true},
		{"wrong product pair", "5524", false},
		{"right pair wrong answer", "3825", false},
		{"too short", "38", false},
		{"empty", "", false},
		{"non-digit factor", "a824", false},
		{"non-digit answer", "38xy", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CheckNarrativeAnswer(q, tt.raw); got != tt.want {
				t.Errorf("CheckNarrativeAnswer(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestCheckNarrativeAnswer_RoundTrip(t *testing.T) {
	g := NewGenerator(rand.New(rand.NewPCG(9, 9)))
	for i := 0; i < 200; i++ {
		q := g.GenerateNarrative(DefaultTables, nil)
		raw := strconv.Itoa(q.Factor1) + strconv.Itoa(q.Factor2) + strconv.Itoa(q.Answer)
		if q.Factor1 > 9 || q.Factor2 > 9 {
			continue // multi-digit factors can't be typed in equation form
		}
		if !CheckNarrativeAnswer(q, raw) {
			t.Fatalf("own equation %q rejected for %s (template %d)",
				raw, q.Equation(), q.Narrative.TemplateID)
		}
	}
}
