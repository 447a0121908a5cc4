package quiz

import (
	"math/rand/v2"
	"strings"
	"testing"
)

func testGenerator() *Generator {
	return NewGenerator(rand.New(rand.NewPCG(1, 2)))
}

func TestGenerate_AnswerInvariant(t *testing.T) {
	g := testGenerator()
	for i := 0; i < 500; i++ {
		q := g.Generate(DefaultTables)
		if q.Answer != q.Factor1*q.Factor2 {
			t.Fatalf("answer = %d, want %d*%d", q.Answer, q.Factor1, q.Factor2)
		}
		if q.Factor1 < 2 || q.Factor1 > 9 {
			t.Fatalf("factor1 = %d, want 2..9", q.Factor1)
		}
		if q.Factor2 < 2 || q.Factor2 > 9 {
			t.Fatalf("factor2 = %d, want 2..9", q.Factor2)
		}
		if q.IsNarrative() {
			t.Fatal("plain question should not be narrative")
		}
	}
}

func TestGenerate_RespectsAllowedSet(t *testing.T) {
	g := testGenerator()
	allowed := []int{3, 7}
	for i := 0; i < 200; i++ {
		q := g.Generate(allowed)
		if q.Factor1 != 3 && q.Factor1 != 7 {
			t.Fatalf("factor1 = %d, want 3 or 7", q.Factor1)
		}
	}
}

func TestGenerate_EmptySetFallsBackToDefault(t *testing.T) {
	g := testGenerator()
	seen := make(map[int]bool)
	for i := 0; i < 400; i++ {
		q := g.Generate(nil)
		if q.Factor1 < 2 || q.Factor1 > 9 {
			t.Fatalf("factor1 = %d, want 2..9", q.Factor1)
		}
		seen[q.Factor1] = true
	}
	if len(seen) < len(DefaultTables) {
		t.Errorf("saw %d distinct first factors over 400 draws, want all %d", len(seen), len(DefaultTables))
	}
}

func TestGenerateNarrative_AnswerInvariantAllVariants(t *testing.T) {
	g := testGenerator()
	seenVariant := make(map[Variant]bool)
	for i := 0; i < 2000; i++ {
		q := g.GenerateNarrative(DefaultTables, nil)
		if !q.IsNarrative() {
			t.Fatal("expected narrative question")
		}
		if q.Answer != q.Factor1*q.Factor2 {
			t.Fatalf("template %d: answer = %d, want %d*%d",
				q.Narrative.TemplateID, q.Answer, q.Factor1, q.Factor2)
		}
		if strings.Contains(q.Narrative.Text, "{") || strings.Contains(q.Narrative.Text, "}") {
			t.Fatalf("template %d: unresolved placeholder in %q",
				q.Narrative.TemplateID, q.Narrative.Text)
		}
		seenVariant[templateByID(t, q.Narrative.TemplateID).Variant] = true
	}

	for _, v := range []Variant{VariantStandard, VariantComparison, VariantComparisonLess, VariantCombination, VariantDouble} {
		if v == VariantStandard {
			// Standard templates carry the empty variant.
			v = ""
		}
		if !seenVariant[v] {
			t.Errorf("variant %q never drawn in 2000 samples", v)
		}
	}
}

func TestGenerateNarrative_ComparisonStoresDifference(t *testing.T) {
	g := testGenerator()
	for i := 0; i < 2000; i++ {
		q := g.GenerateNarrative(DefaultTables, nil)
		tmpl := templateByID(t, q.Narrative.TemplateID)
		if tmpl.Variant != VariantComparison && tmpl.Variant != VariantComparisonLess {
			continue
		}
		if q.Factor2 < 2 || q.Factor2 > 9 {
			t.Fatalf("comparison difference = %d, want 2..9", q.Factor2)
		}
	}
}

func TestGenerateNarrative_DoubleAlwaysTwo(t *testing.T) {
	g := testGenerator()
	for i := 0; i < 2000; i++ {
		q := g.GenerateNarrative(DefaultTables, nil)
		tmpl := templateByID(t, q.Narrative.TemplateID)
		if tmpl.Variant == VariantDouble && q.Factor2 != 2 {
			t.Fatalf("template %d: double variant factor2 = %d, want 2", tmpl.ID, q.Factor2)
		}
		if tmpl.Variant == VariantCombination && q.Factor2 != tmpl.FixedFactor2 {
			t.Fatalf("template %d: combination factor2 = %d, want %d", tmpl.ID, q.Factor2, tmpl.FixedFactor2)
		}
	}
}

func TestGenerateNarrative_FixedFactor1Overrides(t *testing.T) {
	g := testGenerator()
	for i := 0; i < 2000; i++ {
		q := g.GenerateNarrative([]int{2}, nil)
		tmpl := templateByID(t, q.Narrative.TemplateID)
		if tmpl.FixedFactor1 > 0 && q.Factor1 != tmpl.FixedFactor1 {
			t.Fatalf("template %d: factor1 = %d, want fixed %d", tmpl.ID, q.Factor1, tmpl.FixedFactor1)
		}
		if tmpl.FixedFactor1 == 0 && q.Factor1 != 2 {
			t.Fatalf("template %d: factor1 = %d, want 2 (only allowed table)", tmpl.ID, q.Factor1)
		}
	}
}

func TestGenerateNarrative_CategoryFilter(t *testing.T) {
	g := testGenerator()
	for i := 0; i < 300; i++ {
		q := g.GenerateNarrative(DefaultTables, []string{CategoryAnimals})
		tmpl := templateByID(t, q.Narrative.TemplateID)
		if tmpl.Category != CategoryAnimals {
			t.Fatalf("template %d: category = %q, want %q", tmpl.ID, tmpl.Category, CategoryAnimals)
		}
	}
}

func TestDigitSequence(t *testing.T) {
	tests := []struct {
		q    Question
		want string
	}{
		{Question{Factor1: 3, Factor2: 5, Answer: 15}, "3515"},
		{Question{Factor1: 2, Factor2: 2, Answer: 4}, "224"},
		{Question{Factor1: 9, Factor2: 9, Answer: 81}, "9981"},
	}
	for _, tt := range tests {
		if got := tt.q.DigitSequence(); got != tt.want {
			t.Errorf("DigitSequence(%d×%d) = %q, want %q", tt.q.Factor1, tt.q.Factor2, got, tt.want)
		}
	}
}

func templateByID(t *testing.T, id int) NarrativeTemplate {
	t.Helper()
	for _, tmpl := range Templates() {
		if tmpl.ID == id {
			return tmpl
		}
	}
	t.Fatalf("no template with id %d", id)
	return NarrativeTemplate{}
}
