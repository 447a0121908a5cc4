package quiz

import (
	"strings"
	"testing"
)

func TestTemplates_UniqueIDs(t *testing.T) {
	seen := make(map[int]bool)
	for _, tmpl := range Templates() {
		if seen[tmpl.ID] {
			t.Errorf("duplicate template id %d", tmpl.ID)
		}
		seen[tmpl.ID] = true
	}
}

func TestTemplates_PlaceholdersMatchVariant(t *testing.T) {
	for _, tmpl := range Templates() {
		switch tmpl.Variant {
		case VariantComparison, VariantComparisonLess:
			if !strings.Contains(tmpl.Text, "{larger}") || !strings.Contains(tmpl.Text, "{smaller}") {
				t.Errorf("template %d: comparison text missing {larger}/{smaller}: %q", tmpl.ID, tmpl.Text)
			}
			if strings.Contains(tmpl.Text, "{num2}") {
				t.Errorf("template %d: comparison text must not contain {num2}", tmpl.ID)
			}
		case VariantCombination:
			if tmpl.FixedFactor2 < 2 {
				t.Errorf("template %d: combination needs FixedFactor2 >= 2, got %d", tmpl.ID, tmpl.FixedFactor2)
			}
			if strings.Contains(tmpl.Text, "{num2}") {
				t.Errorf("template %d: combination text must not contain {num2}", tmpl.ID)
			}
		case VariantDouble:
			if strings.Contains(tmpl.Text, "{larger}") || strings.Contains(tmpl.Text, "{smaller}") {
				t.Errorf("template %d: double text must not contain comparison placeholders", tmpl.ID)
			}
		default:
			if tmpl.FixedFactor1 == 0 && !strings.Contains(tmpl.Text, "{num1}") {
				t.Errorf("template %d: standard text missing {num1}: %q", tmpl.ID, tmpl.Text)
			}
			if !strings.Contains(tmpl.Text, "{num2}") {
				t.Errorf("template %d: standard text missing {num2}: %q", tmpl.ID, tmpl.Text)
			}
		}
	}
}

func TestTemplatesByCategory(t *testing.T) {
	for _, c := range Categories() {
		got := TemplatesByCategory(c)
		if len(got) == 0 {
			t.Errorf("category %q has no templates", c)
		}
		for _, tmpl := range got {
			if tmpl.Category != c {
				t.Errorf("template %d leaked into category %q", tmpl.ID, c)
			}
		}
	}
}

func TestCategories_CoverBank(t *testing.T) {
	total := 0
	for _, c := range Categories() {
		total += len(TemplatesByCategory(c))
	}
	if total != len(Templates()) {
		t.Errorf("categories cover %d templates, bank has %d", total, len(Templates()))
	}
}
