package quiz

import (
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"
)

// Generator produces multiplication questions from a set of allowed first
// factors. The zero value is not usable; construct with NewGenerator.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator creates a Generator backed by the given random source.
// Pass nil to use a source seeded from the global generator; tests inject
// a fixed-seed source for determinism.
func NewGenerator(rng *rand.Rand) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Generator{rng: rng}
}

// Generate produces a plain question. Factor1 is drawn uniformly from
// allowed; Factor2 uniformly from the default 2..9 range. An empty allowed
// set falls back to all tables; callers enforce non-emptiness before a
// session starts.
func (g *Generator) Generate(allowed []int) Question {
	f1 := g.pickFactor1(allowed)
	f2 := g.pickTable()
	return Question{Factor1: f1, Factor2: f2, Answer: f1 * f2}
}

// GenerateNarrative produces a word-problem question. A template is drawn
// uniformly from the bank (restricted to categories when non-empty) and
// instantiated according to its variant. Answer == Factor1*Factor2 holds
// for every variant; for comparison variants Factor2 stores the derived
// difference rather than a number shown in the sentence.
func (g *Generator) GenerateNarrative(allowed []int, categories []string) Question {
	f1 := g.pickFactor1(allowed)

	tmpl := g.randomTemplate(categories)
	if tmpl.FixedFactor1 > 0 {
		f1 = tmpl.FixedFactor1
	}

	var f2 int
	subs := map[string]int{"num1": f1}

	switch tmpl.Variant {
	case VariantComparison, VariantComparisonLess:
		// The question asks "how much more/less is f1×larger than
		// f1×smaller"; the stored Factor2 is the difference.
		d := 2 + g.rng.IntN(8) // [2..9]
		smaller := 2
		if span := 8 - d; span >= 1 { // smaller ∈ [2, 9-d]
			smaller = 2 + g.rng.IntN(span)
		}
		f2 = d
		subs["larger"] = smaller + d
		subs["smaller"] = smaller

	case VariantCombination:
		f2 = tmpl.FixedFactor2

	case VariantDouble:
		f2 = 2
		subs["num2"] = 2

	default: // VariantStandard
		f2 = g.pickTable()
		subs["num2"] = f2
	}

	return Question{
		Factor1: f1,
		Factor2: f2,
		Answer:  f1 * f2,
		Narrative: &NarrativeDetail{
			Text:       renderTemplate(tmpl.Text, subs),
			Unit:       tmpl.Unit,
			TemplateID: tmpl.ID,
		},
	}
}

// pickFactor1 draws uniformly from allowed, falling back to all tables.
func (g *Generator) pickFactor1(allowed []int) int {
	if len(allowed) == 0 {
		allowed = DefaultTables
	}
	return allowed[g.rng.IntN(len(allowed))]
}

// pickTable draws a factor uniformly from 2..9.
func (g *Generator) pickTable() int {
	return 2 + g.rng.IntN(8)
}

// randomTemplate draws a template uniformly, restricted to the given
// categories when any are specified.
func (g *Generator) randomTemplate(categories []string) NarrativeTemplate {
	pool := Templates()
	if len(categories) > 0 {
		filtered := make([]NarrativeTemplate, 0, len(pool))
		for _, t := range pool {
			for _, c := range categories {
				if t.Category == c {
					filtered = append(filtered, t)
					break
				}
			}
		}
		if len(filtered) > 0 {
			pool = filtered
		}
	}
	return pool[g.rng.IntN(len(pool))]
}

// renderTemplate substitutes {name} placeholders with their values.
func renderTemplate(text string, subs map[string]int) string {
	oldnew := make([]string, 0, len(subs)*2)
	for name, val := range subs {
		oldnew = append(oldnew, fmt.Sprintf("{%s}", name), strconv.Itoa(val))
	}
	return strings.NewReplacer(oldnew...).Replace(text)
}
