package quiz

import (
	"fmt"
	"strconv"
)

// DefaultTables is the full set of first factors a player may practice.
// The 1-times table is excluded so every question is a "real"
// multiplication.
var DefaultTables = []int{2, 3, 4, 5, 6, 7, 8, 9}

// Question is a single multiplication fact served to the player.
// Answer == Factor1*Factor2 holds for every question ever constructed;
// the generator is the only producer and enforces it.
type Question struct {
	// Factor1 is the left-hand multiplicand, drawn from the player's
	// selected tables.
	Factor1 int

	// Factor2 is the right-hand multiplicand. For narrative comparison
	// variants this stores the derived difference, not a number that
	// appears literally in the sentence.
	Factor2 int

	// Answer is Factor1 * Factor2.
	Answer int

	// Narrative is non-nil when the question is a word problem.
	Narrative *NarrativeDetail
}

// NarrativeDetail carries the rendered word-problem text. The text is
// stored, never regenerated: comparison variants embed derived values
// that cannot be recovered from the factors alone.
type NarrativeDetail struct {
	// Text is the fully substituted sentence, free of placeholders.
	Text string

	// Unit labels the answer for display ("stickers", "points", ...).
	Unit string

	// TemplateID identifies the bank template the text came from.
	TemplateID int
}

// IsNarrative reports whether the question is a word problem.
func (q Question) IsNarrative() bool {
	return q.Narrative != nil
}

// Equation renders the bare multiplication fact, e.g. "3 × 5 = 15".
func (q Question) Equation() string {
	return fmt.Sprintf("%d × %d = %d", q.Factor1, q.Factor2, q.Answer)
}

// Prompt renders the question as shown to the player.
func (q Question) Prompt() string {
	if q.Narrative != nil {
		return q.Narrative.Text
	}
	return fmt.Sprintf("%d × %d = ?", q.Factor1, q.Factor2)
}

// DigitSequence returns the decimal digits of Factor1, Factor2 and Answer
// concatenated in that order. This is the sequence the penalty flow makes
// the player re-enter, e.g. 3×5=15 → "3515".
func (q Question) DigitSequence() string {
	return strconv.Itoa(q.Factor1) + strconv.Itoa(q.Factor2) + strconv.Itoa(q.Answer)
}
