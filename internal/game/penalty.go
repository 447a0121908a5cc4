package game

import (
	"errors"
	"fmt"

	"github.com/ychsiao/tablerush/internal/quiz"
)

var (
	// ErrWrongDigit is returned when a penalty digit breaks the order.
	ErrWrongDigit = errors.New("wrong digit for this position")

	// ErrPenaltyIncomplete is returned when submitting a half-entered
	// sequence.
	ErrPenaltyIncomplete = errors.New("sequence not fully entered")
)

// Penalty forces ordered re-entry of a missed equation's digits before
// play resumes. There is no skip or timeout escape: completing the
// sequence is the only way back.
type Penalty struct {
	// Question is the question that was answered incorrectly.
	Question quiz.Question

	// Expected is the digit sequence to re-enter: the decimal digits of
	// Factor1, Factor2 and Answer in order.
	Expected string

	// Entered is the prefix entered so far. Always a prefix of Expected.
	Entered string
}

// NewPenalty creates a penalty for the failed question.
func NewPenalty(q quiz.Question) *Penalty {
	return &Penalty{
		Question: q,
		Expected: q.DigitSequence(),
	}
}

// Digit appends one digit. Digits must arrive in exactly the expected
// order; an out-of-order digit is rejected without state change. Extra
// digits after completion are ignored.
func (p *Penalty) Digit(d byte) error {
	if p.Complete() {
		return nil
	}
	if d < '0' || d > '9' {
		return fmt.Errorf("%w: %q is not a digit", ErrWrongDigit, string(d))
	}
	if d != p.Expected[len(p.Entered)] {
		return fmt.Errorf("%w: expected %q at position %d",
			ErrWrongDigit, string(p.Expected[len(p.Entered)]), len(p.Entered)+1)
	}
	p.Entered += string(d)
	return nil
}

// Backspace removes the last entered digit, if any.
func (p *Penalty) Backspace() {
	if len(p.Entered) > 0 {
		p.Entered = p.Entered[:len(p.Entered)-1]
	}
}

// Complete reports whether the full sequence has been entered.
func (p *Penalty) Complete() bool {
	return len(p.Entered) == len(p.Expected)
}
