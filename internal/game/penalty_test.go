package game

import (
	"errors"
	"testing"

	"github.com/ychsiao/tablerush/internal/quiz"
)

func TestPenalty_OrderedEntry(t *testing.T) {
	p := NewPenalty(quiz.Question{Factor1: 3, Factor2: 5, Answer: 15})
	if p.Expected != "3515" {
		t.Fatalf("Expected = %q, want %q", p.Expected, "3515")
	}

	for _, d := range []byte("3515") {
		if err := p.Digit(d); err != nil {
			t.Fatalf("Digit(%q) error: %v", string(d), err)
		}
	}
	if !p.Complete() {
		t.Error("penalty should be complete after full sequence")
	}

	// Extra digits after completion are ignored.
	if err := p.Digit('9'); err != nil {
		t.Errorf("Digit after completion returned error: %v", err)
	}
	if p.Entered != "3515" {
		t.Errorf("Entered = %q after extra digit, want %q", p.Entered, "3515")
	}
}

func TestPenalty_RejectsOutOfOrderDigit(t *testing.T) {
	p := NewPenalty(quiz.Question{Factor1: 3, Factor2: 5, Answer: 15})

	if err := p.Digit('3'); err != nil {
		t.Fatalf("Digit('3') error: %v", err)
	}
	err := p.Digit('1')
	if !errors.Is(err, ErrWrongDigit) {
		t.Fatalf("Digit('1') error = %v, want ErrWrongDigit", err)
	}
	if p.Entered != "3" {
		t.Errorf("Entered = %q after rejected digit, want %q", p.Entered, "3")
	}
}

func TestPenalty_RejectsNonDigit(t *testing.T) {
	p := NewPenalty(quiz.Question{Factor1: 2, Factor2: 2, Answer: 4})
	if err := p.Digit('x'); !errors.Is(err, ErrWrongDigit) {
		t.Errorf("Digit('x') error = %v, want ErrWrongDigit", err)
	}
}

func TestPenalty_Backspace(t *testing.T) {
	p := NewPenalty(quiz.Question{Factor1: 2, Factor2: 9, Answer: 18})

	p.Backspace() // empty, no-op
	if p.Entered != "" {
		t.Fatalf("Entered = %q after backspace on empty, want empty", p.Entered)
	}

	if err := p.Digit('2'); err != nil {
		t.Fatal(err)
	}
	if err := p.Digit('9'); err != nil {
		t.Fatal(err)
	}
	p.Backspace()
	if p.Entered != "2" {
		t.Errorf("Entered = %q after backspace, want %q", p.Entered, "2")
	}
	// The freed position accepts the right digit again.
	if err := p.Digit('9'); err != nil {
		t.Errorf("re-entering %q after backspace: %v", "9", err)
	}
}
