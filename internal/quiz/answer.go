package quiz

import (
	"strconv"
	"strings"
)

// CheckAnswer reports whether raw parses as a base-10 integer equal to the
// question's answer. Used for basic mode.
func CheckAnswer(q Question, raw string) bool {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	return err == nil && n == q.Answer
}

// CheckNarrativeAnswer checks an equation-form answer for a narrative
// question. The input is a fixed-format digit string: the first character
// is the claimed first factor, the second the claimed second factor, and
// the rest the claimed answer.
//
// Any factor pair whose product equals the question's answer passes,
// provided the claimed answer matches too. The factors are deliberately
// not required to equal the stored Factor1/Factor2: a correct
// multiplication fact for the right total counts.
func CheckNarrativeAnswer(q Question, raw string) bool {
	raw = strings.TrimSpace(raw)
	if len(raw) < 3 {
		return false
	}

	f1, err := strconv.Atoi(raw[:1])
	if err != nil {
		return false
	}
	f2, err := strconv.Atoi(raw[1:2])
	if err != nil {
		return false
	}
	ans, err := strconv.Atoi(raw[2:])
	if err != nil {
		return false
	}

	return f1*f2 == q.Answer && ans == q.Answer
}
