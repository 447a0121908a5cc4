package game

import (
	"errors"
	"sort"
	"time"

	"github.com/ychsiao/tablerush/internal/quiz"
)

// ErrNoTablesSelected rejects starting a session with no tables enabled.
var ErrNoTablesSelected = errors.New("select at least one multiplication table")

// maxInputLen caps typed answers. Equation-form narrative answers need at
// most four digits (factor, factor, two-digit product).
const maxInputLen = 4

// Session is the game state machine. It owns score, clocks and the
// current question, and is driven entirely by its caller: the UI shell
// delivers input events, one-second clock ticks and question-timer expiry
// events, then renders the resulting state. The session itself never
// schedules anything.
type Session struct {
	gen *quiz.Generator

	// Sticky preferences, preserved across Restart.
	tables map[int]bool
	mode   Mode

	phase      Phase
	difficulty Difficulty

	score    int
	attempts int

	// timeRemaining counts down in whole seconds. It does not move while
	// a penalty is active: penalty is remediation, not play time.
	timeRemaining int

	question *quiz.Question
	input    string
	penalty  *Penalty

	// timerToken identifies the one live question timer. Every re-arm
	// bumps it; expiry events carrying an older token are stale and
	// ignored. This is what guarantees at most one effective timer even
	// though the shell cannot cancel a scheduled tick.
	timerToken int

	// questionDeadline is when the current question times out, used for
	// the countdown display only.
	questionDeadline time.Time

	// message is a transient, non-fatal notice for the UI (wrong penalty
	// digit, rejected submit).
	message string
}

// NewSession creates a session in the selecting phase with all tables
// enabled and basic mode.
func NewSession(gen *quiz.Generator) *Session {
	if gen == nil {
		gen = quiz.NewGenerator(nil)
	}
	s := &Session{
		gen:    gen,
		tables: make(map[int]bool),
		mode:   ModeBasic,
	}
	s.ResetTables()
	return s
}

// Phase returns the current top-level phase.
func (s *Session) Phase() Phase { return s.phase }

// Difficulty returns the active difficulty. Meaningful only outside the
// selecting phase.
func (s *Session) Difficulty() Difficulty { return s.difficulty }

// Mode returns the current question mode.
func (s *Session) Mode() Mode { return s.mode }

// Score returns the number of correct first-attempt answers.
func (s *Session) Score() int { return s.score }

// Attempts returns the number of judged or timed-out questions.
func (s *Session) Attempts() int { return s.attempts }

// TimeRemaining returns the seconds left on the session clock.
func (s *Session) TimeRemaining() int { return s.timeRemaining }

// TimeUsed returns the seconds of play consumed so far.
func (s *Session) TimeUsed() int { return s.difficulty.TimeLimit - s.timeRemaining }

// Question returns the current question, or nil between phases.
func (s *Session) Question() *quiz.Question { return s.question }

// Input returns the raw digits typed for the current question.
func (s *Session) Input() string { return s.input }

// Penalty returns the active penalty, or nil during normal play.
func (s *Session) Penalty() *Penalty { return s.penalty }

// TimerToken returns the token identifying the live question timer.
func (s *Session) TimerToken() int { return s.timerToken }

// QuestionCountdown returns the time left before the current question is
// counted as missed. Zero when no question is armed.
func (s *Session) QuestionCountdown() time.Duration {
	if s.phase != PhasePlaying || s.penalty != nil {
		return 0
	}
	d := time.Until(s.questionDeadline)
	if d < 0 {
		return 0
	}
	return d
}

// Message returns and clears the pending transient notice.
func (s *Session) Message() string {
	m := s.message
	s.message = ""
	return m
}

// Tables returns the enabled first-factor tables in ascending order.
func (s *Session) Tables() []int {
	out := make([]int, 0, len(s.tables))
	for n, on := range s.tables {
		if on {
			out = append(out, n)
		}
	}
	sort.Ints(out)
	return out
}

// TableEnabled reports whether table n is selected.
func (s *Session) TableEnabled(n int) bool { return s.tables[n] }

// ToggleTable flips table n. Only valid while selecting; ignored during
// play so a running session's factor pool stays fixed.
func (s *Session) ToggleTable(n int) {
	if s.phase != PhaseSelecting {
		return
	}
	for _, t := range quiz.DefaultTables {
		if t == n {
			s.tables[n] = !s.tables[n]
			return
		}
	}
}

// ResetTables re-enables the full 2..9 set.
func (s *Session) ResetTables() {
	for _, n := range quiz.DefaultTables {
		s.tables[n] = true
	}
}

// SetMode switches between basic and narrative questions. Only valid
// while selecting.
func (s *Session) SetMode(m Mode) {
	if s.phase != PhaseSelecting {
		return
	}
	if m == ModeBasic || m == ModeNarrative {
		s.mode = m
	}
}

// SelectDifficulty starts a session. Rejected without state change when
// no tables are enabled.
func (s *Session) SelectDifficulty(d Difficulty) error {
	if s.phase != PhaseSelecting {
		return nil
	}
	if len(s.Tables()) == 0 {
		s.message = ErrNoTablesSelected.Error()
		return ErrNoTablesSelected
	}

	s.difficulty = d
	s.score = 0
	s.attempts = 0
	s.timeRemaining = d.TimeLimit
	s.phase = PhasePlaying
	s.penalty = nil
	s.advanceQuestion()
	return nil
}

// AppendDigit adds one typed digit to the current answer. Ignored in
// penalty and outside play.
func (s *Session) AppendDigit(d byte) {
	if s.phase != PhasePlaying || s.penalty != nil || s.question == nil {
		return
	}
	if d < '0' || d > '9' || len(s.input) >= maxInputLen {
		return
	}
	s.input += string(d)
}

// Backspace removes the last typed digit.
func (s *Session) Backspace() {
	if s.phase != PhasePlaying || s.penalty != nil {
		return
	}
	if len(s.input) > 0 {
		s.input = s.input[:len(s.input)-1]
	}
}

// SubmitAnswer judges the typed answer. A correct answer scores and
// advances; a wrong one starts the penalty sub-flow, suspending the
// question timer until the penalty is completed.
func (s *Session) SubmitAnswer() SubmitResult {
	if s.phase != PhasePlaying || s.penalty != nil || s.question == nil || s.input == "" {
		return SubmitResult{}
	}

	s.attempts++
	correct := s.judge(*s.question, s.input)

	if correct {
		s.score++
		s.advanceQuestion()
	} else {
		s.penalty = NewPenalty(*s.question)
		s.input = ""
		// Invalidate the pending question timer for the penalty's
		// duration.
		s.timerToken++
	}

	return SubmitResult{Submitted: true, Correct: correct}
}

// judge picks the validator for the session mode. Narrative mode demands
// the equation form only for questions that actually are narrative.
func (s *Session) judge(q quiz.Question, raw string) bool {
	if s.mode == ModeNarrative && q.IsNarrative() {
		return quiz.CheckNarrativeAnswer(q, raw)
	}
	return quiz.CheckAnswer(q, raw)
}

// QuestionExpired handles a question-timer firing. Stale tokens (from a
// timer superseded by an answer, a penalty, or a restart) are ignored.
// A live expiry counts as a missed attempt and serves the next question.
// Returns true when the event was acted on.
func (s *Session) QuestionExpired(token int) bool {
	if s.phase != PhasePlaying || s.penalty != nil || token != s.timerToken {
		return false
	}
	s.attempts++
	s.advanceQuestion()
	return true
}

// TickSecond advances the session clock by one second. The clock is
// paused while a penalty is active. Returns true when the tick ended the
// session.
func (s *Session) TickSecond() bool {
	if s.phase != PhasePlaying {
		return false
	}
	if s.penalty != nil {
		return false
	}
	s.timeRemaining--
	if s.timeRemaining <= 0 {
		s.timeRemaining = 0
		s.endSession()
		return true
	}
	return false
}

// PenaltyDigit feeds one digit to the active penalty. Out-of-order
// digits surface a transient message and change nothing.
func (s *Session) PenaltyDigit(d byte) error {
	if s.penalty == nil {
		return nil
	}
	if err := s.penalty.Digit(d); err != nil {
		s.message = "Wrong order — follow the equation digits"
		return err
	}
	return nil
}

// PenaltyBackspace removes the last penalty digit.
func (s *Session) PenaltyBackspace() {
	if s.penalty != nil {
		s.penalty.Backspace()
	}
}

// PenaltySubmit completes the penalty and resumes play with a fresh
// question and timer. Submitting an incomplete sequence is rejected.
func (s *Session) PenaltySubmit() error {
	if s.penalty == nil {
		return nil
	}
	if !s.penalty.Complete() {
		s.message = "Finish entering the equation first"
		return ErrPenaltyIncomplete
	}
	s.penalty = nil
	s.advanceQuestion()
	return nil
}

// Restart returns to the selecting phase. Selected tables and mode are
// sticky; everything else is discarded.
func (s *Session) Restart() {
	s.phase = PhaseSelecting
	s.difficulty = Difficulty{}
	s.score = 0
	s.attempts = 0
	s.timeRemaining = 0
	s.question = nil
	s.input = ""
	s.penalty = nil
	s.message = ""
	s.timerToken++
}

// PerfectRun reports a finished run with 100% accuracy.
func (s *Session) PerfectRun() bool {
	return s.phase == PhaseGameOver && s.attempts > 0 && s.score == s.attempts
}

// advanceQuestion serves the next question and re-arms the question
// timer: input cleared, deadline reset, token bumped so exactly one
// expiry event stays live.
func (s *Session) advanceQuestion() {
	var q quiz.Question
	if s.mode == ModeNarrative {
		q = s.gen.GenerateNarrative(s.Tables(), nil)
	} else {
		q = s.gen.Generate(s.Tables())
	}
	s.question = &q
	s.input = ""
	s.timerToken++
	s.questionDeadline = time.Now().Add(s.difficulty.QuestionInterval)
}

// endSession forces the game-over phase, dropping any in-flight question
// or penalty.
func (s *Session) endSession() {
	s.phase = PhaseGameOver
	s.question = nil
	s.input = ""
	s.penalty = nil
	s.timerToken++
}
