package game

import (
	"errors"
	"math/rand/v2"
	"strconv"
	"testing"

	"github.com/ychsiao/tablerush/internal/quiz"
)

func newTestSession(t *testing.T) *Session {
	t.Helper()
	return NewSession(quiz.NewGenerator(rand.New(rand.NewPCG(1, 2))))
}

func startPlaying(t *testing.T, s *Session) {
	t.Helper()
	if err := s.SelectDifficulty(Normal); err != nil {
		t.Fatalf("SelectDifficulty: %v", err)
	}
	if s.Phase() != PhasePlaying {
		t.Fatalf("phase = %v after start, want PhasePlaying", s.Phase())
	}
	if s.Question() == nil {
		t.Fatal("no question served at start")
	}
}

func typeAnswer(t *testing.T, s *Session, answer string) {
	t.Helper()
	for i := 0; i < len(answer); i++ {
		s.AppendDigit(answer[i])
	}
	if s.Input() != answer {
		t.Fatalf("Input = %q after typing, want %q", s.Input(), answer)
	}
}

func TestNewSession_Defaults(t *testing.T) {
	s := newTestSession(t)
	if s.Phase() != PhaseSelecting {
		t.Errorf("phase = %v, want PhaseSelecting", s.Phase())
	}
	if s.Mode() != ModeBasic {
		t.Errorf("mode = %v, want ModeBasic", s.Mode())
	}
	if got := s.Tables(); len(got) != len(quiz.DefaultTables) {
		t.Errorf("Tables() = %v, want all of %v", got, quiz.DefaultTables)
	}
}

func TestSession_StartWithNoTablesRejected(t *testing.T) {
	s := newTestSession(t)
	for _, n := range quiz.DefaultTables {
		s.ToggleTable(n)
	}
	if got := s.Tables(); len(got) != 0 {
		t.Fatalf("Tables() = %v after disabling all, want empty", got)
	}

	err := s.SelectDifficulty(Easy)
	if !errors.Is(err, ErrNoTablesSelected) {
		t.Fatalf("error = %v, want ErrNoTablesSelected", err)
	}
	if s.Phase() != PhaseSelecting {
		t.Errorf("phase = %v after rejected start, want PhaseSelecting", s.Phase())
	}
	if s.Question() != nil {
		t.Error("question served despite rejected start")
	}
}

func TestSession_ToggleTableIgnoredWhilePlaying(t *testing.T) {
	s := newTestSession(t)
	startPlaying(t, s)

	before := s.Tables()
	s.ToggleTable(3)
	after := s.Tables()
	if len(before) != len(after) {
		t.Errorf("Tables changed during play: %v -> %v", before, after)
	}
}

func TestSession_CorrectAnswerScoresAndAdvances(t *testing.T) {
	s := newTestSession(t)
	startPlaying(t, s)

	q := *s.Question()
	tokenBefore := s.TimerToken()
	typeAnswer(t, s, strconv.Itoa(q.Answer))

	res := s.SubmitAnswer()
	if !res.Submitted || !res.Correct {
		t.Fatalf("SubmitAnswer = %+v, want submitted correct", res)
	}
	if s.Score() != 1 || s.Attempts() != 1 {
		t.Errorf("score/attempts = %d/%d, want 1/1", s.Score(), s.Attempts())
	}
	if s.Input() != "" {
		t.Errorf("input not cleared after submit: %q", s.Input())
	}
	if s.Question() == nil {
		t.Error("no next question after correct answer")
	}
	if s.TimerToken() == tokenBefore {
		t.Error("timer token not bumped on advance")
	}
}

func TestSession_EmptySubmitIsNoOp(t *testing.T) {
	s := newTestSession(t)
	startPlaying(t, s)

	res := s.SubmitAnswer()
	if res.Submitted {
		t.Errorf("SubmitAnswer on empty input = %+v, want no-op", res)
	}
	if s.Attempts() != 0 {
		t.Errorf("attempts = %d after no-op submit, want 0", s.Attempts())
	}
}

func TestSession_WrongAnswerStartsPenalty(t *testing.T) {
	s := newTestSession(t)
	startPlaying(t, s)

	q := *s.Question()
	typeAnswer(t, s, strconv.Itoa(q.Answer+1))

	res := s.SubmitAnswer()
	if !res.Submitted || res.Correct {
		t.Fatalf("SubmitAnswer = %+v, want submitted incorrect", res)
	}
	if s.Score() != 0 || s.Attempts() != 1 {
		t.Errorf("score/attempts = %d/%d, want 0/1", s.Score(), s.Attempts())
	}

	p := s.Penalty()
	if p == nil {
		t.Fatal("no penalty after wrong answer")
	}
	if p.Expected != q.DigitSequence() {
		t.Errorf("penalty Expected = %q, want %q", p.Expected, q.DigitSequence())
	}
}

func TestSession_ClockPausedDuringPenalty(t *testing.T) {
	s := newTestSession(t)
	startPlaying(t, s)

	typeAnswer(t, s, "0")
	s.SubmitAnswer()
	if s.Penalty() == nil {
		t.Fatal("expected active penalty")
	}

	remaining := s.TimeRemaining()
	for i := 0; i < 5; i++ {
		if s.TickSecond() {
			t.Fatal("TickSecond ended session during penalty")
		}
	}
	if s.TimeRemaining() != remaining {
		t.Errorf("clock moved during penalty: %d -> %d", remaining, s.TimeRemaining())
	}
}

func TestSession_PenaltyFlow(t *testing.T) {
	s := newTestSession(t)
	startPlaying(t, s)

	q := *s.Question()
	typeAnswer(t, s, "0")
	s.SubmitAnswer()
	p := s.Penalty()
	if p == nil {
		t.Fatal("expected active penalty")
	}

	// Incomplete submit is rejected.
	if err := s.PenaltySubmit(); !errors.Is(err, ErrPenaltyIncomplete) {
		t.Fatalf("PenaltySubmit on empty = %v, want ErrPenaltyIncomplete", err)
	}

	seq := q.DigitSequence()
	for i := 0; i < len(seq); i++ {
		if err := s.PenaltyDigit(seq[i]); err != nil {
			t.Fatalf("PenaltyDigit(%q): %v", string(seq[i]), err)
		}
	}
	if err := s.PenaltySubmit(); err != nil {
		t.Fatalf("PenaltySubmit after full sequence: %v", err)
	}
	if s.Penalty() != nil {
		t.Error("penalty still active after completion")
	}
	if s.Question() == nil {
		t.Error("no fresh question after penalty completion")
	}
}

func TestSession_PenaltyRejectsWrongDigit(t *testing.T) {
	s := newTestSession(t)
	startPlaying(t, s)

	typeAnswer(t, s, "0")
	s.SubmitAnswer()
	p := s.Penalty()
	if p == nil {
		t.Fatal("expected active penalty")
	}

	// Feed a digit guaranteed not to match position 0: factors are 2..9,
	// so '0' never starts the sequence.
	if err := s.PenaltyDigit('0'); !errors.Is(err, ErrWrongDigit) {
		t.Fatalf("PenaltyDigit('0') = %v, want ErrWrongDigit", err)
	}
	if p.Entered != "" {
		t.Errorf("Entered = %q after rejected digit, want empty", p.Entered)
	}
	if s.Message() == "" {
		t.Error("no transient message after rejected digit")
	}
}

func TestSession_QuestionExpiry(t *testing.T) {
	s := newTestSession(t)
	startPlaying(t, s)

	live := s.TimerToken()

	// Stale token is ignored.
	if s.QuestionExpired(live - 1) {
		t.Error("stale expiry was acted on")
	}
	if s.Attempts() != 0 {
		t.Fatalf("attempts = %d after stale expiry, want 0", s.Attempts())
	}

	// Live token counts a missed attempt and advances.
	if !s.QuestionExpired(live) {
		t.Fatal("live expiry ignored")
	}
	if s.Attempts() != 1 || s.Score() != 0 {
		t.Errorf("score/attempts = %d/%d after miss, want 0/1", s.Score(), s.Attempts())
	}
	if s.TimerToken() == live {
		t.Error("timer token not bumped after expiry")
	}

	// The old token stays dead forever.
	if s.QuestionExpired(live) {
		t.Error("superseded token fired twice")
	}
}

func TestSession_ExpiryIgnoredDuringPenalty(t *testing.T) {
	s := newTestSession(t)
	startPlaying(t, s)

	typeAnswer(t, s, "0")
	s.SubmitAnswer()
	if s.Penalty() == nil {
		t.Fatal("expected active penalty")
	}

	if s.QuestionExpired(s.TimerToken()) {
		t.Error("expiry acted on during penalty")
	}
	if s.Attempts() != 1 {
		t.Errorf("attempts = %d, want 1 (the wrong answer only)", s.Attempts())
	}
}

func TestSession_ClockRunsOutEndsGame(t *testing.T) {
	s := newTestSession(t)
	startPlaying(t, s)

	ended := false
	for i := 0; i < Normal.TimeLimit; i++ {
		ended = s.TickSecond()
	}
	if !ended {
		t.Fatal("session did not end after time limit ticks")
	}
	if s.Phase() != PhaseGameOver {
		t.Errorf("phase = %v, want PhaseGameOver", s.Phase())
	}
	if s.TimeRemaining() != 0 {
		t.Errorf("TimeRemaining = %d at game over, want 0", s.TimeRemaining())
	}
	if s.Question() != nil || s.Penalty() != nil {
		t.Error("question or penalty survived game over")
	}
	if s.TimeUsed() != Normal.TimeLimit {
		t.Errorf("TimeUsed = %d, want %d", s.TimeUsed(), Normal.TimeLimit)
	}
}

func TestSession_InputIgnoredAfterGameOver(t *testing.T) {
	s := newTestSession(t)
	startPlaying(t, s)
	for i := 0; i < Normal.TimeLimit; i++ {
		s.TickSecond()
	}

	s.AppendDigit('5')
	if s.Input() != "" {
		t.Errorf("input accepted after game over: %q", s.Input())
	}
	if res := s.SubmitAnswer(); res.Submitted {
		t.Error("submit accepted after game over")
	}
	if s.TickSecond() {
		t.Error("TickSecond acted after game over")
	}
}

func TestSession_RestartPreservesTablesAndMode(t *testing.T) {
	s := newTestSession(t)
	s.ToggleTable(2)
	s.ToggleTable(5)
	s.SetMode(ModeNarrative)
	wantTables := s.Tables()

	startPlaying(t, s)
	for i := 0; i < Normal.TimeLimit; i++ {
		s.TickSecond()
	}
	s.Restart()

	if s.Phase() != PhaseSelecting {
		t.Errorf("phase = %v after restart, want PhaseSelecting", s.Phase())
	}
	if s.Mode() != ModeNarrative {
		t.Errorf("mode = %v after restart, want ModeNarrative", s.Mode())
	}
	got := s.Tables()
	if len(got) != len(wantTables) {
		t.Fatalf("Tables() = %v after restart, want %v", got, wantTables)
	}
	for i := range got {
		if got[i] != wantTables[i] {
			t.Fatalf("Tables() = %v after restart, want %v", got, wantTables)
		}
	}
	if s.Score() != 0 || s.Attempts() != 0 {
		t.Errorf("score/attempts = %d/%d after restart, want 0/0", s.Score(), s.Attempts())
	}
}

func TestSession_PerfectRun(t *testing.T) {
	s := newTestSession(t)
	startPlaying(t, s)

	for i := 0; i < 3; i++ {
		typeAnswer(t, s, strconv.Itoa(s.Question().Answer))
		if res := s.SubmitAnswer(); !res.Correct {
			t.Fatalf("answer %d judged wrong", i)
		}
	}
	if s.PerfectRun() {
		t.Error("PerfectRun true before game over")
	}

	for i := 0; i < Normal.TimeLimit; i++ {
		s.TickSecond()
	}
	if !s.PerfectRun() {
		t.Error("PerfectRun false for 3/3 finished run")
	}
}

func TestSession_NarrativeModeServesNarrativeQuestions(t *testing.T) {
	s := newTestSession(t)
	s.SetMode(ModeNarrative)
	startPlaying(t, s)

	q := s.Question()
	if !q.IsNarrative() {
		t.Fatal("narrative mode served a bare question")
	}

	// The equation form scores in narrative mode.
	typeAnswer(t, s, q.DigitSequence())
	if res := s.SubmitAnswer(); !res.Correct {
		t.Errorf("equation form %q judged wrong for %s", q.DigitSequence(), q.Equation())
	}
}

func TestSession_SetModeIgnoredWhilePlaying(t *testing.T) {
	s := newTestSession(t)
	startPlaying(t, s)
	s.SetMode(ModeNarrative)
	if s.Mode() != ModeBasic {
		t.Errorf("mode changed during play: %v", s.Mode())
	}
}
