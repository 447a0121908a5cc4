package play

import (
	"math/rand/v2"
	"strconv"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/ychsiao/tablerush/internal/game"
	"github.com/ychsiao/tablerush/internal/quiz"
	"github.com/ychsiao/tablerush/internal/router"
	"github.com/ychsiao/tablerush/internal/screen"
)

// stubScreen stands in for the setup screen on the abandon path.
type stubScreen struct{}

func (s *stubScreen) Init() tea.Cmd                           { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return "setup" }
func (s *stubScreen) Title() string                           { return "New Game" }

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testPlayScreen(t *testing.T) (*PlayScreen, *game.Session, *int) {
	t.Helper()

	gen := quiz.NewGenerator(rand.New(rand.NewPCG(7, 11)))
	sess := game.NewSession(gen)
	if err := sess.SelectDifficulty(game.Easy); err != nil {
		t.Fatalf("SelectDifficulty: %v", err)
	}

	restartCalls := 0
	restart := func() screen.Screen {
		restartCalls++
		return &stubScreen{}
	}

	return New(sess, nil, nil, restart), sess, &restartCalls
}

func typeDigits(p *PlayScreen, digits string) screen.Screen {
	var scr screen.Screen = p
	for _, r := range digits {
		scr, _ = scr.Update(keyPress(r))
	}
	return scr
}

func TestDigitsFlowIntoSession(t *testing.T) {
	p, sess, _ := testPlayScreen(t)

	typeDigits(p, "42")
	if sess.Input() != "42" {
		t.Errorf("input = %q, want %q", sess.Input(), "42")
	}

	p.Update(specialKey(tea.KeyBackspace))
	if sess.Input() != "4" {
		t.Errorf("input after backspace = %q, want %q", sess.Input(), "4")
	}
}

func TestCorrectAnswerScoresAndRearms(t *testing.T) {
	p, sess, _ := testPlayScreen(t)

	typeDigits(p, strconv.Itoa(sess.Question().Answer))
	_, cmd := p.Update(specialKey(tea.KeyEnter))

	if sess.Score() != 1 || sess.Attempts() != 1 {
		t.Errorf("score/attempts = %d/%d, want 1/1", sess.Score(), sess.Attempts())
	}
	if cmd == nil {
		t.Error("expected a re-arm command after a correct answer")
	}
}

func TestWrongAnswerOpensPenalty(t *testing.T) {
	p, sess, _ := testPlayScreen(t)

	wrong := strconv.Itoa(sess.Question().Answer + 1)
	typeDigits(p, wrong)
	p.Update(specialKey(tea.KeyEnter))

	pen := sess.Penalty()
	if pen == nil {
		t.Fatal("expected an active penalty after a wrong answer")
	}

	// An out-of-order digit surfaces a notice and changes nothing.
	bad := byte('9')
	if pen.Expected[0] == '9' {
		bad = '8'
	}
	p.Update(keyPress(rune(bad)))
	if p.notice == "" {
		t.Error("expected a wrong-order notice")
	}
	if len(pen.Entered) != 0 {
		t.Errorf("entered = %q after rejected digit, want empty", pen.Entered)
	}

	// Copying the full sequence and confirming resumes play.
	for i := 0; i < len(pen.Expected); i++ {
		p.Update(keyPress(rune(pen.Expected[i])))
	}
	_, cmd := p.Update(specialKey(tea.KeyEnter))
	if sess.Penalty() != nil {
		t.Error("penalty should be cleared after full re-entry")
	}
	if cmd == nil {
		t.Error("expected a re-arm command after penalty completion")
	}
	if sess.Score() != 0 {
		t.Errorf("score = %d after penalty, want 0", sess.Score())
	}
}

func TestQuestionTimerTokens(t *testing.T) {
	p, sess, _ := testPlayScreen(t)

	live := sess.TimerToken()

	// A stale token is discarded.
	p.Update(questionTimerMsg{Token: live - 1})
	if sess.Attempts() != 0 {
		t.Errorf("attempts = %d after stale expiry, want 0", sess.Attempts())
	}

	// The live token counts a miss and re-arms.
	_, cmd := p.Update(questionTimerMsg{Token: live})
	if sess.Attempts() != 1 {
		t.Errorf("attempts = %d after live expiry, want 1", sess.Attempts())
	}
	if cmd == nil {
		t.Error("expected a re-arm command after a live expiry")
	}
	if sess.TimerToken() == live {
		t.Error("expected a fresh token after advancing")
	}
}

func TestClockRunsOut(t *testing.T) {
	p, sess, _ := testPlayScreen(t)

	var cmd tea.Cmd
	for i := 0; i < game.Easy.TimeLimit; i++ {
		_, cmd = p.Update(sessionTickMsg{})
	}

	if sess.Phase() != game.PhaseGameOver {
		t.Errorf("phase = %v, want PhaseGameOver", sess.Phase())
	}
	if cmd == nil {
		t.Error("expected a finish command on the final tick")
	}
}

func TestEscAbandonsToSetup(t *testing.T) {
	p, sess, restartCalls := testPlayScreen(t)

	_, cmd := p.Update(specialKey(tea.KeyEscape))
	if cmd == nil {
		t.Fatal("expected a replace command on esc")
	}

	msg := cmd()
	rep, ok := msg.(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("cmd produced %T, want ReplaceScreenMsg", msg)
	}
	if _, ok := rep.Screen.(*stubScreen); !ok {
		t.Errorf("replacement screen is %T, want the setup screen", rep.Screen)
	}
	if *restartCalls != 1 {
		t.Errorf("restart factory called %d times, want 1", *restartCalls)
	}
	if sess.Phase() != game.PhaseSelecting {
		t.Errorf("phase = %v after abandon, want PhaseSelecting", sess.Phase())
	}
}
