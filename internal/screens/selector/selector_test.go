package selector

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/ychsiao/tablerush/internal/game"
	"github.com/ychsiao/tablerush/internal/router"
	"github.com/ychsiao/tablerush/internal/screens/play"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testSelector() (*SelectorScreen, *game.Session) {
	sess := game.NewSession(nil)
	return New(sess, nil, nil), sess
}

func typeString(s *SelectorScreen, text string) {
	for _, r := range text {
		s.Update(keyPress(r))
	}
}

func TestStartWithNoTablesIsRejected(t *testing.T) {
	s, sess := testSelector()

	for _, n := range sess.Tables() {
		s.Update(keyPress(rune('0' + n)))
	}

	_, cmd := s.Update(specialKey(tea.KeyEnter))
	if cmd != nil {
		t.Error("expected no transition with no tables selected")
	}
	if s.errMsg == "" {
		t.Error("expected a rejection message")
	}
	if sess.Phase() != game.PhaseSelecting {
		t.Errorf("phase = %v, want PhaseSelecting", sess.Phase())
	}
}

func TestStartHandsOverToPlay(t *testing.T) {
	s, sess := testSelector()

	_, cmd := s.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected a transition command")
	}

	msg := cmd()
	rep, ok := msg.(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("cmd produced %T, want ReplaceScreenMsg", msg)
	}
	if _, ok := rep.Screen.(*play.PlayScreen); !ok {
		t.Errorf("replacement screen is %T, want *play.PlayScreen", rep.Screen)
	}
	if sess.Phase() != game.PhasePlaying {
		t.Errorf("phase = %v, want PhasePlaying", sess.Phase())
	}
	if sess.Difficulty() != game.Easy {
		t.Errorf("difficulty = %v, want Easy (top row)", sess.Difficulty())
	}
}

func TestModeToggle(t *testing.T) {
	s, sess := testSelector()

	s.Update(keyPress('m'))
	if sess.Mode() != game.ModeNarrative {
		t.Errorf("mode = %v, want narrative", sess.Mode())
	}
	s.Update(keyPress('m'))
	if sess.Mode() != game.ModeBasic {
		t.Errorf("mode = %v, want basic", sess.Mode())
	}
}

func TestCustomDifficultyValidation(t *testing.T) {
	s, _ := testSelector()

	// Move to the custom row and open the editor.
	for i := 0; i <= customRow(); i++ {
		s.Update(keyPress('j'))
	}
	s.Update(specialKey(tea.KeyEnter))
	if !s.editing {
		t.Fatal("expected the custom editor to open")
	}

	// Interval longer than the clock is rejected in place.
	typeString(s, "10 20")
	s.Update(specialKey(tea.KeyEnter))
	if s.custom != nil {
		t.Error("invalid custom difficulty should not be stored")
	}
	if s.errMsg == "" {
		t.Error("expected a validation message")
	}
	if !s.editing {
		t.Error("editor should stay open after a rejected value")
	}
}

func TestCustomDifficultyAccepted(t *testing.T) {
	s, sess := testSelector()

	for i := 0; i <= customRow(); i++ {
		s.Update(keyPress('j'))
	}
	s.Update(specialKey(tea.KeyEnter))
	typeString(s, "45 5")
	s.Update(specialKey(tea.KeyEnter))

	if s.custom == nil {
		t.Fatal("expected a stored custom difficulty")
	}
	if s.custom.TimeLimit != 45 {
		t.Errorf("TimeLimit = %d, want 45", s.custom.TimeLimit)
	}

	_, cmd := s.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected a transition command")
	}
	if sess.Difficulty().Name != "Custom" {
		t.Errorf("difficulty = %q, want Custom", sess.Difficulty().Name)
	}
}

func TestViewListsPresets(t *testing.T) {
	s, _ := testSelector()

	view := s.View(80, 24)
	for _, name := range []string{"Easy", "Normal", "Hard", "Custom"} {
		if !strings.Contains(view, name) {
			t.Errorf("view missing %q", name)
		}
	}
}
