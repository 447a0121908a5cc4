// Package play is the active quiz screen, including the penalty
// sub-flow.
package play

import (
	"context"

	tea "charm.land/bubbletea/v2"

	"github.com/ychsiao/tablerush/internal/game"
	"github.com/ychsiao/tablerush/internal/leaderboard"
	"github.com/ychsiao/tablerush/internal/router"
	"github.com/ychsiao/tablerush/internal/screen"
	"github.com/ychsiao/tablerush/internal/screens/gameover"
	"github.com/ychsiao/tablerush/internal/store"
	"github.com/ychsiao/tablerush/internal/ui/components"
	"github.com/ychsiao/tablerush/internal/ui/layout"
)

// PlayScreen implements screen.Screen for a running session.
type PlayScreen struct {
	sess    *game.Session
	boards  *leaderboard.Service
	runs    store.RunRepo
	restart func() screen.Screen

	display components.DigitDisplay
	notice  string
}

var _ screen.Screen = (*PlayScreen)(nil)
var _ screen.KeyHintProvider = (*PlayScreen)(nil)

// New creates the play screen over a session already in the playing
// phase. restart builds a fresh setup screen for the abandon path.
func New(sess *game.Session, boards *leaderboard.Service, runs store.RunRepo, restart func() screen.Screen) *PlayScreen {
	return &PlayScreen{
		sess:    sess,
		boards:  boards,
		runs:    runs,
		restart: restart,
		display: components.NewDigitDisplay(2),
	}
}

func (p *PlayScreen) Init() tea.Cmd {
	return tea.Batch(tickCmd(), p.armQuestionTimer())
}

func (p *PlayScreen) Title() string {
	return p.sess.Difficulty().Name + " Run"
}

func (p *PlayScreen) KeyHints() []layout.KeyHint {
	if p.sess.Penalty() != nil {
		return []layout.KeyHint{
			{Key: "0-9", Description: "Copy the equation"},
			{Key: "Enter", Description: "Resume"},
		}
	}
	return []layout.KeyHint{
		{Key: "0-9", Description: "Answer"},
		{Key: "Enter", Description: "Submit"},
		{Key: "Esc", Description: "Abandon"},
	}
}

func (p *PlayScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case sessionTickMsg:
		return p.handleTick()

	case questionTimerMsg:
		if p.sess.QuestionExpired(msg.Token) {
			return p, p.armQuestionTimer()
		}
		return p, nil

	case tea.KeyMsg:
		return p.handleKey(msg)
	}

	return p, nil
}

func (p *PlayScreen) handleTick() (screen.Screen, tea.Cmd) {
	if p.sess.TickSecond() {
		return p, p.finishRun()
	}
	if p.sess.Phase() == game.PhasePlaying {
		return p, tickCmd()
	}
	return p, nil
}

func (p *PlayScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if key == "esc" {
		p.sess.Restart()
		restart := p.restart
		return p, func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: restart()}
		}
	}

	if p.sess.Penalty() != nil {
		return p.handlePenaltyKey(key)
	}

	switch key {
	case "backspace":
		p.sess.Backspace()
	case "enter":
		res := p.sess.SubmitAnswer()
		if res.Submitted && res.Correct {
			p.notice = ""
			return p, p.armQuestionTimer()
		}
		// A wrong answer just opened the penalty; the pending timer
		// token went stale with it.
	default:
		if len(key) == 1 && key[0] >= '0' && key[0] <= '9' {
			p.sess.AppendDigit(key[0])
		}
	}

	return p, nil
}

func (p *PlayScreen) handlePenaltyKey(key string) (screen.Screen, tea.Cmd) {
	switch key {
	case "backspace":
		p.sess.PenaltyBackspace()
		p.notice = ""
	case "enter":
		if err := p.sess.PenaltySubmit(); err != nil {
			p.notice = p.sess.Message()
			return p, nil
		}
		p.notice = ""
		return p, p.armQuestionTimer()
	default:
		if len(key) == 1 && key[0] >= '0' && key[0] <= '9' {
			if err := p.sess.PenaltyDigit(key[0]); err != nil {
				p.notice = p.sess.Message()
			} else {
				p.notice = ""
			}
		}
	}
	return p, nil
}

// armQuestionTimer schedules the advance timer for the current question.
func (p *PlayScreen) armQuestionTimer() tea.Cmd {
	return questionTimerCmd(p.sess.TimerToken(), p.sess.Difficulty().QuestionInterval)
}

// finishRun persists the run and swaps to the game-over screen. The
// save happens off the UI path and its error is dropped: run history is
// auxiliary, and the leaderboard path has its own error surfacing.
func (p *PlayScreen) finishRun() tea.Cmd {
	result := gameover.Result{
		Score:      p.sess.Score(),
		Attempts:   p.sess.Attempts(),
		TimeUsed:   p.sess.TimeUsed(),
		Difficulty: p.sess.Difficulty().Name,
		Mode:       string(p.sess.Mode()),
		Tables:     p.sess.Tables(),
		Perfect:    p.sess.PerfectRun(),
	}

	runs := p.runs
	saveCmd := func() tea.Msg {
		row := store.RunRow{
			Difficulty: result.Difficulty,
			Mode:       result.Mode,
			Tables:     result.Tables,
			Score:      result.Score,
			Attempts:   result.Attempts,
			TimeUsed:   result.TimeUsed,
			Perfect:    result.Perfect,
		}
		return runSavedMsg{Err: runs.Append(context.Background(), &row)}
	}

	sess, boards, restart := p.sess, p.boards, p.restart
	replaceCmd := func() tea.Msg {
		return router.ReplaceScreenMsg{
			Screen: gameover.New(result, sess, boards, restart),
		}
	}

	return tea.Batch(saveCmd, replaceCmd)
}
