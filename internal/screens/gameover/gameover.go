// Package gameover shows the run result and, for perfect runs that
// make the board, the leaderboard submit prompt.
package gameover

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/ychsiao/tablerush/internal/game"
	"github.com/ychsiao/tablerush/internal/leaderboard"
	"github.com/ychsiao/tablerush/internal/router"
	"github.com/ychsiao/tablerush/internal/screen"
	"github.com/ychsiao/tablerush/internal/screens/board"
	"github.com/ychsiao/tablerush/internal/ui/components"
	"github.com/ychsiao/tablerush/internal/ui/layout"
	"github.com/ychsiao/tablerush/internal/ui/theme"
)

// Result is the finished run as handed over by the play screen.
type Result struct {
	Score      int
	Attempts   int
	TimeUsed   int
	Difficulty string
	Mode       string
	Tables     []int
	Perfect    bool
}

// eligibleMsg reports the board eligibility check.
type eligibleMsg struct {
	Eligible bool
	Rank     int
	Err      error
}

// submittedMsg reports the submit outcome.
type submittedMsg struct {
	ID  string
	Err error
}

// GameOverScreen implements screen.Screen for the post-run summary.
type GameOverScreen struct {
	result  Result
	sess    *game.Session
	boards  *leaderboard.Service
	restart func() screen.Screen

	nameInput components.TextInput
	asking    bool // name prompt visible
	rank      int
	noticeOK  string
	noticeErr string
}

var _ screen.Screen = (*GameOverScreen)(nil)
var _ screen.KeyHintProvider = (*GameOverScreen)(nil)

// New creates the game-over screen for a finished run.
func New(result Result, sess *game.Session, boards *leaderboard.Service, restart func() screen.Screen) *GameOverScreen {
	return &GameOverScreen{
		result:    result,
		sess:      sess,
		boards:    boards,
		restart:   restart,
		nameInput: components.NewTextInput("Your name", leaderboard.MaxNameLen),
	}
}

func (g *GameOverScreen) Init() tea.Cmd {
	if !g.result.Perfect {
		return nil
	}
	return g.checkEligibility()
}

func (g *GameOverScreen) Title() string {
	return "Game Over"
}

func (g *GameOverScreen) KeyHints() []layout.KeyHint {
	if g.asking {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Submit"},
			{Key: "Esc", Description: "Skip"},
		}
	}
	return []layout.KeyHint{
		{Key: "P", Description: "Play again"},
		{Key: "B", Description: "Leaderboard"},
		{Key: "Q", Description: "Quit"},
	}
}

func (g *GameOverScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case eligibleMsg:
		if msg.Err != nil {
			g.noticeErr = "Leaderboard unavailable: " + msg.Err.Error()
			return g, nil
		}
		if msg.Eligible {
			g.asking = true
			g.rank = msg.Rank
			return g, g.nameInput.Init()
		}
		return g, nil

	case submittedMsg:
		if msg.Err != nil {
			g.noticeErr = "Submit failed: " + msg.Err.Error()
			g.asking = true // allow retry
			return g, nil
		}
		g.asking = false
		g.noticeErr = ""
		g.noticeOK = fmt.Sprintf("On the board at #%d!", g.rank)
		return g, nil

	case tea.KeyMsg:
		return g.handleKey(msg)
	}

	if g.asking {
		var cmd tea.Cmd
		g.nameInput, cmd = g.nameInput.Update(msg)
		return g, cmd
	}

	return g, nil
}

func (g *GameOverScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if g.asking {
		switch key {
		case "enter":
			return g, g.submit()
		case "esc":
			g.asking = false
			return g, nil
		}
		var cmd tea.Cmd
		g.nameInput, cmd = g.nameInput.Update(msg)
		return g, cmd
	}

	switch key {
	case "p", "P", "enter":
		g.sess.Restart()
		restart := g.restart
		return g, func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: restart()}
		}
	case "b", "B":
		boards := g.boards
		difficulty, mode := g.result.Difficulty, g.result.Mode
		return g, func() tea.Msg {
			return router.PushScreenMsg{Screen: board.New(boards, difficulty, mode)}
		}
	case "q", "Q":
		return g, tea.Quit
	}

	return g, nil
}

// checkEligibility asks the gateway whether this run makes the board.
// Failure is a notice, never fatal.
func (g *GameOverScreen) checkEligibility() tea.Cmd {
	boards, r := g.boards, g.result
	return func() tea.Msg {
		ctx := context.Background()
		ok, err := boards.IsTop(ctx, r.Difficulty, r.Mode, r.Score, r.TimeUsed)
		if err != nil {
			return eligibleMsg{Err: err}
		}
		if !ok {
			return eligibleMsg{Eligible: false}
		}
		rank, err := boards.Rank(ctx, r.Difficulty, r.Mode, r.Score, r.TimeUsed)
		if err != nil {
			return eligibleMsg{Err: err}
		}
		return eligibleMsg{Eligible: true, Rank: rank}
	}
}

func (g *GameOverScreen) submit() tea.Cmd {
	name := g.nameInput.Value()
	if n := len([]rune(strings.TrimSpace(name))); n < leaderboard.MinNameLen {
		g.noticeErr = fmt.Sprintf("Name needs at least %d characters", leaderboard.MinNameLen)
		return nil
	}

	boards, r := g.boards, g.result
	return func() tea.Msg {
		id, err := boards.Submit(context.Background(), leaderboard.Submission{
			Name:       name,
			Score:      r.Score,
			TimeUsed:   r.TimeUsed,
			Difficulty: r.Difficulty,
			Mode:       r.Mode,
			Tables:     r.Tables,
		})
		return submittedMsg{ID: id, Err: err}
	}
}

func (g *GameOverScreen) View(width, height int) string {
	var b strings.Builder

	headline := "Time's up!"
	if g.result.Perfect {
		headline = "Perfect run!"
	}
	b.WriteString(theme.Title.Width(width).Render(headline))
	b.WriteString("\n\n")

	accuracy := 0
	if g.result.Attempts > 0 {
		accuracy = g.result.Score * 100 / g.result.Attempts
	}
	stats := fmt.Sprintf("%d correct of %d  ·  %d%% accuracy  ·  %ds on %s",
		g.result.Score, g.result.Attempts, accuracy,
		g.result.TimeUsed, g.result.Difficulty)
	b.WriteString(theme.Subtitle.Width(width).Render(stats))
	b.WriteString("\n\n")

	if g.asking {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Success).
			Bold(true).
			Render(fmt.Sprintf("You made the top %d! Enter your name:", leaderboard.BoardSize)))
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Render(g.nameInput.View()))
		b.WriteString("\n")
	}

	if g.noticeOK != "" {
		b.WriteString("\n")
		b.WriteString(theme.Correct.Width(width).Align(lipgloss.Center).Render(g.noticeOK))
		b.WriteString("\n")
	}
	if g.noticeErr != "" {
		b.WriteString("\n")
		b.WriteString(theme.Incorrect.Width(width).Align(lipgloss.Center).Render(g.noticeErr))
		b.WriteString("\n")
	}

	return b.String()
}
