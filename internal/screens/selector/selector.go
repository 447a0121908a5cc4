// Package selector is the pre-game screen: difficulty, tables and mode.
package selector

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/ychsiao/tablerush/internal/game"
	"github.com/ychsiao/tablerush/internal/leaderboard"
	"github.com/ychsiao/tablerush/internal/quiz"
	"github.com/ychsiao/tablerush/internal/router"
	"github.com/ychsiao/tablerush/internal/screen"
	"github.com/ychsiao/tablerush/internal/screens/board"
	"github.com/ychsiao/tablerush/internal/screens/play"
	"github.com/ychsiao/tablerush/internal/store"
	"github.com/ychsiao/tablerush/internal/ui/components"
	"github.com/ychsiao/tablerush/internal/ui/layout"
	"github.com/ychsiao/tablerush/internal/ui/theme"
)

// SelectorScreen implements screen.Screen for game setup.
type SelectorScreen struct {
	sess   *game.Session
	boards *leaderboard.Service
	runs   store.RunRepo

	selected int // difficulty cursor, len(presets) = custom row
	grid     components.ToggleGrid
	errMsg   string

	// Custom difficulty sub-state. custom holds the last validated
	// configuration; editing routes keys into the input.
	custom      *game.Difficulty
	editing     bool
	customInput components.TextInput
}

var _ screen.Screen = (*SelectorScreen)(nil)
var _ screen.KeyHintProvider = (*SelectorScreen)(nil)

// New creates the selector over a session in the selecting phase.
func New(sess *game.Session, boards *leaderboard.Service, runs store.RunRepo) *SelectorScreen {
	return &SelectorScreen{
		sess:        sess,
		boards:      boards,
		runs:        runs,
		grid:        components.NewToggleGrid(quiz.DefaultTables),
		customInput: components.NewTextInput("seconds interval  (e.g. 90 10)", 8),
	}
}

func (s *SelectorScreen) Init() tea.Cmd {
	return nil
}

func (s *SelectorScreen) Title() string {
	return "New Game"
}

func (s *SelectorScreen) KeyHints() []layout.KeyHint {
	if s.editing {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Apply"},
			{Key: "Esc", Description: "Cancel"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Difficulty"},
		{Key: "2-9", Description: "Toggle table"},
		{Key: "M", Description: "Mode"},
		{Key: "B", Description: "Leaderboard"},
		{Key: "Enter", Description: "Start"},
	}
}

// customRow is the cursor index of the custom difficulty entry.
func customRow() int {
	return len(game.Presets())
}

func (s *SelectorScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if s.editing {
			var cmd tea.Cmd
			s.customInput, cmd = s.customInput.Update(msg)
			return s, cmd
		}
		return s, nil
	}

	if s.editing {
		return s.handleEditKey(kmsg)
	}

	presets := game.Presets()
	key := kmsg.String()
	switch key {
	case "up", "k":
		if s.selected > 0 {
			s.selected--
		}
	case "down", "j":
		if s.selected < customRow() {
			s.selected++
		}
	case "m", "M":
		if s.sess.Mode() == game.ModeBasic {
			s.sess.SetMode(game.ModeNarrative)
		} else {
			s.sess.SetMode(game.ModeBasic)
		}
	case "r", "R":
		s.sess.ResetTables()
		s.errMsg = ""
	case "b", "B":
		boards := s.boards
		difficulty := "Normal"
		if s.selected < len(presets) {
			difficulty = presets[s.selected].Name
		}
		mode := string(s.sess.Mode())
		return s, func() tea.Msg {
			return router.PushScreenMsg{Screen: board.New(boards, difficulty, mode)}
		}
	case "enter":
		if s.selected == customRow() && s.custom == nil {
			s.editing = true
			s.errMsg = ""
			return s, s.customInput.Init()
		}
		return s.start()
	case "c", "C":
		if s.selected == customRow() {
			s.editing = true
			s.errMsg = ""
			return s, s.customInput.Init()
		}
	default:
		if len(key) == 1 && key[0] >= '2' && key[0] <= '9' {
			s.sess.ToggleTable(int(key[0] - '0'))
			s.errMsg = ""
		}
	}

	return s, nil
}

// handleEditKey runs the custom difficulty editor: two numbers, total
// seconds then per-question seconds.
func (s *SelectorScreen) handleEditKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "esc":
		s.editing = false
		return s, nil
	case "enter":
		d, err := parseCustom(s.customInput.Value())
		if err != nil {
			s.errMsg = err.Error()
			return s, nil
		}
		s.custom = &d
		s.editing = false
		s.errMsg = ""
		return s, nil
	}

	var cmd tea.Cmd
	s.customInput, cmd = s.customInput.Update(msg)
	return s, cmd
}

// parseCustom reads "limit interval" in whole seconds and validates it.
func parseCustom(raw string) (game.Difficulty, error) {
	var limit, interval int
	if n, err := fmt.Sscanf(strings.TrimSpace(raw), "%d %d", &limit, &interval); err != nil || n != 2 {
		return game.Difficulty{}, fmt.Errorf("enter two numbers: total seconds and seconds per question")
	}
	return game.NewCustomDifficulty(limit, time.Duration(interval)*time.Second)
}

// start kicks the session into the playing phase and hands over to the
// play screen.
func (s *SelectorScreen) start() (screen.Screen, tea.Cmd) {
	d := s.currentDifficulty()
	if err := s.sess.SelectDifficulty(d); err != nil {
		s.errMsg = s.sess.Message()
		return s, nil
	}
	sess, boards, runs := s.sess, s.boards, s.runs
	setup := func() screen.Screen { return New(sess, boards, runs) }
	return s, func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: play.New(sess, boards, runs, setup)}
	}
}

func (s *SelectorScreen) currentDifficulty() game.Difficulty {
	presets := game.Presets()
	if s.selected < len(presets) {
		return presets[s.selected]
	}
	if s.custom != nil {
		return *s.custom
	}
	return game.Normal
}

func (s *SelectorScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(theme.Title.Width(width).Render("Ready to rush the tables?"))
	b.WriteString("\n\n")

	presets := game.Presets()
	for i, d := range presets {
		label := fmt.Sprintf("%-8s %3ds on the clock, %2.0fs per question",
			d.Name, d.TimeLimit, d.QuestionInterval.Seconds())
		b.WriteString(s.renderRow(label, i == s.selected))
		b.WriteString("\n")
	}

	customLabel := "Custom   press enter to configure"
	if s.custom != nil {
		customLabel = fmt.Sprintf("%-8s %3ds on the clock, %2.0fs per question  (c to change)",
			s.custom.Name, s.custom.TimeLimit, s.custom.QuestionInterval.Seconds())
	}
	b.WriteString(s.renderRow(customLabel, s.selected == customRow()))
	b.WriteString("\n")

	if s.editing {
		b.WriteString("\n")
		b.WriteString(theme.Body.Render("  Custom: total seconds, then seconds per question: "))
		b.WriteString(s.customInput.View())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(theme.Body.Render("  Tables: "))
	b.WriteString(s.grid.View(s.sess.TableEnabled))
	b.WriteString("\n\n")

	modeLabel := "Plain questions (3 × 5 = ?)"
	if s.sess.Mode() == game.ModeNarrative {
		modeLabel = "Word problems (type the whole equation)"
	}
	b.WriteString(theme.Body.Render("  Mode:   " + modeLabel))
	b.WriteString("\n")

	if s.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(theme.Incorrect.Render("  " + s.errMsg))
		b.WriteString("\n")
	}

	return lipgloss.NewStyle().Width(width).Render(b.String())
}

func (s *SelectorScreen) renderRow(label string, selected bool) string {
	if selected {
		return theme.Selected.Render("  ▸ " + label)
	}
	return theme.Unselected.Render("    " + label)
}
