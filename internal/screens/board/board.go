// Package board renders the top-10 leaderboard and name search.
package board

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
	"github.com/ychsiao/tablerush/internal/ui/components"
	"github.com/ychsiao/tablerush/internal/ui/layout"
	"github.com/ychsiao/tablerush/internal/ui/theme"
)

// entriesMsg delivers a finished board or search query.
type entriesMsg struct {
	Entries []leaderboard.Entry
	Search  bool
	Err     error
}

// BoardScreen implements screen.Screen for the leaderboard.
type BoardScreen struct {
	boards     *leaderboard.Service
	difficulty string
	mode       string

	entries   []leaderboard.Entry
	loading   bool
	searching bool // search input active
	searched  bool // showing search results
	search    components.TextInput
	errMsg    string
}

var _ screen.Screen = (*BoardScreen)(nil)
var _ screen.KeyHintProvider = (*BoardScreen)(nil)

// New creates the board screen focused on one (difficulty, mode) bucket.
func New(boards *leaderboard.Service, difficulty, mode string) *BoardScreen {
	return &BoardScreen{
		boards:     boards,
		difficulty: difficulty,
		mode:       mode,
		loading:    true,
		search:     components.NewTextInput("Search name", leaderboard.MaxNameLen),
	}
}

func (b *BoardScreen) Init() tea.Cmd {
	return b.loadTop()
}

func (b *BoardScreen) Title() string {
	return "Leaderboard"
}

func (b *BoardScreen) KeyHints() []layout.KeyHint {
	if b.searching {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Search"},
			{Key: "Esc", Description: "Cancel"},
		}
	}
	return []layout.KeyHint{
		{Key: "D", Description: "Difficulty"},
		{Key: "M", Description: "Mode"},
		{Key: "/", Description: "Search"},
		{Key: "Esc", Description: "Back"},
	}
}

func (b *BoardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case entriesMsg:
		b.loading = false
		if msg.Err != nil {
			b.errMsg = "Leaderboard unavailable: " + msg.Err.Error()
			return b, nil
		}
		b.errMsg = ""
		b.entries = msg.Entries
		b.searched = msg.Search
		return b, nil

	case tea.KeyMsg:
		return b.handleKey(msg)
	}

	if b.searching {
		var cmd tea.Cmd
		b.search, cmd = b.search.Update(msg)
		return b, cmd
	}

	return b, nil
}

func (b *BoardScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if b.searching {
		switch key {
		case "enter":
			b.searching = false
			b.loading = true
			return b, b.runSearch(b.search.Value())
		case "esc":
			b.searching = false
			return b, nil
		}
		var cmd tea.Cmd
		b.search, cmd = b.search.Update(msg)
		return b, cmd
	}

	switch key {
	case "esc":
		return b, func() tea.Msg { return router.PopScreenMsg{} }
	case "/":
		b.searching = true
		return b, b.search.Init()
	case "d", "D":
		b.difficulty = nextDifficulty(b.difficulty)
		b.loading = true
		return b, b.loadTop()
	case "m", "M":
		if b.mode == string(game.ModeBasic) {
			b.mode = string(game.ModeNarrative)
		} else {
			b.mode = string(game.ModeBasic)
		}
		b.loading = true
		return b, b.loadTop()
	}

	return b, nil
}

func (b *BoardScreen) loadTop() tea.Cmd {
	boards, difficulty, mode := b.boards, b.difficulty, b.mode
	return func() tea.Msg {
		entries, err := boards.Top(context.Background(), difficulty, mode)
		return entriesMsg{Entries: entries, Err: err}
	}
}

func (b *BoardScreen) runSearch(query string) tea.Cmd {
	boards, difficulty, mode := b.boards, b.difficulty, b.mode
	return func() tea.Msg {
		entries, err := boards.SearchByName(context.Background(), query, difficulty, mode)
		return entriesMsg{Entries: entries, Search: true, Err: err}
	}
}

func (b *BoardScreen) View(width, height int) string {
	var s strings.Builder

	heading := fmt.Sprintf("Top %d — %s · %s", leaderboard.BoardSize, b.difficulty, b.mode)
	if b.searched {
		heading = fmt.Sprintf("Search results — %s · %s", b.difficulty, b.mode)
	}
	s.WriteString(theme.Title.Width(width).Render(heading))
	s.WriteString("\n\n")

	if b.searching {
		s.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Render("Find player: " + b.search.View()))
		s.WriteString("\n\n")
	}

	switch {
	case b.errMsg != "":
		s.WriteString(theme.Incorrect.Width(width).Align(lipgloss.Center).Render(b.errMsg))
	case b.loading:
		s.WriteString(theme.Subtitle.Width(width).Render("Loading..."))
	case len(b.entries) == 0:
		s.WriteString(theme.Subtitle.Width(width).Render("No entries yet — be the first!"))
	default:
		s.WriteString(b.renderTable(width))
	}

	return s.String()
}

func (b *BoardScreen) renderTable(width int) string {
	var s strings.Builder

	header := fmt.Sprintf("  %-4s %-20s %7s %9s  %s", "#", "Name", "Score", "Time", "When")
	s.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Bold(true).Render(header))
	s.WriteString("\n")
	s.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", min(width-4, len(header)+6))))
	s.WriteString("\n")

	for i, e := range b.entries {
		line := fmt.Sprintf("  %-4d %-20s %7d %8ds  %s",
			i+1, e.Name, e.Score, e.TimeUsed, e.Timestamp.Format("2006-01-02"))
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == 0 && !b.searched {
			style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		}
		s.WriteString(style.Render(line))
		s.WriteString("\n")
	}

	return s.String()
}

func nextDifficulty(current string) string {
	presets := game.Presets()
	for i, d := range presets {
		if d.Name == current {
			return presets[(i+1)%len(presets)].Name
		}
	}
	return presets[0].Name
}
