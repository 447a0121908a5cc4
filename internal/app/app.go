package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/ychsiao/tablerush/internal/game"
	"github.com/ychsiao/tablerush/internal/leaderboard"
	"github.com/ychsiao/tablerush/internal/router"
	"github.com/ychsiao/tablerush/internal/screen"
	"github.com/ychsiao/tablerush/internal/screens/selector"
	"github.com/ychsiao/tablerush/internal/store"
	"github.com/ychsiao/tablerush/internal/ui/layout"
)

// Options carries the dependencies the TUI needs.
type Options struct {
	Store *store.Store
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	width  int
	height int
}

// newAppModel creates a new AppModel rooted at the game setup screen.
func newAppModel(opts Options) AppModel {
	sess := game.NewSession(nil)
	boards := leaderboard.NewService(opts.Store.ScoreRepo())
	runs := opts.Store.RunRepo()

	return AppModel{
		router: router.New(selector.New(sess, boards, runs)),
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		// Every screen gives esc its own meaning, so only ctrl+c is
		// handled globally.
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.width)

	footerHints := []layout.KeyHint{
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if provider, ok := active.(screen.KeyHintProvider); ok {
		footerHints = append(provider.KeyHints(), footerHints...)
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
