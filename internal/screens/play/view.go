package play

import (
	"fmt"
	"strconv"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/ychsiao/tablerush/internal/game"
	"github.com/ychsiao/tablerush/internal/ui/components"
	"github.com/ychsiao/tablerush/internal/ui/theme"
)

func (p *PlayScreen) View(width, height int) string {
	if p.sess.Phase() != game.PhasePlaying {
		return ""
	}

	var b strings.Builder

	b.WriteString(p.renderStatusLine(width))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	if p.sess.Penalty() != nil {
		b.WriteString(p.renderPenalty(width))
	} else {
		b.WriteString(p.renderQuestion(width))
	}

	if p.notice != "" {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render(p.notice))
	}

	return b.String()
}

// renderStatusLine shows the clock bar, score and per-question countdown.
func (p *PlayScreen) renderStatusLine(width int) string {
	d := p.sess.Difficulty()
	percent := 0.0
	if d.TimeLimit > 0 {
		percent = float64(p.sess.TimeRemaining()) / float64(d.TimeLimit)
	}

	clock := components.NewProgressBar(
		fmt.Sprintf("  %3ds", p.sess.TimeRemaining()),
		percent, false, width/2,
	).View()

	right := lipgloss.NewStyle().Foreground(theme.TextDim).Render(
		fmt.Sprintf("Score %d/%d   Next in %.0fs  ",
			p.sess.Score(), p.sess.Attempts(),
			p.sess.QuestionCountdown().Seconds()),
	)

	gap := width - lipgloss.Width(clock) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return clock + strings.Repeat(" ", gap) + right
}

func (p *PlayScreen) renderQuestion(width int) string {
	q := p.sess.Question()
	if q == nil {
		return ""
	}

	var b strings.Builder

	prompt := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true)
	b.WriteString(prompt.Render(q.Prompt()))
	b.WriteString("\n\n")

	expected := len(strconv.Itoa(q.Answer))
	if q.IsNarrative() && p.sess.Mode() == game.ModeNarrative {
		expected = len(q.DigitSequence())
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("Type the equation: both numbers, then the answer"))
		b.WriteString("\n\n")
	}

	answer := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(p.display.View(p.sess.Input(), expected))
	b.WriteString(answer)

	return b.String()
}

// renderPenalty shows the copy-the-equation overlay. Entered digits
// light up green; the rest of the sequence stays dim.
func (p *PlayScreen) renderPenalty(width int) string {
	pen := p.sess.Penalty()

	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Bold(true).
		Render("Not quite! Copy the correct equation to continue"))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(pen.Question.Equation()))
	b.WriteString("\n\n")

	done := len(pen.Entered)
	var cells []string
	for i := 0; i < len(pen.Expected); i++ {
		ch := string(pen.Expected[i])
		if i < done {
			cells = append(cells, theme.Correct.Render(ch))
		} else {
			cells = append(cells, lipgloss.NewStyle().Foreground(theme.TextDim).Render("·"))
		}
	}
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(strings.Join(cells, " ")))

	return b.String()
}
