package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/ychsiao/tablerush/internal/ui/theme"
)

// DigitDisplay renders a typed digit string as large answer boxes. The
// value itself lives in the game state; this is display only, so the
// play screen stays a pure renderer of session state.
type DigitDisplay struct {
	MinCells int
}

// NewDigitDisplay creates a display padded to at least min cells.
func NewDigitDisplay(min int) DigitDisplay {
	return DigitDisplay{MinCells: min}
}

// View renders the digits with a cursor cell appended while there is
// room to type.
func (d DigitDisplay) View(value string, maxLen int) string {
	cellOn := lipgloss.NewStyle().
		Foreground(theme.Text).
		Background(theme.BgCard).
		Bold(true).
		Padding(0, 1)
	cellCursor := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Background(theme.BgCard).
		Bold(true).
		Padding(0, 1)
	cellEmpty := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Background(theme.BgCard).
		Padding(0, 1)

	cells := make([]string, 0, maxLen)
	for _, r := range value {
		cells = append(cells, cellOn.Render(string(r)))
	}
	if len(value) < maxLen {
		cells = append(cells, cellCursor.Render("_"))
	}
	for len(cells) < d.MinCells {
		cells = append(cells, cellEmpty.Render("·"))
	}

	return strings.Join(cells, " ")
}
