package components

import (
	"strconv"
	"strings"

	"github.com/ychsiao/tablerush/internal/ui/theme"
)

// ToggleGrid renders a row of numbered toggle chips, used for the
// multiplication-table picker. Toggling happens in the game state via
// number keys; this component only draws.
type ToggleGrid struct {
	Values []int
}

// NewToggleGrid creates a grid over the given values.
func NewToggleGrid(values []int) ToggleGrid {
	return ToggleGrid{Values: values}
}

// View renders the chips, highlighting enabled values.
func (g ToggleGrid) View(enabled func(int) bool) string {
	chips := make([]string, 0, len(g.Values))
	for _, v := range g.Values {
		label := strconv.Itoa(v)
		if enabled(v) {
			chips = append(chips, theme.TableOn.Render(label))
		} else {
			chips = append(chips, theme.TableOff.Render(label))
		}
	}
	return strings.Join(chips, " ")
}
