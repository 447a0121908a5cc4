package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette — bold arcade colors on a dark board
var (
	Primary   = lipgloss.Color("#F59E0B") // Amber
	Secondary = lipgloss.Color("#06B6D4") // Cyan
	Accent    = lipgloss.Color("#A78BFA") // Violet
	Success   = lipgloss.Color("#22C55E") // Green
	Error     = lipgloss.Color("#EF4444") // Red
	Text      = lipgloss.Color("#FAFAF9") // Off-white
	TextDim   = lipgloss.Color("#78716C") // Stone
	BgDark    = lipgloss.Color("#1C1917") // Near-black
	BgCard    = lipgloss.Color("#292524") // Dark stone
	Border    = lipgloss.Color("#44403C") // Stone
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// Layout
var (
	Header = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Footer = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Card = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)
)

// Components
var (
	ProgressFilled = lipgloss.NewStyle().
			Background(Secondary)

	ProgressEmpty = lipgloss.NewStyle().
			Background(Border)

	TableOn = lipgloss.NewStyle().
		Background(Primary).
		Foreground(BgDark).
		Bold(true).
		Padding(0, 1)

	TableOff = lipgloss.NewStyle().
			Background(BgCard).
			Foreground(TextDim).
			Padding(0, 1)
)
