package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette
var (
	Primary   = lipgloss.Color("#34D399") // Emerald
	Secondary = lipgloss.Color("#0EA5E9") // Sky
	Accent    = lipgloss.Color("#FBBF24") // Gold
	Success   = lipgloss.Color("#22C55E") // Green
	Error     = lipgloss.Color("#F43F5E") // Rose
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	Arabic    = lipgloss.Color("#FDE68A") // Pale Gold
	BgDark    = lipgloss.Color("#0B1120") // Near Black
	BgCard    = lipgloss.Color("#1E293B") // Dark Slate
	Border    = lipgloss.Color("#334155") // Slate
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

	Verse = lipgloss.NewStyle().
		Foreground(Arabic).
		Bold(true).
		Align(lipgloss.Center)

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

	Pass = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Again = lipgloss.NewStyle().
		Foreground(Error).
		Bold(true)
)

// Components
var (
	BandNew = lipgloss.NewStyle().
		Background(Border)

	BandLearning = lipgloss.NewStyle().
			Background(Accent)

	BandMastered = lipgloss.NewStyle().
			Background(Success)

	ButtonActive = lipgloss.NewStyle().
			Background(Primary).
			Foreground(BgDark).
			Bold(true).
			Padding(0, 2)

	ButtonInactive = lipgloss.NewStyle().
			Background(BgCard).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border).
			Padding(0, 2)
)
