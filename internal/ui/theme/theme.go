package theme

import (
	"charm.land/lipgloss/v2"
)

// Palette: chalkboard greens with arcade highlights.
var (
	Primary      = lipgloss.Color("#8B5CF6") // Vivid Purple
	Secondary    = lipgloss.Color("#14B8A6") // Teal
	Accent       = lipgloss.Color("#F97316") // Orange
	Success      = lipgloss.Color("#22C55E") // Green
	Error        = lipgloss.Color("#F43F5E") // Rose
	Text         = lipgloss.Color("#F8FAFC") // White
	TextDim      = lipgloss.Color("#94A3B8") // Slate
	BgDark       = lipgloss.Color("#0F172A") // Deep Navy
	BgCard       = lipgloss.Color("#1E293B") // Dark Slate
	Border       = lipgloss.Color("#334155") // Slate
	ArcadeYellow = lipgloss.Color("#FACC15") // Coins
	ArcadeCyan   = lipgloss.Color("#22D3EE") // XP
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

	Coins = lipgloss.NewStyle().
		Foreground(ArcadeYellow).
		Bold(true)

	XP = lipgloss.NewStyle().
		Foreground(ArcadeCyan).
		Bold(true)
)

// Layout
var (
	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)

	// CheatSheet frames the reference panel beside a quest task.
	CheatSheet = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Secondary).
			Padding(0, 1)
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

	Disabled = lipgloss.NewStyle().
			Foreground(Border)
)
