package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/geoquest/internal/ui/layout"
)

// Screen defines the interface for all application screens.
type Screen interface {
	// Init returns an initial command when the screen is first created.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is an optional interface that screens can implement
// to provide custom footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// EscCapturer is implemented by screens that handle esc themselves
// instead of letting the app pop them.
type EscCapturer interface {
	CapturesEsc() bool
}

// BalanceMsg carries the player's balance after a persisted change.
type BalanceMsg struct {
	Coins int
	XP    int
}

// RunChangedMsg reports a timer-driven change of the run with RunID.
type RunChangedMsg struct {
	RunID string
}

// Closer is implemented by screens holding resources (timers) that must
// be released when they leave the stack.
type Closer interface {
	Close()
}
