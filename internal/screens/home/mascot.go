package home

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/geoquest/internal/ui/theme"
)

// MascotVariant selects which mascot art to display.
type MascotVariant int

const (
	MascotIdle        MascotVariant = iota // Default purple
	MascotCelebrating                      // Gold, star eyes: every topic completed
	MascotBroke                            // Orange: not enough coins for a battle
)

const mascotIdle = `   ╱╲
  ╱◉◉╲
 ╱ ▽  ╲
╱_△□○__╲`

const mascotCelebrating = `  ★╱╲★
  ╱★★╲
 ╱ ▿  ╲
╱_△□○__╲
  ╚══╝`

const mascotBroke = `   ╱╲
  ╱◉◉╲  ?
 ╱ ︵  ╲
╱_△□○__╲`

// RenderMascot returns the mascot art for the given variant.
func RenderMascot(variant MascotVariant) string {
	art := mascotIdle
	fg := theme.Primary

	switch variant {
	case MascotCelebrating:
		art = mascotCelebrating
		fg = theme.ArcadeYellow
	case MascotBroke:
		art = mascotBroke
		fg = theme.Accent
	}

	return lipgloss.NewStyle().
		Foreground(fg).
		Render(art)
}
