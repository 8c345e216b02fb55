package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/geoquest/internal/ui/theme"
)

// ContentWidth is the shared inner width of home screen sections.
func ContentWidth(frameWidth int) int {
	return min(max(frameWidth-6, 20), 64)
}

// CabinetFrame centers content inside a double border filling width×height.
func CabinetFrame(content string, width, height int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Primary).
		Width(width - 2).
		Height(height - 2).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

// ButtonState picks the look of an ArcadeButton.
type ButtonState int

const (
	ButtonIdle ButtonState = iota
	ButtonFocused
	ButtonLocked
)

// ArcadeButton draws a bordered menu entry. A non-empty badge (a ✓ for a
// completed topic) follows the label.
func ArcadeButton(label, badge string, state ButtonState, width int) string {
	if badge != "" {
		label += " " + badge
	}
	style := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)

	switch state {
	case ButtonFocused:
		return style.Bold(true).
			Foreground(theme.BgDark).
			Background(theme.ArcadeYellow).
			BorderForeground(theme.ArcadeYellow).
			Render("▸ " + label)
	case ButtonLocked:
		return style.Faint(true).
			Foreground(theme.TextDim).
			BorderForeground(theme.Border).
			Render(label)
	}
	return style.Foreground(theme.Text).
		BorderForeground(theme.Border).
		Render(label)
}

// ItemState maps a menu item to its button state.
func ItemState(item MenuItem, selected bool) ButtonState {
	switch {
	case item.Disabled:
		return ButtonLocked
	case selected:
		return ButtonFocused
	}
	return ButtonIdle
}
