package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/geoquest/internal/rewards"
	"github.com/abhisek/geoquest/internal/screens/welcome"
	"github.com/abhisek/geoquest/internal/ui/components"
	"github.com/abhisek/geoquest/internal/ui/theme"
)

const arcadeTitleCompact = "G · E · O · Q · U · E · S · T"

// renderTitle returns the styled title block or compact fallback.
func renderTitle(cw int, compact bool) string {
	style := lipgloss.NewStyle().
		Foreground(theme.ArcadeYellow).
		Bold(true)

	title := arcadeTitleCompact
	if !compact && cw >= lipgloss.Width(welcome.BannerArt) {
		title = welcome.BannerArt
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(style.Render(title))
}

// renderPlayerCard renders coins, XP and level progress in a double
// border matching the content width.
func renderPlayerCard(p playerStats, cw int, compact bool) string {
	level := rewards.LevelFor(p.XP)
	inLevel, maxed := rewards.Progress(p.XP)

	coins := theme.Coins.Render(fmt.Sprintf("● %d", p.Coins))
	xp := theme.XP.Render(fmt.Sprintf("✦ %d XP", p.XP))
	done := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).
		Render(fmt.Sprintf("✓ %d/%d", p.Completed, p.TopicCount))

	var lines []string
	if compact {
		lines = append(lines, fmt.Sprintf("%s %s  %s %s  %s", level.Icon, p.Username, coins, xp, done))
	} else {
		lines = append(lines,
			lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(p.Username)+
				lipgloss.NewStyle().Foreground(theme.TextDim).Render(fmt.Sprintf("  %s Lv %d · %s", level.Icon, level.Index, level.Title)),
			fmt.Sprintf("%s   %s   %s", coins, xp, done),
		)
		frac := 1.0
		if !maxed {
			frac = float64(inLevel) / float64(rewards.XPPerLevel)
		}
		bar := components.NewProgressBar("", frac, false, cw-6)
		bar.Fill = theme.ArcadeCyan
		lines = append(lines, bar.View())
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.ArcadeCyan).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(strings.Join(lines, "\n"))
}

// buttonWidth is the fixed width for menu buttons.
const buttonWidth = 30

// renderArcadeMenu renders each menu item as a fixed-width button.
func renderArcadeMenu(m components.Menu, cw int) string {
	var buttons []string
	for i, item := range m.Items {
		state := components.ItemState(item, i == m.Selected)
		buttons = append(buttons, components.ArcadeButton(item.Label, item.Badge, state, buttonWidth))
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(strings.Join(buttons, "\n"))
}

// renderArcadeMenuCompact renders menu items as simple text lines (no borders)
// for small terminals where bordered buttons would overflow.
func renderArcadeMenuCompact(m components.Menu, cw int) string {
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(m.View())
}

// renderMascotBox renders the mascot centered in a box matching content width.
func renderMascotBox(variant MascotVariant, cw int) string {
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(RenderMascot(variant))
}
