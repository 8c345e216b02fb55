package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/geoquest/internal/ui/theme"
)

// BannerArt is the block-letter title, shared with the home screen.
const BannerArt = `
  ██████╗ ███████╗ ██████╗  ██████╗ ██╗   ██╗███████╗███████╗████████╗
 ██╔════╝ ██╔════╝██╔═══██╗██╔═══██╗██║   ██║██╔════╝██╔════╝╚══██╔══╝
 ██║  ███╗█████╗  ██║   ██║██║   ██║██║   ██║█████╗  ███████╗   ██║
 ██║   ██║██╔══╝  ██║   ██║██║▄▄ ██║██║   ██║██╔══╝  ╚════██║   ██║
 ╚██████╔╝███████╗╚██████╔╝╚██████╔╝╚██████╔╝███████╗███████║   ██║
  ╚═════╝ ╚══════╝ ╚═════╝  ╚══▀▀═╝  ╚═════╝ ╚══════╝╚══════╝   ╚═╝`

const bannerCompact = "G E O Q U E S T"

// RenderBanner returns the GEOQUEST banner styled in the primary color.
// Uses a compact fallback for terminals narrower than the art.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < lipgloss.Width(BannerArt)+2 {
		return style.Render(bannerCompact)
	}
	return style.Render(BannerArt)
}
