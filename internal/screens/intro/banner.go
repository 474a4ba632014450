package intro

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/cogquiz/internal/ui/theme"
)

const bannerArt = `
 ╔═══════════════════════════════╗
 ║   D E M E N T I A   Q U I Z   ║
 ╚═══════════════════════════════╝`

const bannerCompact = "DEMENTIA QUIZ"

// RenderBanner returns the banner styled in the primary color.
// Uses a compact fallback for terminals narrower than 36 columns.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 36 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
