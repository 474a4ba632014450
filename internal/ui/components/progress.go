package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/cogquiz/internal/ui/theme"
)

// ProgressBar displays how far through the questionnaire the participant is.
type ProgressBar struct {
	Label   string
	Percent float64
	Width   int
}

// NewProgressBar creates a progress bar for done out of total items.
func NewProgressBar(label string, done, total, width int) ProgressBar {
	var pct float64
	if total > 0 {
		pct = float64(done) / float64(total)
	}
	return ProgressBar{
		Label:   label,
		Percent: pct,
		Width:   width,
	}
}

// Filled returns the number of filled cells and the total bar width.
func (p ProgressBar) Filled() (filled, barWidth int) {
	barWidth = p.Width
	if p.Label != "" {
		barWidth -= lipgloss.Width(p.Label) + 2
	}
	if barWidth < 4 {
		barWidth = 4
	}

	filled = int(float64(barWidth) * p.Percent)
	return max(0, min(filled, barWidth)), barWidth
}

// View renders the progress bar.
func (p ProgressBar) View() string {
	var result string
	if p.Label != "" {
		result = lipgloss.NewStyle().Foreground(theme.TextDim).Render(p.Label) + "  "
	}

	filled, barWidth := p.Filled()
	result += theme.ProgressFilled.Render(strings.Repeat(" ", filled)) +
		theme.ProgressEmpty.Render(strings.Repeat(" ", barWidth-filled))
	return result
}
