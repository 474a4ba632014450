package quiz

import (
	"fmt"
	"image/color"
	"strings"
	"time"

	"charm.land/lipgloss/v2"

	qz "github.com/abhisek/cogquiz/internal/quiz"
	"github.com/abhisek/cogquiz/internal/ui/components"
	"github.com/abhisek/cogquiz/internal/ui/theme"
)

func (s *QuizScreen) View(width, height int) string {
	if s.result != nil {
		return s.renderResult(width, height)
	}
	return s.renderQuestion(width, height)
}

// renderQuestion renders the active prompt, its choices and progress.
func (s *QuizScreen) renderQuestion(width, height int) string {
	p, err := s.engine.CurrentPrompt()
	if err != nil {
		// Between the last commit and the result being built.
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n  Calculating your score...")
	}

	var b strings.Builder
	b.WriteString("\n")

	questionStyle := lipgloss.NewStyle().
		Width(min(width-8, 70)).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, questionStyle.Render(p.Text)))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.choices.View()))
	b.WriteString("\n\n")

	if s.errMsg != "" {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render(s.errMsg))
		b.WriteString("\n\n")
	}

	bar := components.NewProgressBar(s.engine.Progress(), p.Index, s.engine.QuestionCount(), min(width-8, 50))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))

	return b.String()
}

// renderResult renders the final score and category.
func (s *QuizScreen) renderResult(width, height int) string {
	res := s.result

	var b strings.Builder
	b.WriteString("\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render(fmt.Sprintf("Your total score: %d points", res.Score)))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(categoryColor(res.Category)).
		Render(res.Label()))
	b.WriteString("\n\n")

	var rows []string
	for i, opt := range qz.AnswerOptions() {
		count := 0
		if i < len(res.Breakdown) {
			count = res.Breakdown[i]
		}
		rows = append(rows, fmt.Sprintf("%-10s %2d x %d pts", opt.Label, count, opt.Points))
	}
	breakdown := lipgloss.NewStyle().Foreground(theme.Text).Render(strings.Join(rows, "\n"))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, theme.Card.Render(breakdown)))
	b.WriteString("\n\n")

	meta := fmt.Sprintf("Session %s  ·  %s", shortID(res.SessionID), formatDuration(res.Duration))
	if s.participant != "" {
		meta = s.participant + "  ·  " + meta
	}
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(meta))
	b.WriteString("\n")
	b.WriteString(theme.Hint.
		Width(width).
		Align(lipgloss.Center).
		Render("This questionnaire is not a diagnosis. Talk to a doctor about any concerns."))

	return b.String()
}

func categoryColor(c qz.Category) color.Color {
	switch c {
	case qz.SevereImpairment:
		return theme.Error
	case qz.ModerateImpairment, qz.MildImpairment:
		return theme.Accent
	default:
		return theme.Success
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func formatDuration(d time.Duration) string {
	mins := int(d.Minutes())
	secs := int(d.Seconds()) % 60
	return fmt.Sprintf("%d:%02d", mins, secs)
}
