package intro

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/cogquiz/internal/router"
	"github.com/abhisek/cogquiz/internal/screen"
	"github.com/abhisek/cogquiz/internal/ui/components"
	"github.com/abhisek/cogquiz/internal/ui/layout"
	"github.com/abhisek/cogquiz/internal/ui/theme"
)

const nameMaxLen = 40

// IntroScreen explains the questionnaire and asks for an optional name
// before handing over to the question screen.
type IntroScreen struct {
	next         func(name string) screen.Screen
	questions    int
	input        components.TextInput
	transitioned bool
}

var _ screen.Screen = (*IntroScreen)(nil)
var _ screen.KeyHintProvider = (*IntroScreen)(nil)

// New creates an IntroScreen. next builds the screen that replaces it once
// the participant starts; name pre-fills the name field.
func New(questions int, name string, next func(name string) screen.Screen) *IntroScreen {
	input := components.NewTextInput("Your name (optional)", nameMaxLen)
	input.SetValue(name)
	return &IntroScreen{
		next:      next,
		questions: questions,
		input:     input,
	}
}

func (s *IntroScreen) Title() string {
	return "Welcome"
}

func (s *IntroScreen) Init() tea.Cmd {
	return s.input.Init()
}

func (s *IntroScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Start"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *IntroScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "enter" {
		return s, s.start()
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *IntroScreen) start() tea.Cmd {
	if s.transitioned {
		return nil
	}
	s.transitioned = true
	next := s.next(s.input.Value())
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

func (s *IntroScreen) View(width, height int) string {
	sections := []string{
		RenderBanner(width),
		"",
		lipgloss.NewStyle().
			Foreground(theme.Text).
			Width(min(width-8, 64)).
			Align(lipgloss.Center).
			Render(fmt.Sprintf(
				"You will be asked %d questions about memory, attention, language and orientation. "+
					"For each one, choose how often it applies to you.", s.questions)),
		"",
		theme.Hint.Render("Never · Rarely · Sometimes · Often"),
		"",
		s.input.View(),
		"",
		lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Italic(true).
			Render("press enter to begin"),
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, strings.Join(sections, "\n"))
}
