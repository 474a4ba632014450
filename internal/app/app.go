package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/cogquiz/internal/quiz"
	"github.com/abhisek/cogquiz/internal/router"
	"github.com/abhisek/cogquiz/internal/screen"
	"github.com/abhisek/cogquiz/internal/screens/intro"
	quizscreen "github.com/abhisek/cogquiz/internal/screens/quiz"
	"github.com/abhisek/cogquiz/internal/ui/layout"
)

// Options holds dependencies for the app.
type Options struct {
	Engine      *quiz.Engine
	Participant string
	SkipIntro   bool
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	title  string
	width  int
	height int
}

// newAppModel creates a new AppModel starting at the intro screen, or
// directly at the questions when SkipIntro is set.
func newAppModel(opts Options) AppModel {
	if opts.Engine == nil {
		opts.Engine = quiz.NewEngine(quiz.DefaultBank())
	}
	engine := opts.Engine

	next := func(name string) screen.Screen {
		return quizscreen.New(engine, name)
	}

	var first screen.Screen
	if opts.SkipIntro {
		first = next(opts.Participant)
	} else {
		first = intro.New(engine.QuestionCount(), opts.Participant, next)
	}

	return AppModel{
		router: router.New(first),
		title:  engine.Title(),
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title, status := "", ""
	if active != nil {
		title = active.Title()
		if sp, ok := active.(screen.StatusProvider); ok {
			status = sp.Status()
		}
	}

	header := layout.RenderHeader(m.title, title, status, m.width)

	footerHints := []layout.KeyHint{{Key: "Ctrl+C", Description: "Quit"}}
	if hp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = hp.KeyHints()
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
