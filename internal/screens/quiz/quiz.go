package quiz

import (
	"log"
	"time"

	tea "charm.land/bubbletea/v2"

	qz "github.com/abhisek/cogquiz/internal/quiz"
	"github.com/abhisek/cogquiz/internal/screen"
	"github.com/abhisek/cogquiz/internal/ui/components"
	"github.com/abhisek/cogquiz/internal/ui/layout"
)

// QuizScreen presents one prompt at a time and the final result once all
// prompts are answered.
type QuizScreen struct {
	engine      *qz.Engine
	participant string
	choices     components.ChoiceList

	fade        fadePhase
	fadeGen     int
	fadeElapsed time.Duration
	pressed     int

	result *qz.Result
	errMsg string
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)
var _ screen.StatusProvider = (*QuizScreen)(nil)

// New creates a QuizScreen driving engine. participant may be empty.
func New(engine *qz.Engine, participant string) *QuizScreen {
	engine.Observe(func(a qz.Answer) {
		log.Printf("session %s: q%d answered %q (+%d, score %d)",
			a.SessionID, a.Question+1, qz.OptionLabels()[a.Choice], a.Points, a.Score)
	})
	return &QuizScreen{
		engine:      engine,
		participant: participant,
		choices:     components.NewChoiceList(qz.OptionLabels()),
		pressed:     -1,
	}
}

func (s *QuizScreen) Init() tea.Cmd {
	log.Printf("session %s: started (participant %q)", s.engine.State().SessionID, s.participant)
	if s.engine.IsComplete() {
		s.finish()
	}
	return nil
}

func (s *QuizScreen) Title() string {
	return "Questions"
}

// Status shows question progress in the header.
func (s *QuizScreen) Status() string {
	if s.result != nil {
		return "Complete"
	}
	return s.engine.Progress()
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	if s.result != nil {
		return []layout.KeyHint{
			{Key: "R", Description: "Restart"},
			{Key: "Q", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "1-4", Description: "Answer"},
		{Key: "↑↓", Description: "Move"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case fadeTickMsg:
		return s.handleFadeTick(msg)

	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *QuizScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.result != nil {
		switch key {
		case "r", "R":
			s.restart()
			return s, nil
		case "q", "Q", "esc":
			return s, tea.Quit
		}
		return s, nil
	}

	if i, ok := s.choices.IndexForKey(key); ok {
		s.choices.Selected = i
		return s.press(i)
	}

	switch key {
	case "enter", "space":
		return s.press(s.choices.Selected)
	}

	var cmd tea.Cmd
	s.choices, cmd = s.choices.Update(msg)
	return s, cmd
}

// press starts the fade-out on choice i. The answer is applied when the
// fade-out finishes; presses arriving before then are ignored.
func (s *QuizScreen) press(i int) (screen.Screen, tea.Cmd) {
	if s.fade == fadeOut {
		log.Printf("session %s: ignored press of %d, answer pending", s.engine.State().SessionID, i+1)
		return s, nil
	}

	s.errMsg = ""
	s.fade = fadeOut
	s.fadeGen++
	s.fadeElapsed = 0
	s.pressed = i
	s.choices.Faded = i
	return s, fadeTick(s.fadeGen)
}

func (s *QuizScreen) handleFadeTick(msg fadeTickMsg) (screen.Screen, tea.Cmd) {
	if msg.gen != s.fadeGen || s.fade == fadeNone {
		return s, nil
	}

	s.fadeElapsed += fadeStep

	switch s.fade {
	case fadeOut:
		if s.fadeElapsed < fadeOutDuration {
			return s, fadeTick(s.fadeGen)
		}
		s.commit()
		s.fade = fadeIn
		s.fadeElapsed = 0
		return s, fadeTick(s.fadeGen)

	case fadeIn:
		if s.fadeElapsed < fadeInDuration {
			return s, fadeTick(s.fadeGen)
		}
		s.fade = fadeNone
		s.choices.Faded = -1
	}
	return s, nil
}

// commit applies the pending answer to the engine.
func (s *QuizScreen) commit() {
	if err := s.engine.SubmitAnswer(s.pressed); err != nil {
		log.Printf("session %s: submit %d: %v", s.engine.State().SessionID, s.pressed+1, err)
		s.errMsg = err.Error()
		return
	}
	if s.engine.IsComplete() {
		s.finish()
	}
}

func (s *QuizScreen) finish() {
	res, err := s.engine.Result()
	if err != nil {
		s.errMsg = err.Error()
		return
	}
	s.result = &res
	log.Printf("session %s: complete, score %d (%s)", res.SessionID, res.Score, res.Category)
}

func (s *QuizScreen) restart() {
	s.engine.Restart()
	s.result = nil
	s.errMsg = ""
	s.fade = fadeNone
	s.fadeGen++
	s.pressed = -1
	s.choices = components.NewChoiceList(qz.OptionLabels())
	log.Printf("session %s: restarted", s.engine.State().SessionID)
}

func fadeTick(gen int) tea.Cmd {
	return tea.Tick(fadeStep, func(time.Time) tea.Msg {
		return fadeTickMsg{gen: gen}
	})
}
