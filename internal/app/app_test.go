package app

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/cogquiz/internal/quiz"
	"github.com/abhisek/cogquiz/internal/router"
)

func sized(t *testing.T, m AppModel) AppModel {
	t.Helper()
	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 30})
	return next.(AppModel)
}

func TestAppModel_StartsAtIntro(t *testing.T) {
	m := sized(t, newAppModel(Options{}))
	require.NotNil(t, m.router.Active())
	assert.Equal(t, "Welcome", m.router.Active().Title())
	assert.Equal(t, "Dementia Quiz", m.title)
}

func TestAppModel_SkipIntro(t *testing.T) {
	engine := quiz.NewEngine(quiz.DefaultBank())
	m := sized(t, newAppModel(Options{Engine: engine, Participant: "Ada", SkipIntro: true}))
	assert.Equal(t, "Questions", m.router.Active().Title())
}

func TestAppModel_IntroHandsOffToQuestions(t *testing.T) {
	m := sized(t, newAppModel(Options{}))

	next, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	m = next.(AppModel)
	require.NotNil(t, cmd)
	msg := cmd()
	require.IsType(t, router.ReplaceScreenMsg{}, msg)

	next, _ = m.Update(msg)
	m = next.(AppModel)
	assert.Equal(t, "Questions", m.router.Active().Title())
	assert.Equal(t, 1, m.router.Depth())
}

func TestAppModel_CtrlCQuits(t *testing.T) {
	m := newAppModel(Options{})
	_, cmd := m.Update(tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}
