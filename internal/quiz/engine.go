package quiz

import (
	"fmt"
	"sync"
	"time"
)

// Engine sequences prompts, accumulates the score and classifies the
// final total. State changes are synchronous; callers that animate the
// choice do so on their own schedule.
type Engine struct {
	mu        sync.Mutex
	bank      *Bank
	state     QuizState
	observers []Observer
	now       func() time.Time
}

// NewEngine creates an engine over bank with a fresh session.
func NewEngine(bank *Bank) *Engine {
	e := &Engine{
		bank: bank,
		now:  time.Now,
	}
	e.state = NewQuizState(e.now())
	return e
}

// Observe registers fn to be called after every accepted answer.
func (e *Engine) Observe(fn Observer) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.observers = append(e.observers, fn)
}

// Title returns the bank title.
func (e *Engine) Title() string {
	return e.bank.Title
}

// QuestionCount returns the number of prompts in the session.
func (e *Engine) QuestionCount() int {
	return e.bank.Len()
}

// CurrentPrompt returns the active prompt, or ErrSessionComplete once
// every prompt has been answered. It has no side effects.
func (e *Engine) CurrentPrompt() (Prompt, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	p, ok := e.bank.Prompt(e.state.CurrentQuestion)
	if !ok {
		return Prompt{}, ErrSessionComplete
	}
	return p, nil
}

// SubmitAnswer records choiceIndex for the active prompt. The score and
// question index are updated together; on error neither changes.
func (e *Engine) SubmitAnswer(choiceIndex int) error {
	e.mu.Lock()
	if e.state.CurrentQuestion >= e.bank.Len() {
		e.mu.Unlock()
		return ErrSessionComplete
	}
	if choiceIndex < 0 || choiceIndex >= len(answerOptions) {
		e.mu.Unlock()
		return fmt.Errorf("%w: %d (want 0-%d)", ErrInvalidChoice, choiceIndex, len(answerOptions)-1)
	}

	points := answerOptions[choiceIndex].Points
	ans := Answer{
		SessionID: e.state.SessionID,
		Question:  e.state.CurrentQuestion,
		Choice:    choiceIndex,
		Points:    points,
	}
	e.state.Score += points
	e.state.CurrentQuestion++
	e.state.Answers = append(e.state.Answers, choiceIndex)
	ans.Score = e.state.Score

	observers := make([]Observer, len(e.observers))
	copy(observers, e.observers)
	e.mu.Unlock()

	// Observers run outside the lock so they may query the engine.
	for _, fn := range observers {
		fn(ans)
	}
	return nil
}

// IsComplete reports whether every prompt has been answered.
func (e *Engine) IsComplete() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.CurrentQuestion >= e.bank.Len()
}

// TotalScore returns the running score, partial while the session is active.
func (e *Engine) TotalScore() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.Score
}

// Classify maps score to its category.
func (e *Engine) Classify(score int) Category {
	return Classify(score)
}

// Progress returns the "n / total" label for the active prompt.
func (e *Engine) Progress() string {
	e.mu.Lock()
	defer e.mu.Unlock()

	n := e.state.CurrentQuestion + 1
	if n > e.bank.Len() {
		n = e.bank.Len()
	}
	return fmt.Sprintf("%d / %d", n, e.bank.Len())
}

// Fraction returns the share of prompts answered, 0.0-1.0.
func (e *Engine) Fraction() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.bank.Len() == 0 {
		return 1
	}
	return float64(e.state.CurrentQuestion) / float64(e.bank.Len())
}

// State returns a copy of the current session state.
func (e *Engine) State() QuizState {
	e.mu.Lock()
	defer e.mu.Unlock()

	st := e.state
	st.Answers = append([]int(nil), e.state.Answers...)
	return st
}

// Restart discards the current session and begins a new one.
func (e *Engine) Restart() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.state = NewQuizState(e.now())
}

// Result summarises a completed session.
func (e *Engine) Result() (Result, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state.CurrentQuestion < e.bank.Len() {
		return Result{}, ErrSessionIncomplete
	}
	return buildResult(e.state, e.now()), nil
}
