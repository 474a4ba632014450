package quiz

import (
	"time"

	"github.com/google/uuid"
)

// Prompt is a single question shown to the participant.
type Prompt struct {
	Index int
	Text  string
}

// AnswerOption is one of the fixed choices offered for every prompt.
type AnswerOption struct {
	Label  string
	Points int
}

// answerOptions is shared by every prompt; the set is not per-question data.
var answerOptions = [...]AnswerOption{
	{Label: "Never", Points: 1},
	{Label: "Rarely", Points: 2},
	{Label: "Sometimes", Points: 3},
	{Label: "Often", Points: 4},
}

// AnswerOptions returns the four answer options in display order.
func AnswerOptions() []AnswerOption {
	opts := make([]AnswerOption, len(answerOptions))
	copy(opts, answerOptions[:])
	return opts
}

// OptionLabels returns just the option labels, in display order.
func OptionLabels() []string {
	labels := make([]string, len(answerOptions))
	for i, o := range answerOptions {
		labels[i] = o.Label
	}
	return labels
}

// QuizState is the mutable progress of one session.
type QuizState struct {
	// SessionID identifies the session in logs and on the result view.
	SessionID string

	// CurrentQuestion is the index of the next prompt; equals the bank
	// length once every prompt is answered.
	CurrentQuestion int

	// Score is the sum of the points of every accepted answer.
	Score int

	// Answers holds the chosen option index per answered prompt, in order.
	Answers []int

	StartedAt time.Time
}

// NewQuizState returns a fresh state at question 0 with a new session ID.
func NewQuizState(now time.Time) QuizState {
	return QuizState{
		SessionID: uuid.New().String(),
		Answers:   make([]int, 0, QuestionCount),
		StartedAt: now,
	}
}

// Answer describes one accepted submission. Observers receive it after
// the state has been updated.
type Answer struct {
	SessionID string
	Question  int
	Choice    int
	Points    int
	Score     int
}

// Observer is notified of every accepted answer.
type Observer func(Answer)
