package quiz

import "errors"

var (
	// ErrInvalidChoice is returned when a choice index is outside the answer options.
	ErrInvalidChoice = errors.New("invalid choice")

	// ErrSessionComplete is returned when a prompt is requested or an answer
	// submitted after every question has been answered.
	ErrSessionComplete = errors.New("session complete")

	// ErrSessionIncomplete is returned when a result is requested mid-session.
	ErrSessionIncomplete = errors.New("session not complete")
)
