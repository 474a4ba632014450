package quiz

import "time"

// Result holds the data displayed once a session is complete.
type Result struct {
	SessionID string
	Score     int
	Category  Category
	Duration  time.Duration

	// Breakdown counts how many prompts were answered with each option,
	// indexed like AnswerOptions.
	Breakdown []int
}

// Label returns the category sentence for the result.
func (r Result) Label() string {
	return r.Category.Label()
}

func buildResult(state QuizState, now time.Time) Result {
	breakdown := make([]int, len(answerOptions))
	for _, c := range state.Answers {
		breakdown[c]++
	}

	var dur time.Duration
	if !state.StartedAt.IsZero() {
		dur = now.Sub(state.StartedAt)
	}

	return Result{
		SessionID: state.SessionID,
		Score:     state.Score,
		Category:  Classify(state.Score),
		Duration:  dur,
		Breakdown: breakdown,
	}
}
