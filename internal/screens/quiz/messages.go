package quiz

import "time"

const (
	// fadeStep is the tick interval of the press animation.
	fadeStep = 50 * time.Millisecond

	// fadeOutDuration elapses between a press and the answer being applied.
	fadeOutDuration = 300 * time.Millisecond

	// fadeInDuration is how long the chosen option takes to brighten again.
	fadeInDuration = 150 * time.Millisecond
)

// fadePhase is the state of the press animation on the chosen option.
type fadePhase int

const (
	fadeNone fadePhase = iota
	fadeOut            // answer pending, further presses ignored
	fadeIn             // answer applied, option brightening
)

// fadeTickMsg advances the press animation. Ticks whose gen does not match
// the screen's current generation belong to a superseded animation.
type fadeTickMsg struct {
	gen int
}
