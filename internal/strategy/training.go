package strategy

import (
	"fmt"

	"github.com/lox/blackjack/internal/game"
)

// Training wraps Manual and grades every decision against a reference
// strategy, so the user learns the table while playing.
type Training struct {
	*Manual
	reference game.Strategy
}

// NewTraining creates a training session comparing manual play against
// reference.
func NewTraining(manual *Manual, reference game.Strategy) *Training {
	return &Training{Manual: manual, reference: reference}
}

// GetAction prompts as Manual does, then reports whether the choice agrees
// with the reference strategy. The user's choice always wins.
func (t *Training) GetAction(hand *game.Hand, actions []game.Action, upcard int) game.Action {
	chosen := t.Manual.GetAction(hand, actions, upcard)
	correct := t.reference.GetAction(hand, actions, upcard)
	if chosen == correct {
		fmt.Fprintln(t.out, "✅ Correct!")
	} else {
		fmt.Fprintf(t.out, "❌ Incorrect! Correct choice: %s\n", correct)
	}
	return chosen
}
