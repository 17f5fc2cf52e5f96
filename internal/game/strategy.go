package game

// Strategy supplies bets and playing decisions for a Game session. All
// calls are synchronous and may block arbitrarily (e.g. waiting on human
// input); the engine never re-enters itself while a call is pending.
// Implementations that front an asynchronous UI are responsible for
// bridging each call to the UI and blocking on the response.
type Strategy interface {
	// GetBet returns the bet for the upcoming round. Returning zero or a
	// negative value ends the session.
	GetBet(minBet int, bankroll float64) int

	// GetAction chooses the next action for a hand. The returned action
	// must be a member of actions; anything else is a programming error
	// and the engine panics.
	GetAction(hand *Hand, actions []Action, upcard int) Action

	// ShowHand is called when a hand gains a visible card.
	ShowHand(hand *Hand)

	// ShowResult is called when a hand is settled, with a description of
	// the outcome.
	ShowResult(hand *Hand, result string)
}
