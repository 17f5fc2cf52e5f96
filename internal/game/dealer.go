package game

// Dealer is the fixed house policy: hit below 17, stand on 17 and above,
// with soft 17 hit or stood per the rule set. The engine itself plays the
// dealer's hand with this strategy, so it lives alongside the engine. The
// shared legal-action computation can offer Double or Surrender to the
// dealer's zero-bet hand; the policy only ever returns Hit or Stand.
type Dealer struct {
	hitSoftSeventeen bool
}

// NewDealer creates the house strategy for the given soft-17 rule.
func NewDealer(hitSoftSeventeen bool) *Dealer {
	return &Dealer{hitSoftSeventeen: hitSoftSeventeen}
}

// GetBet implements Strategy. The dealer has no bankroll; it always
// accepts the nominal minimum.
func (d *Dealer) GetBet(minBet int, bankroll float64) int {
	return minBet
}

// GetAction implements the house hitting rule.
func (d *Dealer) GetAction(hand *Hand, actions []Action, upcard int) Action {
	if hand.IsSoft() && hand.Value() == 17 {
		if d.hitSoftSeventeen {
			return Hit
		}
		return Stand
	}
	if hand.Value() < 17 {
		return Hit
	}
	return Stand
}

// ShowHand implements Strategy.
func (d *Dealer) ShowHand(hand *Hand) {}

// ShowResult implements Strategy.
func (d *Dealer) ShowResult(hand *Hand, result string) {}
