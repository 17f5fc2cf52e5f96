package game

import (
	"errors"
	"fmt"
	"io"
	rand "math/rand/v2"
	"slices"

	"github.com/charmbracelet/log"

	"github.com/lox/blackjack/internal/deck"
)

// cardSource is the part of deck.Shoe the engine draws from. Tests swap in
// a scripted source to deal known cards.
type cardSource interface {
	Draw() (deck.Card, error)
	Remaining() int
	PercentFull() float64
}

// Game runs single-player blackjack sessions against the house. A Game owns
// its shoe and bankroll for the duration of one Play call; it is not safe
// for concurrent use.
type Game struct {
	opts   Options
	rng    *rand.Rand
	logger *log.Logger

	// Session state, reset by Play.
	bankroll float64
	totalBet int
	shoe     cardSource
	strategy Strategy
	upcard   int
}

// New creates a game for one rule set. The rng seeds the shoe shuffle; a
// nil logger discards engine tracing.
func New(opts Options, rng *rand.Rand, logger *log.Logger) *Game {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Game{opts: opts, rng: rng, logger: logger}
}

// Play runs one full session: rounds are played until the strategy stops
// betting, the bankroll can't cover the bet, the shoe reaches its cutoff,
// or the shoe runs dry mid-round. It returns the final bankroll and the
// session EV (net change divided by total wagered, 0.0 if nothing was
// wagered). A mid-round shoe exhaustion forfeits the in-flight bet.
func (g *Game) Play(strategy Strategy, bankroll float64) (float64, float64) {
	g.bankroll = bankroll
	g.totalBet = 0
	g.shoe = deck.NewShoe(g.opts.NumDecks, g.rng)
	g.strategy = strategy

	for {
		bet := strategy.GetBet(g.opts.MinBet, g.bankroll)
		if bet <= 0 || float64(bet) > g.bankroll || g.shoe.PercentFull() <= g.opts.ShoeMinPercent {
			break
		}

		g.makeBet(bet)
		if err := g.playRound(bet); err != nil {
			if !errors.Is(err, deck.ErrEmptyShoe) {
				panic(fmt.Sprintf("unexpected round error: %v", err))
			}
			// The shoe drained mid-round. The round is abandoned and the
			// bet already deducted stays forfeited.
			g.logger.Debug("shoe exhausted mid-round, ending session", "remaining", g.shoe.Remaining())
			break
		}
	}

	ev := 0.0
	if g.totalBet > 0 {
		ev = (g.bankroll - bankroll) / float64(g.totalBet)
	}
	return g.bankroll, ev
}

// makeBet deducts a bet from the bankroll and tracks cumulative wagering.
func (g *Game) makeBet(bet int) {
	g.bankroll -= float64(bet)
	g.totalBet += bet
}

// deal draws one card into hand. The dealer's upcard is recorded for the
// round; hidden cards skip the ShowHand notification.
func (g *Game) deal(hand *Hand, isUpcard, show bool) error {
	card, err := g.shoe.Draw()
	if err != nil {
		return err
	}

	hand.Add(card)
	if isUpcard {
		g.upcard = card.Value()
	}
	if show {
		g.strategy.ShowHand(hand)
	}
	return nil
}

// legalActions computes the action set for a hand. Hit and Stand are always
// available; Surrender, Double and Split only on a two-card hand, gated by
// the rule set, bankroll and split depth.
func (g *Game) legalActions(hand *Hand, bet, numSplit int) []Action {
	actions := []Action{Hit, Stand}
	if hand.Len() != 2 {
		return actions
	}

	if g.opts.LateSurrender && numSplit == 0 {
		actions = append(actions, Surrender)
	}
	if g.bankroll >= float64(bet) {
		if g.opts.DoubleAfterSplit || numSplit == 0 {
			actions = append(actions, Double)
		}
		if hand.CanSplit() && numSplit < g.opts.MaxSplit {
			actions = append(actions, Split)
		}
	}
	return actions
}

// pendingHand is one unit of hand-resolution work.
type pendingHand struct {
	hand     *Hand
	bet      int
	numSplit int
}

// resolveHands plays a hand to completion and returns its terminal hands.
// Splits can fan a single hand out into a depth-limited tree, so the work
// is kept on an explicit stack rather than the call stack; terminal hands
// come back flattened in play order.
func (g *Game) resolveHands(strategy Strategy, hand *Hand, bet int) ([]*Hand, error) {
	stack := []pendingHand{{hand: hand, bet: bet}}
	var done []*Hand

resolve:
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for {
			actions := g.legalActions(p.hand, p.bet, p.numSplit)
			action := strategy.GetAction(p.hand, actions, g.upcard)
			if !slices.Contains(actions, action) {
				panic(fmt.Sprintf("invalid action %s for %q (legal: %v)", action, p.hand.Name(), actions))
			}

			switch action {
			case Hit:
				if err := g.deal(p.hand, false, true); err != nil {
					return nil, err
				}
				if p.hand.IsBust() || p.hand.IsBlackjack() {
					break
				}
				continue

			case Stand:
				// Hand is finished as-is.

			case Surrender:
				p.hand.Surrender()

			case Double:
				g.makeBet(p.bet)
				if err := g.deal(p.hand, false, true); err != nil {
					return nil, err
				}
				p.hand.Double()

			case Split:
				g.makeBet(p.bet)
				first := NewHand(fmt.Sprintf("%s Split 1", p.hand.Name()), p.bet, p.hand.Cards()[0])
				second := NewHand(fmt.Sprintf("%s Split 2", p.hand.Name()), p.bet, p.hand.Cards()[1])
				if err := g.deal(first, false, true); err != nil {
					return nil, err
				}
				if err := g.deal(second, false, true); err != nil {
					return nil, err
				}

				if p.hand.HasAce() {
					// Game rule: must stand after splitting aces.
					done = append(done, first, second)
				} else {
					// Push in reverse so the first branch resolves first.
					stack = append(stack,
						pendingHand{hand: second, bet: p.bet, numSplit: p.numSplit + 1},
						pendingHand{hand: first, bet: p.bet, numSplit: p.numSplit + 1},
					)
				}
				// The pre-split hand itself is no longer in play.
				continue resolve
			}

			break
		}

		done = append(done, p.hand)
	}

	return done, nil
}

// compare settles one player terminal hand against the final dealer hand.
// A losing or busted hand needs no bankroll change: its wager was deducted
// when the bet was made.
func (g *Game) compare(playerHand, dealerHand *Hand) {
	if playerHand.IsBust() {
		g.strategy.ShowResult(playerHand, "Player bust")
		return
	}
	if dealerHand.IsBust() {
		g.strategy.ShowResult(playerHand, "Dealer bust")
		g.bankroll += 2.0 * float64(playerHand.Wager())
		return
	}

	pv, dv := playerHand.Value(), dealerHand.Value()
	switch {
	case pv > dv:
		g.strategy.ShowResult(playerHand, fmt.Sprintf("Player wins (%d > %d)", pv, dv))
		g.bankroll += 2.0 * float64(playerHand.Wager())
	case pv == dv:
		g.strategy.ShowResult(playerHand, fmt.Sprintf("Push (%d = %d)", pv, dv))
		g.bankroll += float64(playerHand.Wager())
	default:
		g.strategy.ShowResult(playerHand, fmt.Sprintf("Dealer wins (%d < %d)", pv, dv))
	}
}

// playRound deals and settles one round for an already-deducted bet.
func (g *Game) playRound(bet int) error {
	playerHand := NewHand("Player", bet)
	dealerHand := NewHand("Dealer", 0)

	if err := g.deal(playerHand, false, false); err != nil {
		return err
	}
	if err := g.deal(dealerHand, true, true); err != nil {
		return err
	}
	if err := g.deal(playerHand, false, true); err != nil {
		return err
	}
	if err := g.deal(dealerHand, false, false); err != nil {
		return err
	}

	// A natural on either side short-circuits the round.
	if playerHand.IsBlackjack() || dealerHand.IsBlackjack() {
		g.strategy.ShowHand(dealerHand)
		switch {
		case playerHand.IsBlackjack() && dealerHand.IsBlackjack():
			g.strategy.ShowResult(playerHand, "Push (blackjack)")
			g.bankroll += float64(bet)
		case playerHand.IsBlackjack():
			g.strategy.ShowResult(playerHand, "Player has blackjack")
			g.bankroll += float64(bet) + g.opts.Payout*float64(bet)
		default:
			g.strategy.ShowResult(playerHand, "Dealer has blackjack")
		}
		return nil
	}

	playerHands, err := g.resolveHands(g.strategy, playerHand, bet)
	if err != nil {
		return err
	}

	// A lone surrendered hand settles before the dealer plays.
	if len(playerHands) == 1 && playerHands[0].IsSurrendered() {
		g.strategy.ShowResult(playerHand, "Player surrender")
		g.bankroll += 0.5 * float64(bet)
		return nil
	}

	g.strategy.ShowHand(dealerHand)
	dealer := NewDealer(g.opts.HitSoftSeventeen)
	dealerHands, err := g.resolveHands(dealer, dealerHand, 0)
	if err != nil {
		return err
	}
	if len(dealerHands) != 1 {
		panic(fmt.Sprintf("dealer resolved to %d hands", len(dealerHands)))
	}
	dealerHand = dealerHands[0]

	g.logger.Debug("settling round",
		"dealer", dealerHand.Value(),
		"hands", len(playerHands),
		"upcard", g.upcard,
	)
	for _, ph := range playerHands {
		g.compare(ph, dealerHand)
	}
	return nil
}
