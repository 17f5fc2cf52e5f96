// Package strategy provides the player-side policies that drive a game
// session: the basic-strategy lookup table, a hit-only baseline, and the
// interactive prompt strategies.
package strategy

import (
	"slices"

	"github.com/lox/blackjack/internal/game"
)

// prompt returns the display form of an action with its input key
// highlighted, e.g. "[H]it" or "S[p]lit".
func prompt(a game.Action) string {
	switch a {
	case game.Hit:
		return "[H]it"
	case game.Stand:
		return "[S]tand"
	case game.Surrender:
		return "Su[r]render"
	case game.Double:
		return "[D]ouble"
	case game.Split:
		return "S[p]lit"
	default:
		return "?"
	}
}

// shortForm returns the single-key input form of an action.
func shortForm(a game.Action) string {
	switch a {
	case game.Hit:
		return "h"
	case game.Stand:
		return "s"
	case game.Surrender:
		return "r"
	case game.Double:
		return "d"
	case game.Split:
		return "p"
	default:
		return "?"
	}
}

// longForm returns the full-word input form of an action.
func longForm(a game.Action) string {
	switch a {
	case game.Hit:
		return "hit"
	case game.Stand:
		return "stand"
	case game.Surrender:
		return "surrender"
	case game.Double:
		return "double"
	case game.Split:
		return "split"
	default:
		return "?"
	}
}

// AlwaysHit hits whenever it can. Useful as a worst-case baseline for the
// simulator.
type AlwaysHit struct{}

// GetBet implements game.Strategy with flat minimum betting.
func (AlwaysHit) GetBet(minBet int, bankroll float64) int {
	return minBet
}

// GetAction implements game.Strategy.
func (AlwaysHit) GetAction(hand *game.Hand, actions []game.Action, upcard int) game.Action {
	if !slices.Contains(actions, game.Hit) {
		panic("always-hit: Hit not in legal actions")
	}
	return game.Hit
}

// ShowHand implements game.Strategy.
func (AlwaysHit) ShowHand(hand *game.Hand) {}

// ShowResult implements game.Strategy.
func (AlwaysHit) ShowResult(hand *game.Hand, result string) {}
