package strategy

import (
	"fmt"
	"slices"

	"github.com/lox/blackjack/internal/game"
)

// Basic makes the optimal player decision for every hand via lookup
// tables. Adjustment for rule variations is not supported: the tables
// assume the default rule set from game.DefaultOptions. Reference:
// https://en.wikipedia.org/wiki/Blackjack#Basic_strategy
//
// Dispatch order matters: a splittable pair consults the pair table, a
// two-card hand holding an ace consults the soft table, everything else
// falls through to the hard-total table. Any input outside the tables'
// enumerated ranges is a programming error and panics.
type Basic struct{}

// GetBet implements game.Strategy with flat minimum betting.
func (Basic) GetBet(minBet int, bankroll float64) int {
	return minBet
}

// ShowHand implements game.Strategy.
func (Basic) ShowHand(hand *game.Hand) {}

// ShowResult implements game.Strategy.
func (Basic) ShowResult(hand *game.Hand, result string) {}

// GetAction implements game.Strategy.
func (Basic) GetAction(hand *game.Hand, actions []game.Action, upcard int) game.Action {
	if upcard == 0 {
		panic("basic strategy: no upcard")
	}

	canSurrender := slices.Contains(actions, game.Surrender)
	canDouble := slices.Contains(actions, game.Double)
	canSplit := slices.Contains(actions, game.Split)

	switch {
	case canSplit:
		return pairAction(hand.Cards()[0].Value(), upcard, canSurrender, canDouble)
	case hand.Len() == 2 && hand.HasAce():
		other := hand.Cards()[0]
		if other.IsAce() {
			other = hand.Cards()[1]
		}
		return softAction(other.Value(), upcard, canDouble)
	default:
		return hardAction(hand.Value(), upcard, canSurrender, canDouble)
	}
}

// pairAction is the pair table, keyed by the value of one paired card.
func pairAction(player, dealer int, canSurrender, canDouble bool) game.Action {
	switch {
	case player == 11:
		return game.Split
	case player == 10:
		return game.Stand
	case player == 9:
		if dealer >= 2 && dealer <= 9 && dealer != 7 {
			return game.Split
		}
		return game.Stand
	case player == 8:
		if canSurrender && dealer == 11 {
			return game.Surrender
		}
		return game.Split
	case player == 7:
		if dealer <= 7 {
			return game.Split
		}
		return game.Hit
	case player == 6:
		if dealer <= 6 {
			return game.Split
		}
		return game.Hit
	case player == 5:
		if canDouble && dealer <= 9 {
			return game.Double
		}
		return game.Hit
	case player == 4:
		if dealer >= 5 && dealer <= 6 {
			return game.Split
		}
		return game.Hit
	case player >= 2 && player <= 3:
		if dealer <= 7 {
			return game.Split
		}
		return game.Hit
	default:
		panic(fmt.Sprintf("incomplete pair table: player %d vs %d", player, dealer))
	}
}

// softAction is the soft-total table, keyed by the value of the non-ace
// card.
func softAction(player, dealer int, canDouble bool) game.Action {
	switch {
	case player == 11:
		// Ace pair that can't be split (e.g. max split reached).
		if canDouble && dealer == 6 {
			return game.Double
		}
		return game.Hit
	case player == 10:
		// Soft 21 is a natural and never reaches the strategy.
		panic("soft 21 reached strategy table")
	case player == 9:
		return game.Stand
	case player == 8:
		if canDouble && dealer == 6 {
			return game.Double
		}
		return game.Stand
	case player == 7:
		switch {
		case dealer >= 9:
			return game.Hit
		case dealer >= 7:
			return game.Stand
		case canDouble:
			return game.Double
		default:
			return game.Stand
		}
	case player == 6:
		if canDouble && dealer >= 3 && dealer <= 6 {
			return game.Double
		}
		return game.Hit
	case player >= 4 && player <= 5:
		if canDouble && dealer >= 4 && dealer <= 6 {
			return game.Double
		}
		return game.Hit
	case player >= 2 && player <= 3:
		if canDouble && dealer >= 5 && dealer <= 6 {
			return game.Double
		}
		return game.Hit
	default:
		panic(fmt.Sprintf("incomplete soft table: player %d vs %d", player, dealer))
	}
}

// hardAction is the hard-total table, keyed by the hand total.
func hardAction(player, dealer int, canSurrender, canDouble bool) game.Action {
	switch {
	case player >= 18:
		return game.Stand
	case player == 17:
		if canSurrender && dealer == 11 {
			return game.Surrender
		}
		return game.Stand
	case player == 16:
		switch {
		case dealer <= 6:
			return game.Stand
		case dealer <= 8:
			return game.Hit
		case canSurrender:
			return game.Surrender
		default:
			return game.Hit
		}
	case player == 15:
		switch {
		case dealer <= 6:
			return game.Stand
		case dealer <= 9:
			return game.Hit
		case canSurrender:
			return game.Surrender
		default:
			return game.Hit
		}
	case player >= 13:
		if dealer <= 6 {
			return game.Stand
		}
		return game.Hit
	case player == 12:
		if dealer >= 4 && dealer <= 6 {
			return game.Stand
		}
		return game.Hit
	case player == 11:
		if canDouble {
			return game.Double
		}
		return game.Hit
	case player == 10:
		if canDouble && dealer <= 9 {
			return game.Double
		}
		return game.Hit
	case player == 9:
		if canDouble && dealer >= 3 && dealer <= 6 {
			return game.Double
		}
		return game.Hit
	case player >= 4:
		return game.Hit
	default:
		panic(fmt.Sprintf("incomplete hard table: player %d vs %d", player, dealer))
	}
}
