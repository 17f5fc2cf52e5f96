package strategy

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/blackjack/internal/deck"
	"github.com/lox/blackjack/internal/game"
)

var allActions = []game.Action{game.Hit, game.Stand, game.Surrender, game.Double, game.Split}

func card(rank deck.Rank) deck.Card {
	return deck.NewCard(deck.Spades, rank)
}

func hand(ranks ...deck.Rank) *game.Hand {
	cards := make([]deck.Card, len(ranks))
	for i, r := range ranks {
		cards[i] = card(r)
	}
	return game.NewHand("", 10, cards...)
}

func TestBasicBetsMinimum(t *testing.T) {
	assert.Equal(t, 10, Basic{}.GetBet(10, 500))
}

func TestBasicPanicsWithoutUpcard(t *testing.T) {
	require.Panics(t, func() {
		Basic{}.GetAction(hand(deck.Ten, deck.Six), allActions, 0)
	})
}

func TestBasicPairOfTwos(t *testing.T) {
	// Low pairs split against weak upcards and hit into strong ones.
	for upcard := 2; upcard <= 7; upcard++ {
		assert.Equal(t, game.Split, Basic{}.GetAction(hand(deck.Two, deck.Two), allActions, upcard), "upcard %d", upcard)
	}
	for upcard := 8; upcard <= 11; upcard++ {
		assert.Equal(t, game.Hit, Basic{}.GetAction(hand(deck.Two, deck.Two), allActions, upcard), "upcard %d", upcard)
	}
}

func TestBasicDecisions(t *testing.T) {
	// Split is only ever offered on a true pair; the no-pair sets mirror
	// what the engine actually passes.
	hitStand := []game.Action{game.Hit, game.Stand}
	noPair := []game.Action{game.Hit, game.Stand, game.Surrender, game.Double}

	tests := []struct {
		name    string
		hand    *game.Hand
		actions []game.Action
		upcard  int
		want    game.Action
	}{
		{"hard 16 surrenders into a ten", hand(deck.King, deck.Six), noPair, 10, game.Surrender},
		{"hard 16 hits a ten without surrender", hand(deck.King, deck.Six), hitStand, 10, game.Hit},
		{"hard 16 stands on a six", hand(deck.King, deck.Six), noPair, 6, game.Stand},
		{"hard 17 surrenders into an ace", hand(deck.King, deck.Seven), noPair, 11, game.Surrender},
		{"hard 18 stands", hand(deck.King, deck.Eight), noPair, 10, game.Stand},
		{"hard 15 surrenders into a ten", hand(deck.King, deck.Five), noPair, 10, game.Surrender},
		{"hard 15 hits a nine", hand(deck.King, deck.Five), noPair, 9, game.Hit},
		{"hard 12 stands on a four", hand(deck.King, deck.Two), noPair, 4, game.Stand},
		{"hard 12 hits a two", hand(deck.King, deck.Two), noPair, 2, game.Hit},
		{"eleven doubles", hand(deck.Five, deck.Six), noPair, 10, game.Double},
		{"three card eleven hits when it cannot double", hand(deck.Two, deck.Three, deck.Six), hitStand, 10, game.Hit},
		{"ten doubles into a nine", hand(deck.Four, deck.Six), noPair, 9, game.Double},
		{"ten hits a ten", hand(deck.Four, deck.Six), noPair, 10, game.Hit},
		{"nine doubles into a five", hand(deck.Four, deck.Five), noPair, 5, game.Double},
		{"low total hits", hand(deck.Two, deck.Five), noPair, 10, game.Hit},
		{"soft 18 doubles into a two", hand(deck.Ace, deck.Seven), noPair, 2, game.Double},
		{"soft 18 stands on a seven", hand(deck.Ace, deck.Seven), noPair, 7, game.Stand},
		{"soft 18 hits a nine", hand(deck.Ace, deck.Seven), noPair, 9, game.Hit},
		{"soft 19 stands", hand(deck.Ace, deck.Eight), noPair, 10, game.Stand},
		{"soft 19 doubles into a six", hand(deck.Ace, deck.Eight), noPair, 6, game.Double},
		{"soft 13 doubles into a five", hand(deck.Ace, deck.Two), noPair, 5, game.Double},
		{"soft 13 hits a four", hand(deck.Ace, deck.Two), noPair, 4, game.Hit},
		{"soft 17 doubles into a three", hand(deck.Ace, deck.Six), noPair, 3, game.Double},
		{"aces always split", hand(deck.Ace, deck.Ace), allActions, 10, game.Split},
		{"unsplittable aces double into a six", hand(deck.Ace, deck.Ace), []game.Action{game.Hit, game.Stand, game.Double}, 6, game.Double},
		{"unsplittable aces hit a ten", hand(deck.Ace, deck.Ace), hitStand, 10, game.Hit},
		{"tens never split", hand(deck.King, deck.King), allActions, 6, game.Stand},
		{"nines split a six", hand(deck.Nine, deck.Nine), allActions, 6, game.Split},
		{"nines stand on a seven", hand(deck.Nine, deck.Nine), allActions, 7, game.Stand},
		{"nines split an eight", hand(deck.Nine, deck.Nine), allActions, 8, game.Split},
		{"eights surrender into an ace", hand(deck.Eight, deck.Eight), allActions, 11, game.Surrender},
		{"eights split a ten", hand(deck.Eight, deck.Eight), allActions, 10, game.Split},
		{"fives double like a ten", hand(deck.Five, deck.Five), allActions, 9, game.Double},
		{"fives hit a ten", hand(deck.Five, deck.Five), allActions, 10, game.Hit},
		{"fours split a five", hand(deck.Four, deck.Four), allActions, 5, game.Split},
		{"fours hit a seven", hand(deck.Four, deck.Four), allActions, 7, game.Hit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Basic{}.GetAction(tt.hand, tt.actions, tt.upcard))
		})
	}
}

// Every non-natural two-card hand against every upcard must resolve to a
// legal action without panicking, whatever subset of actions is on offer.
func TestBasicCoversAllTwoCardHands(t *testing.T) {
	actionSets := [][]game.Action{
		{game.Hit, game.Stand},
		{game.Hit, game.Stand, game.Double},
		{game.Hit, game.Stand, game.Surrender, game.Double},
	}

	for r1 := deck.Two; r1 <= deck.Ace; r1++ {
		for r2 := deck.Two; r2 <= deck.Ace; r2++ {
			h := hand(r1, r2)
			if h.IsBlackjack() {
				// Naturals settle before any decision is made.
				continue
			}
			sets := actionSets
			if h.CanSplit() {
				sets = append(sets, allActions)
			}
			for upcard := 2; upcard <= 11; upcard++ {
				for _, actions := range sets {
					name := fmt.Sprintf("%s+%s vs %d", r1, r2, upcard)
					action := Basic{}.GetAction(h, actions, upcard)
					assert.Contains(t, actions, action, name)
				}
			}
		}
	}
}
