package game

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lox/blackjack/internal/deck"
)

func ace() deck.Card {
	return deck.NewCard(deck.Spades, deck.Ace)
}

func face() deck.Card {
	return deck.NewCard(deck.Clubs, deck.King)
}

func low(n int) deck.Card {
	if n < 2 || n > 9 {
		panic("low card must be 2-9")
	}
	return deck.NewCard(deck.Hearts, deck.Rank(n))
}

func TestHandValue(t *testing.T) {
	tests := []struct {
		name  string
		cards []deck.Card
		value int
		soft  bool
	}{
		{"two low cards", []deck.Card{low(2), low(3)}, 5, false},
		{"twenty", []deck.Card{face(), face()}, 20, false},
		{"soft seventeen", []deck.Card{ace(), low(6)}, 17, true},
		{"hardened seventeen", []deck.Card{ace(), low(6), face()}, 17, false},
		{"two aces", []deck.Card{ace(), ace()}, 12, true},
		{"two aces and a nine", []deck.Card{ace(), ace(), low(9)}, 21, true},
		{"drawing on twenty one keeps reducing", []deck.Card{ace(), ace(), low(9), face()}, 21, false},
		{"natural", []deck.Card{ace(), face()}, 21, true},
		{"bust", []deck.Card{face(), face(), low(5)}, 25, false},
		{"ace saves a bust", []deck.Card{face(), low(5), ace()}, 16, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hand := NewHand("", 0, tt.cards...)
			assert.Equal(t, tt.value, hand.Value())
			assert.Equal(t, tt.soft, hand.IsSoft())
		})
	}
}

func TestHandBustAndBlackjack(t *testing.T) {
	assert.True(t, NewHand("", 0, face(), face(), low(5)).IsBust())
	assert.False(t, NewHand("", 0, face(), face()).IsBust())

	assert.True(t, NewHand("", 0, ace(), face()).IsBlackjack())
	assert.True(t, NewHand("", 0, low(7), low(7), low(7)).IsBlackjack())
	assert.False(t, NewHand("", 0, face(), face()).IsBlackjack())
}

func TestHandCanSplit(t *testing.T) {
	assert.True(t, NewHand("", 0, face(), face()).CanSplit())
	assert.True(t, NewHand("", 0, ace(), ace()).CanSplit())

	// A king and a queen are both worth ten but are not a pair.
	king := deck.NewCard(deck.Spades, deck.King)
	queen := deck.NewCard(deck.Spades, deck.Queen)
	assert.False(t, NewHand("", 0, king, queen).CanSplit())

	assert.False(t, NewHand("", 0, low(2), low(3)).CanSplit())
	assert.False(t, NewHand("", 0, low(2), low(2), low(2)).CanSplit())
}

func TestHandDouble(t *testing.T) {
	hand := NewHand("Player", 10, low(5), low(6))
	hand.Double()
	assert.Equal(t, 20, hand.Wager())
}

func TestHandSurrender(t *testing.T) {
	hand := NewHand("Player", 10, face(), low(6))
	assert.False(t, hand.IsSurrendered())
	hand.Surrender()
	assert.True(t, hand.IsSurrendered())
}

func TestHandString(t *testing.T) {
	hand := NewHand("Player", 10, ace(), deck.NewCard(deck.Diamonds, deck.Nine))
	assert.Equal(t, "Player: A♠  9♦", hand.String())

	unnamed := NewHand("", 0, ace())
	assert.Equal(t, "A♠", unnamed.String())
}
