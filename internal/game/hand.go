package game

import (
	"strings"

	"github.com/lox/blackjack/internal/deck"
)

// Hand is an append-only sequence of cards with a wager attached. Cards are
// never removed once dealt; all valuation is derived from the card sequence
// on demand.
type Hand struct {
	cards       []deck.Card
	name        string
	wager       int
	surrendered bool
}

// NewHand creates a hand holding the given cards.
func NewHand(name string, wager int, cards ...deck.Card) *Hand {
	return &Hand{
		cards: append([]deck.Card(nil), cards...),
		name:  name,
		wager: wager,
	}
}

// Add appends a card to the hand.
func (h *Hand) Add(card deck.Card) {
	h.cards = append(h.cards, card)
}

// Cards returns the cards in deal order.
func (h *Hand) Cards() []deck.Card {
	return h.cards
}

// Len returns the number of cards in the hand.
func (h *Hand) Len() int {
	return len(h.cards)
}

// Name returns the hand's display name.
func (h *Hand) Name() string {
	return h.name
}

// Wager returns the amount riding on this hand.
func (h *Hand) Wager() int {
	return h.wager
}

// value sums all cards counting every ace as 11, then reduces aces one at a
// time while the total is over 21. The second return reports softness: an
// ace is still counted as 11 after the reduction loop.
func (h *Hand) value() (int, bool) {
	total := 0
	aces := 0
	for _, c := range h.cards {
		total += c.Value()
		if c.IsAce() {
			aces++
		}
	}
	for total > 21 && aces > 0 {
		total -= 10
		aces--
	}
	return total, aces > 0
}

// Value returns the best total for the hand.
func (h *Hand) Value() int {
	v, _ := h.value()
	return v
}

// IsSoft returns true if an ace is still counted as 11.
func (h *Hand) IsSoft() bool {
	_, soft := h.value()
	return soft
}

// HasAce returns true if the hand contains an ace.
func (h *Hand) HasAce() bool {
	for _, c := range h.cards {
		if c.IsAce() {
			return true
		}
	}
	return false
}

// IsBust returns true if the hand's value exceeds 21.
func (h *Hand) IsBust() bool {
	return h.Value() > 21
}

// IsBlackjack returns true if the hand's value is exactly 21.
func (h *Hand) IsBlackjack() bool {
	return h.Value() == 21
}

// CanSplit reports whether the hand is a splittable pair: exactly two cards
// of identical rank. Rank identity is deliberate — a king and a queen are
// both worth 10 but do not form a splittable pair.
func (h *Hand) CanSplit() bool {
	return len(h.cards) == 2 && h.cards[0].Rank == h.cards[1].Rank
}

// Double doubles the hand's wager.
func (h *Hand) Double() {
	h.wager *= 2
}

// Surrender marks the hand surrendered.
func (h *Hand) Surrender() {
	h.surrendered = true
}

// IsSurrendered returns true if the hand was surrendered.
func (h *Hand) IsSurrendered() bool {
	return h.surrendered
}

// String renders the hand as "Name: A♠  9♦".
func (h *Hand) String() string {
	strs := make([]string, len(h.cards))
	for i, c := range h.cards {
		strs[i] = c.String()
	}
	cards := strings.Join(strs, "  ")
	if h.name == "" {
		return cards
	}
	return h.name + ": " + cards
}
