package deck

import (
	"errors"
	rand "math/rand/v2"
)

// ErrEmptyShoe is returned by Draw when the shoe has no cards left.
// Callers treat it as abnormal: a session that drains the shoe mid-round
// ends immediately.
var ErrEmptyShoe = errors.New("empty shoe: increase num decks or min shoe percent to avoid this")

// Shoe is a shuffled pool of N standard 52-card decks, drawn without
// replacement and never refilled within a session.
type Shoe struct {
	cards []Card
	size  int
}

// NewShoe builds numDecks decks' worth of cards and shuffles them once
// with the provided rng.
func NewShoe(numDecks int, rng *rand.Rand) *Shoe {
	size := numDecks * 52
	cards := make([]Card, 0, size)
	for d := 0; d < numDecks; d++ {
		for suit := Spades; suit <= Clubs; suit++ {
			for rank := Two; rank <= Ace; rank++ {
				cards = append(cards, NewCard(suit, rank))
			}
		}
	}

	rng.Shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})

	return &Shoe{cards: cards, size: size}
}

// Draw removes and returns the top card of the shoe.
func (s *Shoe) Draw() (Card, error) {
	if len(s.cards) == 0 {
		return Card{}, ErrEmptyShoe
	}

	card := s.cards[len(s.cards)-1]
	s.cards = s.cards[:len(s.cards)-1]
	return card, nil
}

// Remaining returns the number of cards left in the shoe.
func (s *Shoe) Remaining() int {
	return len(s.cards)
}

// Size returns the number of cards the shoe was built with.
func (s *Shoe) Size() int {
	return s.size
}

// PercentFull returns how much of the shoe remains, as a percentage of its
// original size.
func (s *Shoe) PercentFull() float64 {
	return float64(len(s.cards)) / float64(s.size) * 100.0
}
