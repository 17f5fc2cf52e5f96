package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCardValue(t *testing.T) {
	tests := []struct {
		rank  Rank
		value int
	}{
		{Two, 2},
		{Three, 3},
		{Six, 6},
		{Nine, 9},
		{Ten, 10},
		{Jack, 10},
		{Queen, 10},
		{King, 10},
		{Ace, 11},
	}

	for _, tt := range tests {
		t.Run(tt.rank.String(), func(t *testing.T) {
			assert.Equal(t, tt.value, NewCard(Spades, tt.rank).Value())
		})
	}
}

func TestCardString(t *testing.T) {
	assert.Equal(t, "A♠", NewCard(Spades, Ace).String())
	assert.Equal(t, "T♥", NewCard(Hearts, Ten).String())
	assert.Equal(t, "2♣", NewCard(Clubs, Two).String())
	assert.Equal(t, "K♦", NewCard(Diamonds, King).String())
}

func TestCardIsRed(t *testing.T) {
	assert.True(t, NewCard(Hearts, Five).IsRed())
	assert.True(t, NewCard(Diamonds, Five).IsRed())
	assert.False(t, NewCard(Spades, Five).IsRed())
	assert.False(t, NewCard(Clubs, Five).IsRed())
}

func TestCardIsAce(t *testing.T) {
	assert.True(t, NewCard(Spades, Ace).IsAce())
	assert.False(t, NewCard(Spades, King).IsAce())
}
