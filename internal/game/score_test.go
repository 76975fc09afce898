package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func hand(ranks ...Rank) Hand {
	h := make(Hand, 0, len(ranks))
	for i, r := range ranks {
		h = append(h, NewCard(suits[i%len(suits)], r))
	}
	return h
}

func TestCalculateHandScore(t *testing.T) {
	tests := []struct {
		name string
		hand Hand
		want int
	}{
		{"empty", Hand{}, 0},
		{"ace king", hand(Ace, King), 21},
		{"two aces", hand(Ace, Ace), 12},
		{"two aces and nine", hand(Ace, Ace, Nine), 21},
		{"king queen two", hand(King, Queen, Two), 22},
		{"soft seventeen", hand(Ace, Six), 17},
		{"ace becomes hard", hand(Ace, Six, Ten), 17},
		{"four aces", hand(Ace, Ace, Ace, Ace), 14},
		{"numeric cards", hand(Two, Three, Four), 9},
		{"ten and face", hand(Ten, Jack), 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CalculateHandScore(tt.hand))
			assert.Equal(t, tt.want, tt.hand.Score())
		})
	}
}

func TestHasBlackjack(t *testing.T) {
	tests := []struct {
		name string
		hand Hand
		want bool
	}{
		{"ace king", hand(Ace, King), true},
		{"ten ace", hand(Ten, Ace), true},
		{"jack ace", hand(Jack, Ace), true},
		{"ace queen", hand(Ace, Queen), true},
		{"three card 21", hand(Ace, King, Two), false},
		{"seven seven seven", hand(Seven, Seven, Seven), false},
		{"nine king", hand(Nine, King), false},
		{"two aces", hand(Ace, Ace), false},
		{"single ace", hand(Ace), false},
		{"empty", Hand{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HasBlackjack(tt.hand))
			assert.Equal(t, tt.want, tt.hand.IsBlackjack())
		})
	}
}

func TestIsBust(t *testing.T) {
	assert.True(t, IsBust(hand(King, Queen, Two)))
	assert.False(t, IsBust(hand(Ace, Ace, Nine)))
	assert.False(t, hand(King, Ace).IsBust())
}
