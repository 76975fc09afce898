package game

import "errors"

// ErrDeckExhausted is returned when drawing from an empty deck.
var ErrDeckExhausted = errors.New("deck is exhausted")

const DeckSize = 52

// Rand is the randomness a shuffle needs. *math/rand/v2.Rand satisfies it.
type Rand interface {
	IntN(n int) int
}

// Deck колода, последняя карта считается верхней
type Deck []Card

// NewDeck returns the 52 cards in suit-major, rank-minor declaration order.
func NewDeck() Deck {
	d := make(Deck, 0, DeckSize)
	for _, suit := range suits {
		for _, rank := range ranks {
			d = append(d, NewCard(suit, rank))
		}
	}
	return d
}

// Shuffle returns a Fisher-Yates permutation of d. The input is left untouched.
func Shuffle(d Deck, rng Rand) Deck {
	out := make(Deck, len(d))
	copy(out, d)

	for i := len(out) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// TakeCard removes the top (last) card. remaining never shares spare
// capacity with d, so appending to it cannot clobber d.
func TakeCard(d Deck) (card Card, remaining Deck, err error) {
	if len(d) == 0 {
		return Card{}, nil, ErrDeckExhausted
	}

	n := len(d) - 1
	return d[n], d[:n:n], nil
}

func (d Deck) Remaining() int {
	return len(d)
}
