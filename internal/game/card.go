package game

import "fmt"

// Suit масть карты
type Suit int

const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

var suits = []Suit{Clubs, Diamonds, Hearts, Spades}

func (s Suit) String() string {
	switch s {
	case Clubs:
		return "♣"
	case Diamonds:
		return "♦"
	case Hearts:
		return "♥"
	case Spades:
		return "♠"
	default:
		return "?"
	}
}

// Rank достоинство карты
type Rank int

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

var ranks = []Rank{Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King, Ace}

func (r Rank) String() string {
	switch r {
	case Ten:
		return "10"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	}
	if r >= Two && r <= Nine {
		return fmt.Sprintf("%d", int(r))
	}
	return "?"
}

// Value returns the blackjack value of the rank. Aces count as 11 here,
// demotion to 1 happens during hand scoring.
func (r Rank) Value() int {
	switch r {
	case Ace:
		return 11
	case Ten, Jack, Queen, King:
		return 10
	case Two, Three, Four, Five, Six, Seven, Eight, Nine:
		return int(r)
	default:
		return 0
	}
}

// IsTenValued is true for 10, J, Q and K.
func (r Rank) IsTenValued() bool {
	return r.Value() == 10
}

type Card struct {
	Suit Suit `json:"suit"`
	Rank Rank `json:"rank"`
}

func NewCard(suit Suit, rank Rank) Card {
	return Card{Suit: suit, Rank: rank}
}

// String returns e.g. "A♠", "10♥"
func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}

func (c Card) IsAce() bool {
	return c.Rank == Ace
}
