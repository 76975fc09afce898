package game

const (
	BlackjackScore = 21
	// DealerStandsOn is the lowest score the dealer stands on.
	DealerStandsOn = 17
)

// Hand карты одного участника
type Hand []Card

func CalculateHandScore(hand Hand) int {
	score := 0
	aces := 0

	for _, card := range hand {
		score += card.Rank.Value()
		if card.IsAce() {
			aces++
		}
	}

	// туз считается за 1, пока есть перебор
	for score > BlackjackScore && aces > 0 {
		score -= 10
		aces--
	}

	return score
}

// HasBlackjack reports a natural: exactly two cards, an ace and a ten-valued card.
func HasBlackjack(hand Hand) bool {
	if len(hand) != 2 {
		return false
	}

	first, second := hand[0].Rank, hand[1].Rank
	return (first == Ace && second.IsTenValued()) ||
		(first.IsTenValued() && second == Ace)
}

func IsBust(hand Hand) bool {
	return CalculateHandScore(hand) > BlackjackScore
}

func (h Hand) Score() int {
	return CalculateHandScore(h)
}

func (h Hand) IsBlackjack() bool {
	return HasBlackjack(h)
}

func (h Hand) IsBust() bool {
	return IsBust(h)
}
