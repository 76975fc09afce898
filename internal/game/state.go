package game

import (
	"fmt"
	"slices"
)

// Turn чей сейчас ход
type Turn int

const (
	PlayerTurn Turn = iota
	DealerTurn
)

func (t Turn) String() string {
	switch t {
	case PlayerTurn:
		return "player_turn"
	case DealerTurn:
		return "dealer_turn"
	default:
		return "unknown_turn"
	}
}

type Result int

const (
	ResultNone Result = iota
	ResultPlayerWin
	ResultDealerWin
	ResultDraw
)

func (r Result) String() string {
	switch r {
	case ResultNone:
		return "no_result"
	case ResultPlayerWin:
		return "player_win"
	case ResultDealerWin:
		return "dealer_win"
	case ResultDraw:
		return "draw"
	default:
		return "unknown_result"
	}
}

// State одного раунда. Переходы возвращают новое значение и не трогают старое.
type State struct {
	PlayerHand Hand `json:"player_hand"`
	DealerHand Hand `json:"dealer_hand"`
	Deck       Deck `json:"deck"`
	Turn       Turn `json:"turn"`
}

// Setup shuffles a fresh deck and deals two cards to the player from the
// top, then two to the dealer.
func Setup(rng Rand) State {
	d := Shuffle(NewDeck(), rng)
	n := len(d)

	return State{
		PlayerHand: Hand(slices.Clone(d[n-2 : n])),
		DealerHand: Hand(slices.Clone(d[n-4 : n-2])),
		Deck:       d[: n-4 : n-4],
		Turn:       PlayerTurn,
	}
}

// PlayerHits deals one card to the player. The turn is not checked and a
// bust does not end the player's turn; shells gate this on PlayerTurn.
func PlayerHits(s State) (State, error) {
	card, remaining, err := TakeCard(s.Deck)
	if err != nil {
		return s, fmt.Errorf("player hits: %w", err)
	}

	next := s
	next.Deck = remaining
	next.PlayerHand = appendCard(s.PlayerHand, card)
	return next, nil
}

// PlayerStands gives the dealer a single DealerStep and hands the turn to the
// dealer. Once in DealerTurn it only returns a copy.
func PlayerStands(s State) (State, error) {
	next := s
	if s.Turn == PlayerTurn {
		var err error
		next, err = DealerStep(s)
		if err != nil {
			return s, fmt.Errorf("player stands: %w", err)
		}
	}

	next.Turn = DealerTurn
	return next, nil
}

// DealerStep is the dealer policy: one card while the dealer is below
// DealerStandsOn, nothing otherwise. The turn is not changed.
func DealerStep(s State) (State, error) {
	if CalculateHandScore(s.DealerHand) >= DealerStandsOn {
		return s, nil
	}

	card, remaining, err := TakeCard(s.Deck)
	if err != nil {
		return s, fmt.Errorf("dealer draws: %w", err)
	}

	next := s
	next.Deck = remaining
	next.DealerHand = appendCard(s.DealerHand, card)
	return next, nil
}

// DetermineResult scores the round as it stands. It never returns
// ResultNone; use Outcome when the round may still be in progress.
func DetermineResult(s State) Result {
	playerScore := CalculateHandScore(s.PlayerHand)
	dealerScore := CalculateHandScore(s.DealerHand)
	playerBJ := HasBlackjack(s.PlayerHand)
	dealerBJ := HasBlackjack(s.DealerHand)

	switch {
	case playerScore > BlackjackScore:
		return ResultDealerWin
	case dealerScore > BlackjackScore:
		return ResultPlayerWin
	case playerBJ && !dealerBJ:
		return ResultPlayerWin
	case dealerBJ && !playerBJ:
		return ResultDealerWin
	case playerScore == dealerScore:
		return ResultDraw
	case playerScore > dealerScore:
		return ResultPlayerWin
	default:
		return ResultDealerWin
	}
}

// Outcome is ResultNone while the player is still acting.
func Outcome(s State) Result {
	if s.Turn != DealerTurn {
		return ResultNone
	}
	return DetermineResult(s)
}

func (s State) PlayerScore() int {
	return CalculateHandScore(s.PlayerHand)
}

func (s State) DealerScore() int {
	return CalculateHandScore(s.DealerHand)
}

// CardsInPlay counts deck plus both hands; 52 for a well-formed round.
func (s State) CardsInPlay() int {
	return len(s.Deck) + len(s.PlayerHand) + len(s.DealerHand)
}

func appendCard(h Hand, c Card) Hand {
	out := make(Hand, len(h), len(h)+1)
	copy(out, h)
	return append(out, c)
}
