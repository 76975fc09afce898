// Package render turns a round into what a player is allowed to see: the
// dealer's first card stays face down until the player stands.
package render

import (
	"fmt"
	"strings"

	"blackjack/internal/game"
)

const CardBack = "🂠"

type Side struct {
	Cards     []string `json:"cards"`
	Score     *int     `json:"score,omitempty"`
	Blackjack bool     `json:"blackjack"`
	Hidden    int      `json:"hidden,omitempty"`
}

type Table struct {
	CardsLeft int    `json:"cards_left"`
	Turn      string `json:"turn"`
	Player    Side   `json:"player"`
	Dealer    Side   `json:"dealer"`
	Result    string `json:"result"`

	turn   game.Turn
	result game.Result
}

func Snapshot(s game.State) Table {
	playerScore := s.PlayerScore()

	t := Table{
		CardsLeft: s.Deck.Remaining(),
		Turn:      s.Turn.String(),
		Player: Side{
			Cards:     cardNames(s.PlayerHand),
			Score:     &playerScore,
			Blackjack: s.PlayerHand.IsBlackjack(),
		},
		turn:   s.Turn,
		result: game.Outcome(s),
	}
	t.Result = t.result.String()

	if s.Turn == game.PlayerTurn && len(s.DealerHand) > 0 {
		// закрытая первая карта дилера
		cards := cardNames(s.DealerHand)
		cards[0] = CardBack
		t.Dealer = Side{Cards: cards, Hidden: 1}
		return t
	}

	dealerScore := s.DealerScore()
	t.Dealer = Side{
		Cards:     cardNames(s.DealerHand),
		Score:     &dealerScore,
		Blackjack: s.DealerHand.IsBlackjack(),
	}
	return t
}

// Text renders the table for chat and console shells.
func Text(t Table) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "🂠 В колоде осталось карт: %d\n\n", t.CardsLeft)
	sb.WriteString(sideLine("🎴 Вы", t.Player))
	sb.WriteString(sideLine("🃏 Дилер", t.Dealer))
	sb.WriteString("\n")

	if t.result != game.ResultNone {
		sb.WriteString(ResultText(t.result))
	} else {
		sb.WriteString(TurnText(t.turn))
	}

	return sb.String()
}

func State(s game.State) string {
	return Text(Snapshot(s))
}

func ResultText(r game.Result) string {
	switch r {
	case game.ResultPlayerWin:
		return "🎉 Вы выиграли!"
	case game.ResultDealerWin:
		return "😔 Дилер выиграл!"
	case game.ResultDraw:
		return "🤝 Ничья!"
	default:
		return "Игра продолжается"
	}
}

func TurnText(t game.Turn) string {
	if t == game.PlayerTurn {
		return "👉 Ваш ход"
	}
	return "🃏 Ход дилера"
}

func sideLine(label string, s Side) string {
	line := fmt.Sprintf("%s: %s", label, strings.Join(s.Cards, " "))
	if s.Score != nil {
		line += fmt.Sprintf(" (%d)", *s.Score)
	}
	if s.Blackjack {
		line += " — BLACKJACK!"
	}
	return line + "\n"
}

func cardNames(h game.Hand) []string {
	names := make([]string, len(h))
	for i, c := range h {
		names[i] = c.String()
	}
	return names
}
