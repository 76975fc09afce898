package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blackjack/internal/randutil"
)

func TestSetup(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		s := Setup(randutil.New(seed))

		assert.Len(t, s.PlayerHand, 2)
		assert.Len(t, s.DealerHand, 2)
		assert.Len(t, s.Deck, 48)
		assert.Equal(t, PlayerTurn, s.Turn)
		assert.Equal(t, DeckSize, s.CardsInPlay())

		all := append(append(append(Deck{}, s.Deck...), s.PlayerHand...), s.DealerHand...)
		assert.ElementsMatch(t, NewDeck(), all)
	}
}

func TestSetupDealsFromTheTop(t *testing.T) {
	s := Setup(noShuffle{})

	assert.Equal(t, Hand{NewCard(Spades, King), NewCard(Spades, Ace)}, s.PlayerHand)
	assert.Equal(t, Hand{NewCard(Spades, Jack), NewCard(Spades, Queen)}, s.DealerHand)
	assert.Equal(t, NewCard(Spades, Ten), s.Deck[len(s.Deck)-1])
}

func TestPlayerHits(t *testing.T) {
	s := Setup(randutil.New(3))
	top := s.Deck[len(s.Deck)-1]

	next, err := PlayerHits(s)
	require.NoError(t, err)

	assert.Len(t, next.PlayerHand, 3)
	assert.Equal(t, top, next.PlayerHand[2])
	assert.Len(t, next.Deck, 47)
	assert.Equal(t, PlayerTurn, next.Turn)
	assert.Equal(t, DeckSize, next.CardsInPlay())

	// previous state is untouched
	assert.Len(t, s.PlayerHand, 2)
	assert.Len(t, s.Deck, 48)
}

func TestPlayerHitsKeepsTurnOnBust(t *testing.T) {
	s := State{
		PlayerHand: hand(King, Queen),
		DealerHand: hand(Five, Six),
		Deck:       Deck{NewCard(Hearts, Nine)},
		Turn:       PlayerTurn,
	}

	next, err := PlayerHits(s)
	require.NoError(t, err)

	assert.True(t, next.PlayerHand.IsBust())
	assert.Equal(t, PlayerTurn, next.Turn)
	assert.Equal(t, ResultNone, Outcome(next))
}

func TestPlayerHitsExhaustedDeck(t *testing.T) {
	s := State{PlayerHand: hand(Two, Three), DealerHand: hand(Four, Five), Turn: PlayerTurn}

	next, err := PlayerHits(s)
	assert.ErrorIs(t, err, ErrDeckExhausted)
	assert.Equal(t, s, next)
}

func TestSuccessiveHitsDoNotAlias(t *testing.T) {
	s := Setup(randutil.New(11))

	a, err := PlayerHits(s)
	require.NoError(t, err)
	b, err := PlayerHits(s)
	require.NoError(t, err)
	c, err := PlayerHits(a)
	require.NoError(t, err)

	assert.Equal(t, a.PlayerHand, b.PlayerHand)
	assert.Len(t, c.PlayerHand, 4)
	assert.Equal(t, a.PlayerHand, c.PlayerHand[:3])
	assert.Len(t, a.PlayerHand, 3)
}

func TestPlayerStands(t *testing.T) {
	t.Run("dealer below seventeen draws one card", func(t *testing.T) {
		s := State{
			PlayerHand: hand(Ten, Eight),
			DealerHand: hand(Two, Three),
			Deck:       Deck{NewCard(Clubs, Four), NewCard(Clubs, Five)},
			Turn:       PlayerTurn,
		}

		next, err := PlayerStands(s)
		require.NoError(t, err)

		assert.Equal(t, DealerTurn, next.Turn)
		require.Len(t, next.DealerHand, 3)
		assert.Equal(t, NewCard(Clubs, Five), next.DealerHand[2])
		assert.Len(t, next.Deck, 1)
		assert.Equal(t, 10, next.DealerScore(), "single step, dealer stays below 17")
	})

	t.Run("dealer on sixteen draws", func(t *testing.T) {
		s := State{
			PlayerHand: hand(Ten, Eight),
			DealerHand: hand(Ten, Six),
			Deck:       Deck{NewCard(Clubs, Two)},
			Turn:       PlayerTurn,
		}

		next, err := PlayerStands(s)
		require.NoError(t, err)
		assert.Len(t, next.DealerHand, 3)
		assert.Empty(t, next.Deck)
	})

	t.Run("dealer on seventeen stands", func(t *testing.T) {
		s := State{
			PlayerHand: hand(Ten, Eight),
			DealerHand: hand(Ten, Seven),
			Deck:       Deck{NewCard(Clubs, Two)},
			Turn:       PlayerTurn,
		}

		next, err := PlayerStands(s)
		require.NoError(t, err)
		assert.Equal(t, DealerTurn, next.Turn)
		assert.Len(t, next.DealerHand, 2)
		assert.Len(t, next.Deck, 1)
	})

	t.Run("soft seventeen stands", func(t *testing.T) {
		s := State{
			PlayerHand: hand(Ten, Eight),
			DealerHand: hand(Ace, Six),
			Deck:       Deck{NewCard(Clubs, Two)},
			Turn:       PlayerTurn,
		}

		next, err := PlayerStands(s)
		require.NoError(t, err)
		assert.Len(t, next.DealerHand, 2)
	})

	t.Run("already dealer turn has no deck effect", func(t *testing.T) {
		s := State{
			PlayerHand: hand(Ten, Eight),
			DealerHand: hand(Two, Three),
			Deck:       Deck{NewCard(Clubs, Four)},
			Turn:       DealerTurn,
		}

		next, err := PlayerStands(s)
		require.NoError(t, err)
		assert.Equal(t, s, next)
	})

	t.Run("exhausted deck", func(t *testing.T) {
		s := State{
			PlayerHand: hand(Ten, Eight),
			DealerHand: hand(Two, Three),
			Turn:       PlayerTurn,
		}

		_, err := PlayerStands(s)
		assert.ErrorIs(t, err, ErrDeckExhausted)
	})
}

func TestPlayerStandsAlwaysEndsOnDealerTurn(t *testing.T) {
	for seed := int64(0); seed < 50; seed++ {
		s := Setup(randutil.New(seed))

		next, err := PlayerStands(s)
		require.NoError(t, err)

		assert.Equal(t, DealerTurn, next.Turn)
		assert.Equal(t, DeckSize, next.CardsInPlay())
		assert.NotEqual(t, ResultNone, Outcome(next))
	}
}

func TestDealerStep(t *testing.T) {
	s := State{
		PlayerHand: hand(Ten, Eight),
		DealerHand: hand(Two, Three),
		Deck:       Deck{NewCard(Clubs, Four), NewCard(Clubs, Five)},
		Turn:       DealerTurn,
	}

	next, err := DealerStep(s)
	require.NoError(t, err)
	assert.Len(t, next.DealerHand, 3)
	assert.Equal(t, DealerTurn, next.Turn)
	assert.Len(t, s.DealerHand, 2)
}

func TestDetermineResult(t *testing.T) {
	tests := []struct {
		name   string
		player Hand
		dealer Hand
		want   Result
	}{
		{"player bust", hand(King, Queen, Two), hand(Two, Three), ResultDealerWin},
		{"both bust", hand(King, Queen, Two), hand(King, Queen, Five), ResultDealerWin},
		{"dealer bust", hand(Ten, Five), hand(King, Six, Nine), ResultPlayerWin},
		{"player blackjack beats twenty", hand(Ace, King), hand(Ten, Queen), ResultPlayerWin},
		{"player blackjack beats three card 21", hand(Ace, Jack), hand(Seven, Seven, Seven), ResultPlayerWin},
		{"dealer blackjack beats three card 21", hand(Seven, Seven, Seven), hand(Ace, Ten), ResultDealerWin},
		{"both blackjack", hand(Ace, King), hand(Queen, Ace), ResultDraw},
		{"equal scores", hand(Ten, Eight), hand(Nine, Nine), ResultDraw},
		{"player higher", hand(Ten, Nine), hand(Ten, Eight), ResultPlayerWin},
		{"dealer higher", hand(Ten, Seven), hand(Ten, Eight), ResultDealerWin},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := State{PlayerHand: tt.player, DealerHand: tt.dealer, Turn: DealerTurn}
			assert.Equal(t, tt.want, DetermineResult(s))
			assert.Equal(t, tt.want, Outcome(s))
		})
	}
}

func TestOutcomeDuringPlayerTurn(t *testing.T) {
	s := State{PlayerHand: hand(Ace, King), DealerHand: hand(Ten, Nine), Turn: PlayerTurn}

	assert.Equal(t, ResultNone, Outcome(s))
	assert.Equal(t, ResultPlayerWin, DetermineResult(s))
}

func TestEnumStrings(t *testing.T) {
	assert.Equal(t, "player_turn", PlayerTurn.String())
	assert.Equal(t, "dealer_turn", DealerTurn.String())
	assert.Equal(t, "no_result", ResultNone.String())
	assert.Equal(t, "player_win", ResultPlayerWin.String())
	assert.Equal(t, "dealer_win", ResultDealerWin.String())
	assert.Equal(t, "draw", ResultDraw.String())
}
