package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lazharichir/blackjack/cards"
)

func newTestHand(t *testing.T, held ...cards.Card) *Hand {
	t.Helper()
	hand, err := NewHand(newTestWager(t, 10_000))
	require.NoError(t, err)
	for _, card := range held {
		require.NoError(t, hand.AddCard(card))
	}
	return hand
}

// splitDealer builds a dealer whose table allows splitting aces and eights.
func splitDealer(t *testing.T) *Dealer {
	t.Helper()
	shoe, err := cards.NewShoe(1, 0)
	require.NoError(t, err)
	dealer, err := NewDealer(shoe, DefaultDealerConfig())
	require.NoError(t, err)
	return dealer
}

func TestCardsValue(t *testing.T) {
	cases := []struct {
		name  string
		held  []cards.Card
		value int
	}{
		{"empty hand", nil, 0},
		{"two aces use one soft ace", []cards.Card{
			cards.New(cards.Ace, cards.Spades),
			cards.New(cards.Ace, cards.Hearts),
		}, 12},
		{"soft seventeen", []cards.Card{
			cards.New(cards.Ace, cards.Spades),
			cards.New(cards.Six, cards.Hearts),
		}, 17},
		{"ace demoted after a big draw", []cards.Card{
			cards.New(cards.Ace, cards.Spades),
			cards.New(cards.Five, cards.Hearts),
			cards.New(cards.Eight, cards.Clubs),
		}, 14},
		{"natural twenty-one", []cards.Card{
			cards.New(cards.Ace, cards.Spades),
			cards.New(cards.King, cards.Hearts),
		}, 21},
		{"court cards count ten each", []cards.Card{
			cards.New(cards.Jack, cards.Spades),
			cards.New(cards.Queen, cards.Hearts),
		}, 20},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.value, newTestHand(t, tc.held...).CardsValue())
		})
	}
}

func TestHandStatus(t *testing.T) {
	t.Run("two aces never bust", func(t *testing.T) {
		hand := newTestHand(t,
			cards.New(cards.Ace, cards.Spades),
			cards.New(cards.Ace, cards.Hearts),
		)
		assert.False(t, hand.IsBustedHand())
		assert.Less(t, hand.CardsValue(), 22)
	})

	t.Run("three court cards bust at thirty", func(t *testing.T) {
		hand := newTestHand(t,
			cards.New(cards.Jack, cards.Spades),
			cards.New(cards.Queen, cards.Hearts),
		)
		// The third court card goes in while the hand is still open at 20.
		require.NoError(t, hand.AddCard(cards.New(cards.King, cards.Clubs)))
		assert.Equal(t, 30, hand.CardsValue())
		assert.True(t, hand.IsBustedHand())
		assert.False(t, hand.IsWinningHand())
	})

	t.Run("ace and king win with two cards", func(t *testing.T) {
		hand := newTestHand(t,
			cards.New(cards.Ace, cards.Spades),
			cards.New(cards.King, cards.Hearts),
		)
		assert.True(t, hand.IsWinningHand())
		assert.True(t, hand.IsNaturalHand())
		assert.Equal(t, 2, hand.Size())
	})

	t.Run("twenty-one with three cards is not a natural", func(t *testing.T) {
		hand := newTestHand(t,
			cards.New(cards.Seven, cards.Spades),
			cards.New(cards.Seven, cards.Hearts),
		)
		require.NoError(t, hand.AddCard(cards.New(cards.Seven, cards.Clubs)))
		assert.True(t, hand.IsWinningHand())
		assert.False(t, hand.IsNaturalHand())
	})

	t.Run("open and closed are complements through a whole hand", func(t *testing.T) {
		hand := newTestHand(t)
		draws := []cards.Card{
			cards.New(cards.Five, cards.Spades),
			cards.New(cards.Nine, cards.Hearts),
			cards.New(cards.King, cards.Clubs),
		}
		assert.Equal(t, hand.IsOpenHand(), !hand.IsClosedHand())
		for _, card := range draws {
			_ = hand.AddCard(card)
			assert.Equal(t, hand.IsOpenHand(), !hand.IsClosedHand())
		}
		assert.True(t, hand.IsBustedHand())
	})
}

func TestAddCard(t *testing.T) {
	t.Run("rejects cards on a closed hand", func(t *testing.T) {
		hand := newTestHand(t,
			cards.New(cards.Ace, cards.Spades),
			cards.New(cards.King, cards.Hearts),
		)
		require.True(t, hand.IsClosedHand())

		err := hand.AddCard(cards.New(cards.Two, cards.Clubs))
		var stateErr IllegalStateError
		assert.ErrorAs(t, err, &stateErr)
		assert.Equal(t, 2, hand.Size())
	})

	t.Run("rejects the same card instance twice", func(t *testing.T) {
		deck := cards.NewDeck()
		card := deck.Cards()[0]

		hand := newTestHand(t)
		require.NoError(t, hand.AddCard(card))

		err := hand.AddCard(card)
		var argErr IllegalArgumentError
		assert.ErrorAs(t, err, &argErr)
	})

	t.Run("allows value-equal cards from different decks", func(t *testing.T) {
		first := cards.NewDeck().Cards()[0]
		second := cards.NewDeck().Cards()[0]
		require.True(t, first.Equals(second))

		hand := newTestHand(t)
		require.NoError(t, hand.AddCard(first))
		assert.NoError(t, hand.AddCard(second))
	})
}

func TestSplit(t *testing.T) {
	dealer := splitDealer(t)

	t.Run("partitions the pair and doubles the action", func(t *testing.T) {
		deckCards := cards.NewDeck().Cards()
		var aces []cards.Card
		for _, card := range deckCards {
			if card.Rank() == cards.Ace {
				aces = append(aces, card)
			}
		}
		require.Len(t, aces, 4)

		hand := newTestHand(t, aces[0], aces[1])
		originalWager := hand.Wager()
		require.True(t, hand.IsSplittableHand(dealer))

		split, err := hand.Split(dealer)
		require.NoError(t, err)

		// Each hand keeps exactly one of the two original cards.
		require.Equal(t, 1, hand.Size())
		require.Equal(t, 1, split.Size())
		kept := hand.Cards()[0]
		moved := split.Cards()[0]
		assert.True(t,
			(kept.SameCard(aces[0]) && moved.SameCard(aces[1])) ||
				(kept.SameCard(aces[1]) && moved.SameCard(aces[0])))

		// Both hands stay open on fresh wagers of the original amount.
		assert.True(t, hand.IsOpenHand())
		assert.True(t, split.IsOpenHand())
		assert.NotSame(t, originalWager, hand.Wager())
		assert.NotSame(t, originalWager, split.Wager())
		assert.Equal(t, int64(10_000), hand.Wager().Amount().MinorUnits())
		assert.Equal(t, int64(10_000), split.Wager().Amount().MinorUnits())
	})

	t.Run("rejects non-splittable hands", func(t *testing.T) {
		var stateErr IllegalStateError

		mixed := newTestHand(t,
			cards.New(cards.Ace, cards.Spades),
			cards.New(cards.King, cards.Hearts),
		)
		_, err := mixed.Split(dealer)
		assert.ErrorAs(t, err, &stateErr)

		// A pair off the dealer's list.
		sevens := newTestHand(t,
			cards.New(cards.Seven, cards.Spades),
			cards.New(cards.Seven, cards.Hearts),
		)
		_, err = sevens.Split(dealer)
		assert.ErrorAs(t, err, &stateErr)

		// Three cards are never splittable.
		three := newTestHand(t,
			cards.New(cards.Eight, cards.Spades),
			cards.New(cards.Eight, cards.Hearts),
		)
		require.NoError(t, three.AddCard(cards.New(cards.Two, cards.Clubs)))
		_, err = three.Split(dealer)
		assert.ErrorAs(t, err, &stateErr)
	})
}

func TestHandDoubleDown(t *testing.T) {
	hand := newTestHand(t,
		cards.New(cards.Five, cards.Spades),
		cards.New(cards.Six, cards.Hearts),
	)
	original := hand.Wager()

	doubled, err := hand.DoubleDown()
	require.NoError(t, err)
	assert.Same(t, doubled, hand.Wager())
	assert.Equal(t, int64(20_000), hand.Wager().Amount().MinorUnits())

	settlement, err := original.Settlement()
	require.NoError(t, err)
	assert.Equal(t, OutcomeReplaced, settlement.Outcome)
}

func TestHandSettlement(t *testing.T) {
	t.Run("settlement requires the mark", func(t *testing.T) {
		hand := newTestHand(t)
		require.NoError(t, hand.Wager().Settle(OutcomeStandoff))

		_, err := hand.Settlement()
		var stateErr IllegalStateError
		require.ErrorAs(t, err, &stateErr)

		hand.MarkSettled()
		assert.True(t, hand.IsSettledHand())
		settlement, err := hand.Settlement()
		require.NoError(t, err)
		assert.Equal(t, OutcomeStandoff, settlement.Outcome)
	})

	t.Run("marked hand with an unsettled wager still fails", func(t *testing.T) {
		hand := newTestHand(t)
		hand.MarkSettled()
		_, err := hand.Settlement()
		var stateErr IllegalStateError
		assert.ErrorAs(t, err, &stateErr)
	})
}

func TestNewHandNeedsWager(t *testing.T) {
	_, err := NewHand(nil)
	var nilErr NullReferenceError
	assert.ErrorAs(t, err, &nilErr)
}

func TestDealerHand(t *testing.T) {
	hand := NewDealerHand()
	assert.Nil(t, hand.Wager())

	require.NoError(t, hand.AddCard(cards.New(cards.Ace, cards.Spades)))
	require.NoError(t, hand.AddCard(cards.New(cards.Six, cards.Hearts)))
	assert.Equal(t, 17, hand.CardsValue())

	t.Run("cannot double down", func(t *testing.T) {
		_, err := hand.DoubleDown()
		var stateErr IllegalStateError
		assert.ErrorAs(t, err, &stateErr)
	})

	t.Run("cannot split", func(t *testing.T) {
		pair := NewDealerHand()
		require.NoError(t, pair.AddCard(cards.New(cards.Eight, cards.Spades)))
		require.NoError(t, pair.AddCard(cards.New(cards.Eight, cards.Hearts)))
		_, err := pair.Split(splitDealer(t))
		var stateErr IllegalStateError
		assert.ErrorAs(t, err, &stateErr)
	})

	t.Run("no settlement", func(t *testing.T) {
		hand.MarkSettled()
		_, err := hand.Settlement()
		var stateErr IllegalStateError
		assert.ErrorAs(t, err, &stateErr)
	})
}
