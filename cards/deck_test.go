package cards

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDeckHasEveryCombinationOnce(t *testing.T) {
	deck := NewDeck()
	require.Equal(t, DeckSize, deck.Size())

	seen := make(map[string]int)
	for _, card := range deck.Cards() {
		seen[card.String()]++
	}

	assert.Len(t, seen, DeckSize)
	for combo, count := range seen {
		assert.Equal(t, 1, count, combo)
	}
}

func TestDeckIdentity(t *testing.T) {
	t.Run("every card carries the deck's identity", func(t *testing.T) {
		deck := NewDeck()
		for _, card := range deck.Cards() {
			assert.False(t, card.ID().IsZero())
			assert.Equal(t, deck.ID(), card.ID().DeckID())
			assert.True(t, deck.Contains(card))
		}
	})

	t.Run("value-equal cards from another deck do not belong", func(t *testing.T) {
		deck := NewDeck()
		other := NewDeck()
		for _, card := range other.Cards() {
			assert.False(t, deck.Contains(card))
		}
		assert.False(t, deck.Contains(New(Ace, Spades)))
	})
}

func TestDeckShuffleKeepsTheSameCards(t *testing.T) {
	deck := NewDeck()
	before := deck.Cards()

	deck.Shuffle(rand.New(rand.NewSource(1)))
	after := deck.Cards()

	require.Len(t, after, len(before))
	ids := make(map[CardID]bool, len(before))
	for _, card := range before {
		ids[card.ID()] = true
	}
	for _, card := range after {
		assert.True(t, ids[card.ID()])
	}
}
