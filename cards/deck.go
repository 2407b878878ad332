package cards

import (
	"math/rand"

	"github.com/google/uuid"
)

// DeckSize is the number of cards in one standard deck.
const DeckSize = 52

// CardID identifies one physical card instance within one deck. The zero
// value means "no identity" (a card constructed outside any deck).
type CardID struct {
	deck  uuid.UUID
	index int
}

// DeckID returns the identifier of the deck the card belongs to.
func (id CardID) DeckID() uuid.UUID { return id.deck }

// IsZero reports whether the card has no deck identity.
func (id CardID) IsZero() bool { return id.deck == uuid.Nil }

// Deck owns a standard set of 52 cards. It is the identity arena: every
// card it produces is stamped with a CardID unique within the deck, so two
// value-equal cards from different decks remain distinguishable.
type Deck struct {
	id    uuid.UUID
	cards []Card
}

// NewDeck creates a standard 52-card deck in canonical order, each card
// stamped with this deck's identity.
func NewDeck() *Deck {
	id := uuid.New()
	cards := make([]Card, 0, DeckSize)
	for _, suit := range Suits() {
		for _, rank := range Ranks() {
			cards = append(cards, Card{
				rank: rank,
				suit: suit,
				id:   CardID{deck: id, index: len(cards)},
			})
		}
	}
	return &Deck{id: id, cards: cards}
}

// ID returns the deck's identifier.
func (d *Deck) ID() uuid.UUID { return d.id }

// Size returns the number of cards in the deck.
func (d *Deck) Size() int { return len(d.cards) }

// Cards returns a copy of the deck's cards in their current order.
func (d *Deck) Cards() []Card {
	out := make([]Card, len(d.cards))
	copy(out, d.cards)
	return out
}

// Shuffle randomizes the deck's order in place.
func (d *Deck) Shuffle(rng *rand.Rand) {
	rng.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}

// Contains reports whether the card instance (by identity, not value)
// originated from this deck.
func (d *Deck) Contains(card Card) bool {
	return !card.ID().IsZero() && card.ID().DeckID() == d.id
}
