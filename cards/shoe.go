package cards

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
)

// CardSupplier is the boundary through which cards reach the table. The
// Shoe is the production implementation; tests and alternate dealers may
// supply their own.
type CardSupplier interface {
	HasNext() bool
	NextCard() (Card, error)
	CountRemaining() int
	Provenance(card Card) bool
}

// Shoe represents multiple decks of cards combined for dealing. Each deck
// is shuffled on its own, the decks are concatenated, the whole sequence is
// shuffled again, and then the last cutoff cards are removed from play:
// the cards "under the plastic card" that a casino withholds to disrupt
// card counting.
//
// A shoe is drawn from by a single consumer; it is not safe for concurrent
// use.
type Shoe struct {
	id     uuid.UUID
	decks  []*Deck
	cards  []Card
	cursor int
	cutoff int
}

var _ CardSupplier = (*Shoe)(nil)

// NewShoe builds a shoe from deckCount standard decks with the last cutoff
// cards withheld from play.
//
// A negative deckCount or cutoff fails with InvalidSizeError; a zero
// deckCount or a cutoff exceeding the total card count fails with
// InvalidArgumentError.
func NewShoe(deckCount, cutoff int) (*Shoe, error) {
	if deckCount < 0 {
		return nil, InvalidSizeError{What: "deck count", Value: deckCount}
	}
	if cutoff < 0 {
		return nil, InvalidSizeError{What: "cutoff", Value: cutoff}
	}
	if deckCount == 0 {
		return nil, InvalidArgumentError{Msg: "a shoe needs at least one deck"}
	}
	if total := deckCount * DeckSize; cutoff > total {
		return nil, InvalidArgumentError{
			Msg: fmt.Sprintf("cutoff %d exceeds the %d cards of %d decks", cutoff, total, deckCount),
		}
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	decks := make([]*Deck, deckCount)
	var cards []Card
	for i := range decks {
		deck := NewDeck()
		deck.Shuffle(rng)
		decks[i] = deck
		cards = append(cards, deck.Cards()...)
	}

	// Shuffle the combined sequence as well so no deck boundary survives.
	rng.Shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})

	cards = cards[:len(cards)-cutoff]

	return &Shoe{
		id:     uuid.New(),
		decks:  decks,
		cards:  cards,
		cutoff: cutoff,
	}, nil
}

// ID returns the shoe's identifier.
func (s *Shoe) ID() uuid.UUID { return s.id }

// DeckCount returns the number of constituent decks.
func (s *Shoe) DeckCount() int { return len(s.decks) }

// Cutoff returns the number of cards withheld from play.
func (s *Shoe) Cutoff() int { return s.cutoff }

// HasNext reports whether another card can be dealt.
func (s *Shoe) HasNext() bool {
	return s.cursor < len(s.cards)
}

// NextCard deals the next card and advances the cursor. It fails with
// ErrShoeExhausted once every card in play has been dealt.
func (s *Shoe) NextCard() (Card, error) {
	if !s.HasNext() {
		return Card{}, ErrShoeExhausted
	}
	card := s.cards[s.cursor]
	s.cursor++
	return card, nil
}

// CountRemaining returns the number of cards still available to deal.
func (s *Shoe) CountRemaining() int {
	return len(s.cards) - s.cursor
}

// Provenance reports whether the card instance originated from one of this
// shoe's decks, whether already dealt, still to come, or withheld by the
// cutoff. A value-equal card constructed elsewhere has no provenance here.
func (s *Shoe) Provenance(card Card) bool {
	for _, deck := range s.decks {
		if deck.Contains(card) {
			return true
		}
	}
	return false
}
