package domain

import (
	"github.com/google/uuid"

	"github.com/lazharichir/blackjack/cards"
)

// Hand is an ordered collection of cards. A player hand carries exactly one
// wager; the dealer's own hand carries none, since the dealer plays against
// the table rather than against a stake. Score and status are recomputed
// from scratch on every card added; hands are short, so the cost is
// irrelevant.
type Hand struct {
	id      uuid.UUID
	cards   []cards.Card
	wager   *Wager
	settled bool
}

// NewHand creates an empty open hand carrying the given wager.
func NewHand(wager *Wager) (*Hand, error) {
	if wager == nil {
		return nil, NullReferenceError{Msg: "a hand needs a wager"}
	}
	return &Hand{id: uuid.New(), wager: wager}, nil
}

// NewDealerHand creates an empty open hand with no wager attached. Wager
// operations (Split, DoubleDown, Settlement) fail on such a hand.
func NewDealerHand() *Hand {
	return &Hand{id: uuid.New()}
}

// ID returns the hand's identifier.
func (h *Hand) ID() uuid.UUID { return h.id }

// Wager returns the hand's current wager, or nil for a dealer hand.
func (h *Hand) Wager() *Wager { return h.wager }

// Cards returns a copy of the hand's cards in order of acquisition.
func (h *Hand) Cards() []cards.Card {
	out := make([]cards.Card, len(h.cards))
	copy(out, h.cards)
	return out
}

// Size returns the number of cards in the hand.
func (h *Hand) Size() int { return len(h.cards) }

// AddCard appends a card to the hand. It fails with IllegalStateError when
// the hand is closed (won or busted), and with IllegalArgumentError when
// the same card instance is already in the hand. Value-equal cards from
// different decks are allowed.
func (h *Hand) AddCard(card cards.Card) error {
	if !h.IsOpenHand() {
		return IllegalStateError{Msg: "cannot add a card to a closed hand"}
	}
	for _, held := range h.cards {
		if held.SameCard(card) {
			return IllegalArgumentError{Msg: "card " + card.String() + " is already in the hand"}
		}
	}
	h.cards = append(h.cards, card)
	return nil
}

// CardsValue returns the hand's blackjack total: court cards count 10,
// numeric cards their face value, and aces 1 each. Then, if the hand holds
// at least one ace and the raw total is below 12, one ace is promoted to 11
// by adding 10. Promoting a single ace this way never busts a hand whose
// all-aces-low total is 11 or less.
func (h *Hand) CardsValue() int {
	total := 0
	aces := 0
	for _, card := range h.cards {
		total += card.GameValue()
		if card.Rank() == cards.Ace {
			aces++
		}
	}
	if aces > 0 && total < 12 {
		total += 10
	}
	return total
}

// IsOpenHand reports whether the hand may still take cards (total below 21).
func (h *Hand) IsOpenHand() bool {
	return h.CardsValue() < 21
}

// IsWinningHand reports whether the hand totals exactly 21.
func (h *Hand) IsWinningHand() bool {
	return h.CardsValue() == 21
}

// IsBustedHand reports whether the hand's total exceeds 21.
func (h *Hand) IsBustedHand() bool {
	return h.CardsValue() > 21
}

// IsClosedHand reports whether the hand can take no more cards. A hand is
// closed iff it has won or busted.
func (h *Hand) IsClosedHand() bool {
	return !h.IsOpenHand()
}

// IsNaturalHand reports whether the hand is a natural blackjack: exactly
// two cards totaling 21.
func (h *Hand) IsNaturalHand() bool {
	return len(h.cards) == 2 && h.CardsValue() == 21
}

// IsSplittableHand reports whether the hand holds exactly two cards whose
// rank pair is on the dealer's permitted-split list.
func (h *Hand) IsSplittableHand(dealer *Dealer) bool {
	if dealer == nil || len(h.cards) != 2 {
		return false
	}
	return dealer.CanSplit(h.cards[0].Rank(), h.cards[1].Rank())
}

// Split separates a splittable two-card hand into two one-card hands. One
// of the two cards (which one is unspecified) moves into the returned new
// hand. The original wager is replaced by a fresh wager of the same amount,
// and the new hand receives its own wager of that same amount: the total
// in play doubles, mirroring the added side bet of a real split.
//
// It fails with IllegalStateError when the hand is not splittable.
func (h *Hand) Split(dealer *Dealer) (*Hand, error) {
	if h.wager == nil {
		return nil, IllegalStateError{Msg: "a dealer hand carries no wager to split"}
	}
	if !h.IsSplittableHand(dealer) {
		return nil, IllegalStateError{Msg: "hand is not splittable"}
	}

	amount := h.wager.Amount()

	originalWager, err := NewWager(amount)
	if err != nil {
		return nil, err
	}
	splitWager, err := NewWager(amount)
	if err != nil {
		return nil, err
	}

	moved := h.cards[1]
	h.cards = h.cards[:1]
	h.wager = originalWager

	split := &Hand{
		id:    uuid.New(),
		cards: []cards.Card{moved},
		wager: splitWager,
	}

	return split, nil
}

// DoubleDown doubles the hand's wager: the current wager is settled as
// replaced and the hand carries its doubled successor from here on.
func (h *Hand) DoubleDown() (*Wager, error) {
	if h.wager == nil {
		return nil, IllegalStateError{Msg: "a dealer hand carries no wager to double"}
	}
	replacement, err := h.wager.DoubleDown()
	if err != nil {
		return nil, err
	}
	h.wager = replacement
	return replacement, nil
}

// MarkSettled flags the hand as settled, excluding it from a player's
// active hands. It is independent of the wager's own settlement state.
func (h *Hand) MarkSettled() {
	h.settled = true
}

// IsSettledHand reports whether the hand has been marked settled.
func (h *Hand) IsSettledHand() bool {
	return h.settled
}

// Settlement returns the wager settlement of a hand that has been marked
// settled. It fails with IllegalStateError when the hand is not marked
// settled, or when its wager has not actually been settled.
func (h *Hand) Settlement() (Settlement, error) {
	if h.wager == nil {
		return Settlement{}, IllegalStateError{Msg: "a dealer hand carries no wager to settle"}
	}
	if !h.settled {
		return Settlement{}, IllegalStateError{Msg: "hand has not been marked settled"}
	}
	return h.wager.Settlement()
}
