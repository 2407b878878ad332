package domain

import (
	"github.com/google/uuid"

	"github.com/lazharichir/blackjack/currency"
)

// Player represents one seat at the table: a balance and the hands played
// this round (more than one after a split).
type Player struct {
	ID      string
	Name    string
	balance currency.Amount
	hands   []*Hand
}

// NewPlayer creates a player with a starting balance.
func NewPlayer(name string, balance currency.Amount) *Player {
	return &Player{
		ID:      uuid.NewString(),
		Name:    name,
		balance: balance,
	}
}

// Balance returns the player's current balance.
func (p *Player) Balance() currency.Amount { return p.balance }

// AddToBalance adds amount to the player's balance. It fails with
// ConversionNeededError when the currencies differ.
func (p *Player) AddToBalance(amount currency.Amount) error {
	updated, err := p.balance.Add(amount)
	if err != nil {
		return err
	}
	p.balance = updated
	return nil
}

// RemoveFromBalance removes amount from the player's balance.
func (p *Player) RemoveFromBalance(amount currency.Amount) error {
	return p.AddToBalance(amount.Neg())
}

// NewHand opens a new hand for the player carrying the given wager.
func (p *Player) NewHand(wager *Wager) (*Hand, error) {
	hand, err := NewHand(wager)
	if err != nil {
		return nil, err
	}
	p.hands = append(p.hands, hand)
	return hand, nil
}

// AddHand attaches an existing hand to the player, as after a split.
func (p *Player) AddHand(hand *Hand) error {
	if hand == nil {
		return NullReferenceError{Msg: "cannot add a nil hand"}
	}
	p.hands = append(p.hands, hand)
	return nil
}

// Hands returns the player's hands in order of creation.
func (p *Player) Hands() []*Hand {
	out := make([]*Hand, len(p.hands))
	copy(out, p.hands)
	return out
}

// ActiveHands returns the hands not yet marked settled.
func (p *Player) ActiveHands() []*Hand {
	var active []*Hand
	for _, hand := range p.hands {
		if !hand.IsSettledHand() {
			active = append(active, hand)
		}
	}
	return active
}

// CollectSettlement applies a hand's settlement payout to the player's
// balance.
func (p *Player) CollectSettlement(hand *Hand) error {
	if hand == nil {
		return NullReferenceError{Msg: "cannot collect from a nil hand"}
	}
	settlement, err := hand.Settlement()
	if err != nil {
		return err
	}
	return p.AddToBalance(settlement.Amount)
}
