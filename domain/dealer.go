package domain

import (
	"github.com/lazharichir/blackjack/cards"
	"github.com/lazharichir/blackjack/currency"
)

// RankPair is an unordered pair of ranks. (Ace, King) and (King, Ace) are
// the same pair; (Ace, Ace) and (Ace, King) are not.
type RankPair struct {
	low  cards.Rank
	high cards.Rank
}

// NewRankPair creates an unordered rank pair.
func NewRankPair(a, b cards.Rank) RankPair {
	if a > b {
		a, b = b, a
	}
	return RankPair{low: a, high: b}
}

// DealerConfig is the immutable table configuration handed to NewDealer:
// which rank pairs may be split, the house reserve ratio applied to the sum
// of player balances, and the seat limit.
type DealerConfig struct {
	SplittablePairs []RankPair

	// Reserve ratio as an exact fraction over minor units.
	ReserveNumerator   int64
	ReserveDenominator int64

	MaxPlayers int
}

// DefaultDealerConfig returns the house defaults: any same-rank pair of
// aces or eights may be split, the reserve is 3/2 of the table's balances,
// and seven seats.
func DefaultDealerConfig() DealerConfig {
	return DealerConfig{
		SplittablePairs: []RankPair{
			NewRankPair(cards.Ace, cards.Ace),
			NewRankPair(cards.Eight, cards.Eight),
		},
		ReserveNumerator:   3,
		ReserveDenominator: 2,
		MaxPlayers:         7,
	}
}

// Dealer orchestrates a single physical table: it owns the shoe, enforces
// the split rules, sizes the house bankroll when a round starts, and allows
// only one round in flight at a time.
type Dealer struct {
	config      DealerConfig
	shoe        cards.CardSupplier
	splittable  map[RankPair]struct{}
	active      bool
	bankroll    currency.Amount
	hasBankroll bool
}

// NewDealer creates a dealer dealing from the given supplier under the
// given configuration.
func NewDealer(shoe cards.CardSupplier, config DealerConfig) (*Dealer, error) {
	if shoe == nil {
		return nil, NullReferenceError{Msg: "a dealer needs a card supplier"}
	}
	if config.ReserveDenominator <= 0 ||
		config.ReserveNumerator <= config.ReserveDenominator {
		return nil, IllegalArgumentError{Msg: "reserve multiplier must be greater than 1"}
	}
	if config.MaxPlayers <= 0 {
		return nil, IllegalArgumentError{Msg: "max players must be positive"}
	}

	splittable := make(map[RankPair]struct{}, len(config.SplittablePairs))
	for _, pair := range config.SplittablePairs {
		splittable[pair] = struct{}{}
	}

	return &Dealer{
		config:     config,
		shoe:       shoe,
		splittable: splittable,
	}, nil
}

// CanSplit reports whether the unordered pair of ranks is on the dealer's
// permitted-split list.
func (d *Dealer) CanSplit(a, b cards.Rank) bool {
	_, ok := d.splittable[NewRankPair(a, b)]
	return ok
}

// Active reports whether the dealer is currently mid-round.
func (d *Dealer) Active() bool { return d.active }

// Bankroll returns the reserve computed at the last round start. The second
// return is false before the first start.
func (d *Dealer) Bankroll() (currency.Amount, bool) {
	return d.bankroll, d.hasBankroll
}

// Start opens a round at this table. It fails with IllegalStateError when
// a round is already active, and with IllegalArgumentError when the round
// seats more players than the table allows. On success the dealer computes
// its bankroll reserve, the sum of all player balances scaled by the
// reserve ratio, and marks itself active.
func (d *Dealer) Start(round *Round) error {
	if round == nil {
		return NullReferenceError{Msg: "cannot start a nil round"}
	}
	if d.active {
		return IllegalStateError{Msg: "dealer is already in an active round"}
	}
	players := round.Players()
	if len(players) > d.config.MaxPlayers {
		return IllegalArgumentError{Msg: "too many players for this table"}
	}

	total := players[0].Balance()
	for _, player := range players[1:] {
		sum, err := total.Add(player.Balance())
		if err != nil {
			return err
		}
		total = sum
	}

	d.bankroll = total.MulRatio(d.config.ReserveNumerator, d.config.ReserveDenominator)
	d.hasBankroll = true
	d.active = true
	return nil
}

// Finish closes the current round, letting the dealer start another.
func (d *Dealer) Finish() {
	d.active = false
}

// TellFaceUpCard draws one card from the shoe face up. It returns nil when
// the dealer is not currently in a round.
func (d *Dealer) TellFaceUpCard() (*cards.HeldCard, error) {
	return d.tell(cards.FaceUpToAll)
}

// TellHoleCard draws one card from the shoe face down.
func (d *Dealer) TellHoleCard() (*cards.HeldCard, error) {
	return d.tell(cards.FaceDown)
}

func (d *Dealer) tell(visibility cards.CardVisibility) (*cards.HeldCard, error) {
	if !d.active {
		return nil, nil
	}
	card, err := d.shoe.NextCard()
	if err != nil {
		return nil, err
	}
	held := cards.NewHeldCard(card, visibility)
	return &held, nil
}

// OffersInsurance reports whether the dealer's face-up card entitles the
// players to an insurance side bet.
func (d *Dealer) OffersInsurance(faceUp cards.Card) bool {
	return faceUp.Rank() == cards.Ace
}
