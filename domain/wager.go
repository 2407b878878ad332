package domain

import (
	"github.com/google/uuid"

	"github.com/lazharichir/blackjack/currency"
)

// Outcome classifies how a wager resolved.
type Outcome int

const (
	OutcomeNaturalBlackjack Outcome = iota + 1
	OutcomeBlackjack
	OutcomeBetterScore
	OutcomeInsuranceWon
	OutcomeStandoff
	OutcomeReplaced // used internally by double-down
	OutcomeInsuranceLost
	OutcomeBust
	OutcomeLowerScore
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeNaturalBlackjack:
		return "natural blackjack"
	case OutcomeBlackjack:
		return "blackjack"
	case OutcomeBetterScore:
		return "better score"
	case OutcomeInsuranceWon:
		return "insurance won"
	case OutcomeStandoff:
		return "standoff"
	case OutcomeReplaced:
		return "replaced"
	case OutcomeInsuranceLost:
		return "insurance lost"
	case OutcomeBust:
		return "bust"
	case OutcomeLowerScore:
		return "lower score"
	default:
		return "unknown"
	}
}

// payout computes the settlement delta for this outcome against the
// wager's face amount: a natural pays 3:2, plain wins pay even money,
// standoffs and replacements pay nothing, losses cost the face amount.
func (o Outcome) payout(amount currency.Amount) currency.Amount {
	switch o {
	case OutcomeNaturalBlackjack:
		return amount.MulRatio(3, 2)
	case OutcomeBlackjack, OutcomeBetterScore, OutcomeInsuranceWon:
		return amount
	case OutcomeStandoff, OutcomeReplaced:
		return currency.Zero(amount.Currency())
	default:
		// OutcomeInsuranceLost, OutcomeBust, OutcomeLowerScore
		return amount.Neg()
	}
}

// Settlement is the immutable result of settling a wager: the outcome and
// the computed payout delta.
type Settlement struct {
	Outcome Outcome
	Amount  currency.Amount
}

// Wager is an amount placed on one hand. It moves through a one-way
// lifecycle: unsettled, then settled exactly once with an Outcome, or
// replaced wholesale by a doubled-down successor.
type Wager struct {
	id         uuid.UUID
	amount     currency.Amount
	insurance  bool
	settled    bool
	settlement Settlement
	doubled    bool
}

// NewWager creates an unsettled wager. It fails with IllegalArgumentError
// when the amount is not strictly positive.
func NewWager(amount currency.Amount) (*Wager, error) {
	return newWager(amount, false, false)
}

// NewInsuranceWager creates an unsettled side wager insuring against a
// dealer natural.
func NewInsuranceWager(amount currency.Amount) (*Wager, error) {
	return newWager(amount, true, false)
}

func newWager(amount currency.Amount, insurance, doubled bool) (*Wager, error) {
	if !amount.IsPositive() {
		return nil, IllegalArgumentError{Msg: "wager amount must be positive, got " + amount.String()}
	}
	return &Wager{
		id:        uuid.New(),
		amount:    amount,
		insurance: insurance,
		doubled:   doubled,
	}, nil
}

// ID returns the wager's identifier.
func (w *Wager) ID() uuid.UUID { return w.id }

// Amount returns the wager's face amount.
func (w *Wager) Amount() currency.Amount { return w.amount }

// IsInsurance reports whether this is an insurance side wager.
func (w *Wager) IsInsurance() bool { return w.insurance }

// IsSettled reports whether the wager has been settled.
func (w *Wager) IsSettled() bool { return w.settled }

// Settle resolves the wager with the given outcome. It is a one-shot
// transition and fails with IllegalStateError when called twice.
func (w *Wager) Settle(outcome Outcome) error {
	if w.settled {
		return IllegalStateError{Msg: "wager already settled as " + w.settlement.Outcome.String()}
	}
	w.settled = true
	w.settlement = Settlement{Outcome: outcome, Amount: outcome.payout(w.amount)}
	return nil
}

// Settlement returns the outcome and payout of a settled wager. It fails
// with IllegalStateError while the wager is still unsettled.
func (w *Wager) Settlement() (Settlement, error) {
	if !w.settled {
		return Settlement{}, IllegalStateError{Msg: "wager has not been settled yet"}
	}
	return w.settlement, nil
}

// DoubleDown settles this wager as replaced and returns a fresh unsettled
// wager of twice the amount. A wager lineage may be doubled only once:
// calling DoubleDown on an already settled or already doubled wager fails
// with IllegalStateError.
func (w *Wager) DoubleDown() (*Wager, error) {
	if w.settled {
		return nil, IllegalStateError{Msg: "cannot double down a settled wager"}
	}
	if w.doubled {
		return nil, IllegalStateError{Msg: "wager was already doubled down"}
	}

	replacement, err := newWager(w.amount.MulInt(2), w.insurance, true)
	if err != nil {
		return nil, err
	}

	if err := w.Settle(OutcomeReplaced); err != nil {
		return nil, err
	}

	return replacement, nil
}
