package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/lazharichir/blackjack/domain/events"
)

// Round groups one dealer and one or more players for a play session. It is
// a thin lifecycle wrapper: play proceeds through Hand and Wager operations,
// and the round only keeps the books.
type Round struct {
	ID      string
	dealer  *Dealer
	players []*Player
	begun   bool

	// completionNoted latches the RoundCompleted emission so late
	// settlements, such as insurance side bets noted after the last hand,
	// do not emit it again.
	completionNoted bool

	// events
	Events        []events.Event
	eventHandlers []events.EventHandler
}

// NewRound creates a round for the dealer and players. It fails with
// NullReferenceError for a nil dealer or any nil player, and with
// IllegalArgumentError when no players are given.
func NewRound(dealer *Dealer, players ...*Player) (*Round, error) {
	if dealer == nil {
		return nil, NullReferenceError{Msg: "a round needs a dealer"}
	}
	if len(players) == 0 {
		return nil, IllegalArgumentError{Msg: "a round needs at least one player"}
	}
	for _, player := range players {
		if player == nil {
			return nil, NullReferenceError{Msg: "a round cannot seat a nil player"}
		}
	}

	return &Round{
		ID:      uuid.NewString(),
		dealer:  dealer,
		players: players,
	}, nil
}

// RegisterEventHandler registers a callback that will be called when the
// round emits events.
func (r *Round) RegisterEventHandler(handler events.EventHandler) {
	r.eventHandlers = append(r.eventHandlers, handler)
}

// emitEvent appends the event to the round's log and notifies all handlers.
func (r *Round) emitEvent(event events.Event) {
	r.Events = append(r.Events, event)
	for _, handler := range r.eventHandlers {
		handler(event)
	}
}

// Dealer returns the round's dealer.
func (r *Round) Dealer() *Dealer { return r.dealer }

// Players returns the seated players.
func (r *Round) Players() []*Player {
	out := make([]*Player, len(r.players))
	copy(out, r.players)
	return out
}

// Begun reports whether the round has begun.
func (r *Round) Begun() bool { return r.begun }

// Begin starts the round. It is one-shot and fails with IllegalStateError
// when called twice.
func (r *Round) Begin() error {
	if r.begun {
		return IllegalStateError{Msg: "round has already begun"}
	}
	r.begun = true

	playerIDs := make([]string, len(r.players))
	for i, player := range r.players {
		playerIDs[i] = player.ID
	}
	r.emitEvent(events.RoundStarted{
		RoundID: r.ID,
		Players: playerIDs,
		At:      time.Now(),
	})

	return nil
}

// Completed reports whether the round is done: it has begun and every
// wager of every player hand has been settled. No settlement is driven by
// the round itself.
func (r *Round) Completed() bool {
	if !r.begun {
		return false
	}
	for _, player := range r.players {
		for _, hand := range player.Hands() {
			if !hand.Wager().IsSettled() {
				return false
			}
		}
	}
	return true
}

// NoteCardDealt records a dealt card in the round's event log.
func (r *Round) NoteCardDealt(playerID string, card string, faceUp bool) {
	r.emitEvent(events.CardDealt{
		RoundID:  r.ID,
		PlayerID: playerID,
		Card:     card,
		FaceUp:   faceUp,
		At:       time.Now(),
	})
}

// NoteHandSplit records a hand split in the round's event log.
func (r *Round) NoteHandSplit(playerID string, handID, newHandID uuid.UUID) {
	r.emitEvent(events.HandSplit{
		RoundID:   r.ID,
		PlayerID:  playerID,
		HandID:    handID.String(),
		NewHandID: newHandID.String(),
		At:        time.Now(),
	})
}

// NoteWagerDoubledDown records a double-down in the round's event log.
func (r *Round) NoteWagerDoubledDown(playerID string, wagerID, newWagerID uuid.UUID) {
	r.emitEvent(events.WagerDoubledDown{
		RoundID:    r.ID,
		PlayerID:   playerID,
		WagerID:    wagerID.String(),
		NewWagerID: newWagerID.String(),
		At:         time.Now(),
	})
}

// NoteWagerSettled records a settlement in the round's event log. The first
// settlement that leaves every hand wager settled also records a round
// completion; later notes, insurance for instance, do not repeat it.
func (r *Round) NoteWagerSettled(playerID string, wagerID uuid.UUID, settlement Settlement) {
	r.emitEvent(events.WagerSettled{
		RoundID:     r.ID,
		PlayerID:    playerID,
		WagerID:     wagerID.String(),
		Outcome:     settlement.Outcome.String(),
		PayoutMinor: settlement.Amount.MinorUnits(),
		At:          time.Now(),
	})

	if !r.completionNoted && r.Completed() {
		r.completionNoted = true
		r.emitEvent(events.RoundCompleted{
			RoundID: r.ID,
			At:      time.Now(),
		})
	}
}
