package events

import "time"

// Event is the interface that all domain events must implement.
type Event interface {
	EventName() string
}

// EventHandler is a callback invoked for each emitted event.
type EventHandler func(Event)

// RoundStarted is emitted when a round begins.
type RoundStarted struct {
	RoundID string
	Players []string
	At      time.Time
}

func (e RoundStarted) EventName() string { return "RoundStarted" }

// CardDealt is emitted for every card the dealer deals.
type CardDealt struct {
	RoundID  string
	PlayerID string
	Card     string
	FaceUp   bool
	At       time.Time
}

func (e CardDealt) EventName() string { return "CardDealt" }

// HandSplit is emitted when a player splits a pair into two hands.
type HandSplit struct {
	RoundID   string
	PlayerID  string
	HandID    string
	NewHandID string
	At        time.Time
}

func (e HandSplit) EventName() string { return "HandSplit" }

// WagerDoubledDown is emitted when a wager is replaced by its doubled
// successor.
type WagerDoubledDown struct {
	RoundID    string
	PlayerID   string
	WagerID    string
	NewWagerID string
	At         time.Time
}

func (e WagerDoubledDown) EventName() string { return "WagerDoubledDown" }

// WagerSettled is emitted when a wager reaches its settled state.
type WagerSettled struct {
	RoundID     string
	PlayerID    string
	WagerID     string
	Outcome     string
	PayoutMinor int64
	At          time.Time
}

func (e WagerSettled) EventName() string { return "WagerSettled" }

// RoundCompleted is emitted once every wager of the round is settled.
type RoundCompleted struct {
	RoundID string
	At      time.Time
}

func (e RoundCompleted) EventName() string { return "RoundCompleted" }
