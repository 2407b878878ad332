package events

import (
	"fmt"
	"reflect"
	"sync"
)

// GetRoundID extracts the RoundID field from an event, or "" when the
// event carries none.
func GetRoundID(event Event) string {
	val := reflect.ValueOf(event)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}
	field := val.FieldByName("RoundID")
	if field.IsValid() && field.Kind() == reflect.String {
		return field.String()
	}
	return ""
}

// EventStore is the interface for storing and retrieving events.
type EventStore interface {
	Append(event Event) error
	LoadEvents(roundID string) ([]Event, error)
}

// InMemoryEventStore is an in-memory implementation of the EventStore
// interface, keyed by round.
type InMemoryEventStore struct {
	events map[string][]Event
	mutex  sync.RWMutex
}

// NewInMemoryEventStore creates a new in-memory event store.
func NewInMemoryEventStore() *InMemoryEventStore {
	return &InMemoryEventStore{
		events: make(map[string][]Event),
	}
}

// Append adds a new event to the store.
func (s *InMemoryEventStore) Append(event Event) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	roundID := GetRoundID(event)
	if roundID == "" {
		return fmt.Errorf("event %s has no round ID", event.EventName())
	}

	s.events[roundID] = append(s.events[roundID], event)
	return nil
}

// LoadEvents retrieves all events recorded for the given round.
func (s *InMemoryEventStore) LoadEvents(roundID string) ([]Event, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	if stored, exists := s.events[roundID]; exists {
		result := make([]Event, len(stored))
		copy(result, stored)
		return result, nil
	}

	return []Event{}, nil
}
