package events

import "sync"

type DomainEvent interface {
	EventName() string
}

type EventStore interface {
	AddEvent(e ...DomainEvent)
	Events() []DomainEvent

	// Drain returns the recorded events and clears the store, so a
	// publisher never sends the same event twice.
	Drain() []DomainEvent
}

type eventStore struct {
	events []DomainEvent
	sync.RWMutex
}

func NewEventStore() EventStore {
	return &eventStore{
		events: make([]DomainEvent, 0),
	}
}

func (s *eventStore) AddEvent(e ...DomainEvent) {
	s.Lock()
	s.events = append(s.events, e...)
	s.Unlock()
}

func (s *eventStore) Events() []DomainEvent {
	s.RLock()
	defer s.RUnlock()

	return s.events
}

func (s *eventStore) Drain() []DomainEvent {
	s.Lock()
	defer s.Unlock()

	events := s.events
	s.events = make([]DomainEvent, 0)
	return events
}
