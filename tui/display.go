package tui

import "github.com/samaelod/enigma/engine"

// eventQueue collects machine events between two Update calls.
type eventQueue struct {
	events []engine.Event
}

func (q *eventQueue) Notify(e engine.Event) {
	q.events = append(q.events, e)
}

func (q *eventQueue) drain() []engine.Event {
	events := q.events
	q.events = nil
	return events
}
