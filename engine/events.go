package engine

import (
	"fmt"
	"time"
)

type EventKind int

const (
	EventPlugMarked EventKind = iota
	EventPlugConnected
	EventPlugDiscarded
	EventPlugboardReset
	EventRotorTurned
	EventEnciphered
	EventCommitted
	EventModeChanged
)

// Event tells the display what the machine just did. Only the fields that
// matter for Kind are set.
type Event struct {
	Kind EventKind

	Letter rune // marked/discarded plug, or key pressed
	Peer   rune // second plug of a pair, or lit lamp
	Count  int  // plug count after a connection, letters in a commit

	Rotor    int // index of a turned rotor
	From, To rune

	Stages  []Stage
	Message string // committed, formatted text

	Mode Mode
}

// Observer receives machine events. It holds no cipher state.
type Observer interface {
	Notify(Event)
}

type ObserverFunc func(Event)

func (f ObserverFunc) Notify(e Event) { f(e) }

// Observers fans one event out to several observers.
type Observers []Observer

func (o Observers) Notify(e Event) {
	for _, obs := range o {
		if obs != nil {
			obs.Notify(e)
		}
	}
}

// LogObserver writes one trace line per event.
type LogObserver struct {
	Log *Logger
}

func (o LogObserver) Notify(e Event) {
	var msg string
	switch e.Kind {
	case EventPlugMarked:
		msg = fmt.Sprintf("Initial plug marked: %c", e.Letter)
	case EventPlugConnected:
		msg = fmt.Sprintf("Added plug connection: %c-%c (%d)", e.Letter, e.Peer, e.Count)
	case EventPlugDiscarded:
		msg = fmt.Sprintf("Discarded pending plug: %c", e.Letter)
	case EventPlugboardReset:
		msg = "Plugboard cleared"
	case EventRotorTurned:
		msg = fmt.Sprintf("Rotor %d turned: %c -> %c", e.Rotor+1, e.From, e.To)
	case EventEnciphered:
		msg = FormatTrace(e.Letter, e.Stages)
	case EventCommitted:
		msg = fmt.Sprintf("Message committed (%d letters)", e.Count)
	case EventModeChanged:
		msg = fmt.Sprintf("Mode: %s", e.Mode)
	default:
		return
	}
	o.Log.Write(fmt.Sprintf("[%s] %s", time.Now().Format("15:04:05"), msg))
}
