package engine

import (
	"fmt"
	"unicode"

	"github.com/samaelod/enigma/types"
)

type Mode int

const (
	ModeWiring Mode = iota
	ModeTyping
	ModeTerminated
)

func (m Mode) String() string {
	switch m {
	case ModeWiring:
		return "wiring"
	case ModeTyping:
		return "typing"
	case ModeTerminated:
		return "terminated"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

type KeyCode int

const (
	KeyRune KeyCode = iota
	KeyEnter
	KeyEscape
	KeyOther
)

// Key is one keyboard event, independent of the terminal library.
type Key struct {
	Code KeyCode
	Rune rune
}

func RuneKey(r rune) Key { return Key{Code: KeyRune, Rune: r} }

var (
	EnterKey  = Key{Code: KeyEnter}
	EscapeKey = Key{Code: KeyEscape}
)

type input int

const (
	inputIgnored input = iota
	inputLetter
	inputDigit
	inputEnter
	inputEscape
)

func classify(k Key) (input, rune) {
	switch k.Code {
	case KeyEnter:
		return inputEnter, 0
	case KeyEscape:
		return inputEscape, 0
	case KeyRune:
		c := unicode.ToUpper(k.Rune)
		if types.Index(c) >= 0 {
			return inputLetter, c
		}
		if c >= '1' && c <= '9' {
			return inputDigit, c
		}
	}
	return inputIgnored, 0
}

type handler func(m *Machine, c rune) error

// transitions is the whole input protocol. Anything missing is ignored.
var transitions = map[Mode]map[input]handler{
	ModeWiring: {
		inputLetter: (*Machine).wireLetter,
		inputEnter:  (*Machine).abortPending,
		inputEscape: (*Machine).cancelWiring,
	},
	ModeTyping: {
		inputLetter: (*Machine).typeLetter,
		inputDigit:  (*Machine).turnRotor,
		inputEnter:  (*Machine).commit,
		inputEscape: (*Machine).quit,
	},
}

// Machine is one operator session: the cipher parts plus the wiring and
// typing modes that drive them.
type Machine struct {
	rotors    []*Rotor
	reflector *Reflector
	plugboard *Plugboard
	path      *SignalPath
	stepper   *Stepper
	message   MessageBuffer

	sink     Sink
	observer Observer

	mode    Mode
	pending rune

	// rotor positions before the first letter of the current message
	messageKey string
}

type Option func(*Machine)

func WithSink(s Sink) Option {
	return func(m *Machine) { m.sink = s }
}

func WithObserver(o Observer) Option {
	return func(m *Machine) { m.observer = o }
}

// New assembles a machine. Rotors are ordered slowest first. A plugboard
// that is already full skips the wiring mode.
func New(rotors []*Rotor, reflector *Reflector, pb *Plugboard, opts ...Option) *Machine {
	if pb == nil {
		pb = NewPlugboard()
	}
	m := &Machine{
		rotors:    rotors,
		reflector: reflector,
		plugboard: pb,
		path:      NewSignalPath(pb, rotors, reflector),
		stepper:   NewStepper(rotors),
		mode:      ModeWiring,
	}
	for _, opt := range opts {
		opt(m)
	}
	if pb.Full() {
		m.mode = ModeTyping
	}
	return m
}

// Build creates a machine from a validated wiring document.
func Build(cfg *types.Machine, opts ...Option) (*Machine, error) {
	rotors := make([]*Rotor, len(cfg.Rotors))
	for i, w := range cfg.Rotors {
		r, err := NewRotor(w)
		if err != nil {
			return nil, fmt.Errorf("rotors[%d]: %w", i, err)
		}
		if cfg.Positions != "" {
			if err := r.SetPosition(rune(cfg.Positions[i])); err != nil {
				return nil, fmt.Errorf("positions: %w", err)
			}
		}
		rotors[i] = r
	}

	reflector, err := NewReflector(cfg.Reflector)
	if err != nil {
		return nil, fmt.Errorf("reflector: %w", err)
	}

	pb := NewPlugboard()
	for i, p := range cfg.Plugs {
		if len(p) != 2 {
			return nil, fmt.Errorf("plugs[%d]: want two letters, got %q", i, p)
		}
		if err := pb.Connect(rune(p[0]), rune(p[1])); err != nil {
			return nil, fmt.Errorf("plugs[%d]: %w", i, err)
		}
	}

	return New(rotors, reflector, pb, opts...), nil
}

// Handle processes one key. The only error it returns is a failed commit;
// the session carries on after it.
func (m *Machine) Handle(k Key) error {
	in, c := classify(k)
	h, ok := transitions[m.mode][in]
	if !ok {
		return nil
	}
	return h(m, c)
}

func (m *Machine) wireLetter(c rune) error {
	if m.plugboard.Plugged(c) || c == m.pending {
		return nil
	}

	if m.pending == 0 {
		m.pending = c
		m.notify(Event{Kind: EventPlugMarked, Letter: c})
		return nil
	}

	first := m.pending
	if err := m.plugboard.Connect(first, c); err != nil {
		return fmt.Errorf("connect %c-%c: %w", first, c, err)
	}
	m.pending = 0
	m.notify(Event{Kind: EventPlugConnected, Letter: first, Peer: c, Count: m.plugboard.Count()})

	if m.plugboard.Full() {
		m.setMode(ModeTyping)
	}
	return nil
}

func (m *Machine) abortPending(rune) error {
	m.setMode(ModeTyping)
	return nil
}

func (m *Machine) cancelWiring(rune) error {
	m.discardPending()
	m.plugboard.Reset()
	m.notify(Event{Kind: EventPlugboardReset})
	m.setMode(ModeTyping)
	return nil
}

func (m *Machine) typeLetter(c rune) error {
	if m.message.Len() == 0 {
		m.messageKey = m.Positions()
	}

	for _, i := range m.stepper.AutoAdvance() {
		m.notifyTurn(i)
	}

	stages := m.path.Trace(c)
	out := stages[len(stages)-1].Out
	m.message.Append(out)
	m.notify(Event{Kind: EventEnciphered, Letter: c, Peer: out, Stages: stages})
	return nil
}

func (m *Machine) turnRotor(c rune) error {
	i := int(c - '1')
	if i >= len(m.rotors) {
		return nil
	}
	m.stepper.ManualAdvance(i)
	m.notifyTurn(i)
	return nil
}

func (m *Machine) commit(rune) error {
	formatted := m.message.Format()
	if m.sink != nil {
		if err := m.sink.Write(formatted); err != nil {
			return fmt.Errorf("commit message: %w", err)
		}
	}
	n := m.message.Len()
	m.message.Clear()
	m.notify(Event{Kind: EventCommitted, Message: formatted, Count: n})
	return nil
}

func (m *Machine) quit(rune) error {
	m.setMode(ModeTerminated)
	return nil
}

func (m *Machine) discardPending() {
	if m.pending == 0 {
		return
	}
	c := m.pending
	m.pending = 0
	m.notify(Event{Kind: EventPlugDiscarded, Letter: c})
}

func (m *Machine) setMode(mode Mode) {
	if m.mode == mode {
		return
	}
	if m.mode == ModeWiring {
		m.discardPending()
	}
	m.mode = mode
	m.notify(Event{Kind: EventModeChanged, Mode: mode})
}

func (m *Machine) notifyTurn(i int) {
	to := m.rotors[i].Offset()
	from := (to + types.N - 1) % types.N
	m.notify(Event{
		Kind:  EventRotorTurned,
		Rotor: i,
		From:  rune(types.Alphabet[from]),
		To:    rune(types.Alphabet[to]),
	})
}

func (m *Machine) notify(e Event) {
	if m.observer != nil {
		m.observer.Notify(e)
	}
}

func (m *Machine) Mode() Mode { return m.mode }

// Pending returns the marked, not yet paired plug letter.
func (m *Machine) Pending() (rune, bool) {
	return m.pending, m.pending != 0
}

func (m *Machine) Plugboard() *Plugboard { return m.plugboard }

func (m *Machine) RotorCount() int { return len(m.rotors) }

// Positions returns the rotor window letters, slowest first.
func (m *Machine) Positions() string {
	b := make([]byte, len(m.rotors))
	for i, r := range m.rotors {
		b[i] = byte(r.Position())
	}
	return string(b)
}

func (m *Machine) Message() string { return m.message.Read() }

func (m *Machine) MessageLines() []string { return m.message.Lines() }

// KeySheet describes the machine as the receiving operator needs it for
// the current message: wiring, plugs and the rotor positions the message
// started at.
func (m *Machine) KeySheet(name string) *types.Machine {
	sheet := &types.Machine{
		Name:      name,
		Rotors:    make([]string, len(m.rotors)),
		Reflector: m.reflector.Wiring(),
		Positions: m.messageKey,
		Plugs:     m.plugboard.Pairs(),
	}
	if sheet.Positions == "" {
		sheet.Positions = m.Positions()
	}
	for i, r := range m.rotors {
		sheet.Rotors[i] = r.Wiring()
	}
	return sheet
}
