package engine

import (
	"errors"
	"fmt"

	"github.com/samaelod/enigma/types"
)

var (
	ErrInvalidWiring = errors.New("wiring must contain exactly all letters A-Z once")
	ErrUnknownSymbol = errors.New("symbol is not in the alphabet")
)

// Rotor is a fixed wiring permutation turning over a set of static contacts.
// forward[i] is the alphabet index wired to contact i; inverse undoes it.
type Rotor struct {
	forward [types.N]int
	inverse [types.N]int
	offset  int
}

// NewRotor builds a rotor from a permutation string over the alphabet.
func NewRotor(wiring string) (*Rotor, error) {
	if len(wiring) != types.N {
		return nil, fmt.Errorf("%w: got %d symbols", ErrInvalidWiring, len(wiring))
	}

	r := &Rotor{}
	for i := range r.inverse {
		r.inverse[i] = -1
	}
	for i, c := range wiring {
		j := types.Index(c)
		if j < 0 {
			return nil, fmt.Errorf("%w: %q", ErrUnknownSymbol, c)
		}
		if r.inverse[j] >= 0 {
			return nil, fmt.Errorf("%w: %c repeated", ErrInvalidWiring, c)
		}
		r.forward[i] = j
		r.inverse[j] = i
	}
	return r, nil
}

// Offset returns the current rotational position.
func (r *Rotor) Offset() int { return r.offset }

// Wiring returns the permutation the rotor was built from.
func (r *Rotor) Wiring() string {
	b := make([]byte, types.N)
	for i, j := range r.forward {
		b[i] = types.Alphabet[j]
	}
	return string(b)
}

// Position returns the letter showing in the rotor window.
func (r *Rotor) Position() rune { return rune(types.Alphabet[r.offset]) }

// SetPosition turns the rotor so that c shows in the window.
func (r *Rotor) SetPosition(c rune) error {
	i := types.Index(c)
	if i < 0 {
		return fmt.Errorf("%w: %q", ErrUnknownSymbol, c)
	}
	r.offset = i
	return nil
}

// Advance turns the rotor by one and reports whether it completed a full
// revolution.
func (r *Rotor) Advance() bool {
	r.offset = (r.offset + 1) % types.N
	return r.offset == 0
}

// Forward passes c through the rotor from the entry side.
func (r *Rotor) Forward(c rune) rune {
	return rune('A' + r.forwardIndex(types.Index(c)))
}

// Reverse passes c through the rotor from the reflector side. It is the
// inverse of Forward at the same offset.
func (r *Rotor) Reverse(c rune) rune {
	return rune('A' + r.reverseIndex(types.Index(c)))
}

func (r *Rotor) forwardIndex(i int) int {
	return r.shift(r.forward[(i+r.offset)%types.N])
}

func (r *Rotor) reverseIndex(i int) int {
	return r.shift(r.inverse[(i+r.offset)%types.N])
}

func (r *Rotor) shift(j int) int {
	out := j - r.offset
	if out < 0 {
		out += types.N
	}
	return out
}

// Reflector is a rotor that never turns.
type Reflector struct {
	rotor *Rotor
}

func NewReflector(wiring string) (*Reflector, error) {
	r, err := NewRotor(wiring)
	if err != nil {
		return nil, err
	}
	return &Reflector{rotor: r}, nil
}

func (f *Reflector) Wiring() string { return f.rotor.Wiring() }

// Reflect folds c back towards the rotor stack.
func (f *Reflector) Reflect(c rune) rune {
	return f.rotor.Forward(c)
}

// IsInvolution reports whether every pair maps both ways. A machine with a
// non-involutive reflector does not decipher its own output.
func (f *Reflector) IsInvolution() bool {
	for i, j := range f.rotor.forward {
		if f.rotor.forward[j] != i {
			return false
		}
	}
	return true
}
