package engine

import (
	"errors"
	"fmt"
	"sort"

	"github.com/samaelod/enigma/types"
)

var (
	ErrSelfPlug       = errors.New("a letter cannot be plugged to itself")
	ErrAlreadyPlugged = errors.New("letter is already plugged")
	ErrPlugboardFull  = errors.New("plugboard is full")
)

// Plugboard is a partial involution over the alphabet. partner[i] is -1
// for an unplugged letter.
type Plugboard struct {
	partner [types.N]int
	count   int
}

func NewPlugboard() *Plugboard {
	p := &Plugboard{}
	p.Reset()
	return p
}

// Connect records the symmetric pair a<->b.
func (p *Plugboard) Connect(a, b rune) error {
	i, j := types.Index(a), types.Index(b)
	switch {
	case i < 0:
		return fmt.Errorf("%w: %q", ErrUnknownSymbol, a)
	case j < 0:
		return fmt.Errorf("%w: %q", ErrUnknownSymbol, b)
	case i == j:
		return fmt.Errorf("%w: %c", ErrSelfPlug, a)
	case p.partner[i] >= 0:
		return fmt.Errorf("%w: %c", ErrAlreadyPlugged, a)
	case p.partner[j] >= 0:
		return fmt.Errorf("%w: %c", ErrAlreadyPlugged, b)
	case p.count >= types.MaxPlugs:
		return ErrPlugboardFull
	}

	p.partner[i] = j
	p.partner[j] = i
	p.count++
	return nil
}

// Map returns the partner of c, or c itself when it is not plugged.
func (p *Plugboard) Map(c rune) rune {
	return rune('A' + p.mapIndex(types.Index(c)))
}

func (p *Plugboard) mapIndex(i int) int {
	if j := p.partner[i]; j >= 0 {
		return j
	}
	return i
}

// Plugged reports whether c takes part in a connection.
func (p *Plugboard) Plugged(c rune) bool {
	i := types.Index(c)
	return i >= 0 && p.partner[i] >= 0
}

func (p *Plugboard) Count() int { return p.count }

func (p *Plugboard) Full() bool { return p.count >= types.MaxPlugs }

// Pairs lists the connections as two-letter strings, lower letter first.
func (p *Plugboard) Pairs() []string {
	pairs := make([]string, 0, p.count)
	for i, j := range p.partner {
		if j > i {
			pairs = append(pairs, string([]byte{byte('A' + i), byte('A' + j)}))
		}
	}
	sort.Strings(pairs)
	return pairs
}

func (p *Plugboard) Reset() {
	for i := range p.partner {
		p.partner[i] = -1
	}
	p.count = 0
}
