package engine

import (
	"fmt"
	"strings"
)

// Stage is one hop of the signal through the machine.
type Stage struct {
	Label string // "PLUG", "R1".."Rn", "REFLECT"
	Out   rune
}

// SignalPath wires plugboard, rotors and reflector into a single
// letter-to-letter transform. Rotors are ordered slowest first.
type SignalPath struct {
	plugboard *Plugboard
	rotors    []*Rotor
	reflector *Reflector
}

func NewSignalPath(pb *Plugboard, rotors []*Rotor, reflector *Reflector) *SignalPath {
	return &SignalPath{plugboard: pb, rotors: rotors, reflector: reflector}
}

// Encipher runs c through the machine at the current rotor offsets
// without touching them.
func (s *SignalPath) Encipher(c rune) rune {
	c = s.plugboard.Map(c)
	for i := len(s.rotors) - 1; i >= 0; i-- {
		c = s.rotors[i].Forward(c)
	}
	c = s.reflector.Reflect(c)
	for _, r := range s.rotors {
		c = r.Reverse(c)
	}
	return s.plugboard.Map(c)
}

// Trace is Encipher with every intermediate value recorded. The last
// stage holds the output letter.
func (s *SignalPath) Trace(c rune) []Stage {
	stages := make([]Stage, 0, 2*len(s.rotors)+3)

	c = s.plugboard.Map(c)
	stages = append(stages, Stage{Label: "PLUG", Out: c})
	for i := len(s.rotors) - 1; i >= 0; i-- {
		c = s.rotors[i].Forward(c)
		stages = append(stages, Stage{Label: rotorLabel(i), Out: c})
	}
	c = s.reflector.Reflect(c)
	stages = append(stages, Stage{Label: "REFLECT", Out: c})
	for i, r := range s.rotors {
		c = r.Reverse(c)
		stages = append(stages, Stage{Label: rotorLabel(i), Out: c})
	}
	c = s.plugboard.Map(c)
	stages = append(stages, Stage{Label: "PLUG", Out: c})
	return stages
}

func rotorLabel(i int) string {
	return fmt.Sprintf("R%d", i+1)
}

// FormatTrace renders a trace as "(IN) A -> [PLUG] A -> [R3] B ... (OUT) Q".
func FormatTrace(in rune, stages []Stage) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "(IN) %c", in)
	for _, st := range stages {
		fmt.Fprintf(&sb, " -> [%s] %c", st.Label, st.Out)
	}
	if len(stages) > 0 {
		fmt.Fprintf(&sb, " (OUT) %c", stages[len(stages)-1].Out)
	}
	return sb.String()
}
