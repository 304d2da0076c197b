package engine

// Stepper turns the rotors. Carries run like an odometer from the fastest
// (last) rotor towards the slowest; there is no double-stepping.
type Stepper struct {
	rotors []*Rotor
}

func NewStepper(rotors []*Rotor) *Stepper {
	return &Stepper{rotors: rotors}
}

// AutoAdvance steps the fastest rotor and propagates the carry. It
// returns the indices of the rotors that moved, fastest first.
func (s *Stepper) AutoAdvance() []int {
	var turned []int
	for i := len(s.rotors) - 1; i >= 0; i-- {
		turned = append(turned, i)
		if !s.rotors[i].Advance() {
			break
		}
	}
	return turned
}

// ManualAdvance steps one rotor without carrying.
func (s *Stepper) ManualAdvance(i int) {
	s.rotors[i].Advance()
}
