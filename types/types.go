package types

import (
	"fmt"
	"strings"
)

// Alphabet is the ordered symbol set every permutation is defined against.
const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// N is the alphabet length.
const N = len(Alphabet)

// MaxPlugs caps the number of plugboard connections.
const MaxPlugs = 10

// Index returns the ordinal of r in Alphabet, or -1.
func Index(r rune) int {
	if r < 'A' || r > 'Z' {
		return -1
	}
	return int(r - 'A')
}

// Machine is a wiring document. Loaded from YAML, TOML, JSON or Lua, and
// written back out as a Lua key sheet.
type Machine struct {
	Name      string   `json:"name,omitempty" yaml:"name,omitempty" toml:"name,omitempty"`
	Rotors    []string `json:"rotors" yaml:"rotors" toml:"rotors"` // slowest first
	Reflector string   `json:"reflector" yaml:"reflector" toml:"reflector"`
	Positions string   `json:"positions,omitempty" yaml:"positions,omitempty" toml:"positions,omitempty"`
	Plugs     []string `json:"plugs,omitempty" yaml:"plugs,omitempty" toml:"plugs,omitempty"`
}

// Options are the operator-facing switches.
type Options struct {
	Debug            bool
	Secret           bool
	ShowInstructions bool
	Animate          bool
}

// FieldError reports an invalid configuration field.
type FieldError struct {
	Field  string
	Value  string
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Reason)
}

// Normalize upper-cases and trims every field in place. Anything after a
// '#' in a wiring string is treated as a comment.
func (m *Machine) Normalize() {
	for i, r := range m.Rotors {
		m.Rotors[i] = clean(r)
	}
	m.Reflector = clean(m.Reflector)
	m.Positions = clean(m.Positions)
	for i, p := range m.Plugs {
		m.Plugs[i] = clean(p)
	}
}

func clean(s string) string {
	if i := strings.IndexByte(s, '#'); i >= 0 {
		s = s[:i]
	}
	return strings.ToUpper(strings.TrimSpace(s))
}

// Validate checks every field and returns a *FieldError for the first
// offending one.
func (m *Machine) Validate() error {
	if len(m.Rotors) == 0 {
		return &FieldError{Field: "rotors", Reason: "at least one rotor is required"}
	}
	for i, r := range m.Rotors {
		if reason := checkPermutation(r); reason != "" {
			return &FieldError{Field: fmt.Sprintf("rotors[%d]", i), Value: r, Reason: reason}
		}
	}
	if reason := checkPermutation(m.Reflector); reason != "" {
		return &FieldError{Field: "reflector", Value: m.Reflector, Reason: reason}
	}

	if m.Positions != "" {
		if len(m.Positions) != len(m.Rotors) {
			return &FieldError{
				Field:  "positions",
				Value:  m.Positions,
				Reason: fmt.Sprintf("want one letter per rotor (%d)", len(m.Rotors)),
			}
		}
		for _, r := range m.Positions {
			if Index(r) < 0 {
				return &FieldError{Field: "positions", Value: m.Positions, Reason: "letters A-Z only"}
			}
		}
	}

	if len(m.Plugs) > MaxPlugs {
		return &FieldError{
			Field:  "plugs",
			Value:  strings.Join(m.Plugs, " "),
			Reason: fmt.Sprintf("at most %d connections", MaxPlugs),
		}
	}
	var used [N]bool
	for i, p := range m.Plugs {
		field := fmt.Sprintf("plugs[%d]", i)
		if len(p) != 2 || Index(rune(p[0])) < 0 || Index(rune(p[1])) < 0 {
			return &FieldError{Field: field, Value: p, Reason: "want two letters"}
		}
		if p[0] == p[1] {
			return &FieldError{Field: field, Value: p, Reason: "a letter cannot be plugged to itself"}
		}
		for _, c := range []byte{p[0], p[1]} {
			if used[c-'A'] {
				return &FieldError{Field: field, Value: p, Reason: fmt.Sprintf("%c is already plugged", c)}
			}
			used[c-'A'] = true
		}
	}
	return nil
}

func checkPermutation(s string) string {
	if len(s) != N {
		return fmt.Sprintf("must contain exactly all letters A-Z once (got %d symbols)", len(s))
	}
	var seen [N]bool
	for _, r := range s {
		i := Index(r)
		if i < 0 {
			return fmt.Sprintf("%q is not in the alphabet", r)
		}
		if seen[i] {
			return fmt.Sprintf("%c appears more than once", r)
		}
		seen[i] = true
	}
	return ""
}
