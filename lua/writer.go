package lua

import (
	"fmt"
	"io"

	"github.com/samaelod/enigma/types"
)

// WriteConfig writes m as a Lua key sheet that ReadLuaConfig can load.
func WriteConfig(w io.Writer, m *types.Machine) error {
	bw := &errWriter{w: w}

	bw.printf("local machine = {}\n\n")

	if m.Name != "" {
		bw.printf("machine.name = %q\n\n", m.Name)
	}

	bw.printf("-- ROTORS (slowest first) --------------------------\n")
	bw.printf("machine.rotors = {\n")
	for _, r := range m.Rotors {
		bw.printf("\t%q,\n", r)
	}
	bw.printf("}\n\n")

	bw.printf("-- REFLECTOR ---------------------------------------\n")
	bw.printf("machine.reflector = %q\n\n", m.Reflector)

	bw.printf("-- MESSAGE KEY -------------------------------------\n")
	if m.Positions != "" {
		bw.printf("machine.positions = %q\n", m.Positions)
	}
	if len(m.Plugs) > 0 {
		bw.printf("machine.plugs = {")
		for i, p := range m.Plugs {
			if i > 0 {
				bw.printf(", ")
			}
			bw.printf("%q", p)
		}
		bw.printf("}\n")
	}
	bw.printf("\nreturn machine\n")

	return bw.err
}

type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) printf(format string, args ...any) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintf(e.w, format, args...)
}
