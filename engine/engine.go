package engine

import (
	"fmt"
	"time"

	"github.com/samaelod/enigma/types"
)

// Session is one operator session: the machine built from a wiring
// document, plus the trace log and output file it reports to.
type Session struct {
	Sheet   *types.Machine
	Machine *Machine
	Log     *Logger
}

// NewSession builds the machine for sheet. Every event goes to the trace
// log at logPath and then to observer; committed messages are written to
// outputPath.
func NewSession(sheet *types.Machine, logPath string, logLines int, outputPath string, observer Observer) (*Session, error) {
	if logLines <= 0 {
		logLines = defaultLogLines
	}

	s := &Session{
		Sheet: sheet,
		Log:   NewLogger(logPath, logLines),
	}

	m, err := Build(sheet,
		WithSink(FileSink{Path: outputPath}),
		WithObserver(Observers{LogObserver{Log: s.Log}, observer}),
	)
	if err != nil {
		s.Log.Close()
		return nil, fmt.Errorf("invalid machine: %w", err)
	}
	s.Machine = m

	s.log(fmt.Sprintf("Machine %s loaded: %d rotors, positions %s, %d plugs",
		sheet.Name, m.RotorCount(), m.Positions(), m.Plugboard().Count()))
	if !m.reflector.IsInvolution() {
		s.log("Warning: reflector is not an involution, messages will not decipher on this machine")
	}
	return s, nil
}

// KeySheet returns the key of the current (or last committed) message
// under the session's machine name.
func (s *Session) KeySheet() *types.Machine {
	return s.Machine.KeySheet(s.Sheet.Name)
}

// Fail records an error the operator saw.
func (s *Session) Fail(err error) {
	s.log(fmt.Sprintf("Error: %v", err))
}

func (s *Session) Close() {
	if s == nil {
		return
	}
	s.Log.Close()
}

func (s *Session) log(msg string) {
	s.Log.Write(fmt.Sprintf("[%s] %s", time.Now().Format("15:04:05"), msg))
}
