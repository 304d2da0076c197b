package tui

import (
	"log"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/samaelod/enigma/config"
	"github.com/samaelod/enigma/engine"
	"github.com/samaelod/enigma/loader"
	"github.com/samaelod/enigma/types"
)

// New builds the program model. With a nil sheet the operator first picks
// a wiring document from the file browser.
func New(version string, opts types.Options, cfg *config.Config, sheet *types.Machine) Model {
	if cfg == nil {
		cfg = config.Default()
	}

	m := Model{
		screen:          screenMachineSelect,
		opts:            opts,
		config:          cfg,
		version:         version,
		help:            help.New(),
		messageViewport: viewport.New(10, 4),
		logViewport:     viewport.New(10, 10),
		turning:         make(map[int]int),
	}

	if sheet == nil {
		m.fileBrowser = NewFileBrowser(loader.Extensions)
		return m
	}

	m.startSession(sheet)
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

func Run(version string, opts types.Options, cfg *config.Config, sheet *types.Machine) error {
	p := tea.NewProgram(New(version, opts, cfg, sheet), tea.WithAltScreen())
	final, err := p.Run()
	if fm, ok := final.(Model); ok {
		fm.session.Close()
	}
	return err
}

// startSession builds the machine for sheet and enters the wiring screen.
// A sheet that cannot be built leaves the model on the loading screen.
func (m *Model) startSession(sheet *types.Machine) {
	m.events = &eventQueue{}

	session, err := engine.NewSession(sheet,
		sessionLogPath(m.config.LogsDir, sheet.Name), m.config.LogLines,
		m.config.OutputPath, m.events)
	if err != nil {
		m.err = err
		m.screen = screenLoading
		return
	}

	m.session = session
	m.machine = session.Machine
	m.log = session.Log
	m.err = nil
	m.status = ""
	log.Printf("Session started with machine: %s (%d rotors)", sheet.Name, m.machine.RotorCount())

	m.syncMode()
	m.refreshViewports()
}

// syncMode points the screen and key help at the machine's mode.
func (m *Model) syncMode() {
	mode := m.machine.Mode()
	m.keys = newKeyMap(mode, m.machine.RotorCount(), m.opts.Debug)
	switch mode {
	case engine.ModeWiring:
		m.screen = screenPlugboard
	default:
		m.screen = screenTyping
	}
}

func sessionLogPath(logsDir, name string) string {
	if logsDir == "" {
		return ""
	}
	base := filepath.Base(name)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	if base == "" || base == "." {
		base = "session"
	}
	return filepath.Join(logsDir, base+".log")
}
