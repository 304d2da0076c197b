package tui

import (
	"fmt"
	"log"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/samaelod/enigma/engine"
	"github.com/samaelod/enigma/loader"
	"github.com/samaelod/enigma/lua"
	"github.com/samaelod/enigma/types"
)

func openLogsInEditor(logContent string) tea.Cmd {
	f, err := os.CreateTemp("", "enigma-trace-*.log")
	if err != nil {
		return func() tea.Msg { return errMsg{err} }
	}

	_, err = f.WriteString(logContent)
	f.Close()
	if err != nil {
		os.Remove(f.Name())
		return func() tea.Msg { return errMsg{err} }
	}
	tempPath := f.Name()

	editor := os.Getenv("EDITOR")
	if editor == "" {
		editor = "nano"
	}
	c := exec.Command(editor, tempPath)
	return tea.ExecProcess(c, func(err error) tea.Msg {
		os.Remove(tempPath)
		return editorFinishedMsg{err}
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {

	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.session.Close()
			return m, tea.Quit
		}

	case frameMsg:
		for rotor, frame := range m.turning {
			if frame <= int(msg) {
				delete(m.turning, rotor)
			}
		}
		return m, nil

	case keySheetSavedMsg:
		m.status += " • key sheet " + msg.path
		return m, nil

	case editorFinishedMsg:
		if msg.err != nil {
			m.err = msg.err
		}
		return m, nil

	case errMsg:
		m.err = msg.err
		return m, nil
	}

	switch m.screen {
	case screenMachineSelect:
		return m.updatePicker(msg)
	case screenLoading:
		return m.updateLoading(msg)
	default:
		return m.updateSession(msg)
	}
}

func (m Model) updatePicker(msg tea.Msg) (tea.Model, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok && m.fileBrowser.List.FilterState() != list.Filtering {
		switch km.String() {
		case "q", "esc":
			return m, tea.Quit
		case "enter":
			fi, ok := m.fileBrowser.List.SelectedItem().(fileItem)
			if ok && !fi.isDir {
				if !loader.Supported(fi.path) {
					return m, nil
				}
				m.screen = screenLoading
				log.Println("Selected machine: " + fi.path)
				return m, loadMachineCmd(fi.path)
			}
		}
	}

	var cmd tea.Cmd
	m.fileBrowser, cmd = m.fileBrowser.Update(msg)
	return m, cmd
}

func (m Model) updateLoading(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case machineLoadedMsg:
		m.startSession(msg.sheet)
		m.resize()
	case tea.KeyMsg:
		// any key leaves the error screen
		if m.err != nil {
			m.err = nil
			if m.fileBrowser.AllowedTypes == nil {
				m.fileBrowser = NewFileBrowser(loader.Extensions)
				m.resize()
			}
			m.screen = screenMachineSelect
		}
	}
	return m, nil
}

func (m Model) updateSession(msg tea.Msg) (tea.Model, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		if m.opts.Debug {
			m.logViewport, cmd = m.logViewport.Update(msg)
		}
		return m, cmd
	}

	switch {
	case key.Matches(km, m.keys.Scroll):
		m.scrollMessage(km.String())
		return m, nil
	case m.opts.Debug && key.Matches(km, m.keys.Trace):
		return m, openLogsInEditor(m.log.ReadAll())
	}

	m.lamp, m.pressed = 0, 0
	m.status = ""
	m.err = nil
	for _, k := range m.keys.machineKeys(km) {
		if err := m.machine.Handle(k); err != nil {
			m.err = err
			m.session.Fail(err)
		}
	}

	return m, m.applyEvents()
}

// applyEvents folds the machine events of the last key press into the
// display state.
func (m *Model) applyEvents() tea.Cmd {
	var (
		cmds []tea.Cmd
		quit bool
	)

	for _, e := range m.events.drain() {
		switch e.Kind {
		case engine.EventEnciphered:
			m.pressed, m.lamp = e.Letter, e.Peer

		case engine.EventRotorTurned:
			if m.opts.Animate {
				m.frame++
				m.turning[e.Rotor] = m.frame
				cmds = append(cmds, frameTick(m.frame, m.config.FrameDelay()))
			}

		case engine.EventCommitted:
			m.status = fmt.Sprintf("Committed %d letters to %s", e.Count, m.config.OutputPath)
			if e.Count > 0 {
				cmds = append(cmds, saveKeySheetCmd(m.session.KeySheet(), m.config.RecentDir))
			}

		case engine.EventModeChanged:
			if e.Mode == engine.ModeTerminated {
				quit = true
				continue
			}
			m.syncMode()
		}
	}

	m.refreshViewports()

	if quit {
		log.Printf("Session ended")
		m.session.Close()
		return tea.Quit
	}
	return tea.Batch(cmds...)
}

func (m *Model) refreshViewports() {
	if m.machine == nil {
		return
	}
	m.messageViewport.SetContent(strings.Join(m.machine.MessageLines(), "\n"))
	m.messageViewport.GotoBottom()

	if m.opts.Debug {
		m.logViewport.SetContent(m.log.ReadAll())
		m.logViewport.GotoBottom()
	}
}

func (m *Model) scrollMessage(k string) {
	step := m.messageViewport.Height
	if step < 1 {
		step = 1
	}
	switch k {
	case "pgup":
		m.messageViewport.SetYOffset(m.messageViewport.YOffset - step)
	case "pgdown":
		m.messageViewport.SetYOffset(m.messageViewport.YOffset + step)
	}
}

// resize fits the browser and viewports to the window. Must match View.
func (m *Model) resize() {
	windowWidth := m.width - 4
	windowHeight := m.height - 4
	if windowWidth < 0 || windowHeight < 0 {
		return
	}

	if m.fileBrowser.AllowedTypes != nil {
		listWidth := windowWidth / 3
		m.fileBrowser.SetSize(listWidth-4, windowHeight-7)
	}

	m.messageViewport.Width = windowWidth - 5
	m.messageViewport.Height = messageLines

	l := m.layout(windowWidth, windowHeight)
	m.logViewport.Width = windowWidth - 5 // border, padding and scrollbar
	m.logViewport.Height = l.traceHeight
}

func loadMachineCmd(path string) tea.Cmd {
	return func() tea.Msg {
		sheet, err := loader.Load(path)
		if err != nil {
			return errMsg{err}
		}
		return machineLoadedMsg{sheet: sheet}
	}
}

func saveKeySheetCmd(sheet *types.Machine, recentDir string) tea.Cmd {
	return func() tea.Msg {
		path, err := lua.SaveToRecent(sheet, recentDir)
		if err != nil {
			log.Printf("Failed to save key sheet: %v", err)
			return nil
		}
		return keySheetSavedMsg{path: path}
	}
}

func frameTick(frame int, delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return frameMsg(frame)
	})
}

type machineLoadedMsg struct {
	sheet *types.Machine
}

type keySheetSavedMsg struct{ path string }
type errMsg struct{ err error }
type editorFinishedMsg struct{ err error }

// frameMsg ends the rotor highlight of every frame up to and including it.
type frameMsg int
