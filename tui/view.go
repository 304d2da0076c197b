package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"

	"github.com/samaelod/enigma/engine"
	"github.com/samaelod/enigma/types"
)

// messageLines is the height of the live message panel.
const messageLines = 4

// keyboardRows is the QWERTZ layout shared by the keyboard, the lampboard
// and the plugboard.
var keyboardRows = []string{"QWERTZUIO", "ASDFGHJK", "PYXCVBNML"}

const (
	rotorRowHeight = 4 // window border + letter + rotor number
	traceChrome    = 3 // panel border + title
	statusHeight   = 1
)

type sessionLayout struct {
	instructions string
	traceHeight  int
}

func (m Model) layout(windowWidth, windowHeight int) sessionLayout {
	l := sessionLayout{instructions: m.instructionsView(windowWidth)}

	used := 1 + rotorRowHeight + footerHeight + statusHeight + traceChrome
	if l.instructions != "" {
		used += lipgloss.Height(l.instructions)
	}
	if !m.opts.Secret {
		used += messageLines + 2
	}

	l.traceHeight = windowHeight - used
	if l.traceHeight < 3 {
		l.traceHeight = 3
	}
	return l
}

func renderScrollbar(vp viewport.Model, height int) string {
	total := vp.TotalLineCount()
	visible := vp.VisibleLineCount()

	if total <= visible {
		return ""
	}

	trackHeight := height
	if trackHeight < 1 {
		trackHeight = visible
	}

	thumbPos := int(float64(trackHeight-1) * vp.ScrollPercent())
	if thumbPos < 0 {
		thumbPos = 0
	}
	if thumbPos > trackHeight-1 {
		thumbPos = trackHeight - 1
	}

	var sb strings.Builder
	for i := 0; i < trackHeight; i++ {
		if i == thumbPos {
			sb.WriteString(scrollbarThumb.Render("█"))
		} else {
			sb.WriteString(scrollbarTrack.Render("│"))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

func (m Model) View() string {
	var content string

	// Window border (2) + margin (2)
	windowWidth := m.width - 4
	windowHeight := m.height - 4

	if windowWidth < minWindowWidth || windowHeight < minWindowHeight {
		return styleScreenTooSmall.
			Width(m.width).
			Height(m.height).
			Render("Terminal window is too small.\nPlease resize.")
	}

	appTitle := styleAppTitle.Width(windowWidth).Render("ENIGMA " + m.version)

	switch m.screen {

	case screenMachineSelect:
		content = m.pickerView(appTitle, windowWidth, windowHeight)

	case screenLoading:
		var status string
		if m.err != nil {
			status = lipgloss.JoinVertical(lipgloss.Center,
				styleError.Render("Error: "+m.err.Error()),
				"",
				styleSubtext.Render("press any key to pick another machine"),
			)
		} else {
			status = "Loading..."
		}

		content = lipgloss.Place(
			windowWidth, windowHeight,
			lipgloss.Center, lipgloss.Center,
			lipgloss.JoinVertical(lipgloss.Center,
				appTitle,
				"\n",
				status,
			),
		)

	case screenPlugboard, screenTyping:
		content = m.sessionView(windowWidth, windowHeight)
	}

	return styleWindow.
		Width(m.width - 2).
		Height(m.height - 2).
		Render(content)
}

func (m Model) pickerView(appTitle string, windowWidth, windowHeight int) string {
	// Split View: Browser (1/3) | Preview (2/3)
	listWidth := windowWidth / 3
	previewWidth := windowWidth - listWidth
	panelHeight := windowHeight - 1

	browserColor := colorSecondary
	if m.fileBrowser.HasValidFilesInDir(m.fileBrowser.CurrentDir) {
		browserColor = colorSuccess
	}

	previewColor := colorSecondary
	if fi, ok := m.fileBrowser.List.SelectedItem().(fileItem); ok && !fi.isDir {
		if m.fileBrowser.SelectedHasValidExtension() {
			previewColor = colorSuccess
		} else {
			previewColor = colorError
		}
	}

	browserTitle := styleTitle.MarginBottom(1).Render("Select Machine")
	browserView := stylePanelTitled.
		BorderForeground(browserColor).
		Width(listWidth - 4).
		Height(panelHeight).
		Render(browserTitle + "\n" + m.fileBrowser.View())

	previewTitle := styleTitle.MarginBottom(1).Render("Wiring")

	// -2 border, -1 title, -1 margin, -1 dots
	contentHeight := panelHeight - 5
	previewLines := strings.Split(m.fileBrowser.PreviewContent, "\n")
	if contentHeight > 0 && len(previewLines) > contentHeight {
		previewLines = append(previewLines[:contentHeight-1], "...")
	}

	previewView := stylePanelTitled.
		BorderForeground(previewColor).
		Width(previewWidth).
		Height(panelHeight).
		Render(previewTitle + "\n" + strings.Join(previewLines, "\n"))

	return lipgloss.Place(
		windowWidth, windowHeight,
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Top,
			appTitle,
			lipgloss.JoinHorizontal(lipgloss.Top, browserView, previewView),
		),
	)
}

func (m Model) sessionView(windowWidth, windowHeight int) string {
	l := m.layout(windowWidth, windowHeight)

	title := styleAppTitle.Width(windowWidth).Render(
		fmt.Sprintf("ENIGMA %s • %s", m.version, m.session.Sheet.Name))

	parts := []string{title}
	if l.instructions != "" {
		parts = append(parts, l.instructions)
	}

	switch {
	case m.screen == screenPlugboard:
		parts = append(parts, m.plugboardView())
	case m.opts.Debug:
		parts = append(parts, m.rotorsView(), m.traceView(windowWidth, l.traceHeight))
	default:
		parts = append(parts,
			m.rotorsView(),
			"",
			m.lampboardView(),
			"",
			m.keyboardView(),
			"",
			m.plugSummary(),
		)
	}

	if m.screen == screenTyping && !m.opts.Secret {
		parts = append(parts, m.messageView(windowWidth))
	}

	body := lipgloss.Place(
		windowWidth, windowHeight-footerHeight-statusHeight,
		lipgloss.Center, lipgloss.Top,
		lipgloss.JoinVertical(lipgloss.Center, parts...),
	)

	return lipgloss.JoinVertical(lipgloss.Top, body, m.footerView(windowWidth), m.statusView())
}

func (m Model) instructionsView(width int) string {
	if !m.opts.ShowInstructions || m.machine == nil {
		return ""
	}

	var text string
	if m.machine.Mode() == engine.ModeWiring {
		text = "Plug the board: press two letters to connect them, up to 10 pairs.\n" +
			"Enter starts typing with the plugs in place. Esc pulls every plug and starts typing."
	} else {
		text = fmt.Sprintf("Type letters to encipher them. Digits 1-%d turn a rotor by hand.\n", m.machine.RotorCount()) +
			"Enter commits the message to " + m.config.OutputPath + ". Esc quits."
	}
	return styleInstructions.Width(width - 2).Render(text)
}

// rotorsView draws the rotor windows, slowest first.
func (m Model) rotorsView() string {
	positions := m.machine.Positions()
	windows := make([]string, len(positions))
	for i := range positions {
		style := styleRotor
		if _, ok := m.turning[i]; ok {
			style = styleRotorTurning
		}
		windows[i] = lipgloss.JoinVertical(lipgloss.Center,
			style.Render(string(positions[i])),
			styleSubtext.Render(fmt.Sprint(i+1)),
		)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, windows...)
}

func (m Model) lampboardView() string {
	return renderRows(func(c rune) string {
		if c == m.lamp {
			return styleLampLit.Render(string(c))
		}
		return styleLamp.Render(string(c))
	})
}

func (m Model) keyboardView() string {
	return renderRows(func(c rune) string {
		if c == m.pressed {
			return styleKeyPressed.Render(string(c))
		}
		return styleKey.Render(string(c))
	})
}

func renderRows(cell func(rune) string) string {
	rows := make([]string, len(keyboardRows))
	for i, row := range keyboardRows {
		cells := make([]string, 0, len(row))
		for _, c := range row {
			cells = append(cells, cell(c))
		}
		rows[i] = lipgloss.JoinHorizontal(lipgloss.Top, cells...)
	}
	return lipgloss.JoinVertical(lipgloss.Center, rows...)
}

func (m Model) plugSummary() string {
	pairs := m.machine.Plugboard().Pairs()
	if len(pairs) == 0 {
		return styleSubtext.Render("Plugs: none")
	}
	return styleSubtext.Render("Plugs: " + strings.Join(pairs, " "))
}

// plugboardView is the front panel: one socket per letter, each pair of
// sockets in its cable's color.
func (m Model) plugboardView() string {
	pb := m.machine.Plugboard()
	pairs := pb.Pairs()
	cable := make(map[rune]int, 2*len(pairs))
	for i, p := range pairs {
		cable[rune(p[0])] = i
		cable[rune(p[1])] = i
	}
	pending, hasPending := m.machine.Pending()

	sockets := renderRows(func(c rune) string {
		if i, ok := cable[c]; ok {
			return styleSocket.Foreground(cableColors[i%len(cableColors)]).Bold(true).Render(string(c))
		}
		if hasPending && c == pending {
			return styleSocketPending.Render("[" + string(c) + "]")
		}
		return styleSocket.Render(string(c))
	})

	cables := make([]string, len(pairs))
	for i, p := range pairs {
		cables[i] = lipgloss.NewStyle().
			Foreground(cableColors[i%len(cableColors)]).
			Padding(0, 1).
			Render(p[:1] + "-" + p[1:])
	}

	status := fmt.Sprintf("%d/%d plugs", pb.Count(), types.MaxPlugs)
	if hasPending {
		status += fmt.Sprintf(" • %c waiting for a partner", pending)
	}

	return lipgloss.JoinVertical(lipgloss.Center,
		styleTitle.MarginBottom(1).Render("Plugboard"),
		sockets,
		"",
		lipgloss.JoinHorizontal(lipgloss.Top, cables...),
		styleSubtext.Render(status),
	)
}

func (m Model) messageView(width int) string {
	title := styleTitle.Render("Message")
	scrollbar := scrollbarTrack.Width(1).Render(renderScrollbar(m.messageViewport, messageLines))
	body := lipgloss.JoinHorizontal(lipgloss.Top, m.messageViewport.View(), scrollbar)

	return stylePanelTitled.
		Width(width - 2).
		Render(title + "\n" + body)
}

func (m Model) traceView(width, height int) string {
	title := styleTitle.Render("Signal Trace")
	scrollbar := scrollbarTrack.Width(1).Render(renderScrollbar(m.logViewport, height))
	body := lipgloss.JoinHorizontal(lipgloss.Top, m.logViewport.View(), scrollbar)

	return stylePanelTitled.
		BorderForeground(colorSecondary).
		Width(width - 2).
		Render(title + "\n" + body)
}

func (m Model) footerView(width int) string {
	footerStyle := lipgloss.NewStyle().
		Border(lipgloss.ThickBorder()).
		BorderForeground(colorSubtext).
		Padding(0, 1)

	return footerStyle.
		Width(width - 2).
		Render(m.help.View(m.keys))
}

func (m Model) statusView() string {
	if m.err != nil {
		return styleError.Render("Error: " + m.err.Error())
	}
	return styleStatus.Render(m.status)
}
