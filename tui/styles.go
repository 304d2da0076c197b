package tui

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	colorPrimary   = lipgloss.Color("#7D56F4") // Purple
	colorSecondary = lipgloss.Color("#F4A956") // Orange
	colorText      = lipgloss.Color("#FAFAFA") // White/Light Gray
	colorSubtext   = lipgloss.Color("#777777") // Gray
	colorSuccess   = lipgloss.Color("#43BF6D") // Green
	colorError     = lipgloss.Color("#FF5F5F") // Red
	colorLamp      = lipgloss.Color("#FFE066") // Yellow

	// one color per plugboard cable
	cableColors = []lipgloss.Color{
		"#FF5F5F", "#43BF6D", "#5FAFFF", "#F4A956", "#D787FF",
		"#5FD7D7", "#FFD75F", "#FF87AF", "#AFD75F", "#87AFFF",
	}

	// Layout Styles
	styleWindow = lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(colorPrimary).
			Align(lipgloss.Center)

	// Panel style for panels with internal titles (no top padding)
	stylePanelTitled = lipgloss.NewStyle().
				Border(lipgloss.ThickBorder()).
				BorderForeground(colorSubtext).
				Padding(0, 1)

	styleTitle = lipgloss.NewStyle().
			Background(colorPrimary).
			Foreground(colorText).
			Padding(0, 1).
			Bold(true)

	styleAppTitle = lipgloss.NewStyle().
			Foreground(colorSecondary).
			Bold(true).
			Padding(0, 1).
			Align(lipgloss.Center)

	styleSelected = lipgloss.NewStyle().
			Foreground(colorSecondary).
			Bold(true)

	styleSubtext = lipgloss.NewStyle().Foreground(colorSubtext)

	styleError = lipgloss.NewStyle().Foreground(colorError).Bold(true)

	styleStatus = lipgloss.NewStyle().Foreground(colorSuccess)

	styleScreenTooSmall = lipgloss.NewStyle().
				Foreground(colorSecondary).
				Bold(true).
				Align(lipgloss.Center, lipgloss.Center)

	// Machine parts
	styleRotor = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSubtext).
			Foreground(colorText).
			Bold(true).
			Padding(0, 1)

	styleRotorTurning = styleRotor.
				BorderForeground(colorSecondary).
				Foreground(colorSecondary)

	styleLamp = lipgloss.NewStyle().
			Foreground(colorSubtext).
			Padding(0, 1)

	styleLampLit = styleLamp.
			Foreground(lipgloss.Color("#000000")).
			Background(colorLamp).
			Bold(true)

	styleKey = lipgloss.NewStyle().
			Foreground(colorText).
			Padding(0, 1)

	styleKeyPressed = styleKey.
			Foreground(colorText).
			Background(colorPrimary).
			Bold(true)

	styleSocket = lipgloss.NewStyle().
			Foreground(colorSubtext).
			Padding(0, 1)

	styleSocketPending = styleSocket.
				Foreground(colorSecondary).
				Bold(true)

	styleInstructions = lipgloss.NewStyle().
				Foreground(colorSubtext).
				Border(lipgloss.NormalBorder(), false, false, true, false).
				BorderForeground(colorSubtext).
				Padding(0, 1)

	// Scrollbar styles
	scrollbarTrack = lipgloss.NewStyle().
			Foreground(colorSubtext)

	scrollbarThumb = lipgloss.NewStyle().
			Foreground(colorPrimary)
)
