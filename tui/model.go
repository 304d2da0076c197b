package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/viewport"

	"github.com/samaelod/enigma/config"
	"github.com/samaelod/enigma/engine"
	"github.com/samaelod/enigma/types"
)

type screen int

const (
	screenMachineSelect screen = iota
	screenLoading
	screenPlugboard
	screenTyping
)

type Model struct {
	screen  screen
	opts    types.Options
	config  *config.Config
	version string

	// fileBrowser picks a wiring document when none was given
	fileBrowser FileBrowser

	session *engine.Session
	machine *engine.Machine
	log     *engine.Logger
	events  *eventQueue
	err     error
	status  string

	keys keyMap
	help help.Model

	messageViewport viewport.Model
	logViewport     viewport.Model

	lamp    rune // lit lamp, 0 when dark
	pressed rune
	turning map[int]int // rotor -> animation frame that highlighted it
	frame   int

	width  int
	height int
}

const (
	minWindowWidth  = 60
	minWindowHeight = 20
	footerHeight    = 3
)
