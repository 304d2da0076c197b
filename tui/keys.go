package tui

import (
	"fmt"
	"unicode"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/samaelod/enigma/engine"
	"github.com/samaelod/enigma/types"
)

type keyMap struct {
	Letter key.Binding
	Rotor  key.Binding
	Enter  key.Binding
	Escape key.Binding
	Scroll key.Binding
	Trace  key.Binding
	Quit   key.Binding

	mode  engine.Mode
	debug bool
}

func newKeyMap(mode engine.Mode, rotors int, debug bool) keyMap {
	k := keyMap{
		Rotor:  key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"), key.WithHelp(fmt.Sprintf("1-%d", rotors), "turn rotor")),
		Scroll: key.NewBinding(key.WithKeys("pgup", "pgdown"), key.WithHelp("pgup/pgdn", "scroll")),
		Trace:  key.NewBinding(key.WithKeys("ctrl+o"), key.WithHelp("ctrl+o", "open trace")),
		Quit:   key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "abort")),
		mode:   mode,
		debug:  debug,
	}

	switch mode {
	case engine.ModeWiring:
		k.Letter = key.NewBinding(key.WithKeys(letterKeys()...), key.WithHelp("a-z", "plug letter"))
		k.Enter = key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "start typing"))
		k.Escape = key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "pull all plugs"))
	default:
		k.Letter = key.NewBinding(key.WithKeys(letterKeys()...), key.WithHelp("a-z", "encipher"))
		k.Enter = key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "commit message"))
		k.Escape = key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "quit"))
	}
	return k
}

func letterKeys() []string {
	keys := make([]string, 0, 2*len(types.Alphabet))
	for _, c := range types.Alphabet {
		keys = append(keys, string(c), string(unicode.ToLower(c)))
	}
	return keys
}

func (k keyMap) ShortHelp() []key.Binding {
	var keys []key.Binding
	if k.mode == engine.ModeWiring {
		keys = []key.Binding{k.Letter, k.Enter, k.Escape, k.Quit}
	} else {
		keys = []key.Binding{k.Letter, k.Rotor, k.Enter, k.Escape, k.Scroll}
	}
	if k.debug {
		keys = append(keys, k.Trace)
	}
	return keys
}

func (k keyMap) FullHelp() [][]key.Binding {
	if k.mode == engine.ModeWiring {
		return [][]key.Binding{{k.Letter, k.Enter, k.Escape}, {k.Trace, k.Quit}}
	}
	return [][]key.Binding{{k.Letter, k.Rotor, k.Enter, k.Escape}, {k.Scroll, k.Trace, k.Quit}}
}

// machineKeys turns one terminal key event into machine keys. A paste
// arrives as a single event carrying many runes.
func (k keyMap) machineKeys(msg tea.KeyMsg) []engine.Key {
	switch {
	case key.Matches(msg, k.Enter):
		return []engine.Key{engine.EnterKey}
	case key.Matches(msg, k.Escape):
		return []engine.Key{engine.EscapeKey}
	case msg.Type == tea.KeyRunes && !msg.Alt:
		keys := make([]engine.Key, len(msg.Runes))
		for i, r := range msg.Runes {
			keys[i] = engine.RuneKey(r)
		}
		return keys
	}
	return []engine.Key{{Code: engine.KeyOther}}
}
