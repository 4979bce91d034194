package viewer

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// KeyMap defines the viewer key bindings.
//
// Binding keys use the Bubble Tea key name vocabulary ("up", "pgdown",
// "ctrl+q"); other backends decode into the same names.
type KeyMap struct {
	Up, Down, Left, Right key.Binding
	PageUp, PageDown      key.Binding
	Home, End             key.Binding

	HalfPageUp, HalfPageDown key.Binding

	Quit key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:    key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
		Down:  key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),
		Left:  key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "left")),
		Right: key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "right")),

		PageUp:   key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "page up")),
		PageDown: key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "page down")),

		Home: key.NewBinding(key.WithKeys("home"), key.WithHelp("home", "line start")),
		End:  key.NewBinding(key.WithKeys("end"), key.WithHelp("end", "line end")),

		// Vim-style half page scrolling.
		HalfPageUp:   key.NewBinding(key.WithKeys("ctrl+u"), key.WithHelp("ctrl+u", "half page up")),
		HalfPageDown: key.NewBinding(key.WithKeys("ctrl+d"), key.WithHelp("ctrl+d", "half page down")),

		Quit: key.NewBinding(key.WithKeys("ctrl+q"), key.WithHelp("Ctrl-Q", "quit")),
	}
}

func (km KeyMap) isZero() bool {
	return len(km.Quit.Keys()) == 0 && len(km.Up.Keys()) == 0 && len(km.Down.Keys()) == 0
}

type keyName string

func (k keyName) String() string { return string(k) }

// Resolve maps a canonical key name to a Key.
func (km KeyMap) Resolve(name string) Key {
	n := keyName(name)
	switch {
	case key.Matches(n, km.Quit):
		return Key{Kind: KeyQuit, Name: name}
	case key.Matches(n, km.HalfPageDown):
		return Key{Kind: KeyHalfPageDown, Name: name}
	case key.Matches(n, km.HalfPageUp):
		return Key{Kind: KeyHalfPageUp, Name: name}
	case key.Matches(n, km.Up):
		return Key{Kind: KeyUp, Name: name}
	case key.Matches(n, km.Down):
		return Key{Kind: KeyDown, Name: name}
	case key.Matches(n, km.Left):
		return Key{Kind: KeyLeft, Name: name}
	case key.Matches(n, km.Right):
		return Key{Kind: KeyRight, Name: name}
	case key.Matches(n, km.PageUp):
		return Key{Kind: KeyPageUp, Name: name}
	case key.Matches(n, km.PageDown):
		return Key{Kind: KeyPageDown, Name: name}
	case key.Matches(n, km.Home):
		return Key{Kind: KeyHome, Name: name}
	case key.Matches(n, km.End):
		return Key{Kind: KeyEnd, Name: name}
	}

	if r, ok := charForName(name); ok {
		return Key{Kind: KeyChar, Rune: r, Ctrl: unicode.IsControl(r), Name: name}
	}
	return Key{Kind: KeyOther, Name: name}
}

// Translate resolves a Bubble Tea key message.
func (km KeyMap) Translate(msg tea.KeyMsg) Key {
	if msg.Paste {
		return Key{Kind: KeyOther, Name: "paste"}
	}
	return km.Resolve(msg.String())
}

// HelpMessage is the hint shown in the message bar on startup.
func (km KeyMap) HelpMessage() string {
	h := km.Quit.Help()
	if h.Key == "" {
		return ""
	}
	return "HELP: " + h.Key + " = " + h.Desc
}

func charForName(name string) (rune, bool) {
	switch name {
	case "tab":
		return '\t', true
	case "enter":
		return '\n', true
	case "backspace":
		return 0x7f, true
	case " ", "space":
		return ' ', true
	}
	if rest, ok := strings.CutPrefix(name, "ctrl+"); ok && len(rest) == 1 {
		c := rest[0]
		if c >= 'a' && c <= 'z' {
			return rune(c & 0x1f), true
		}
		return 0, false
	}
	if utf8.RuneCountInString(name) == 1 {
		r, _ := utf8.DecodeRuneInString(name)
		return r, r != utf8.RuneError
	}
	return 0, false
}
