package terminal

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"
	"github.com/gdamore/tcell/v2"

	"github.com/iw2rmb/skim/internal/grapheme"
	"github.com/iw2rmb/skim/viewer"
)

// Tcell is a Driver and KeySource backed by a tcell screen.
type Tcell struct {
	screen tcell.Screen
	keys   viewer.KeyMap
	style  viewer.Style

	// x, y is the draw position set by MoveCursor and advanced by drawing.
	x, y int
	// cx, cy is where the cursor goes on the next Flush.
	cx, cy     int
	showCursor bool

	farewell string
	out      io.Writer
}

// OpenTcell initialises a terminal screen. The farewell line is written to
// out after the screen is released by Close.
func OpenTcell(out io.Writer, keys viewer.KeyMap, style viewer.Style) (*Tcell, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	return NewTcell(screen, out, keys, style)
}

// NewTcell wraps an existing screen and initialises it.
func NewTcell(screen tcell.Screen, out io.Writer, keys viewer.KeyMap, style viewer.Style) (*Tcell, error) {
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	return &Tcell{screen: screen, keys: keys, style: style, out: out}, nil
}

func (t *Tcell) Size() (int, int, error) {
	w, h := t.screen.Size()
	return w, h, nil
}

func (t *Tcell) ClearScreen() { t.screen.Clear() }

func (t *Tcell) ClearLine() {
	w, _ := t.screen.Size()
	for x := t.x; x < w; x++ {
		t.screen.SetContent(x, t.y, ' ', nil, tcell.StyleDefault)
	}
}

func (t *Tcell) MoveCursor(x, y int) {
	t.x, t.y = x, y
	t.cx, t.cy = x, y
}

func (t *Tcell) HideCursor() { t.showCursor = false }

func (t *Tcell) ShowCursor() { t.showCursor = true }

func (t *Tcell) DrawLine(l viewer.Line) {
	base := t.style.ForLine(l.Kind)
	for _, seg := range l.Segments {
		st := base
		if seg.Highlighted {
			st = seg.Style
		}
		t.put(seg.Clusters, convertStyle(st))
	}
}

func (t *Tcell) DrawStatus(text string) {
	t.put(grapheme.Split(text), convertStyle(t.style.StatusBar))
}

func (t *Tcell) DrawMessage(text string) {
	t.put(grapheme.Split(text), convertStyle(t.style.MessageBar))
}

// Farewell is held until Close, once the screen has been released.
func (t *Tcell) Farewell(text string) { t.farewell = text }

func (t *Tcell) Flush() error {
	if t.showCursor {
		t.screen.ShowCursor(t.cx, t.cy)
	} else {
		t.screen.HideCursor()
	}
	t.screen.Show()
	return nil
}

func (t *Tcell) Close() error {
	t.screen.Fini()
	if t.farewell == "" || t.out == nil {
		return nil
	}
	_, err := fmt.Fprintln(t.out, t.farewell)
	return err
}

// NextKey blocks on the screen event queue. Resizes are delivered as
// KeyResize; a screen error or a closed queue ends the loop.
func (t *Tcell) NextKey() (viewer.Key, error) {
	for {
		switch ev := t.screen.PollEvent().(type) {
		case nil:
			return viewer.Key{}, errors.New("screen closed")
		case *tcell.EventKey:
			return t.keys.Resolve(tcellKeyName(ev)), nil
		case *tcell.EventResize:
			w, h := ev.Size()
			return viewer.ResizeKey(w, h), nil
		case *tcell.EventError:
			return viewer.Key{}, ev
		}
	}
}

// put draws clusters from the draw position, one cell per column of width.
func (t *Tcell) put(clusters []string, st tcell.Style) {
	w, _ := t.screen.Size()
	for _, c := range clusters {
		cw := grapheme.CellWidth(c)
		if t.x+cw > w {
			return
		}
		// An expanded tab is a run of blank cells, not one cluster.
		if len(c) > 1 && strings.Trim(c, " ") == "" {
			for range c {
				t.screen.SetContent(t.x, t.y, ' ', nil, st)
				t.x++
			}
			continue
		}
		runes := []rune(c)
		t.screen.SetContent(t.x, t.y, runes[0], runes[1:], st)
		t.x += max(cw, 1)
	}
}

// tcellKeyName maps a tcell key event to the Bubble Tea key vocabulary.
func tcellKeyName(ev *tcell.EventKey) string {
	name := baseKeyName(ev)
	if ev.Modifiers()&tcell.ModAlt != 0 && !strings.HasPrefix(name, "alt+") {
		return "alt+" + name
	}
	return name
}

func baseKeyName(ev *tcell.EventKey) string {
	switch k := ev.Key(); k {
	case tcell.KeyRune:
		r := ev.Rune()
		if ev.Modifiers()&tcell.ModCtrl != 0 && r < unicode.MaxASCII && unicode.IsLetter(r) {
			return "ctrl+" + string(unicode.ToLower(r))
		}
		return string(r)
	case tcell.KeyUp:
		return "up"
	case tcell.KeyDown:
		return "down"
	case tcell.KeyLeft:
		return "left"
	case tcell.KeyRight:
		return "right"
	case tcell.KeyHome:
		return "home"
	case tcell.KeyEnd:
		return "end"
	case tcell.KeyPgUp:
		return "pgup"
	case tcell.KeyPgDn:
		return "pgdown"
	case tcell.KeyInsert:
		return "insert"
	case tcell.KeyDelete:
		return "delete"
	case tcell.KeyEscape:
		return "esc"
	case tcell.KeyEnter:
		return "enter"
	case tcell.KeyTab:
		return "tab"
	case tcell.KeyBackspace2:
		return "backspace"
	case tcell.KeyBackspace:
		return "ctrl+h"
	default:
		if k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
			return "ctrl+" + string(rune('a'+k-tcell.KeyCtrlA))
		}
		if k >= tcell.KeyF1 && k <= tcell.KeyF64 {
			return "f" + strconv.Itoa(int(k-tcell.KeyF1)+1)
		}
		return unknownKey
	}
}

// convertStyle carries the colours and attributes of a lipgloss style over
// to tcell.
func convertStyle(st lipgloss.Style) tcell.Style {
	out := tcell.StyleDefault.
		Foreground(convertColor(st.GetForeground())).
		Background(convertColor(st.GetBackground()))
	if st.GetBold() {
		out = out.Bold(true)
	}
	if st.GetItalic() {
		out = out.Italic(true)
	}
	if st.GetUnderline() {
		out = out.Underline(true)
	}
	if st.GetReverse() {
		out = out.Reverse(true)
	}
	return out
}

func convertColor(c lipgloss.TerminalColor) tcell.Color {
	var name string
	switch c := c.(type) {
	case lipgloss.Color:
		name = string(c)
	case lipgloss.AdaptiveColor:
		name = c.Dark
	default:
		return tcell.ColorDefault
	}
	if n, err := strconv.Atoi(name); err == nil {
		return tcell.PaletteColor(n)
	}
	return tcell.GetColor(name)
}
