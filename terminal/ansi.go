package terminal

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"golang.org/x/term"

	"github.com/iw2rmb/skim/viewer"
)

// ANSI is a Driver and KeySource over a raw-mode tty. Output is written as
// escape sequences and flushed once per frame.
type ANSI struct {
	in  *os.File
	out *os.File
	w   *bufio.Writer

	keys  viewer.KeyMap
	style viewer.Style

	saved *term.State
	buf   [32]byte
}

// OpenANSI puts in into raw mode. Close restores it.
func OpenANSI(in, out *os.File, keys viewer.KeyMap, style viewer.Style) (*ANSI, error) {
	saved, err := term.MakeRaw(int(in.Fd()))
	if err != nil {
		return nil, fmt.Errorf("enable raw mode: %w", err)
	}
	return newANSI(in, out, keys, style, saved), nil
}

func newANSI(in, out *os.File, keys viewer.KeyMap, style viewer.Style, saved *term.State) *ANSI {
	return &ANSI{
		in:    in,
		out:   out,
		w:     bufio.NewWriter(out),
		keys:  keys,
		style: style,
		saved: saved,
	}
}

func (a *ANSI) Size() (int, int, error) {
	return term.GetSize(int(a.out.Fd()))
}

func (a *ANSI) ClearScreen() { a.w.WriteString(ansi.EraseEntireScreen) }

func (a *ANSI) ClearLine() { a.w.WriteString(ansi.EraseLineRight) }

// MoveCursor takes 0-based coordinates; the wire is 1-based.
func (a *ANSI) MoveCursor(x, y int) {
	a.w.WriteString(ansi.CursorPosition(x+1, y+1))
}

func (a *ANSI) HideCursor() { a.w.WriteString(ansi.HideCursor) }

func (a *ANSI) ShowCursor() { a.w.WriteString(ansi.ShowCursor) }

func (a *ANSI) DrawLine(l viewer.Line) {
	base := a.style.ForLine(l.Kind)
	for _, seg := range l.Segments {
		st := base
		if seg.Highlighted {
			st = seg.Style
		}
		writeStyled(a.w, st, seg.Text())
	}
}

func (a *ANSI) DrawStatus(text string) {
	writeStyled(a.w, a.style.StatusBar, text)
}

func (a *ANSI) DrawMessage(text string) {
	writeStyled(a.w, a.style.MessageBar, text)
}

func (a *ANSI) Farewell(text string) {
	a.w.WriteString(text)
	a.w.WriteString("\r\n")
}

func (a *ANSI) Flush() error {
	return a.w.Flush()
}

// Close restores the tty mode saved by OpenANSI.
func (a *ANSI) Close() error {
	if err := a.w.Flush(); err != nil {
		return err
	}
	if a.saved == nil {
		return nil
	}
	if err := term.Restore(int(a.in.Fd()), a.saved); err != nil {
		return fmt.Errorf("restore terminal: %w", err)
	}
	return nil
}

// NextKey blocks until the tty delivers input and decodes the first key in
// it.
func (a *ANSI) NextKey() (viewer.Key, error) {
	for {
		n, err := a.in.Read(a.buf[:])
		if n > 0 {
			return a.keys.Resolve(decodeKey(a.buf[:n])), nil
		}
		if err != nil {
			return viewer.Key{}, err
		}
	}
}

func writeStyled(w io.StringWriter, st lipgloss.Style, text string) {
	if text == "" {
		return
	}
	w.WriteString(st.Render(text))
}
