package viewer

import (
	"fmt"
	"testing"

	"github.com/iw2rmb/skim/buffer"
)

type recordingLogger struct {
	lines []string
}

func (l *recordingLogger) Printf(format string, v ...any) {
	l.lines = append(l.lines, fmt.Sprintf(format, v...))
}

func TestDispatch_QuitIsTerminal(t *testing.T) {
	st := NewState(Config{Document: buffer.New([]string{"ab", "cd"})})
	st.SetSize(10, 5)

	if a := st.Dispatch(Key{Kind: KeyQuit}); a != ActionQuit {
		t.Fatalf("quit action=%v, want %v", a, ActionQuit)
	}
	if !st.Quitting() || st.Mode() != Quitting {
		t.Fatalf("mode after quit=%v", st.Mode())
	}

	if a := st.Dispatch(Key{Kind: KeyDown}); a != ActionIgnored {
		t.Fatalf("key after quit action=%v, want %v", a, ActionIgnored)
	}
	if got := st.Cursor(); got != (buffer.Pos{}) {
		t.Fatalf("cursor moved after quit: %v", got)
	}
}

func TestDispatch_NavigationActions(t *testing.T) {
	lines := make([]string, 40)
	for i := range lines {
		lines[i] = "0123456789"
	}
	st := NewState(Config{Document: buffer.New(lines)})
	st.SetSize(20, 10)

	steps := []struct {
		key    KeyKind
		action Action
		want   buffer.Pos
	}{
		{KeyEnd, ActionMove, buffer.Pos{X: 10, Y: 0}},
		{KeyRight, ActionMove, buffer.Pos{X: 0, Y: 1}},
		{KeyLeft, ActionMove, buffer.Pos{X: 10, Y: 0}},
		{KeyHome, ActionMove, buffer.Pos{X: 0, Y: 0}},
		{KeyPageDown, ActionMove, buffer.Pos{X: 0, Y: 10}},
		{KeyHalfPageDown, ActionHalfPage, buffer.Pos{X: 0, Y: 15}},
		{KeyHalfPageUp, ActionHalfPage, buffer.Pos{X: 0, Y: 10}},
		{KeyPageUp, ActionMove, buffer.Pos{X: 0, Y: 0}},
		{KeyUp, ActionMove, buffer.Pos{X: 0, Y: 0}},
	}
	for i, s := range steps {
		if a := st.Dispatch(Key{Kind: s.key}); a != s.action {
			t.Fatalf("step %d: action=%v, want %v", i, a, s.action)
		}
		if got := st.Cursor(); got != s.want {
			t.Fatalf("step %d: cursor=%v, want %v", i, got, s.want)
		}
	}
}

func TestDispatch_PagesUseTextAreaHeight(t *testing.T) {
	lines := make([]string, 100)
	st := NewState(Config{Document: buffer.New(lines), StatusBar: true})
	st.SetSize(80, 12)

	st.Dispatch(Key{Kind: KeyPageDown})
	if got := st.Cursor().Y; got != 10 {
		t.Fatalf("page down with bars: y=%d, want 10", got)
	}
}

func TestDispatch_UnknownKeysGoToLogger(t *testing.T) {
	log := &recordingLogger{}
	st := NewState(Config{Logger: log})
	st.SetSize(10, 10)

	keys := []Key{
		{Kind: KeyChar, Rune: 'x'},
		{Kind: KeyChar, Rune: '\t', Ctrl: true},
		{Kind: KeyOther, Name: "f5"},
	}
	for _, k := range keys {
		if a := st.Dispatch(k); a != ActionPassThrough {
			t.Fatalf("key %v action=%v, want pass-through", k, a)
		}
	}

	want := []string{"120 (x)", "9", "f5"}
	if len(log.lines) != len(want) {
		t.Fatalf("logged %q, want %q", log.lines, want)
	}
	for i := range want {
		if log.lines[i] != want[i] {
			t.Fatalf("log line %d=%q, want %q", i, log.lines[i], want[i])
		}
	}
	if got := st.Cursor(); got != (buffer.Pos{}) {
		t.Fatalf("pass-through moved cursor to %v", got)
	}
}

func TestDispatch_NilLoggerIsSilent(t *testing.T) {
	st := NewState(Config{})
	if a := st.Dispatch(Key{Kind: KeyChar, Rune: 'q'}); a != ActionPassThrough {
		t.Fatalf("action=%v", a)
	}
}
