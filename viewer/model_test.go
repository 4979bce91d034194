package viewer

import (
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/iw2rmb/skim/buffer"
)

func TestModel_KeysMoveCursorAndScroll(t *testing.T) {
	m := New(Config{Document: buffer.FromText("0\n1\n2\n3\n4\n5")})
	m, _ = m.Update(tea.WindowSizeMsg{Width: 10, Height: 3})

	for i := 0; i < 4; i++ {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	}
	vs := m.ViewportState()
	if vs.Cursor != (buffer.Pos{Y: 4}) || vs.Offset != (buffer.Pos{Y: 2}) {
		t.Fatalf("viewport state after 4 downs: %+v", vs)
	}
	if vs.ScreenCursor != (buffer.Pos{Y: 2}) || vs.VisibleRows != 3 {
		t.Fatalf("screen cursor/rows: %+v", vs)
	}

	lines := strings.Split(m.View(), "\n")
	if len(lines) != 3 || lines[0] != "2" || lines[1] != "3" || lines[2] != "4" {
		t.Fatalf("view=%q", lines)
	}
}

func TestModel_QuitReturnsTeaQuit(t *testing.T) {
	m := New(Config{Document: buffer.Greeting()})
	m = m.SetSize(20, 4)

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlQ})
	if cmd == nil {
		t.Fatalf("quit produced no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("quit command produced %T", cmd())
	}
	if got := m.View(); got != "" {
		t.Fatalf("view after quit=%q, want empty", got)
	}

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	if cmd != nil {
		t.Fatalf("keys after quit should not produce commands")
	}
}

func TestModel_ViewIncludesStatusAndMessageBars(t *testing.T) {
	m := New(Config{Document: buffer.FromText("one\ntwo"), StatusBar: true})
	m = m.SetSize(30, 5)

	lines := strings.Split(m.View(), "\n")
	if len(lines) != 5 {
		t.Fatalf("view has %d lines, want 5: %q", len(lines), lines)
	}
	if lines[0] != "one" || lines[1] != "two" || lines[2] != "~" {
		t.Fatalf("text rows=%q", lines[:3])
	}
	if !strings.HasPrefix(lines[3], "[Untitled] - 2 lines") || !strings.HasSuffix(lines[3], "1/2") {
		t.Fatalf("status bar=%q", lines[3])
	}
	if lines[4] != "HELP: Ctrl-Q = quit" {
		t.Fatalf("message bar=%q", lines[4])
	}
}

func TestModel_CursorProducesANSI(t *testing.T) {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.TrueColor)

	m := New(Config{
		Document: buffer.FromText("abc"),
		Style:    Style{Cursor: r.NewStyle().Reverse(true)},
	})
	m = m.SetSize(10, 1)
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})

	view := m.View()
	if !strings.Contains(view, "\x1b[7mb") {
		t.Fatalf("expected reversed cursor on 'b', got %q", view)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnd})
	if view := m.View(); !strings.HasPrefix(view, "abc") || !strings.Contains(view, "\x1b[7m ") {
		t.Fatalf("expected cursor cell past end of row, got %q", view)
	}
}

func TestModel_HighlightedSegmentsUseSpanStyle(t *testing.T) {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.TrueColor)
	red := r.NewStyle().Foreground(lipgloss.Color("#ff0000"))

	h := &stubHighlighter{fn: func(ctx LineContext) ([]HighlightSpan, error) {
		return []HighlightSpan{{StartGraphemeCol: 0, EndGraphemeCol: 3, Style: red}}, nil
	}}
	m := New(Config{Document: buffer.FromText("let x"), Highlighter: h})
	m = m.SetSize(20, 1)
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnd})

	view := m.View()
	if !strings.Contains(view, "\x1b[38;2;255;0;0mlet") {
		t.Fatalf("expected red keyword, got %q", view)
	}
}
