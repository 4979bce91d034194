package terminal

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iw2rmb/skim/buffer"
	"github.com/iw2rmb/skim/viewer"
)

func newSimTcell(t *testing.T, w, h int) (*Tcell, tcell.SimulationScreen, *bytes.Buffer) {
	t.Helper()
	screen := tcell.NewSimulationScreen("")
	var out bytes.Buffer
	drv, err := NewTcell(screen, &out, viewer.DefaultKeyMap(), viewer.DefaultStyle())
	require.NoError(t, err)
	screen.SetSize(w, h)
	return drv, screen, &out
}

func rowText(screen tcell.Screen, y, w int) string {
	var sb []rune
	for x := 0; x < w; x++ {
		r, comb, _, _ := screen.GetContent(x, y)
		sb = append(sb, r)
		sb = append(sb, comb...)
	}
	return string(sb)
}

func TestTcell_RunDrawsAndSaysGoodbye(t *testing.T) {
	drv, screen, out := newSimTcell(t, 8, 4)
	st := viewer.NewState(viewer.Config{Document: buffer.FromText("a\tb\nline two")})

	screen.InjectKey(tcell.KeyDown, 0, tcell.ModNone)
	screen.InjectKey(tcell.KeyCtrlQ, 0, tcell.ModNone)

	require.NoError(t, Run(st, drv, drv))
	assert.Equal(t, buffer.Pos{Y: 1}, st.Cursor())

	require.NoError(t, drv.Close())
	assert.Equal(t, "Goodbye.\n", out.String())
}

func TestTcell_DrawLineWritesCells(t *testing.T) {
	drv, screen, _ := newSimTcell(t, 8, 3)
	st := viewer.NewState(viewer.Config{Document: buffer.FromText("a\tb\nline two!")})
	st.SetSize(8, 3)

	require.NoError(t, refresh(st, drv))

	assert.Equal(t, "a  b    ", rowText(screen, 0, 8))
	assert.Equal(t, "line two", rowText(screen, 1, 8))
	assert.Equal(t, "~       ", rowText(screen, 2, 8))
}

func TestTcell_ResizeBecomesKey(t *testing.T) {
	drv, screen, _ := newSimTcell(t, 8, 3)
	require.NoError(t, screen.PostEvent(tcell.NewEventResize(20, 6)))

	// The screen may queue its own resize on init; skip to ours.
	var k viewer.Key
	for i := 0; i < 3; i++ {
		var err error
		k, err = drv.NextKey()
		require.NoError(t, err)
		if k.Size.Width == 20 {
			break
		}
	}
	assert.Equal(t, viewer.KeyResize, k.Kind)
	assert.Equal(t, viewer.Size{Width: 20, Height: 6}, k.Size)
}

func TestTcellKeyName(t *testing.T) {
	tests := []struct {
		ev   *tcell.EventKey
		want string
	}{
		{tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), "up"},
		{tcell.NewEventKey(tcell.KeyPgDn, 0, tcell.ModNone), "pgdown"},
		{tcell.NewEventKey(tcell.KeyPgUp, 0, tcell.ModNone), "pgup"},
		{tcell.NewEventKey(tcell.KeyHome, 0, tcell.ModNone), "home"},
		{tcell.NewEventKey(tcell.KeyCtrlQ, 0, tcell.ModCtrl), "ctrl+q"},
		{tcell.NewEventKey(tcell.KeyCtrlD, 0, tcell.ModCtrl), "ctrl+d"},
		{tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), "x"},
		{tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModAlt), "alt+x"},
		{tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModCtrl), "ctrl+q"},
		{tcell.NewEventKey(tcell.KeyF5, 0, tcell.ModNone), "f5"},
		{tcell.NewEventKey(tcell.KeyBackspace2, 0, tcell.ModNone), "backspace"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, tcellKeyName(tc.ev))
	}
}

func TestConvertStyle(t *testing.T) {
	st := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#3f3f3f")).
		Background(lipgloss.Color("240")).
		Bold(true).
		Reverse(true)

	got := convertStyle(st)
	want := tcell.StyleDefault.
		Foreground(tcell.NewHexColor(0x3f3f3f)).
		Background(tcell.PaletteColor(240)).
		Bold(true).
		Reverse(true)
	assert.Equal(t, want, got)

	assert.Equal(t, tcell.StyleDefault.Foreground(tcell.ColorDefault).Background(tcell.ColorDefault),
		convertStyle(lipgloss.NewStyle()))
}
