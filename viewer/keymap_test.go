package viewer

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func TestKeyMap_ResolveNames(t *testing.T) {
	km := DefaultKeyMap()

	cases := []struct {
		name string
		want Key
	}{
		{"ctrl+q", Key{Kind: KeyQuit, Name: "ctrl+q"}},
		{"ctrl+d", Key{Kind: KeyHalfPageDown, Name: "ctrl+d"}},
		{"ctrl+u", Key{Kind: KeyHalfPageUp, Name: "ctrl+u"}},
		{"up", Key{Kind: KeyUp, Name: "up"}},
		{"pgdown", Key{Kind: KeyPageDown, Name: "pgdown"}},
		{"end", Key{Kind: KeyEnd, Name: "end"}},
		{"x", Key{Kind: KeyChar, Rune: 'x', Name: "x"}},
		{"é", Key{Kind: KeyChar, Rune: 'é', Name: "é"}},
		{"tab", Key{Kind: KeyChar, Rune: '\t', Ctrl: true, Name: "tab"}},
		{"ctrl+a", Key{Kind: KeyChar, Rune: 1, Ctrl: true, Name: "ctrl+a"}},
		{"f5", Key{Kind: KeyOther, Name: "f5"}},
	}
	for _, tc := range cases {
		if got := km.Resolve(tc.name); got != tc.want {
			t.Fatalf("Resolve(%q)=%+v, want %+v", tc.name, got, tc.want)
		}
	}
}

func TestKeyMap_TranslateTeaMessages(t *testing.T) {
	km := DefaultKeyMap()

	cases := []struct {
		msg  tea.KeyMsg
		want KeyKind
	}{
		{tea.KeyMsg{Type: tea.KeyCtrlQ}, KeyQuit},
		{tea.KeyMsg{Type: tea.KeyDown}, KeyDown},
		{tea.KeyMsg{Type: tea.KeyPgUp}, KeyPageUp},
		{tea.KeyMsg{Type: tea.KeyHome}, KeyHome},
		{tea.KeyMsg{Type: tea.KeyCtrlD}, KeyHalfPageDown},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("z")}, KeyChar},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("zz"), Paste: true}, KeyOther},
	}
	for _, tc := range cases {
		if got := km.Translate(tc.msg).Kind; got != tc.want {
			t.Fatalf("Translate(%q)=%v, want %v", tc.msg.String(), got, tc.want)
		}
	}
}

func TestKeyMap_CustomBindingsAndHelp(t *testing.T) {
	km := DefaultKeyMap()
	km.Quit = key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "leave"))

	if got := km.Resolve("q").Kind; got != KeyQuit {
		t.Fatalf("custom quit resolved to %v", got)
	}
	if got := km.Resolve("ctrl+q").Kind; got == KeyQuit {
		t.Fatalf("old quit binding still active")
	}
	if got, want := km.HelpMessage(), "HELP: q = leave"; got != want {
		t.Fatalf("help=%q, want %q", got, want)
	}
	if got, want := DefaultKeyMap().HelpMessage(), "HELP: Ctrl-Q = quit"; got != want {
		t.Fatalf("default help=%q, want %q", got, want)
	}
}
