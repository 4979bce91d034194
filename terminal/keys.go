package terminal

import (
	"unicode/utf8"
)

// unknownKey names a byte sequence that does not decode to a key.
const unknownKey = "unknown"

// Final bytes of CSI and SS3 sequences, after the introducer.
var csiNames = map[string]string{
	"A":  "up",
	"B":  "down",
	"C":  "right",
	"D":  "left",
	"H":  "home",
	"F":  "end",
	"1~": "home",
	"7~": "home",
	"2~": "insert",
	"3~": "delete",
	"4~": "end",
	"8~": "end",
	"5~": "pgup",
	"6~": "pgdown",
}

// decodeKey names the key held in one read from a raw-mode tty, using the
// same vocabulary as Bubble Tea key messages.
func decodeKey(buf []byte) string {
	if len(buf) == 0 {
		return unknownKey
	}
	if len(buf) == 1 {
		return byteName(buf[0])
	}

	if buf[0] == 0x1b {
		if len(buf) >= 3 && (buf[1] == '[' || buf[1] == 'O') {
			if name, ok := csiNames[string(buf[2:])]; ok {
				return name
			}
			return unknownKey
		}
		if name := decodeKey(buf[1:]); name != unknownKey {
			return "alt+" + name
		}
		return unknownKey
	}

	r, _ := utf8.DecodeRune(buf)
	if r == utf8.RuneError || r < 0x20 {
		return unknownKey
	}
	return string(r)
}

func byteName(b byte) string {
	switch {
	case b == 0x1b:
		return "esc"
	case b == '\r' || b == '\n':
		return "enter"
	case b == '\t':
		return "tab"
	case b == 0x7f:
		return "backspace"
	case b == 0:
		return "ctrl+@"
	case b <= 26:
		return "ctrl+" + string(rune('a'+b-1))
	case b >= 0x20 && b < 0x7f:
		return string(rune(b))
	}
	return unknownKey
}
